package controller

import (
	"career-compass-be/internal/dto"
	"career-compass-be/internal/pkg/serverutils"
	"career-compass-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuidanceController interface {
	RegisterRoutes(r fiber.Router)
	Advise(ctx *fiber.Ctx) error
}

type guidanceController struct {
	guidanceService service.IGuidanceService
}

func NewGuidanceController(guidanceService service.IGuidanceService) IGuidanceController {
	return &guidanceController{
		guidanceService: guidanceService,
	}
}

func (c *guidanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guidance/v1")
	h.Post("", c.Advise)
}

func (c *guidanceController) Advise(ctx *fiber.Ctx) error {
	var req dto.GuidanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guidanceService.Advise(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate guidance", res))
}
