package contract

import (
	"context"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/specification"
)

type BursaryRepository interface {
	Create(ctx context.Context, bursary *entity.Bursary) error
	CreateBulk(ctx context.Context, bursaries []*entity.Bursary) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bursary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bursary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
