package service

import (
	"context"
	"time"

	"career-compass-be/internal/dto"
	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/internal/repository/memory"
	"career-compass-be/pkg/guidance/executor"
	"career-compass-be/pkg/store"

	"github.com/google/uuid"
)

type IGuidanceService interface {
	Advise(ctx context.Context, request *dto.GuidanceRequest) (*dto.GuidanceResponse, error)
}

// guidanceService fronts the pipeline executor with the response cache and
// session bookkeeping. The profile is rebuilt per request; only the session
// history persists between turns.
type guidanceService struct {
	pipeline    *executor.Executor
	cache       *memory.ResponseCache
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewGuidanceService(
	pipeline *executor.Executor,
	cache *memory.ResponseCache,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IGuidanceService {
	return &guidanceService{
		pipeline:    pipeline,
		cache:       cache,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (s *guidanceService) Advise(ctx context.Context, request *dto.GuidanceRequest) (*dto.GuidanceResponse, error) {
	profile := toProfile(request)

	if cached, found := s.cache.Get(request.Query, profile); found {
		s.log.Debug("guidance", "cache hit", map[string]interface{}{
			"session": profile.SessionId,
		})
		return &dto.GuidanceResponse{
			Response:   cached.Response,
			Validation: cached.Validation,
			Metadata:   cached.Metadata,
			Cached:     true,
		}, nil
	}

	result := s.pipeline.Execute(ctx, request.Query, profile)

	// Safety-filtered and fallback responses are cheap and situational;
	// only validated generations are worth memoizing.
	if result.Metadata.SafetyCategory == "" && result.Metadata.ErrorProvenance == "" {
		s.cache.Set(request.Query, profile, result)
	}

	s.recordTurn(profile, request.Query, result)

	return &dto.GuidanceResponse{
		Response:   result.Response,
		Validation: result.Validation,
		Metadata:   result.Metadata,
	}, nil
}

func (s *guidanceService) recordTurn(profile *entity.StudentProfile, query string, result *executor.Result) {
	sessionId := profile.SessionId
	if sessionId == "" {
		return
	}
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		session = &store.GuidanceSession{
			ID:        sessionId,
			Profile:   profile,
			CreatedAt: time.Now(),
		}
	}
	session.Profile = profile

	status := ""
	if result.Validation != nil {
		status = result.Validation.Status
	}
	session.RecordTurn(store.Turn{
		Query:      query,
		Response:   result.Response,
		Status:     status,
		AnsweredAt: time.Now(),
	})
	s.sessionRepo.Save(session)
}

func toProfile(request *dto.GuidanceRequest) *entity.StudentProfile {
	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}
	tier := request.Profile.FinancialTier
	if tier == "" {
		tier = entity.FinancialTierUnknown
	}
	return &entity.StudentProfile{
		Grade:           request.Profile.Grade,
		Marks:           request.Profile.Marks,
		FinancialTier:   tier,
		Interests:       request.Profile.Interests,
		Citizenship:     request.Profile.Citizenship,
		HouseholdIncome: request.Profile.HouseholdIncome,
		SessionId:       sessionId,
	}
}
