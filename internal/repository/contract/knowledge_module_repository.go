package contract

import (
	"context"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/specification"
)

type KnowledgeModuleRepository interface {
	Create(ctx context.Context, module *entity.KnowledgeModule) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeModule, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeModule, error)
	FindByName(ctx context.Context, name string) (*entity.KnowledgeModule, error)
}
