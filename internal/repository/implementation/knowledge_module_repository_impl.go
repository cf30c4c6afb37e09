package implementation

import (
	"context"
	"errors"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/mapper"
	"career-compass-be/internal/model"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/scope"
	"career-compass-be/internal/repository/specification"

	"gorm.io/gorm"
)

type KnowledgeModuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeModuleMapper
}

func NewKnowledgeModuleRepository(db *gorm.DB) contract.KnowledgeModuleRepository {
	return &KnowledgeModuleRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeModuleMapper(),
	}
}

func (r *KnowledgeModuleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeModuleRepositoryImpl) Create(ctx context.Context, module *entity.KnowledgeModule) error {
	m := r.mapper.ToModel(module)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*module = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeModuleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeModule, error) {
	var m model.KnowledgeModule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeModuleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeModule, error) {
	var models []*model.KnowledgeModule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeModule, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *KnowledgeModuleRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.KnowledgeModule, error) {
	return r.FindOne(ctx, specification.ByName{Name: name})
}
