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

type BursaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BursaryMapper
}

func NewBursaryRepository(db *gorm.DB) contract.BursaryRepository {
	return &BursaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewBursaryMapper(),
	}
}

func (r *BursaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BursaryRepositoryImpl) Create(ctx context.Context, bursary *entity.Bursary) error {
	m := r.mapper.ToModel(bursary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bursary = *r.mapper.ToEntity(m)
	return nil
}

func (r *BursaryRepositoryImpl) CreateBulk(ctx context.Context, bursaries []*entity.Bursary) error {
	if len(bursaries) == 0 {
		return nil
	}
	models := make([]*model.Bursary, len(bursaries))
	for i, b := range bursaries {
		models[i] = r.mapper.ToModel(b)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*bursaries[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *BursaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bursary, error) {
	var m model.Bursary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BursaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bursary, error) {
	var models []*model.Bursary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Scopes(scope.OrderByDeadlineAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BursaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Bursary{}).Count(&count).Error
	return count, err
}
