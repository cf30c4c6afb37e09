package mapper

import (
	"career-compass-be/internal/entity"
	"career-compass-be/internal/model"
)

type BursaryMapper struct{}

func NewBursaryMapper() *BursaryMapper {
	return &BursaryMapper{}
}

func (m *BursaryMapper) ToEntity(b *model.Bursary) *entity.Bursary {
	if b == nil {
		return nil
	}
	return &entity.Bursary{
		Id:               b.Id,
		Name:             b.Name,
		Provider:         b.Provider,
		CitizenshipReq:   b.CitizenshipReq,
		MinAPS:           b.MinAPS,
		RequiredSubjects: b.RequiredSubjects,
		IncomeCeiling:    b.IncomeCeiling,
		Deadline:         b.Deadline,
		Fields:           b.Fields,
		Amount:           b.Amount,
		CreatedAt:        b.CreatedAt,
	}
}

func (m *BursaryMapper) ToModel(b *entity.Bursary) *model.Bursary {
	if b == nil {
		return nil
	}
	return &model.Bursary{
		Id:               b.Id,
		Name:             b.Name,
		Provider:         b.Provider,
		CitizenshipReq:   b.CitizenshipReq,
		MinAPS:           b.MinAPS,
		RequiredSubjects: b.RequiredSubjects,
		IncomeCeiling:    b.IncomeCeiling,
		Deadline:         b.Deadline,
		Fields:           b.Fields,
		Amount:           b.Amount,
		CreatedAt:        b.CreatedAt,
	}
}

func (m *BursaryMapper) ToEntities(bursaries []*model.Bursary) []*entity.Bursary {
	entities := make([]*entity.Bursary, len(bursaries))
	for i, b := range bursaries {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
