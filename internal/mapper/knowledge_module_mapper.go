package mapper

import (
	"career-compass-be/internal/entity"
	"career-compass-be/internal/model"
)

type KnowledgeModuleMapper struct{}

func NewKnowledgeModuleMapper() *KnowledgeModuleMapper {
	return &KnowledgeModuleMapper{}
}

func (m *KnowledgeModuleMapper) ToEntity(km *model.KnowledgeModule) *entity.KnowledgeModule {
	if km == nil {
		return nil
	}
	return &entity.KnowledgeModule{
		Id:        km.Id,
		Name:      km.Name,
		Priority:  km.Priority,
		CreatedAt: km.CreatedAt,
	}
}

func (m *KnowledgeModuleMapper) ToModel(km *entity.KnowledgeModule) *model.KnowledgeModule {
	if km == nil {
		return nil
	}
	return &model.KnowledgeModule{
		Id:        km.Id,
		Name:      km.Name,
		Priority:  km.Priority,
		CreatedAt: km.CreatedAt,
	}
}
