package mapper

import (
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/model"

	"github.com/google/uuid"
)

type KnowledgeChunkMapper struct{}

func NewKnowledgeChunkMapper() *KnowledgeChunkMapper {
	return &KnowledgeChunkMapper{}
}

// ToEntity converts a row to the domain chunk. moduleName comes from the
// module join; the model row only carries the foreign key.
func (m *KnowledgeChunkMapper) ToEntity(c *model.KnowledgeChunk, moduleName string) *entity.KnowledgeChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeChunk{
		Id:               c.Id,
		ChunkText:        c.ChunkText,
		Metadata:         map[string]interface{}(c.Metadata),
		ModuleName:       moduleName,
		SourceEntityType: c.SourceEntityType,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *KnowledgeChunkMapper) ToModel(c *entity.KnowledgeChunk, moduleId uuid.UUID) *model.KnowledgeChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.KnowledgeChunk{
		Id:               c.Id,
		ChunkText:        c.ChunkText,
		Metadata:         c.Metadata,
		ModuleId:         moduleId,
		SourceEntityType: c.SourceEntityType,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}
