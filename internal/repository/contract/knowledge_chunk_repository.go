package contract

import (
	"context"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKnowledgeChunk wraps a chunk with its vector similarity score.
type ScoredKnowledgeChunk struct {
	Chunk      *entity.KnowledgeChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type KnowledgeChunkRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateEmbedding stores the vector for a chunk (written by the embedding consumer).
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	// FindByCareerAlias matches chunks whose metadata career_name contains the
	// alias, case-insensitively, joined to the module lookup table.
	FindByCareerAlias(ctx context.Context, alias string, limit int) ([]*entity.KnowledgeChunk, error)
	// SearchSimilarWithScore returns chunks with cosine similarity >= threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredKnowledgeChunk, error)
}
