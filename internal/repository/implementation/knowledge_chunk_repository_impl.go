package implementation

import (
	"context"
	"errors"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/mapper"
	"career-compass-be/internal/model"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeChunkMapper
}

func NewKnowledgeChunkRepository(db *gorm.DB) contract.KnowledgeChunkRepository {
	return &KnowledgeChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeChunkMapper(),
	}
}

func (r *KnowledgeChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// chunkRow joins the chunk with its module name so entities come back fully
// resolved in one query.
type chunkRow struct {
	model.KnowledgeChunk
	ModuleName string
}

func (r *KnowledgeChunkRepositoryImpl) selectWithModule(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("knowledge_chunks").
		Select("knowledge_chunks.*, knowledge_modules.name as module_name").
		Joins("JOIN knowledge_modules ON knowledge_modules.id = knowledge_chunks.module_id").
		Where("knowledge_chunks.deleted_at IS NULL")
}

func (r *KnowledgeChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	moduleId, err := r.resolveModuleId(ctx, chunk.ModuleName)
	if err != nil {
		return err
	}
	m := r.mapper.ToModel(chunk, moduleId)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m, chunk.ModuleName)
	return nil
}

func (r *KnowledgeChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeChunk, len(chunks))
	for i, chunk := range chunks {
		moduleId, err := r.resolveModuleId(ctx, chunk.ModuleName)
		if err != nil {
			return err
		}
		models[i] = r.mapper.ToModel(chunk, moduleId)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m, chunks[i].ModuleName)
	}
	return nil
}

func (r *KnowledgeChunkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeChunk{}, id).Error
}

func (r *KnowledgeChunkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error) {
	var row chunkRow
	query := r.applySpecifications(r.selectWithModule(ctx), specs...)
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row.KnowledgeChunk, row.ModuleName), nil
}

func (r *KnowledgeChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	var rows []chunkRow
	query := r.applySpecifications(r.selectWithModule(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeChunk, len(rows))
	for i := range rows {
		entities[i] = r.mapper.ToEntity(&rows[i].KnowledgeChunk, rows[i].ModuleName)
	}
	return entities, nil
}

func (r *KnowledgeChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeChunk{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *KnowledgeChunkRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return r.db.WithContext(ctx).
		Model(&model.KnowledgeChunk{}).
		Where("id = ?", id).
		Update("embedding", pgvector.NewVector(embedding)).Error
}

func (r *KnowledgeChunkRepositoryImpl) FindByCareerAlias(ctx context.Context, alias string, limit int) ([]*entity.KnowledgeChunk, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []chunkRow
	err := r.selectWithModule(ctx).
		Where("LOWER(knowledge_chunks.metadata->>'career_name') LIKE ?", specification.CareerAliasPattern(alias)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeChunk, len(rows))
	for i := range rows {
		entities[i] = r.mapper.ToEntity(&rows[i].KnowledgeChunk, rows[i].ModuleName)
	}
	return entities, nil
}

// SearchSimilarWithScore runs a cosine similarity search. pgvector's <=>
// operator is cosine distance, so similarity is 1 - distance.
func (r *KnowledgeChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredKnowledgeChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type scoredRow struct {
		chunkRow
		Similarity float64
	}
	var rows []scoredRow

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_chunks").
		Select("knowledge_chunks.*, knowledge_modules.name as module_name, 1 - (embedding <=> ?) as similarity", queryVector).
		Joins("JOIN knowledge_modules ON knowledge_modules.id = knowledge_chunks.module_id").
		Where("knowledge_chunks.deleted_at IS NULL").
		Where("knowledge_chunks.embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredKnowledgeChunk, len(rows))
	for i := range rows {
		scored[i] = &contract.ScoredKnowledgeChunk{
			Chunk:      r.mapper.ToEntity(&rows[i].KnowledgeChunk, rows[i].ModuleName),
			Similarity: rows[i].Similarity,
		}
	}
	return scored, nil
}

func (r *KnowledgeChunkRepositoryImpl) resolveModuleId(ctx context.Context, moduleName string) (uuid.UUID, error) {
	var km model.KnowledgeModule
	err := r.db.WithContext(ctx).Where("name = ?", moduleName).First(&km).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errors.New("unknown knowledge module: " + moduleName)
		}
		return uuid.Nil, err
	}
	return km.Id, nil
}
