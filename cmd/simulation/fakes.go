package main

import (
	"context"
	"strings"
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/specification"
	"career-compass-be/pkg/embedding"

	"github.com/google/uuid"
)

// fakeChunkRepo is an in-memory stand-in for the Postgres repository so the
// simulation runs without a database.
type fakeChunkRepo struct {
	chunks []*entity.KnowledgeChunk
}

func newFakeChunkRepo() *fakeChunkRepo {
	passage := func(career, module, text string) *entity.KnowledgeChunk {
		return &entity.KnowledgeChunk{
			Id:         uuid.New(),
			ChunkText:  text,
			Metadata:   map[string]interface{}{"career_name": career},
			ModuleName: module,
			CreatedAt:  time.Now(),
		}
	}
	return &fakeChunkRepo{chunks: []*entity.KnowledgeChunk{
		passage("UX/UI Designer", "career_profiles",
			"UX/UI Designer: no degree required, portfolio driven, Mathematics not needed. Growing demand."),
		passage("Graphic Designer", "career_profiles",
			"Graphic Designer: TVET diploma or portfolio route, no Mathematics requirement."),
		passage("Digital Marketer", "career_profiles",
			"Digital Marketer: certificates plus results, fast entry, remote dollar income possible."),
		passage("Accountant", "career_profiles",
			"Accountant: BCom Accounting needs APS 30+ and Mathematics 60%. SAICA bursaries available."),
		passage("Software Developer", "career_profiles",
			"Software Developer: BSc or bootcamp plus portfolio, strong job market demand."),
		passage("", "decision_frameworks",
			"The Three-Question Career Filter: would I do this for free, will someone pay me, can I reach the entry bar?"),
		passage("", "funding_options",
			"NSFAS funds study for households under R350,000 per year. Applications close in January."),
	}}
}

func (r *fakeChunkRepo) Create(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	r.chunks = append(r.chunks, chunk)
	return nil
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	r.chunks = append(r.chunks, chunks...)
	return nil
}

func (r *fakeChunkRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeChunkRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error) {
	if len(r.chunks) == 0 {
		return nil, nil
	}
	return r.chunks[0], nil
}

func (r *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	return r.chunks, nil
}

func (r *fakeChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.chunks)), nil
}

func (r *fakeChunkRepo) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return nil
}

func (r *fakeChunkRepo) FindByCareerAlias(ctx context.Context, alias string, limit int) ([]*entity.KnowledgeChunk, error) {
	var out []*entity.KnowledgeChunk
	for _, c := range r.chunks {
		if c.MatchesCareer(alias) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, vec []float32, limit int, threshold float64) ([]*contract.ScoredKnowledgeChunk, error) {
	var out []*contract.ScoredKnowledgeChunk
	for _, c := range r.chunks {
		out = append(out, &contract.ScoredKnowledgeChunk{Chunk: c, Similarity: 0.6})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeEmbedder hashes tokens into a fixed vector; good enough to exercise the
// semantic channel offline.
type fakeEmbedder struct{}

func (fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	values := make([]float32, 8)
	for i, token := range strings.Fields(strings.ToLower(text)) {
		values[i%8] += float32(len(token)) / 10
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: values},
	}, nil
}

func simBursaries() []entity.Bursary {
	return []entity.Bursary{
		{
			Name:           "NSFAS",
			Provider:       "Department of Higher Education",
			CitizenshipReq: "ZA",
			MinAPS:         20,
			IncomeCeiling:  350000,
			Deadline:       time.Now().AddDate(0, 6, 0),
			Amount:         "Full tuition and living allowance",
		},
		{
			Name:             "SAICA Thuthuka",
			Provider:         "SAICA",
			CitizenshipReq:   "ZA",
			MinAPS:           30,
			RequiredSubjects: []string{"mathematics"},
			IncomeCeiling:    600000,
			Deadline:         time.Now().AddDate(0, 3, 0),
			Fields:           []string{"accounting"},
			Amount:           "Full CA(SA) route support",
		},
	}
}
