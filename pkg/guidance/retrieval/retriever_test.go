package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/specification"
	"career-compass-be/pkg/embedding"
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/taxonomy"

	"github.com/google/uuid"
)

// stubChunkRepo serves a fixed number of chunks per career alias and records
// which lookups ran.
type stubChunkRepo struct {
	perAlias     int
	aliasErr     map[string]error
	semantic     []*contract.ScoredKnowledgeChunk
	aliasCalls   []string
	semanticRuns int
}

func (s *stubChunkRepo) Create(context.Context, *entity.KnowledgeChunk) error       { return nil }
func (s *stubChunkRepo) CreateBulk(context.Context, []*entity.KnowledgeChunk) error { return nil }
func (s *stubChunkRepo) Delete(context.Context, uuid.UUID) error                    { return nil }
func (s *stubChunkRepo) FindOne(context.Context, ...specification.Specification) (*entity.KnowledgeChunk, error) {
	return nil, nil
}
func (s *stubChunkRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	return nil, nil
}
func (s *stubChunkRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}
func (s *stubChunkRepo) UpdateEmbedding(context.Context, uuid.UUID, []float32) error { return nil }

func (s *stubChunkRepo) FindByCareerAlias(_ context.Context, alias string, limit int) ([]*entity.KnowledgeChunk, error) {
	s.aliasCalls = append(s.aliasCalls, alias)
	if err := s.aliasErr[alias]; err != nil {
		return nil, err
	}
	n := s.perAlias
	if n > limit {
		n = limit
	}
	chunks := make([]*entity.KnowledgeChunk, 0, n)
	for i := 0; i < n; i++ {
		chunks = append(chunks, &entity.KnowledgeChunk{
			Id:         uuid.New(),
			ChunkText:  fmt.Sprintf("%s passage %d", alias, i),
			ModuleName: "career_profiles",
			Metadata:   map[string]interface{}{"career_name": alias},
		})
	}
	return chunks, nil
}

func (s *stubChunkRepo) SearchSimilarWithScore(context.Context, []float32, int, float64) ([]*contract.ScoredKnowledgeChunk, error) {
	s.semanticRuns++
	return s.semantic, nil
}

type stubEmbedder struct{ err error }

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

func newTestRetriever(repo *stubChunkRepo) *Retriever {
	return NewRetriever(repo, &stubEmbedder{}, DefaultConfig(), logger.NewNopLogger())
}

func TestRetrieveExplicitChannel(t *testing.T) {
	repo := &stubChunkRepo{perAlias: 3}
	r := newTestRetriever(repo)

	signals := &intent.Signals{
		ExplicitCareers:  []string{taxonomy.CareerSoftwareDeveloper, taxonomy.CareerAccountant},
		PrimaryCategory:  taxonomy.CategoryGeneral,
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}

	chunks := r.Retrieve(context.Background(), "software or accounting", signals, nil)

	explicit := 0
	for _, c := range chunks {
		if c.Source == SourceExplicit {
			explicit++
			if c.Priority != PriorityExplicit {
				t.Errorf("explicit chunk priority = %d, want %d", c.Priority, PriorityExplicit)
			}
			if c.BaseScore != 0.95 {
				t.Errorf("explicit base score = %v, want 0.95", c.BaseScore)
			}
		}
	}
	if explicit != 6 {
		t.Errorf("explicit chunks = %d, want 6 (3 per career)", explicit)
	}
}

func TestRetrieveExplicitCap(t *testing.T) {
	repo := &stubChunkRepo{perAlias: 5}
	r := newTestRetriever(repo)

	// four careers x 5 chunks = 20 candidates, capped at 15
	signals := &intent.Signals{
		ExplicitCareers: []string{
			taxonomy.CareerSoftwareDeveloper, taxonomy.CareerAccountant,
			taxonomy.CareerNurse, taxonomy.CareerLawyer,
		},
		PrimaryCategory:  taxonomy.CategoryGeneral,
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}

	chunks := r.Retrieve(context.Background(), "everything at once", signals, nil)

	explicit := 0
	for _, c := range chunks {
		if c.Source == SourceExplicit {
			explicit++
		}
	}
	if explicit != 15 {
		t.Errorf("explicit chunks = %d, want exactly 15", explicit)
	}
}

func TestRetrieveIntentCap(t *testing.T) {
	repo := &stubChunkRepo{perAlias: 5}
	r := newTestRetriever(repo)

	signals := &intent.Signals{
		PrimaryCategory:  taxonomy.CategoryGeneral,
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}

	chunks := r.Retrieve(context.Background(), "what should I do", signals, nil)

	intented := 0
	for _, c := range chunks {
		if c.Source == SourceIntentPrimary || c.Source == SourceIntentConflict {
			intented++
		}
	}
	// general category has 7 careers x 5 chunks = 35 candidates, capped at 30
	if intented != 30 {
		t.Errorf("intent chunks = %d, want exactly 30", intented)
	}
}

func TestSemanticGatedByCombinedCount(t *testing.T) {
	tests := []struct {
		name     string
		perAlias int
		wantRuns int
	}{
		{"thin results trigger semantic", 0, 1},
		{"rich results skip semantic", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubChunkRepo{
				perAlias: tt.perAlias,
				semantic: []*contract.ScoredKnowledgeChunk{{
					Chunk: &entity.KnowledgeChunk{
						Id:         uuid.New(),
						ChunkText:  "semantic passage",
						ModuleName: "career_profiles",
					},
					Similarity: 0.72,
				}},
			}
			r := newTestRetriever(repo)

			signals := &intent.Signals{
				ExplicitCareers:  []string{taxonomy.CareerSoftwareDeveloper, taxonomy.CareerNurse},
				PrimaryCategory:  taxonomy.CategoryGeneral,
				SubjectMentions:  map[string]bool{},
				SubjectNegations: map[string]bool{},
			}
			chunks := r.Retrieve(context.Background(), "help me choose", signals, nil)

			if repo.semanticRuns != tt.wantRuns {
				t.Errorf("semantic runs = %d, want %d", repo.semanticRuns, tt.wantRuns)
			}
			if tt.wantRuns == 1 {
				found := false
				for _, c := range chunks {
					if c.Source == SourceSemantic {
						found = true
						if c.BaseScore != 0.72 {
							t.Errorf("semantic base score = %v, want similarity 0.72", c.BaseScore)
						}
					}
				}
				if !found {
					t.Error("semantic chunk missing from combined results")
				}
			}
		})
	}
}

func TestSemanticFiltersIrrelevantModules(t *testing.T) {
	repo := &stubChunkRepo{
		perAlias: 0,
		semantic: []*contract.ScoredKnowledgeChunk{
			{Chunk: &entity.KnowledgeChunk{Id: uuid.New(), ChunkText: "recipe", ModuleName: "cooking_notes"}, Similarity: 0.9},
			{Chunk: &entity.KnowledgeChunk{Id: uuid.New(), ChunkText: "tvet info", ModuleName: "tvet_pathways"}, Similarity: 0.6},
		},
	}
	r := newTestRetriever(repo)

	signals := &intent.Signals{
		PrimaryCategory:  taxonomy.CategoryGeneral,
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}
	chunks := r.Retrieve(context.Background(), "x", signals, nil)

	for _, c := range chunks {
		if c.Source == SourceSemantic && strings.Contains(c.Chunk.ChunkText, "recipe") {
			t.Error("career-irrelevant semantic chunk survived the filter")
		}
	}
}

func TestChannelErrorDegradesToEmpty(t *testing.T) {
	repo := &stubChunkRepo{
		perAlias: 2,
		aliasErr: map[string]error{
			taxonomy.DisplayName(taxonomy.CareerSoftwareDeveloper): errors.New("db down"),
		},
	}
	r := newTestRetriever(repo)

	signals := &intent.Signals{
		ExplicitCareers:  []string{taxonomy.CareerSoftwareDeveloper, taxonomy.CareerNurse},
		PrimaryCategory:  taxonomy.CategoryGeneral,
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}

	chunks := r.Retrieve(context.Background(), "q", signals, nil)
	for _, c := range chunks {
		if c.Source == SourceExplicit && c.Chunk.CareerName() == taxonomy.DisplayName(taxonomy.CareerSoftwareDeveloper) {
			t.Error("chunks returned for a career whose lookup failed")
		}
	}
}

func TestFilterCareersForSubjects(t *testing.T) {
	base := taxonomy.CareersForCategory(taxonomy.CategoryGeneral)

	t.Run("maths negation removes avoid-list careers", func(t *testing.T) {
		signals := &intent.Signals{
			SubjectMentions:  map[string]bool{},
			SubjectNegations: map[string]bool{taxonomy.SubjectMaths: true},
		}
		got := FilterCareersForSubjects(base, signals)
		for _, career := range got {
			for _, avoided := range taxonomy.AvoidOnNegation[taxonomy.SubjectMaths] {
				if career == avoided {
					t.Errorf("career %s should be removed on maths negation", career)
				}
			}
		}
	})

	t.Run("tech plus maths negation backfills low-math tech", func(t *testing.T) {
		signals := &intent.Signals{
			WantsTech:        true,
			SubjectMentions:  map[string]bool{},
			SubjectNegations: map[string]bool{taxonomy.SubjectMaths: true},
		}
		got := FilterCareersForSubjects(base, signals)
		for _, career := range taxonomy.LowMathTech {
			if !contains(got, career) {
				t.Errorf("low-math tech career %s missing", career)
			}
		}
	})

	t.Run("mentioned subject promotes its careers", func(t *testing.T) {
		signals := &intent.Signals{
			SubjectMentions:  map[string]bool{taxonomy.SubjectBiology: true},
			SubjectNegations: map[string]bool{},
		}
		got := FilterCareersForSubjects(base, signals)
		if len(got) == 0 {
			t.Fatal("empty career list")
		}
		// nurse is the only biology career on the general list, so it moves up front
		if got[0] != taxonomy.CareerNurse {
			t.Errorf("got[0] = %s, want promoted %s", got[0], taxonomy.CareerNurse)
		}
	})

	t.Run("no duplicates after promotion", func(t *testing.T) {
		signals := &intent.Signals{
			SubjectMentions:  map[string]bool{taxonomy.SubjectMaths: true, taxonomy.SubjectBiology: true},
			SubjectNegations: map[string]bool{},
		}
		got := FilterCareersForSubjects(base, signals)
		seen := map[string]bool{}
		for _, career := range got {
			if seen[career] {
				t.Errorf("duplicate career %s", career)
			}
			seen[career] = true
		}
	})
}
