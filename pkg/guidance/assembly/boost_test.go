package assembly

import (
	"testing"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/taxonomy"

	"github.com/google/uuid"
)

func retrievedChunk(text, module string, base float64) retrieval.Chunk {
	return retrieval.Chunk{
		Chunk: &entity.KnowledgeChunk{
			Id:         uuid.New(),
			ChunkText:  text,
			ModuleName: module,
		},
		Source:    retrieval.SourceSemantic,
		Priority:  retrieval.PrioritySemantic,
		BaseScore: base,
	}
}

func TestBoostBySemanticProfile(t *testing.T) {
	profile := &entity.StudentProfile{
		Grade:         11,
		Marks:         map[string]int{taxonomy.SubjectMaths: 75},
		FinancialTier: entity.FinancialTierLow,
		Interests:     []string{"technology"},
	}

	t.Run("nil profile returns input untouched", func(t *testing.T) {
		chunks := []retrieval.Chunk{retrievedChunk("anything", "career_profiles", 0.5)}
		got := BoostBySemanticProfile(chunks, nil, nil)
		if got[0].BaseScore != 0.5 {
			t.Errorf("score changed without a profile: %v", got[0].BaseScore)
		}
	})

	t.Run("strength and interest overlap reorder results", func(t *testing.T) {
		matching := retrievedChunk(
			"software careers reward strong math skills and technology interest", "career_profiles", 0.5)
		plain := retrievedChunk(
			"hospitality careers suit people who enjoy cooking", "career_profiles", 0.52)

		got := BoostBySemanticProfile([]retrieval.Chunk{plain, matching}, profile, nil)
		if got[0].Chunk.Id != matching.Chunk.Id {
			t.Errorf("profile-aligned chunk not promoted: got score %v vs %v", got[0].BaseScore, got[1].BaseScore)
		}
		// 0.5 + 0.06 strength + 0.05 interest
		if diff := got[0].BaseScore - 0.61; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("boosted score = %v, want 0.61", got[0].BaseScore)
		}
	})

	t.Run("financial keyword boost for low tier", func(t *testing.T) {
		funded := retrievedChunk("nsfas covers tuition for qualifying students", "funding_options", 0.5)
		got := BoostBySemanticProfile([]retrieval.Chunk{funded}, profile, nil)
		if diff := got[0].BaseScore - 0.54; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("score = %v, want 0.54", got[0].BaseScore)
		}
	})

	t.Run("module priority boost scales with priority", func(t *testing.T) {
		chunk := retrievedChunk("general guidance text", "career_profiles", 0.5)
		got := BoostBySemanticProfile([]retrieval.Chunk{chunk}, profile, map[string]int{"career_profiles": 3})
		if diff := got[0].BaseScore - 0.56; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("score = %v, want 0.56", got[0].BaseScore)
		}
	})

	t.Run("boosted score never exceeds one", func(t *testing.T) {
		chunk := retrievedChunk(
			"math and technology careers with nsfas bursary funding", "decision_frameworks", 0.98)
		got := BoostBySemanticProfile([]retrieval.Chunk{chunk}, profile, map[string]int{"decision_frameworks": 5})
		if got[0].BaseScore > 1 {
			t.Errorf("score = %v, want clamped to 1", got[0].BaseScore)
		}
	})
}
