package assembly

import (
	"strings"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/retrieval"
)

// Profile-boost weights for the secondary scorer.
const (
	boostStrengthOverlap  = 0.06
	boostInterestOverlap  = 0.05
	boostFinancialKeyword = 0.04
	boostModulePriority   = 0.02
)

var financialKeywords = []string{"nsfas", "bursary", "funding", "scholarship", "learnership", "free"}

// BoostBySemanticProfile re-weights pure similarity results by profile
// overlap. This is the simpler scoring path used when retrieval bypasses the
// full constraint re-ranker; results keep relative order on ties.
func BoostBySemanticProfile(
	chunks []retrieval.Chunk,
	profile *entity.StudentProfile,
	modulePriorities map[string]int,
) []retrieval.Chunk {
	if profile == nil {
		return chunks
	}

	out := make([]retrieval.Chunk, len(chunks))
	copy(out, chunks)

	for i := range out {
		text := strings.ToLower(out[i].Chunk.ChunkText)
		boost := 0.0

		for subject, mark := range profile.Marks {
			if mark >= 60 && strings.Contains(text, subjectSurface(subject)) {
				boost += boostStrengthOverlap
			}
		}
		for _, interest := range profile.Interests {
			if interest != "" && strings.Contains(text, strings.ToLower(interest)) {
				boost += boostInterestOverlap
			}
		}
		if profile.FinancialTier == entity.FinancialTierLow {
			for _, kw := range financialKeywords {
				if strings.Contains(text, kw) {
					boost += boostFinancialKeyword
					break
				}
			}
		}
		if prio, ok := modulePriorities[strings.ToLower(out[i].Chunk.ModuleName)]; ok && prio > 0 {
			boost += boostModulePriority * float64(prio)
		}

		score := out[i].BaseScore + boost
		if score > 1 {
			score = 1
		}
		out[i].BaseScore = score
	}

	// simple insertion sort keeps equal-score order stable
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].BaseScore > out[j-1].BaseScore; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func subjectSurface(subject string) string {
	switch subject {
	case "mathematics":
		return "math"
	case "physical_science":
		return "physical science"
	case "life_science":
		return "life science"
	default:
		return strings.ReplaceAll(strings.ToLower(subject), "_", " ")
	}
}
