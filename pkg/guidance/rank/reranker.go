// Package rank merges, deduplicates, scores and orders retrieved chunks
// against the request's constraint signals. Scores are relevance: higher is
// better, always clamped to [0,1].
package rank

import (
	"math"
	"sort"
	"strings"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/taxonomy"
)

// ScoredChunk is a retrieved chunk after constraint-based re-ranking. The
// full conflict list rides along for downstream explanation.
type ScoredChunk struct {
	Chunk      *entity.KnowledgeChunk
	Source     string
	Priority   int
	FinalScore float64
	Conflicts  []intent.Conflict
}

// Scoring weights. Source boosts reward stronger provenance; constraint
// deltas move chunks toward or away from what the student actually asked for.
const (
	boostExplicit      = 0.04
	boostIntentPrimary = 0.02

	penaltyNegatedSubject   = 0.15
	penaltyUniversityNegated = 0.12
	rewardSubjectMatch      = 0.08
	rewardLowMathTech       = 0.10
	rewardRemoteAlignment   = 0.05
	rewardFastPathAlignment = 0.05
	rewardIncomeAlignment   = 0.03
	bonusFrameworkModule    = 0.03

	// tieBreakWindow: within this score distance, intent-conflict results
	// sort ahead of intent-primary so alternative paths surface next to
	// their primary counterparts.
	tieBreakWindow = 0.05

	DefaultLimit = 10
)

var universityRequirementPattern = []string{
	"degree required", "university degree", "bachelor", "requires matric",
	"matric required", "university entrance",
}

type Reranker struct{}

func NewReranker() *Reranker {
	return &Reranker{}
}

// Rank produces the final ordered candidate list. Given identical inputs the
// output ordering is identical: every step is deterministic.
func (r *Reranker) Rank(
	chunks []retrieval.Chunk,
	signals *intent.Signals,
	conflicts []intent.Conflict,
	limit int,
) []ScoredChunk {
	if limit <= 0 {
		limit = DefaultLimit
	}

	merged := mergeAndDedupe(chunks)

	scored := make([]ScoredChunk, 0, len(merged))
	for _, chunk := range merged {
		score := chunk.BaseScore + sourceBoost(chunk.Source) + r.constraintDelta(chunk, signals) + frameworkBonus(chunk)
		scored = append(scored, ScoredChunk{
			Chunk:      chunk.Chunk,
			Source:     chunk.Source,
			Priority:   chunk.Priority,
			FinalScore: clamp(score),
			Conflicts:  conflicts,
		})
	}

	sortScored(scored)

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// mergeAndDedupe collapses duplicates across channels by chunk id, keeping
// the lowest-numbered (best) priority tier and its base score.
func mergeAndDedupe(chunks []retrieval.Chunk) []retrieval.Chunk {
	index := make(map[string]int)
	var out []retrieval.Chunk

	for _, chunk := range chunks {
		id := chunk.Chunk.Id.String()
		if pos, ok := index[id]; ok {
			if chunk.Priority < out[pos].Priority {
				out[pos] = chunk
			}
			continue
		}
		index[id] = len(out)
		out = append(out, chunk)
	}
	return out
}

func sourceBoost(source string) float64 {
	switch source {
	case retrieval.SourceExplicit:
		return boostExplicit
	case retrieval.SourceIntentPrimary:
		return boostIntentPrimary
	default:
		return 0
	}
}

// constraintDelta scores a chunk's content against the student's constraints.
func (r *Reranker) constraintDelta(chunk retrieval.Chunk, signals *intent.Signals) float64 {
	delta := 0.0
	text := strings.ToLower(chunk.Chunk.ChunkText)
	career := chunkCareerId(chunk.Chunk)

	for _, subject := range taxonomy.Subjects {
		implies := chunkImpliesSubject(career, text, subject)
		if signals.SubjectNegations[subject] && implies {
			delta -= penaltyNegatedSubject
		} else if signals.SubjectMentions[subject] && !signals.SubjectNegations[subject] && implies {
			delta += rewardSubjectMatch
		}
	}

	if (signals.NoUniversity || signals.NoMatric) && impliesUniversityRequirement(text) {
		delta -= penaltyUniversityNegated
	}

	if signals.WantsTech && signals.SubjectNegations[taxonomy.SubjectMaths] && isLowMathTech(career) {
		delta += rewardLowMathTech
	}

	if signals.WantsRemote && containsAny(text, "remote", "work from home", "online work", "freelance") {
		delta += rewardRemoteAlignment
	}
	if signals.WantsFastPath && containsAny(text, "short course", "learnership", "quick", "months") {
		delta += rewardFastPathAlignment
	}
	if signals.WantsHighIncome && containsAny(text, "salary", "earn", "income", "pay") {
		delta += rewardIncomeAlignment
	}

	return delta
}

func frameworkBonus(chunk retrieval.Chunk) float64 {
	if taxonomy.FrameworkModules[strings.ToLower(chunk.Chunk.ModuleName)] {
		return bonusFrameworkModule
	}
	return 0
}

// sortScored orders by score descending with the conflict-before-primary
// tie-break inside the window, and a chunk-id tail key for determinism.
func sortScored(scored []ScoredChunk) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		diff := a.FinalScore - b.FinalScore

		if math.Abs(diff) <= tieBreakWindow && a.Source != b.Source {
			if a.Source == retrieval.SourceIntentConflict && b.Source == retrieval.SourceIntentPrimary {
				return true
			}
			if a.Source == retrieval.SourceIntentPrimary && b.Source == retrieval.SourceIntentConflict {
				return false
			}
		}
		if diff != 0 {
			return diff > 0
		}
		return a.Chunk.Id.String() < b.Chunk.Id.String()
	})
}

func chunkCareerId(chunk *entity.KnowledgeChunk) string {
	name := strings.ToLower(chunk.CareerName())
	for _, career := range taxonomy.Careers {
		if name != "" && strings.Contains(name, strings.ToLower(career.Display)) {
			return career.Id
		}
	}
	return ""
}

func chunkImpliesSubject(careerId, text, subject string) bool {
	if careerId != "" {
		for _, implied := range taxonomy.CareerImpliesSubject[careerId] {
			if implied == subject {
				return true
			}
		}
	}
	switch subject {
	case taxonomy.SubjectMaths:
		return containsAny(text, "mathematics", "strong maths", "math-intensive", "calculus", "statistics")
	case taxonomy.SubjectPhysics:
		return containsAny(text, "physical science", "physics")
	case taxonomy.SubjectBiology:
		return containsAny(text, "life science", "biology", "anatomy")
	}
	return false
}

func impliesUniversityRequirement(text string) bool {
	return containsAny(text, universityRequirementPattern...)
}

func isLowMathTech(careerId string) bool {
	for _, c := range taxonomy.LowMathTech {
		if c == careerId {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
