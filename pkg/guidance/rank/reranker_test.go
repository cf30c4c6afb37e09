package rank

import (
	"testing"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/taxonomy"

	"github.com/google/uuid"
)

func emptySignals() *intent.Signals {
	return &intent.Signals{
		SubjectMentions:  map[string]bool{},
		SubjectNegations: map[string]bool{},
	}
}

func candidate(id uuid.UUID, text, career, module, source string, priority int, base float64) retrieval.Chunk {
	metadata := map[string]interface{}{}
	if career != "" {
		metadata["career_name"] = career
	}
	return retrieval.Chunk{
		Chunk: &entity.KnowledgeChunk{
			Id:         id,
			ChunkText:  text,
			ModuleName: module,
			Metadata:   metadata,
		},
		Source:    source,
		Priority:  priority,
		BaseScore: base,
	}
}

func TestRankDedupeKeepsBestPriority(t *testing.T) {
	r := NewReranker()
	id := uuid.New()

	chunks := []retrieval.Chunk{
		candidate(id, "nursing overview", "Nurse", "career_profiles", retrieval.SourceSemantic, retrieval.PrioritySemantic, 0.5),
		candidate(id, "nursing overview", "Nurse", "career_profiles", retrieval.SourceExplicit, retrieval.PriorityExplicit, 0.95),
	}

	got := r.Rank(chunks, emptySignals(), nil, 10)
	if len(got) != 1 {
		t.Fatalf("got %d chunks after dedupe, want 1", len(got))
	}
	if got[0].Source != retrieval.SourceExplicit {
		t.Errorf("kept source = %s, want the explicit (lower priority tier) copy", got[0].Source)
	}
	if got[0].Priority != retrieval.PriorityExplicit {
		t.Errorf("kept priority = %d, want %d", got[0].Priority, retrieval.PriorityExplicit)
	}
}

func TestRankScoreClamping(t *testing.T) {
	r := NewReranker()

	signals := emptySignals()
	signals.WantsRemote = true
	signals.WantsFastPath = true
	signals.WantsHighIncome = true

	high := candidate(uuid.New(),
		"remote work, short course entry, good salary potential",
		"", "decision_frameworks", retrieval.SourceExplicit, retrieval.PriorityExplicit, 0.95)

	signalsNeg := emptySignals()
	signalsNeg.NoUniversity = true
	signalsNeg.SubjectNegations[taxonomy.SubjectMaths] = true
	low := candidate(uuid.New(),
		"a university degree with heavy mathematics and calculus is required",
		"Data Scientist", "career_profiles", retrieval.SourceSemantic, retrieval.PrioritySemantic, 0.1)

	got := r.Rank([]retrieval.Chunk{high}, signals, nil, 10)
	if got[0].FinalScore > 1 {
		t.Errorf("score above 1 after boosts: %v", got[0].FinalScore)
	}

	got = r.Rank([]retrieval.Chunk{low}, signalsNeg, nil, 10)
	if got[0].FinalScore < 0 {
		t.Errorf("score below 0 after penalties: %v", got[0].FinalScore)
	}
}

func TestRankNegatedSubjectPenalty(t *testing.T) {
	r := NewReranker()

	signals := emptySignals()
	signals.SubjectNegations[taxonomy.SubjectMaths] = true

	mathHeavy := candidate(uuid.New(), "overview", "Data Scientist", "career_profiles",
		retrieval.SourceIntentPrimary, retrieval.PriorityIntentPrimary, 0.85)
	mathFree := candidate(uuid.New(), "overview", "Chef", "career_profiles",
		retrieval.SourceIntentPrimary, retrieval.PriorityIntentPrimary, 0.85)

	got := r.Rank([]retrieval.Chunk{mathHeavy, mathFree}, signals, nil, 10)
	if got[0].Chunk.CareerName() != "Chef" {
		t.Errorf("got[0] career = %s, want the maths-free chunk ranked first", got[0].Chunk.CareerName())
	}
	if got[0].FinalScore <= got[1].FinalScore {
		t.Errorf("penalty not applied: %v <= %v", got[1].FinalScore, got[0].FinalScore)
	}
}

func TestRankLowMathTechReward(t *testing.T) {
	r := NewReranker()

	signals := emptySignals()
	signals.WantsTech = true
	signals.SubjectNegations[taxonomy.SubjectMaths] = true

	uxChunk := candidate(uuid.New(), "design careers", "UX/UI Designer", "career_profiles",
		retrieval.SourceIntentPrimary, retrieval.PriorityIntentPrimary, 0.85)
	chefChunk := candidate(uuid.New(), "kitchen careers", "Chef", "career_profiles",
		retrieval.SourceIntentPrimary, retrieval.PriorityIntentPrimary, 0.85)

	got := r.Rank([]retrieval.Chunk{chefChunk, uxChunk}, signals, nil, 10)
	if got[0].Chunk.CareerName() != "UX/UI Designer" {
		t.Errorf("got[0] career = %s, want the low-math tech chunk first", got[0].Chunk.CareerName())
	}
}

func TestRankConflictBeforePrimaryInsideWindow(t *testing.T) {
	r := NewReranker()

	primary := candidate(uuid.New(), "primary passage", "", "career_profiles",
		retrieval.SourceIntentPrimary, retrieval.PriorityIntentPrimary, 0.85)
	// base 0.80 + no boost vs 0.85 + 0.02: diff 0.07 - outside the window
	farConflict := candidate(uuid.New(), "alt passage far", "", "career_profiles",
		retrieval.SourceIntentConflict, retrieval.PriorityIntentConflict, 0.80)
	// base 0.84: diff 0.03 - inside the window, conflict wins
	nearConflict := candidate(uuid.New(), "alt passage near", "", "career_profiles",
		retrieval.SourceIntentConflict, retrieval.PriorityIntentConflict, 0.84)

	got := r.Rank([]retrieval.Chunk{primary, nearConflict}, emptySignals(), nil, 10)
	if got[0].Source != retrieval.SourceIntentConflict {
		t.Errorf("inside window: got[0] source = %s, want intent-conflict ahead of intent-primary", got[0].Source)
	}

	got = r.Rank([]retrieval.Chunk{primary, farConflict}, emptySignals(), nil, 10)
	if got[0].Source != retrieval.SourceIntentPrimary {
		t.Errorf("outside window: got[0] source = %s, want plain descending order", got[0].Source)
	}
}

func TestRankLimitAndDescendingOrder(t *testing.T) {
	r := NewReranker()

	var chunks []retrieval.Chunk
	for i := 0; i < 25; i++ {
		base := 0.30 + float64(i)*0.02
		chunks = append(chunks, candidate(uuid.New(), "passage", "", "career_profiles",
			retrieval.SourceSemantic, retrieval.PrioritySemantic, base))
	}

	got := r.Rank(chunks, emptySignals(), nil, 10)
	if len(got) != 10 {
		t.Fatalf("got %d chunks, want limit 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].FinalScore < got[i].FinalScore {
			t.Errorf("not descending at %d: %v < %v", i, got[i-1].FinalScore, got[i].FinalScore)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	r := NewReranker()

	var chunks []retrieval.Chunk
	for i := 0; i < 12; i++ {
		chunks = append(chunks, candidate(uuid.New(), "same text", "", "career_profiles",
			retrieval.SourceSemantic, retrieval.PrioritySemantic, 0.5))
	}

	first := r.Rank(chunks, emptySignals(), nil, 10)
	for run := 0; run < 5; run++ {
		again := r.Rank(chunks, emptySignals(), nil, 10)
		for i := range first {
			if first[i].Chunk.Id != again[i].Chunk.Id {
				t.Fatalf("run %d: order differs at position %d", run, i)
			}
		}
	}
}

func TestRankFrameworkModuleBonus(t *testing.T) {
	r := NewReranker()

	framework := candidate(uuid.New(), "the decision model", "", "decision_frameworks",
		retrieval.SourceSemantic, retrieval.PrioritySemantic, 0.5)
	plain := candidate(uuid.New(), "plain passage", "", "career_profiles",
		retrieval.SourceSemantic, retrieval.PrioritySemantic, 0.5)

	got := r.Rank([]retrieval.Chunk{plain, framework}, emptySignals(), nil, 10)
	if got[0].Chunk.ModuleName != "decision_frameworks" {
		t.Errorf("got[0] module = %s, want the framework module boosted first", got[0].Chunk.ModuleName)
	}
}
