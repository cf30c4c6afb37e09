package prompt

import (
	"strings"
	"testing"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/assembly"
	"career-compass-be/pkg/guidance/intent"
)

func minimalBundle() *assembly.ContextBundle {
	return &assembly.ContextBundle{
		ContextText:    "[source:intent-primary module:career_profiles]\nNursing overview.\n",
		ProfileSummary: "Grade: 11\n",
	}
}

func TestBuildPlainQueryProducesPlainPrompt(t *testing.T) {
	b := NewGuidanceBuilder("tell me about nursing", nil, minimalBundle(), &intent.Signals{}, nil)
	got := b.Build()

	for _, want := range []string{"<role>", "<reference_material>", "<response_rules>", "<question>\ntell me about nursing"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	for _, absent := range []string{"<constraint_tensions>", "<frameworks>", "<funding>", "<timing>", "<realistic_options>"} {
		if strings.Contains(got, absent) {
			t.Errorf("prompt contains %q for a plain query", absent)
		}
	}
}

func TestBuildConflictDirectives(t *testing.T) {
	conflicts := []intent.Conflict{{
		Type: intent.ConflictTechVsMath,
		Note: "wants a tech career but rejects mathematics",
	}}
	b := NewGuidanceBuilder("q", nil, minimalBundle(), &intent.Signals{}, conflicts)
	got := b.Build()

	if !strings.Contains(got, "<constraint_tensions>") {
		t.Fatal("constraint tensions block missing")
	}
	if !strings.Contains(got, "wants a tech career but rejects mathematics") {
		t.Error("conflict note not rendered")
	}
}

func TestBuildFrameworkDirectives(t *testing.T) {
	bundle := minimalBundle()
	bundle.FrameworksDetected = true
	bundle.Frameworks = []assembly.Framework{{Name: "V.I.S. Model"}}

	got := NewGuidanceBuilder("q", nil, bundle, &intent.Signals{}, nil).Build()
	if !strings.Contains(got, "<frameworks>") || !strings.Contains(got, "V.I.S. Model") {
		t.Error("framework block missing or incomplete")
	}
}

func TestBuildFundingDirectives(t *testing.T) {
	t.Run("low financial tier", func(t *testing.T) {
		profile := &entity.StudentProfile{Grade: 11, FinancialTier: entity.FinancialTierLow}
		got := NewGuidanceBuilder("what should I study", profile, minimalBundle(), &intent.Signals{}, nil).Build()
		if !strings.Contains(got, "<funding>") {
			t.Error("funding block missing for a low-tier profile")
		}
	})

	t.Run("funding mentioned in query", func(t *testing.T) {
		got := NewGuidanceBuilder("can NSFAS pay for my studies", nil, minimalBundle(), &intent.Signals{}, nil).Build()
		if !strings.Contains(got, "<funding>") {
			t.Error("funding block missing when the query asks about funding")
		}
	})

	t.Run("absent otherwise", func(t *testing.T) {
		profile := &entity.StudentProfile{Grade: 11, FinancialTier: entity.FinancialTierMedium}
		got := NewGuidanceBuilder("what should I study", profile, minimalBundle(), &intent.Signals{}, nil).Build()
		if strings.Contains(got, "<funding>") {
			t.Error("funding block present without a funding signal")
		}
	})
}

func TestBuildUrgencyForGradeTwelve(t *testing.T) {
	got := NewGuidanceBuilder("q", &entity.StudentProfile{Grade: 12}, minimalBundle(), &intent.Signals{}, nil).Build()
	if !strings.Contains(got, "<timing>") {
		t.Error("timing block missing for Grade 12")
	}

	got = NewGuidanceBuilder("q", &entity.StudentProfile{Grade: 10}, minimalBundle(), &intent.Signals{}, nil).Build()
	if strings.Contains(got, "<timing>") {
		t.Error("timing block present for Grade 10")
	}
}

func TestBuildLowMarksDirectives(t *testing.T) {
	low := &entity.StudentProfile{
		Grade: 11,
		Marks: map[string]int{"mathematics": 40, "geography": 45},
	}
	got := NewGuidanceBuilder("q", low, minimalBundle(), &intent.Signals{}, nil).Build()
	if !strings.Contains(got, "<realistic_options>") {
		t.Error("realistic options block missing for a sub-50 average")
	}

	solid := &entity.StudentProfile{
		Grade: 11,
		Marks: map[string]int{"mathematics": 70, "geography": 65},
	}
	got = NewGuidanceBuilder("q", solid, minimalBundle(), &intent.Signals{}, nil).Build()
	if strings.Contains(got, "<realistic_options>") {
		t.Error("realistic options block present for a solid average")
	}
}

func TestBuildSectionOrder(t *testing.T) {
	profile := &entity.StudentProfile{Grade: 12, FinancialTier: entity.FinancialTierLow}
	got := NewGuidanceBuilder("help me", profile, minimalBundle(), &intent.Signals{}, nil).Build()

	order := []string{"<role>", "<student_profile>", "<reference_material>", "<funding>", "<timing>", "<response_rules>", "<question>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(got, tag)
		if idx < 0 {
			t.Fatalf("section %s missing", tag)
		}
		if idx < last {
			t.Errorf("section %s appears out of order", tag)
		}
		last = idx
	}
}
