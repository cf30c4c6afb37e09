package validate

import (
	"testing"
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/pkg/guidance/taxonomy"
)

type panickingMarket struct{}

func (panickingMarket) Validate(Input) CriterionResult {
	panic("market data service unreachable")
}

func TestValidatorRunsAllCriteria(t *testing.T) {
	v := NewValidator(NewBursaryValidator(testCatalog()), nil, logger.NewNopLogger()).
		WithClock(func() time.Time { return testNow })

	results := v.Run(Input{
		Text: compliantText("Software Developer roles are in demand. 1. Apply for a short course. As a backup consider design. The deadline is in September."),
		Profile: &entity.StudentProfile{
			Grade:     12,
			Marks:     map[string]int{taxonomy.SubjectMaths: 70},
			Interests: []string{"software"},
		},
	})

	if len(results) != 7 {
		t.Fatalf("got %d criterion results, want 7", len(results))
	}
	seen := map[string]bool{}
	for _, r := range results {
		if r.Name == "" {
			t.Error("criterion result with empty name")
		}
		if seen[r.Name] {
			t.Errorf("criterion %s reported twice", r.Name)
		}
		seen[r.Name] = true
	}
	for _, want := range []string{
		CriterionMath, CriterionCurrency, CriterionAppropriateness,
		CriterionSafety, CriterionCompleteness, CriterionFunding, CriterionMarket,
	} {
		if !seen[want] {
			t.Errorf("criterion %s missing from results", want)
		}
	}
}

func TestValidatorFillsZeroNowFromClock(t *testing.T) {
	clock := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	v := NewValidator(NewBursaryValidator(nil), nil, logger.NewNopLogger()).
		WithClock(func() time.Time { return clock })

	// 2019 is stale relative to the injected clock
	results := v.Run(Input{Text: "The 2019 intake is open."})
	for _, r := range results {
		if r.Name == CriterionCurrency && r.Passed {
			t.Error("currency criterion passed a stale year; clock not applied")
		}
	}
}

func TestValidatorRecoversFromPanickingCriterion(t *testing.T) {
	v := NewValidator(NewBursaryValidator(nil), panickingMarket{}, logger.NewNopLogger()).
		WithClock(func() time.Time { return testNow })

	results := v.Run(Input{Text: compliantText("Nursing is in demand.")})
	if len(results) != 7 {
		t.Fatalf("got %d results, want 7 despite the panic", len(results))
	}

	var market *CriterionResult
	for i := range results {
		if results[i].Name == CriterionMarket {
			market = &results[i]
		}
	}
	if market == nil {
		t.Fatal("market criterion missing")
	}
	if market.Passed || market.Score != 0 {
		t.Errorf("panicked criterion reported as passed (score %v)", market.Score)
	}
	if len(market.Issues) == 0 {
		t.Error("panicked criterion carries no diagnostic issue")
	}

	// the other criteria still evaluated normally
	for _, r := range results {
		if r.Name == CriterionSafety && !r.Passed {
			t.Errorf("safety criterion failed unexpectedly: %v", r.Issues)
		}
	}
}
