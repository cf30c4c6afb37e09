package validate

import (
	"fmt"
	"sync"
	"time"

	"career-compass-be/internal/pkg/logger"
)

// Validator runs the seven criteria concurrently. Criteria are pure functions
// of the Input snapshot, so they fire in parallel and only the slowest one
// gates latency. A panicking criterion is recovered and reported as failed;
// the others still complete.
type Validator struct {
	bursary *BursaryValidator
	market  MarketValidator
	now     func() time.Time
	log     logger.ILogger
}

func NewValidator(bursary *BursaryValidator, market MarketValidator, log logger.ILogger) *Validator {
	if market == nil {
		market = KeywordMarketValidator{}
	}
	return &Validator{
		bursary: bursary,
		market:  market,
		now:     time.Now,
		log:     log,
	}
}

// WithClock overrides the validator's time source, for tests.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Run evaluates all criteria against the generated text and returns them in
// fixed order.
func (v *Validator) Run(in Input) []CriterionResult {
	if in.Now.IsZero() {
		in.Now = v.now()
	}

	criteria := []struct {
		name string
		fn   func(Input) CriterionResult
	}{
		{CriterionMath, checkMathAccuracy},
		{CriterionCurrency, checkCurrency},
		{CriterionAppropriateness, checkAppropriateness},
		{CriterionSafety, checkSafety},
		{CriterionCompleteness, checkCompleteness},
		{CriterionFunding, v.bursary.Validate},
		{CriterionMarket, v.market.Validate},
	}

	results := make([]CriterionResult, len(criteria))
	var wg sync.WaitGroup
	for i, c := range criteria {
		wg.Add(1)
		go func(idx int, name string, fn func(Input) CriterionResult) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					v.log.Error("validate", "criterion panicked", map[string]interface{}{
						"criterion": name,
						"panic":     fmt.Sprint(r),
					})
					results[idx] = CriterionResult{
						Name:       name,
						Passed:     false,
						Score:      0,
						Issues:     []string{fmt.Sprintf("criterion failed to evaluate: %v", r)},
						Confidence: 0,
					}
				}
			}()
			results[idx] = fn(in)
		}(i, c.name, c.fn)
	}
	wg.Wait()

	return results
}
