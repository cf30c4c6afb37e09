package validate

import (
	"strings"

	"career-compass-be/pkg/guidance/taxonomy"
)

// MarketValidator checks a response for labour-market grounding. External
// implementations may call a market-data service; the validator degrades to
// KeywordMarketValidator when none is wired.
type MarketValidator interface {
	Validate(in Input) CriterionResult
}

var demandTerms = []string{"demand", "shortage", "scarce skill", "growing", "job market", "employment", "hiring"}

// KeywordMarketValidator is the fallback: it only requires that a concrete
// career from the taxonomy and some market-demand language both appear.
type KeywordMarketValidator struct{}

func (KeywordMarketValidator) Validate(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionMarket, Passed: true, Score: 100, Confidence: 0.5}
	text := strings.ToLower(in.Text)

	careerNamed := false
	for _, c := range taxonomy.Careers {
		if strings.Contains(text, strings.ToLower(c.Display)) {
			careerNamed = true
			break
		}
	}
	if !careerNamed {
		res.Issues = append(res.Issues, "no concrete career from the knowledge base is named")
	}
	if !containsAnyTerm(text, demandTerms) {
		res.Issues = append(res.Issues, "no labour-market demand context")
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = n < 2
		res.Score = clampScore(100 - float64(n)*25)
	}
	return res
}
