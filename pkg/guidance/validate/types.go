package validate

import (
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/assembly"
)

// Criterion names, fixed across the validator and the aggregator weights.
const (
	CriterionMath            = "mathematical_accuracy"
	CriterionCurrency        = "information_currency"
	CriterionAppropriateness = "student_appropriateness"
	CriterionSafety          = "safety_compliance"
	CriterionCompleteness    = "completeness"
	CriterionFunding         = "funding_accuracy"
	CriterionMarket          = "market_relevance"
)

// CriterionResult is the outcome of one validation criterion. Score is in
// [0,100]; Corrections are advisory additions, never rewrites.
type CriterionResult struct {
	Name        string   `json:"name"`
	Passed      bool     `json:"passed"`
	Score       float64  `json:"score"`
	Issues      []string `json:"issues,omitempty"`
	Corrections []string `json:"corrections,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// Input is everything a criterion may inspect. Criteria are pure functions of
// this snapshot; none of them perform I/O.
type Input struct {
	Text    string
	Profile *entity.StudentProfile
	Bundle  *assembly.ContextBundle
	Now     time.Time
}

// Result is the aggregated validation verdict.
type Result struct {
	OverallScore float64           `json:"overall_score"`
	Status       string            `json:"status"`
	Criteria     []CriterionResult `json:"criteria"`
	Issues       []string          `json:"issues,omitempty"`
	Corrections  []string          `json:"corrections,omitempty"`
}

// CriterionByName returns the named criterion result, nil if absent.
func (r *Result) CriterionByName(name string) *CriterionResult {
	for i := range r.Criteria {
		if r.Criteria[i].Name == name {
			return &r.Criteria[i]
		}
	}
	return nil
}
