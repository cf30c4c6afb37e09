package validate

import (
	"strings"

	"career-compass-be/internal/constant"
)

// Fixed criterion weights; they sum to 1.0.
var criterionWeights = map[string]float64{
	CriterionSafety:          0.25,
	CriterionMath:            0.20,
	CriterionAppropriateness: 0.20,
	CriterionCurrency:        0.15,
	CriterionCompleteness:    0.10,
	CriterionFunding:         0.05,
	CriterionMarket:          0.05,
}

// Status thresholds on the weighted overall score.
const (
	thresholdApproved         = 90
	thresholdNeedsEnhancement = 75
	thresholdRequiresCorrect  = 60
)

// Aggregate folds criterion results into one weighted verdict. A failed
// safety criterion caps the status at requires_correction regardless of the
// numeric score.
func Aggregate(criteria []CriterionResult) *Result {
	result := &Result{Criteria: criteria}

	var score float64
	safetyFailed := false
	for _, c := range criteria {
		weight, ok := criterionWeights[c.Name]
		if !ok {
			continue
		}
		score += c.Score * weight
		result.Issues = append(result.Issues, c.Issues...)
		result.Corrections = append(result.Corrections, c.Corrections...)
		if c.Name == CriterionSafety && !c.Passed {
			safetyFailed = true
		}
	}
	result.OverallScore = score

	switch {
	case safetyFailed:
		result.Status = constant.StatusRequiresCorrection
	case score >= thresholdApproved:
		result.Status = constant.StatusApproved
	case score >= thresholdNeedsEnhancement:
		result.Status = constant.StatusNeedsEnhancement
	case score >= thresholdRequiresCorrect:
		result.Status = constant.StatusRequiresCorrection
	default:
		result.Status = constant.StatusRejected
	}
	return result
}

// Enhance annotates the generated text according to the verdict. The original
// content is never discarded or rewritten; footers and disclaimers are only
// appended, and never twice.
func Enhance(text string, result *Result) string {
	var sb strings.Builder
	sb.WriteString(text)

	appendOnce := func(note string) {
		if !strings.Contains(sb.String(), strings.TrimSpace(note)) {
			sb.WriteString(note)
		}
	}

	switch result.Status {
	case constant.StatusApproved, constant.StatusNeedsEnhancement:
		appendOnce(constant.ConfidenceNote)
	default:
		appendOnce(constant.VerificationFooter)
		appendOnce(constant.AIDisclaimer)
	}
	return sb.String()
}

// FooterAdded reports whether enhancement appended the verification footer,
// for response metadata.
func FooterAdded(original, enhanced string) bool {
	marker := strings.TrimSpace(constant.VerificationFooter)
	return !strings.Contains(original, marker) && strings.Contains(enhanced, marker)
}
