package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"career-compass-be/internal/constant"
	"career-compass-be/internal/entity"
)

const (
	apsMin = 14
	apsMax = 42
)

var (
	apsPattern     = regexp.MustCompile(`(?i)\bAPS\b(?:\s+(?:score|of|is|at least|above|below))*\s*(?:of\s+)?(\d{1,3})`)
	gradePattern   = regexp.MustCompile(`(?i)\bgrade\s+(\d{1,2})\b`)
	percentPattern = regexp.MustCompile(`(\d{1,3})\s?%`)
	yearPattern    = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	deadlineLayouts = []string{
		"2 January 2006",
		"January 2, 2006",
		"2006-01-02",
		"02/01/2006",
	}
	deadlinePattern = regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}|\d{4}-\d{2}-\d{2})\b`)

	guaranteePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bguaranteed?\b`),
		regexp.MustCompile(`(?i)\b100%\s+(?:sure|certain|chance|pass)`),
		regexp.MustCompile(`(?i)\byou\s+will\s+definitely\b`),
		regexp.MustCompile(`(?i)\bcertain\s+to\s+(?:get|be\s+accepted|succeed)\b`),
	}
	dismissivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bit'?s\s+easy\b`),
		regexp.MustCompile(`(?i)\banyone\s+can\s+do\s+it\b`),
		regexp.MustCompile(`(?i)\bno\s+effort\s+(?:needed|required)\b`),
		regexp.MustCompile(`(?i)\bwithout\s+(?:any\s+)?studying\b`),
	}

	numberedStepPattern = regexp.MustCompile(`(?m)^\s*\d+[\.)]\s+`)
	imperativeVerbs     = []string{"apply", "research", "contact", "visit", "register", "speak to", "compare", "check"}
	alternativeTerms    = []string{"alternative", "backup", "plan b", "other option", "another path", "instead"}
	timelineTerms       = []string{"deadline", "closing date", "by the end of", "before", "timeline", "this year", "next year"}

	universityAppTerms = []string{"apply to university", "university application", "submit your application", "application fee"}
	urgencyTerms       = []string{"deadline", "urgent", "apply now", "closing", "this year"}
	fundingTerms       = []string{"nsfas", "bursary", "bursaries", "funding", "scholarship", "learnership", "financial aid"}
	highBarFields      = []string{"medicine", "become a doctor", "actuarial", "chartered accountant", "aerospace"}
)

// checkMathAccuracy verifies that every numeric claim stays inside its valid
// domain: APS in [14,42], grade references in [10,12], percentages in [0,100].
func checkMathAccuracy(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionMath, Passed: true, Score: 100, Confidence: 0.9}

	for _, m := range apsPattern.FindAllStringSubmatch(in.Text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && (v < apsMin || v > apsMax) {
			res.Issues = append(res.Issues, fmt.Sprintf("APS score %d is outside the valid range %d-%d", v, apsMin, apsMax))
		}
	}
	for _, m := range gradePattern.FindAllStringSubmatch(in.Text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && (v < 10 || v > 12) {
			res.Issues = append(res.Issues, fmt.Sprintf("grade %d is outside the high-school range 10-12", v))
		}
	}
	for _, m := range percentPattern.FindAllStringSubmatch(in.Text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 100 {
			res.Issues = append(res.Issues, fmt.Sprintf("percentage %d%% exceeds 100%%", v))
		}
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = false
		res.Score = clampScore(100 - float64(n)*25)
		res.Corrections = append(res.Corrections, "Double-check the numeric requirements above against official admission guides.")
	}
	return res
}

// checkCurrency flags stale year references and deadlines already in the past.
func checkCurrency(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionCurrency, Passed: true, Score: 100, Confidence: 0.8}
	currentYear := in.Now.Year()

	for _, m := range yearPattern.FindAllStringSubmatch(in.Text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil {
			if v < currentYear-1 || v > currentYear+1 {
				res.Issues = append(res.Issues, fmt.Sprintf("year %d is outside the current information window", v))
			}
		}
	}
	for _, m := range deadlinePattern.FindAllStringSubmatch(in.Text, -1) {
		if t, ok := parseDeadline(m[1]); ok && t.Before(in.Now) {
			res.Issues = append(res.Issues, fmt.Sprintf("deadline %q has already passed", m[1]))
		}
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = false
		res.Score = clampScore(100 - float64(n)*20)
		res.Corrections = append(res.Corrections, "Confirm current dates and deadlines on the institution's official website.")
	}
	return res
}

func parseDeadline(raw string) (time.Time, bool) {
	normalized := strings.Title(strings.ToLower(raw))
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// checkAppropriateness matches the response against the student's grade,
// marks, interests and financial constraint.
func checkAppropriateness(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionAppropriateness, Passed: true, Score: 100, Confidence: 0.75}
	text := strings.ToLower(in.Text)

	if in.Profile != nil {
		switch in.Profile.Grade {
		case 10:
			if containsAnyTerm(text, universityAppTerms) {
				res.Issues = append(res.Issues, "university application instructions are premature for Grade 10")
			}
		case 12:
			if !containsAnyTerm(text, urgencyTerms) {
				res.Issues = append(res.Issues, "Grade 12 guidance should address application urgency and deadlines")
			}
		}

		if len(in.Profile.Marks) > 0 && in.Profile.AverageMark() < 55 {
			if containsAnyTerm(text, highBarFields) {
				res.Issues = append(res.Issues, "recommended field has entry requirements well above the student's current marks")
			}
		}

		if len(in.Profile.Interests) > 0 {
			matched := false
			for _, interest := range in.Profile.Interests {
				if interest != "" && strings.Contains(text, strings.ToLower(interest)) {
					matched = true
					break
				}
			}
			if !matched {
				res.Issues = append(res.Issues, "response does not connect to any of the student's stated interests")
			}
		}

		if in.Profile.FinancialTier == entity.FinancialTierLow && !containsAnyTerm(text, fundingTerms) {
			res.Issues = append(res.Issues, "no funding guidance despite a high financial constraint")
		}
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = false
		res.Score = clampScore(100 - float64(n)*20)
	}
	return res
}

// checkSafety requires the verification marker and the AI disclaimer, and
// forbids guarantee or dismissive-difficulty language.
func checkSafety(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionSafety, Passed: true, Score: 100, Confidence: 0.95}

	if !strings.Contains(in.Text, strings.TrimSpace(constant.VerificationFooter)) {
		res.Issues = append(res.Issues, "missing verification warning")
		res.Corrections = append(res.Corrections, constant.VerificationFooter)
	}
	if !strings.Contains(in.Text, strings.TrimSpace(constant.AIDisclaimer)) {
		res.Issues = append(res.Issues, "missing AI-generated disclaimer")
		res.Corrections = append(res.Corrections, constant.AIDisclaimer)
	}
	for _, p := range guaranteePatterns {
		if p.MatchString(in.Text) {
			res.Issues = append(res.Issues, "contains absolute-guarantee language: "+p.FindString(in.Text))
			break
		}
	}
	for _, p := range dismissivePatterns {
		if p.MatchString(in.Text) {
			res.Issues = append(res.Issues, "dismisses the difficulty of the path: "+p.FindString(in.Text))
			break
		}
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = false
		res.Score = clampScore(100 - float64(n)*25)
	}
	return res
}

// checkCompleteness requires career language, actionable steps, backup
// options, and timeline language.
func checkCompleteness(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionCompleteness, Passed: true, Score: 100, Confidence: 0.7}
	text := strings.ToLower(in.Text)

	if !strings.Contains(text, "career") && !strings.Contains(text, "field") && !strings.Contains(text, "profession") {
		res.Issues = append(res.Issues, "no career or field of study is named")
	}
	if !numberedStepPattern.MatchString(in.Text) && !containsAnyTerm(text, imperativeVerbs) {
		res.Issues = append(res.Issues, "no actionable next steps")
	}
	if !containsAnyTerm(text, alternativeTerms) {
		res.Issues = append(res.Issues, "no alternative or backup option offered")
	}
	if !containsAnyTerm(text, timelineTerms) {
		res.Issues = append(res.Issues, "no timeline or deadline guidance")
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = n < 3
		res.Score = clampScore(100 - float64(n)*20)
	}
	return res
}

func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
