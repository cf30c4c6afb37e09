package validate

import (
	"fmt"
	"strings"

	"career-compass-be/internal/entity"
)

var overPromiseTerms = []string{"guaranteed", "easy money", "free university"}

// BursaryValidator checks every funder named in a response against the
// bursary catalog: eligibility, deadline validity, and field alignment. It
// also surfaces eligible funders the response missed.
type BursaryValidator struct {
	catalog []entity.Bursary
}

func NewBursaryValidator(catalog []entity.Bursary) *BursaryValidator {
	return &BursaryValidator{catalog: catalog}
}

func (v *BursaryValidator) Validate(in Input) CriterionResult {
	res := CriterionResult{Name: CriterionFunding, Passed: true, Score: 100, Confidence: 0.85}
	text := strings.ToLower(in.Text)

	mentioned := make(map[string]bool)
	for i := range v.catalog {
		b := &v.catalog[i]
		if !strings.Contains(text, strings.ToLower(b.Name)) {
			continue
		}
		mentioned[b.Name] = true

		if in.Profile != nil {
			for _, issue := range b.EligibilityIssues(in.Profile) {
				res.Issues = append(res.Issues, fmt.Sprintf("%s: %s", b.Name, issue))
			}
		}
		if b.DeadlineExpired(in.Now) {
			res.Issues = append(res.Issues, fmt.Sprintf("%s: deadline passed", b.Name))
		} else if b.DeadlineUrgent(in.Now) {
			res.Corrections = append(res.Corrections,
				fmt.Sprintf("%s closes on %s, apply as soon as possible.", b.Name, b.Deadline.Format("2 January 2006")))
		}
		if in.Profile != nil && !v.fieldsAlign(b, in.Profile) {
			res.Issues = append(res.Issues, fmt.Sprintf("%s: does not cover the student's fields of interest", b.Name))
		}
	}

	for _, name := range v.missedFunders(in, mentioned) {
		res.Corrections = append(res.Corrections,
			fmt.Sprintf("The student may also qualify for %s, which the response does not mention.", name))
	}

	if len(mentioned) > 0 || containsAnyTerm(text, fundingTerms) {
		for _, term := range overPromiseTerms {
			if strings.Contains(text, term) {
				res.Issues = append(res.Issues, fmt.Sprintf("over-promising funding language: %q", term))
			}
		}
	}

	if n := len(res.Issues); n > 0 {
		res.Passed = false
		res.Score = clampScore(100 - float64(n)*20)
	}
	return res
}

// missedFunders lists catalog entries the student is eligible for and that
// match their interests, but the response never names.
func (v *BursaryValidator) missedFunders(in Input, mentioned map[string]bool) []string {
	if in.Profile == nil {
		return nil
	}
	var missed []string
	for i := range v.catalog {
		b := &v.catalog[i]
		if mentioned[b.Name] || b.DeadlineExpired(in.Now) {
			continue
		}
		if len(b.EligibilityIssues(in.Profile)) == 0 && v.fieldsAlign(b, in.Profile) {
			missed = append(missed, b.Name)
		}
	}
	return missed
}

func (v *BursaryValidator) fieldsAlign(b *entity.Bursary, profile *entity.StudentProfile) bool {
	if len(b.Fields) == 0 {
		return true
	}
	for _, field := range b.Fields {
		f := strings.ToLower(field)
		for _, interest := range profile.Interests {
			if interest != "" && (strings.Contains(f, strings.ToLower(interest)) || strings.Contains(strings.ToLower(interest), f)) {
				return true
			}
		}
		for subject := range profile.Marks {
			if strings.Contains(f, strings.ReplaceAll(subject, "_", " ")) {
				return true
			}
		}
	}
	return false
}
