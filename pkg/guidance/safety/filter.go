// Package safety short-circuits the pipeline for high-risk query categories.
// A match returns a canned response immediately; retrieval, generation and
// validation are never invoked for such queries.
package safety

import (
	"regexp"
	"strings"
)

// Category labels in fixed evaluation order. Order is significant: the first
// matching category wins.
const (
	CategoryDroppingOut      = "dropping_out"
	CategoryNoMatricPathway  = "no_matric_pathway"
	CategoryUnaccredited     = "unaccredited_institution"
	CategoryFinancialRisk    = "large_financial_decision"
	CategoryLegalEligibility = "legal_eligibility"
	CategoryMedicalFitness   = "medical_fitness"
	CategoryTimingDecision   = "timing_gap_year"
)

// Trigger binds a category to its pattern set and canned response.
type Trigger struct {
	Category string
	Patterns []*regexp.Regexp
	Response string
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// triggers is the fixed ordered list. Category order mirrors risk priority
// and must not be reordered.
var triggers = []Trigger{
	{
		Category: CategoryDroppingOut,
		Patterns: patterns(
			`drop(ping)? out`, `leave school`, `quit(ting)? school`, `stop going to school`,
		),
		Response: "I don't have verified information on leaving school early, and it's too important a decision for me to guess at. Leaving school affects your matric, funding eligibility and most career paths. Please speak to your school counselor and your family before deciding anything.",
	},
	{
		Category: CategoryNoMatricPathway,
		Patterns: patterns(
			`(pass|careers?|jobs?|work)\s.*without (a )?matric`, `fail(ed)? matric.*(now what|what now|options)`,
		),
		Response: "Pathways without matric exist (TVET colleges, learnerships, trade tests), but the right one depends on details I can't verify for you. Please ask your school counselor or visit a TVET college's admissions office for accurate, current options.",
	},
	{
		Category: CategoryUnaccredited,
		Patterns: patterns(
			`is .* (college|academy|institute) (legit|real|accredited|registered)`, `unaccredited`, `fake (college|qualification|degree)`,
		),
		Response: "I can't confirm whether a specific institution is accredited. Before paying anyone, check the institution's registration on the Department of Higher Education and Training's official register, and ask your school counselor to help verify it.",
	},
	{
		Category: CategoryFinancialRisk,
		Patterns: patterns(
			`take (out )?a (student )?loan`, `borrow money`, `sell .* to (pay|afford)`, `cash in .*(policy|savings)`,
		),
		Response: "Decisions involving loans or large amounts of money need verified financial advice, which I can't provide. Please involve your family and a registered financial adviser, and look at NSFAS and bursaries before considering debt.",
	},
	{
		Category: CategoryLegalEligibility,
		Patterns: patterns(
			`criminal record`, `(visa|permit|citizenship).*(study|work)`, `legal(ly)? (allowed|eligible)`, `\basylum\b`,
		),
		Response: "Questions about legal standing or eligibility need a qualified answer I can't give. Please contact the institution's admissions office directly, or ask your school counselor to refer you to the right authority.",
	},
	{
		Category: CategoryMedicalFitness,
		Patterns: patterns(
			`(medical|health) (condition|problem).*(career|study|work)`, `(disab|chronic illness|epilep|colou?r[- ]?blind).*(career|job|study)`,
		),
		Response: "Whether a health condition affects a career path is a medical question I'm not able to answer. Please speak to a healthcare professional, and ask the institution about its own fitness requirements directly.",
	},
	{
		Category: CategoryTimingDecision,
		Patterns: patterns(
			`gap year`, `(take|taking) (a )?year (off|out)`, `postpone (my )?(studies|applying|university)`,
		),
		Response: "Whether to take a gap year depends on funding rules, application windows and your own situation, and the trade-offs are too important for me to guess. Please talk it through with your school counselor and check how a gap affects NSFAS and university applications.",
	},
}

// Result is a matched danger category with its canned response.
type Result struct {
	Category string
	Response string
}

// Filter tests queries against the ordered trigger list.
type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// Match returns the first matching category's canned response, or nil when
// the query is safe to run through the pipeline.
func (f *Filter) Match(query string) *Result {
	lower := strings.ToLower(query)
	for _, trigger := range triggers {
		for _, p := range trigger.Patterns {
			if p.MatchString(lower) {
				return &Result{Category: trigger.Category, Response: trigger.Response}
			}
		}
	}
	return nil
}
