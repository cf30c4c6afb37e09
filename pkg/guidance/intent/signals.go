// Package intent turns a raw student query plus profile into a structured,
// read-only signal set. Flags come from independent pattern families kept as
// data tables; a single primary category is then chosen by fixed precedence.
package intent

// Signals is the derived signal set for one request. Flags are independent
// and not mutually exclusive; everything here is recomputed per request.
type Signals struct {
	WantsFastPath      bool
	WantsRemote        bool
	WantsHighIncome    bool
	WantsDollars       bool
	WantsCreative      bool
	WantsTech          bool
	WantsHandsOn       bool
	WantsHelpingPeople bool
	NoMatric           bool
	NoUniversity       bool

	// Per-subject presence and negation, keyed by taxonomy subject ids.
	SubjectMentions  map[string]bool
	SubjectNegations map[string]bool

	// Careers recognized by alias matching, in taxonomy order.
	ExplicitCareers []string

	// PrimaryCategory is the single label chosen by fixed precedence.
	PrimaryCategory string
}

// Conflict is a detected contradiction between two intent directions. It is
// informational: the pipeline retrieves the alternate paths in parallel and
// explains the tension, it never blocks.
type Conflict struct {
	Type string
	Note string
	// AltCategories are the intent categories whose career lists should be
	// retrieved in parallel to surface both sides of the tension.
	AltCategories []string
}

// Conflict type labels.
const (
	ConflictFastVsLongTerm    = "fast-vs-longterm"
	ConflictIncomeVsEducation = "income-vs-education"
	ConflictCreativeVsAptitude = "creative-vs-aptitude"
	ConflictTechVsMath        = "tech-vs-math"
)
