package intent

import (
	"strings"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/taxonomy"
)

// Extractor evaluates the declarative rule tables against a query + profile.
// It is stateless; one instance serves all requests.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract derives the full signal set. Each flag family is evaluated
// independently; the primary category is then chosen by fixed precedence.
func (e *Extractor) Extract(query string, profile *entity.StudentProfile) *Signals {
	lower := strings.ToLower(query)

	flags := make(map[string]bool, len(flagRules))
	for _, rule := range flagRules {
		for _, p := range rule.patterns {
			if p.MatchString(lower) {
				flags[rule.name] = true
				break
			}
		}
	}

	signals := &Signals{
		WantsFastPath:      flags[flagFastPath],
		WantsRemote:        flags[flagRemote],
		WantsHighIncome:    flags[flagHighIncome],
		WantsDollars:       flags[flagDollars],
		WantsCreative:      flags[flagCreative],
		WantsTech:          flags[flagTech],
		WantsHandsOn:       flags[flagHandsOn],
		WantsHelpingPeople: flags[flagHelping],
		NoMatric:           flags[flagNoMatric],
		NoUniversity:       flags[flagNoVarsity],
		SubjectMentions:    make(map[string]bool, len(subjectRules)),
		SubjectNegations:   make(map[string]bool, len(subjectRules)),
	}

	for _, rule := range subjectRules {
		if rule.mention.MatchString(lower) {
			signals.SubjectMentions[rule.subject] = true
		}
		if rule.negation.MatchString(lower) {
			signals.SubjectNegations[rule.subject] = true
		}
	}

	// Profile marks also count as subject presence (not negation).
	if profile != nil {
		for _, subject := range taxonomy.Subjects {
			if profile.HasSubject(subject) {
				signals.SubjectMentions[subject] = true
			}
		}
	}

	signals.ExplicitCareers = matchExplicitCareers(lower)
	signals.PrimaryCategory = derivePrimaryCategory(signals)

	return signals
}

// matchExplicitCareers walks the taxonomy in order; a career id is included
// when any of its aliases matches the lower-cased query.
func matchExplicitCareers(lower string) []string {
	var careers []string
	for _, career := range taxonomy.Careers {
		for _, alias := range career.Aliases {
			matched := false
			if alias.Substring != "" {
				matched = strings.Contains(lower, alias.Substring)
			} else if alias.Pattern != nil {
				matched = alias.Pattern.MatchString(lower)
			}
			if matched {
				careers = append(careers, career.Id)
				break
			}
		}
	}
	return careers
}

// derivePrimaryCategory applies the fixed precedence rule. Order is
// significant: the first matching condition wins even when later ones also
// hold.
func derivePrimaryCategory(s *Signals) string {
	biologyPresent := s.SubjectMentions[taxonomy.SubjectBiology] && !s.SubjectNegations[taxonomy.SubjectBiology]

	switch {
	case s.NoMatric:
		return taxonomy.CategoryNoMatricPathways
	case s.NoUniversity && s.WantsHighIncome:
		return taxonomy.CategoryIncomeWithoutUniversity
	case s.WantsCreative && s.WantsTech:
		return taxonomy.CategoryCreativeTech
	case (s.WantsRemote && (s.WantsDollars || s.WantsHighIncome)) || s.WantsDollars:
		return taxonomy.CategoryRemoteDollarIncome
	case s.WantsFastPath:
		return taxonomy.CategoryFastEntry
	case biologyPresent && s.WantsTech:
		return taxonomy.CategoryBioTech
	case s.WantsHandsOn:
		return taxonomy.CategoryHandsOnTrades
	case s.WantsHelpingPeople:
		return taxonomy.CategoryHelpingProfessions
	default:
		return taxonomy.CategoryGeneral
	}
}
