package retrieval

import (
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/taxonomy"
)

// FilterCareersForSubjects applies subject-based filtering and reordering to
// a category's career list:
//   - negated subjects remove their avoid-list careers;
//   - a tech signal back-fills the low-math set when maths was negated;
//   - matched (non-negated) subjects promote their mapped careers to the
//     front, each promoted subset ahead of the untouched remainder.
//
// The result is deduplicated preserving first-seen order.
func FilterCareersForSubjects(careers []string, signals *intent.Signals) []string {
	avoid := make(map[string]bool)
	for subject, negated := range signals.SubjectNegations {
		if !negated {
			continue
		}
		for _, career := range taxonomy.AvoidOnNegation[subject] {
			avoid[career] = true
		}
	}

	filtered := make([]string, 0, len(careers))
	for _, career := range careers {
		if !avoid[career] {
			filtered = append(filtered, career)
		}
	}

	if signals.WantsTech && signals.SubjectNegations[taxonomy.SubjectMaths] {
		filtered = append(filtered, taxonomy.LowMathTech...)
	}

	// Promote careers mapped from matched, non-negated subjects. Stable
	// subject order keeps the output deterministic.
	var promoted []string
	for _, subject := range taxonomy.Subjects {
		if !signals.SubjectMentions[subject] || signals.SubjectNegations[subject] {
			continue
		}
		for _, career := range taxonomy.SubjectCareers[subject] {
			if !avoid[career] && contains(filtered, career) {
				promoted = append(promoted, career)
			}
		}
	}

	return dedupe(append(promoted, filtered...))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
