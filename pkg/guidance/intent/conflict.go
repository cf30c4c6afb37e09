package intent

import (
	"regexp"
	"strings"

	"career-compass-be/pkg/guidance/taxonomy"
)

var (
	longTermPattern       = regexp.MustCompile(`long[- ]term|in (5|five|10|ten) years|\bdecade\b|specialis[et]|many years of study`)
	dislikesCreativePattern = regexp.MustCompile(`(hate|dislike|not good at|can'?t|bad at)\s+(draw(ing)?|design(ing)?|art|being creative|creative work)`)
)

// DetectConflicts is a pure function of the signal set and raw query. Each
// known tension pair yields at most one conflict; none of them blocks the
// pipeline, they widen retrieval and feed the explanation.
func DetectConflicts(signals *Signals, query string) []Conflict {
	lower := strings.ToLower(query)
	var conflicts []Conflict

	if signals.WantsFastPath && longTermPattern.MatchString(lower) {
		conflicts = append(conflicts, Conflict{
			Type:          ConflictFastVsLongTerm,
			Note:          "wants quick earnings but frames the goal in long-term or specialist terms",
			AltCategories: []string{taxonomy.CategoryFastEntry, taxonomy.CategoryHelpingProfessions},
		})
	}

	// Informational only: flags the tension without narrowing anything.
	if signals.WantsHighIncome && signals.NoUniversity {
		conflicts = append(conflicts, Conflict{
			Type:          ConflictIncomeVsEducation,
			Note:          "wants high income while ruling out university study",
			AltCategories: []string{taxonomy.CategoryIncomeWithoutUniversity},
		})
	}

	if wantsCreativeCareer(signals) && dislikesCreativePattern.MatchString(lower) {
		conflicts = append(conflicts, Conflict{
			Type:          ConflictCreativeVsAptitude,
			Note:          "asks about a creative career but expresses dislike of creative activity",
			AltCategories: []string{taxonomy.CategoryGeneral},
		})
	}

	if signals.WantsTech && signals.SubjectNegations[taxonomy.SubjectMaths] {
		conflicts = append(conflicts, Conflict{
			Type:          ConflictTechVsMath,
			Note:          "wants a tech career but rejects mathematics",
			AltCategories: []string{taxonomy.CategoryCreativeTech},
		})
	}

	return conflicts
}

func wantsCreativeCareer(signals *Signals) bool {
	if signals.WantsCreative {
		return true
	}
	creative := map[string]bool{
		taxonomy.CareerUXUIDesigner:    true,
		taxonomy.CareerGraphicDesigner: true,
		taxonomy.CareerContentCreator:  true,
		taxonomy.CareerChef:            true,
	}
	for _, c := range signals.ExplicitCareers {
		if creative[c] {
			return true
		}
	}
	return false
}
