package validate

import (
	"strings"
	"testing"
	"time"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/taxonomy"
)

func testCatalog() []entity.Bursary {
	return []entity.Bursary{
		{
			Name:           "NSFAS",
			Provider:       "Department of Higher Education",
			CitizenshipReq: "ZA",
			IncomeCeiling:  350000,
			Deadline:       time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:             "Sasol Bursary",
			Provider:         "Sasol",
			CitizenshipReq:   "ZA",
			MinAPS:           30,
			RequiredSubjects: []string{taxonomy.SubjectMaths, taxonomy.SubjectPhysics},
			Deadline:         time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
			Fields:           []string{"engineering", "science"},
		},
		{
			Name:     "NYDA Grant",
			Provider: "National Youth Development Agency",
			Deadline: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			Fields:   []string{"entrepreneurship"},
		},
	}
}

func eligibleProfile() *entity.StudentProfile {
	return &entity.StudentProfile{
		Grade:           12,
		Marks:           map[string]int{taxonomy.SubjectMaths: 80, taxonomy.SubjectPhysics: 75, "english": 70, "afrikaans": 65, "geography": 70, "accounting": 72},
		FinancialTier:   entity.FinancialTierLow,
		HouseholdIncome: 200000,
		Interests:       []string{"engineering"},
	}
}

func TestBursaryValidatorExpiredDeadline(t *testing.T) {
	v := NewBursaryValidator(testCatalog())

	res := v.Validate(Input{
		Text:    "Apply for the Sasol Bursary this year.",
		Profile: eligibleProfile(),
		Now:     testNow, // March 2026, Sasol closed in January
	})

	if res.Passed {
		t.Fatal("Passed = true for an expired bursary recommendation")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "Sasol Bursary") && strings.Contains(issue, "deadline passed") {
			found = true
		}
	}
	if !found {
		t.Errorf("issues %v do not flag the expired deadline", res.Issues)
	}
}

func TestBursaryValidatorUrgentDeadline(t *testing.T) {
	v := NewBursaryValidator(testCatalog())

	// NYDA closes 1 April 2026, 17 days after testNow
	res := v.Validate(Input{
		Text:    "The NYDA Grant supports young entrepreneurs.",
		Profile: &entity.StudentProfile{Grade: 12, Interests: []string{"entrepreneurship"}},
		Now:     testNow,
	})

	found := false
	for _, c := range res.Corrections {
		if strings.Contains(c, "NYDA Grant") && strings.Contains(c, "1 April 2026") {
			found = true
		}
	}
	if !found {
		t.Errorf("corrections %v do not carry the urgent-deadline warning", res.Corrections)
	}
}

func TestBursaryValidatorEligibilityIssues(t *testing.T) {
	v := NewBursaryValidator(testCatalog())

	richProfile := eligibleProfile()
	richProfile.HouseholdIncome = 900000

	res := v.Validate(Input{
		Text:    "NSFAS will cover your fees.",
		Profile: richProfile,
		Now:     testNow,
	})

	if res.Passed {
		t.Fatal("Passed = true despite an income-ceiling violation")
	}
	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "NSFAS") && strings.Contains(issue, "income above ceiling") {
			found = true
		}
	}
	if !found {
		t.Errorf("issues %v do not flag the income ceiling", res.Issues)
	}
}

func TestBursaryValidatorMissedFunders(t *testing.T) {
	v := NewBursaryValidator(testCatalog())

	// eligible for NSFAS (no fields restriction) but the text never names it
	res := v.Validate(Input{
		Text:    "Funding exists if you look for bursaries.",
		Profile: eligibleProfile(),
		Now:     testNow,
	})

	found := false
	for _, c := range res.Corrections {
		if strings.Contains(c, "NSFAS") {
			found = true
		}
	}
	if !found {
		t.Errorf("corrections %v do not surface the missed NSFAS option", res.Corrections)
	}
}

func TestBursaryValidatorOverPromise(t *testing.T) {
	v := NewBursaryValidator(testCatalog())

	res := v.Validate(Input{
		Text:    "NSFAS funding is guaranteed for everyone.",
		Profile: eligibleProfile(),
		Now:     testNow,
	})

	found := false
	for _, issue := range res.Issues {
		if strings.Contains(issue, "over-promising") {
			found = true
		}
	}
	if !found {
		t.Errorf("issues %v do not flag the guarantee claim", res.Issues)
	}
}

func TestBursaryValidatorEmptyCatalog(t *testing.T) {
	v := NewBursaryValidator(nil)
	res := v.Validate(Input{Text: "any funding text about bursaries", Profile: eligibleProfile(), Now: testNow})
	if !res.Passed {
		t.Errorf("Passed = false with an empty catalog: %v", res.Issues)
	}
}

func TestKeywordMarketValidator(t *testing.T) {
	v := KeywordMarketValidator{}

	tests := []struct {
		name       string
		text       string
		wantPassed bool
		wantIssues int
	}{
		{"career and demand context", "Software Developer roles are in demand across the country.", true, 0},
		{"career without demand context", "A Software Developer writes programs.", true, 1},
		{"neither career nor demand", "Do whatever feels right.", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(Input{Text: tt.text, Now: testNow})
			if res.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v (issues: %v)", res.Passed, tt.wantPassed, res.Issues)
			}
			if len(res.Issues) != tt.wantIssues {
				t.Errorf("issues = %v, want %d", res.Issues, tt.wantIssues)
			}
		})
	}
}
