package validate

import (
	"strings"
	"testing"
	"time"

	"career-compass-be/internal/constant"
	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/taxonomy"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func compliantText(body string) string {
	return body + constant.VerificationFooter + constant.AIDisclaimer
}

func TestCheckMathAccuracy(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPassed bool
		wantIssues int
	}{
		{"valid APS", "You need an APS of 30 for this programme.", true, 0},
		{"APS too high", "Aim for an APS of 50 to be safe.", false, 1},
		{"APS too low", "An APS of 10 is enough.", false, 1},
		{"impossible grade", "In grade 14 you can apply.", false, 1},
		{"percentage over 100", "You need 120% in mathematics.", false, 1},
		{"valid percentage", "A 70% average opens most doors.", true, 0},
		{"two violations", "With an APS of 90 and 150% marks anything is possible.", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := checkMathAccuracy(Input{Text: tt.text, Now: testNow})
			if res.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v (issues: %v)", res.Passed, tt.wantPassed, res.Issues)
			}
			if len(res.Issues) != tt.wantIssues {
				t.Errorf("issues = %v, want %d", res.Issues, tt.wantIssues)
			}
			if tt.wantIssues > 0 {
				wantScore := clampScore(100 - float64(tt.wantIssues)*25)
				if res.Score != wantScore {
					t.Errorf("Score = %v, want %v", res.Score, wantScore)
				}
			}
		})
	}
}

func TestCheckCurrency(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPassed bool
	}{
		{"current year", "Applications for 2026 are open.", true},
		{"next year", "Plan for the 2027 intake.", true},
		{"stale year", "The 2019 prospectus lists the requirements.", false},
		{"passed deadline", "Apply by 1 February 2026 at the latest.", false},
		{"future deadline", "Applications close on 30 September 2026.", true},
		{"no dates at all", "Speak to your counselor about options.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := checkCurrency(Input{Text: tt.text, Now: testNow})
			if res.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v (issues: %v)", res.Passed, tt.wantPassed, res.Issues)
			}
		})
	}
}

func TestCheckAppropriateness(t *testing.T) {
	lowMarks := &entity.StudentProfile{
		Grade: 11,
		Marks: map[string]int{taxonomy.SubjectMaths: 45, taxonomy.SubjectBiology: 50},
	}

	tests := []struct {
		name      string
		text      string
		profile   *entity.StudentProfile
		wantIssue string
	}{
		{
			name:      "university application advice for grade 10",
			text:      "submit your application before the fee increases",
			profile:   &entity.StudentProfile{Grade: 10},
			wantIssue: "premature for Grade 10",
		},
		{
			name:      "grade 12 without urgency",
			text:      "software development is a fine choice someday",
			profile:   &entity.StudentProfile{Grade: 12},
			wantIssue: "urgency",
		},
		{
			name:      "high-bar field for low marks",
			text:      "you could study medicine, check the deadline",
			profile:   lowMarks,
			wantIssue: "entry requirements well above",
		},
		{
			name:      "ignores stated interests",
			text:      "plumbing has an open deadline",
			profile:   &entity.StudentProfile{Grade: 11, Interests: []string{"technology"}},
			wantIssue: "stated interests",
		},
		{
			name:      "low tier without funding guidance",
			text:      "just enrol at any deadline",
			profile:   &entity.StudentProfile{Grade: 11, FinancialTier: entity.FinancialTierLow},
			wantIssue: "funding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := checkAppropriateness(Input{Text: tt.text, Profile: tt.profile, Now: testNow})
			if res.Passed {
				t.Fatalf("Passed = true, want a flagged issue (issues: %v)", res.Issues)
			}
			found := false
			for _, issue := range res.Issues {
				if strings.Contains(issue, tt.wantIssue) {
					found = true
				}
			}
			if !found {
				t.Errorf("issues %v do not mention %q", res.Issues, tt.wantIssue)
			}
		})
	}

	t.Run("nil profile passes", func(t *testing.T) {
		res := checkAppropriateness(Input{Text: "anything", Now: testNow})
		if !res.Passed {
			t.Errorf("Passed = false without a profile: %v", res.Issues)
		}
	})
}

func TestCheckSafety(t *testing.T) {
	t.Run("compliant text passes", func(t *testing.T) {
		res := checkSafety(Input{Text: compliantText("Nursing is a solid path."), Now: testNow})
		if !res.Passed {
			t.Fatalf("Passed = false: %v", res.Issues)
		}
		if res.Score != 100 {
			t.Errorf("Score = %v, want 100", res.Score)
		}
	})

	t.Run("missing footers yield corrections", func(t *testing.T) {
		res := checkSafety(Input{Text: "Nursing is a solid path.", Now: testNow})
		if res.Passed {
			t.Fatal("Passed = true without footers")
		}
		if len(res.Issues) != 2 {
			t.Errorf("issues = %v, want both footer issues", res.Issues)
		}
		joined := strings.Join(res.Corrections, " ")
		if !strings.Contains(joined, strings.TrimSpace(constant.VerificationFooter)) {
			t.Error("corrections missing the verification footer text")
		}
	})

	t.Run("guarantee language flagged", func(t *testing.T) {
		res := checkSafety(Input{Text: compliantText("You are guaranteed a spot."), Now: testNow})
		if res.Passed {
			t.Fatal("Passed = true despite guarantee language")
		}
	})

	t.Run("dismissive language flagged", func(t *testing.T) {
		res := checkSafety(Input{Text: compliantText("It's easy, anyone can do it."), Now: testNow})
		if res.Passed {
			t.Fatal("Passed = true despite dismissive language")
		}
	})
}

func TestCheckCompleteness(t *testing.T) {
	full := "A career in nursing suits you. 1. Apply to a nursing college. 2. Research NSFAS. As a backup, consider physiotherapy. The deadline is in September."

	t.Run("complete response passes clean", func(t *testing.T) {
		res := checkCompleteness(Input{Text: full, Now: testNow})
		if !res.Passed || len(res.Issues) != 0 {
			t.Errorf("Passed = %v, issues = %v", res.Passed, res.Issues)
		}
	})

	t.Run("one or two gaps still pass with reduced score", func(t *testing.T) {
		res := checkCompleteness(Input{Text: "A career in nursing suits you. Apply to a college near you. Consider a backup option too.", Now: testNow})
		if !res.Passed {
			t.Errorf("Passed = false with %d issues: %v", len(res.Issues), res.Issues)
		}
		if res.Score >= 100 {
			t.Errorf("Score = %v, want reduced", res.Score)
		}
	})

	t.Run("three or more gaps fail", func(t *testing.T) {
		res := checkCompleteness(Input{Text: "Good luck out there.", Now: testNow})
		if res.Passed {
			t.Errorf("Passed = true with issues %v", res.Issues)
		}
	})
}
