package entity

import (
	"strings"
	"testing"
	"time"
)

func eligibleBursary() Bursary {
	return Bursary{
		Name:             "Engineering Fund",
		CitizenshipReq:   "ZA",
		MinAPS:           28,
		RequiredSubjects: []string{"mathematics", "physical_science"},
		IncomeCeiling:    350000,
		Deadline:         time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
	}
}

func strongProfile() *StudentProfile {
	return &StudentProfile{
		Grade: 12,
		Marks: map[string]int{
			"mathematics":      75,
			"physical_science": 70,
			"english":          65,
			"afrikaans":        60,
			"geography":        60,
			"accounting":       65,
		},
		HouseholdIncome: 200000,
	}
}

func TestEligibilityIssues(t *testing.T) {
	b := eligibleBursary()

	t.Run("fully eligible", func(t *testing.T) {
		if issues := b.EligibilityIssues(strongProfile()); len(issues) != 0 {
			t.Errorf("issues = %v, want none", issues)
		}
	})

	t.Run("empty citizenship defaults to ZA", func(t *testing.T) {
		p := strongProfile()
		p.Citizenship = ""
		for _, issue := range b.EligibilityIssues(p) {
			if strings.Contains(issue, "citizenship") {
				t.Errorf("citizenship flagged for default ZA: %v", issue)
			}
		}
	})

	t.Run("foreign citizenship", func(t *testing.T) {
		p := strongProfile()
		p.Citizenship = "ZW"
		issues := b.EligibilityIssues(p)
		if len(issues) != 1 || !strings.Contains(issues[0], "citizenship") {
			t.Errorf("issues = %v, want the citizenship requirement", issues)
		}
	})

	t.Run("low APS", func(t *testing.T) {
		p := strongProfile()
		p.Marks = map[string]int{"mathematics": 45, "physical_science": 40}
		found := false
		for _, issue := range b.EligibilityIssues(p) {
			if strings.Contains(issue, "APS") {
				found = true
			}
		}
		if !found {
			t.Error("APS shortfall not flagged")
		}
	})

	t.Run("missing required subject", func(t *testing.T) {
		p := strongProfile()
		delete(p.Marks, "physical_science")
		found := false
		for _, issue := range b.EligibilityIssues(p) {
			if strings.Contains(issue, "physical_science") {
				found = true
			}
		}
		if !found {
			t.Error("missing subject not flagged")
		}
	})

	t.Run("income above ceiling", func(t *testing.T) {
		p := strongProfile()
		p.HouseholdIncome = 500000
		found := false
		for _, issue := range b.EligibilityIssues(p) {
			if strings.Contains(issue, "income") {
				found = true
			}
		}
		if !found {
			t.Error("income ceiling not flagged")
		}
	})

	t.Run("undisclosed income passes the ceiling check", func(t *testing.T) {
		p := strongProfile()
		p.HouseholdIncome = 0
		for _, issue := range b.EligibilityIssues(p) {
			if strings.Contains(issue, "income") {
				t.Errorf("undisclosed income flagged: %v", issue)
			}
		}
	})
}

func TestDeadlineChecks(t *testing.T) {
	now := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	b := eligibleBursary() // closes 30 September 2026

	if b.DeadlineExpired(now) {
		t.Error("DeadlineExpired = true before the closing date")
	}
	if !b.DeadlineUrgent(now) {
		t.Error("DeadlineUrgent = false 15 days before closing")
	}

	after := now.AddDate(0, 1, 0)
	if !b.DeadlineExpired(after) {
		t.Error("DeadlineExpired = false after the closing date")
	}
	if b.DeadlineUrgent(after) {
		t.Error("DeadlineUrgent = true after expiry")
	}

	open := Bursary{Name: "Rolling"}
	if open.DeadlineExpired(now) || open.DeadlineUrgent(now) {
		t.Error("zero deadline treated as expired or urgent")
	}
}
