package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bursary is a funding program with eligibility rules used as validation
// reference data (NSFAS, corporate bursaries, sector learnership funds).
type Bursary struct {
	Id               uuid.UUID
	Name             string
	Provider         string
	CitizenshipReq   string // required citizenship, e.g. "ZA"; empty = any
	MinAPS           int
	RequiredSubjects []string
	IncomeCeiling    int // max annual household income in rands; 0 = no ceiling
	Deadline         time.Time
	Fields           []string // fields of study the bursary covers
	Amount           string   // human-readable coverage description
	CreatedAt        time.Time
}

// EligibilityIssues returns the reasons a student does NOT qualify, empty when
// fully eligible. Deadline validity is checked separately.
func (b *Bursary) EligibilityIssues(profile *StudentProfile) []string {
	var issues []string

	citizenship := profile.Citizenship
	if citizenship == "" {
		citizenship = "ZA"
	}
	if b.CitizenshipReq != "" && b.CitizenshipReq != citizenship {
		issues = append(issues, "citizenship requirement not met")
	}
	if b.MinAPS > 0 && profile.APS() < b.MinAPS {
		issues = append(issues, "APS below bursary minimum")
	}
	for _, subject := range b.RequiredSubjects {
		if !profile.HasSubject(subject) {
			issues = append(issues, "missing required subject: "+subject)
		}
	}
	if b.IncomeCeiling > 0 && profile.HouseholdIncome > b.IncomeCeiling {
		issues = append(issues, "household income above ceiling")
	}
	return issues
}

// DeadlineExpired reports whether the closing date has already passed.
func (b *Bursary) DeadlineExpired(now time.Time) bool {
	return !b.Deadline.IsZero() && b.Deadline.Before(now)
}

// DeadlineUrgent reports whether the closing date is within 30 days of now.
func (b *Bursary) DeadlineUrgent(now time.Time) bool {
	if b.Deadline.IsZero() || b.DeadlineExpired(now) {
		return false
	}
	return b.Deadline.Sub(now) <= 30*24*time.Hour
}
