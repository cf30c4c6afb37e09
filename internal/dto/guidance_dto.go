package dto

import (
	"career-compass-be/pkg/guidance/executor"
	"career-compass-be/pkg/guidance/validate"
)

// StudentProfileDTO is the intake-form profile accompanying every query.
type StudentProfileDTO struct {
	Grade           int            `json:"grade" validate:"omitempty,min=10,max=12"`
	Marks           map[string]int `json:"marks" validate:"omitempty,dive,min=0,max=100"`
	FinancialTier   string         `json:"financial_tier" validate:"omitempty,oneof=low medium unknown"`
	Interests       []string       `json:"interests" validate:"max=10"`
	Citizenship     string         `json:"citizenship" validate:"omitempty,len=2"`
	HouseholdIncome int            `json:"household_income" validate:"omitempty,min=0"`
}

type GuidanceRequest struct {
	Query     string            `json:"query" validate:"required,min=3,max=2000"`
	SessionId string            `json:"session_id"`
	Profile   StudentProfileDTO `json:"profile"`
}

type GuidanceResponse struct {
	Response   string            `json:"response"`
	Validation *validate.Result  `json:"validation,omitempty"`
	Metadata   executor.Metadata `json:"metadata"`
	Cached     bool              `json:"cached"`
}
