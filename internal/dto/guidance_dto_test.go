package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestGuidanceRequestValidation(t *testing.T) {
	v := validator.New()

	valid := func(grade int) GuidanceRequest {
		return GuidanceRequest{
			Query: "what career suits me?",
			Profile: StudentProfileDTO{
				Grade: grade,
				Marks: map[string]int{"mathematics": 70},
			},
		}
	}

	cases := []struct {
		name    string
		req     GuidanceRequest
		wantErr bool
	}{
		{"grade 10 accepted", valid(10), false},
		{"grade 12 accepted", valid(12), false},
		{"grade 9 below intake range", valid(9), true},
		{"grade 13 above intake range", valid(13), true},
		{"grade omitted", valid(0), false},
		{
			"query required",
			GuidanceRequest{Profile: StudentProfileDTO{Grade: 11}},
			true,
		},
		{
			"mark above 100 rejected",
			GuidanceRequest{
				Query:   "what career suits me?",
				Profile: StudentProfileDTO{Grade: 11, Marks: map[string]int{"mathematics": 150}},
			},
			true,
		},
		{
			"unknown financial tier rejected",
			GuidanceRequest{
				Query:   "what career suits me?",
				Profile: StudentProfileDTO{Grade: 11, FinancialTier: "rich"},
			},
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := v.Struct(c.req)
			if (err != nil) != c.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
