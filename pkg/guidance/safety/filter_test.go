package safety

import (
	"strings"
	"testing"
)

func TestFilterMatch(t *testing.T) {
	f := NewFilter()

	tests := []struct {
		name         string
		query        string
		wantCategory string
	}{
		{
			name:         "dropping out",
			query:        "should I drop out and get a job",
			wantCategory: CategoryDroppingOut,
		},
		{
			name:         "quit school phrasing",
			query:        "I want to quit school this year",
			wantCategory: CategoryDroppingOut,
		},
		{
			name:         "unaccredited institution",
			query:        "is this unaccredited college worth it",
			wantCategory: CategoryUnaccredited,
		},
		{
			name:         "large financial decision",
			query:        "should my mom take a loan of R80000 for my studies",
			wantCategory: CategoryFinancialRisk,
		},
		{
			name:         "gap year timing",
			query:        "should I take a gap year before university",
			wantCategory: CategoryTimingDecision,
		},
		{
			name:         "safe query",
			query:        "what career suits someone who loves biology",
			wantCategory: "",
		},
		{
			name:         "safe query about work",
			query:        "which jobs pay well without a degree",
			wantCategory: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.Match(tt.query)
			if tt.wantCategory == "" {
				if result != nil {
					t.Fatalf("Match(%q) = %v, want nil", tt.query, result.Category)
				}
				return
			}
			if result == nil {
				t.Fatalf("Match(%q) = nil, want category %q", tt.query, tt.wantCategory)
			}
			if result.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", result.Category, tt.wantCategory)
			}
			if result.Response == "" {
				t.Error("matched trigger returned empty response")
			}
		})
	}
}

func TestDroppingOutResponseWording(t *testing.T) {
	f := NewFilter()
	result := f.Match("should I drop out and get a job")
	if result == nil {
		t.Fatal("expected dropping-out match")
	}
	if !strings.HasPrefix(result.Response, "I don't have verified information on leaving school early") {
		t.Errorf("unexpected canned response opening: %q", result.Response[:60])
	}
}

func TestFirstMatchWinsOrdering(t *testing.T) {
	f := NewFilter()
	// Query matches both dropping-out and financial-decision patterns;
	// the earlier category must win.
	result := f.Match("should I drop out of school and take a loan instead")
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Category != CategoryDroppingOut {
		t.Errorf("Category = %q, want %q (category order is significant)", result.Category, CategoryDroppingOut)
	}
}
