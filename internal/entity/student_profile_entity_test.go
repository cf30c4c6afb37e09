package entity

import "testing"

func TestAPSBands(t *testing.T) {
	tests := []struct {
		name string
		mark int
		want int
	}{
		{"distinction", 85, 7},
		{"band boundary 80", 80, 7},
		{"seventies", 74, 6},
		{"sixties", 60, 5},
		{"fifties", 55, 4},
		{"forties", 42, 3},
		{"thirties", 31, 2},
		{"below thirty", 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &StudentProfile{Marks: map[string]int{"subject": tt.mark}}
			if got := p.APS(); got != tt.want {
				t.Errorf("APS() = %d, want %d for mark %d", got, tt.want, tt.mark)
			}
		})
	}
}

func TestAPSBestSixSubjects(t *testing.T) {
	p := &StudentProfile{Marks: map[string]int{
		"mathematics":      80, // 7
		"physical_science": 75, // 6
		"life_science":     70, // 6
		"english":          65, // 5
		"afrikaans":        60, // 5
		"geography":        55, // 4
		"life_orientation": 30, // 2, dropped as the weakest seventh
	}}
	if got := p.APS(); got != 33 {
		t.Errorf("APS() = %d, want 33 (best six bands)", got)
	}
}

func TestAPSEmptyProfile(t *testing.T) {
	p := &StudentProfile{}
	if got := p.APS(); got != 0 {
		t.Errorf("APS() = %d, want 0 without marks", got)
	}
}

func TestAverageMark(t *testing.T) {
	p := &StudentProfile{Marks: map[string]int{"a": 50, "b": 70}}
	if got := p.AverageMark(); got != 60 {
		t.Errorf("AverageMark() = %v, want 60", got)
	}
	empty := &StudentProfile{}
	if got := empty.AverageMark(); got != 0 {
		t.Errorf("AverageMark() = %v, want 0 for empty profile", got)
	}
}
