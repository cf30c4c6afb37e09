package entity

// Financial constraint tiers reported by the intake form.
const (
	FinancialTierLow     = "low"
	FinancialTierMedium  = "medium"
	FinancialTierUnknown = "unknown"
)

// StudentProfile is the structured academic/financial profile accompanying a
// query. It is created per request and never persisted by the pipeline.
type StudentProfile struct {
	Grade           int            // 10, 11 or 12
	Marks           map[string]int // subject name -> percentage mark
	FinancialTier   string         // low | medium | unknown
	Interests       []string
	Citizenship     string // ISO country code, defaults to "ZA" when empty
	HouseholdIncome int    // annual, rands; 0 = undisclosed
	SessionId       string
}

// APS computes the Admission Point Score: each subject mark maps onto a 1-7
// band, the best six bands are summed. Range is 6..42 for a full profile.
func (p *StudentProfile) APS() int {
	bands := make([]int, 0, len(p.Marks))
	for _, mark := range p.Marks {
		bands = append(bands, apsBand(mark))
	}
	// best six subjects count
	for i := 0; i < len(bands); i++ {
		for j := i + 1; j < len(bands); j++ {
			if bands[j] > bands[i] {
				bands[i], bands[j] = bands[j], bands[i]
			}
		}
	}
	if len(bands) > 6 {
		bands = bands[:6]
	}
	total := 0
	for _, b := range bands {
		total += b
	}
	return total
}

// AverageMark returns the mean percentage across all reported subjects.
func (p *StudentProfile) AverageMark() float64 {
	if len(p.Marks) == 0 {
		return 0
	}
	sum := 0
	for _, m := range p.Marks {
		sum += m
	}
	return float64(sum) / float64(len(p.Marks))
}

// HasSubject reports whether the profile carries a mark for the subject.
func (p *StudentProfile) HasSubject(subject string) bool {
	_, ok := p.Marks[subject]
	return ok
}

func apsBand(mark int) int {
	switch {
	case mark >= 80:
		return 7
	case mark >= 70:
		return 6
	case mark >= 60:
		return 5
	case mark >= 50:
		return 4
	case mark >= 40:
		return 3
	case mark >= 30:
		return 2
	default:
		return 1
	}
}
