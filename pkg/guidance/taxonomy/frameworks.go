package taxonomy

import "regexp"

// FrameworkEntry is a named, citable decision-making model the context
// assembler detects inside retrieved chunk text.
type FrameworkEntry struct {
	Name    string
	Pattern *regexp.Regexp
}

// Frameworks is the fixed detection dictionary, in stable scan order. The
// first chunk whose text matches a framework's pattern becomes its source;
// later matches for the same name are skipped.
var Frameworks = []FrameworkEntry{
	{"V.I.S. Model", regexp.MustCompile(`(?i)\bv\.?i\.?s\.?\s+model\b`)},
	{"Three-Question Career Filter", regexp.MustCompile(`(?i)three[- ]question\s+career\s+filter`)},
	{"APS Ladder", regexp.MustCompile(`(?i)\baps\s+ladder\b`)},
	{"Earn-While-You-Learn Route", regexp.MustCompile(`(?i)earn[- ]while[- ]you[- ]learn`)},
	{"Backup Pathway Matrix", regexp.MustCompile(`(?i)backup\s+pathway\s+matrix`)},
}

// FrameworkModules are module names whose chunks describe decision
// frameworks; the re-ranker grants these a small bonus.
var FrameworkModules = map[string]bool{
	"decision_frameworks": true,
	"career_frameworks":   true,
}
