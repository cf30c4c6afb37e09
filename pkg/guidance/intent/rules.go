package intent

import (
	"fmt"
	"regexp"

	"career-compass-be/pkg/guidance/taxonomy"
)

// flagRule binds one boolean signal to its pattern family. A flag is set when
// ANY pattern matches the lower-cased query. New intents are added here, not
// in code paths.
type flagRule struct {
	name     string
	patterns []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Flag names, used as keys into the rule evaluation result.
const (
	flagFastPath   = "fast_path"
	flagRemote     = "remote"
	flagHighIncome = "high_income"
	flagDollars    = "dollars"
	flagCreative   = "creative"
	flagTech       = "tech"
	flagHandsOn    = "hands_on"
	flagHelping    = "helping_people"
	flagNoMatric   = "no_matric"
	flagNoVarsity  = "no_university"
)

var flagRules = []flagRule{
	{flagFastPath, compile(
		`\bquick(ly)?\b`, `fast (money|cash|income)`, `as soon as possible`, `\basap\b`,
		`short course`, `don'?t want to study (for )?(long|years)`, `start (working|earning) (now|soon)`,
	)},
	{flagRemote, compile(
		`\bremote\b`, `work from home`, `work online`, `online (job|work|career)`, `from anywhere`,
	)},
	{flagHighIncome, compile(
		`high[- ](income|salary|paying)`, `earn (a lot|well|big|good money)`, `\bwell[- ]paid\b`,
		`good (money|salary)`, `\brich\b`, `big (money|salary)`,
	)},
	{flagDollars, compile(
		`\bdollars?\b`, `\busd\b`, `\$`, `\bforex\b`, `foreign (currency|clients)`,
	)},
	{flagCreative, compile(
		`creativ`, `\bdesign`, `\bart\b`, `\bdraw(ing)?\b`, `\bvideo\b`, `\bmusic\b`, `\bcontent\b`,
	)},
	{flagTech, compile(
		`\btech\b`, `technology`, `\bcoding\b`, `\bprogramm`, `\bcomputers?\b`,
		`\bsoftware\b`, `\bit career\b`, `\bdigital\b`,
	)},
	{flagHandsOn, compile(
		`hands[- ]on`, `with my hands`, `\bpractical\b`, `build things`, `fix(ing)? things`,
		`\bworkshop\b`, `\btrade\b`, `\bartisan\b`,
	)},
	{flagHelping, compile(
		`help(ing)? (people|others|my community)`, `care (for|about) (people|others|patients)`,
		`make a difference`, `\bcommunity\b`, `work with people`,
	)},
	{flagNoMatric, compile(
		`without (a )?matric`, `no matric`, `fail(ed)? matric`, `didn'?t (pass|finish|get) matric`,
	)},
	{flagNoVarsity, compile(
		`without (a )?(degree|university|varsity)`, `no (degree|university|varsity)`,
		`don'?t want to (go to )?(university|varsity)`, `not going to (university|varsity)`,
		`skip (university|varsity)`, `can'?t afford (university|varsity)`,
	)},
}

// subjectRules give, per canonical subject, the mention pattern and the
// negation patterns built from a fixed rejection-verb family.
type subjectRule struct {
	subject  string
	mention  *regexp.Regexp
	negation *regexp.Regexp
}

var rejectionVerbs = `hate[sd]?|dislike[sd]?|bad at|terrible at|fail(ed|ing)?|can'?t do|struggle[sd]? with|struggling with|dropp?ed|not good at|without|no`

func newSubjectRule(subject, forms string) subjectRule {
	return subjectRule{
		subject:  subject,
		mention:  regexp.MustCompile(fmt.Sprintf(`\b(%s)\b`, forms)),
		negation: regexp.MustCompile(fmt.Sprintf(`(%s)\s+(%s)\b`, rejectionVerbs, forms)),
	}
}

var subjectRules = []subjectRule{
	newSubjectRule(taxonomy.SubjectMaths, `maths?|mathematics|math lit(eracy)?`),
	newSubjectRule(taxonomy.SubjectPhysics, `physics|physical science[s]?`),
	newSubjectRule(taxonomy.SubjectBiology, `biology|bio|life science[s]?`),
}
