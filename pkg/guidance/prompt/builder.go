package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"career-compass-be/internal/entity"
	"career-compass-be/pkg/guidance/assembly"
	"career-compass-be/pkg/guidance/intent"
)

var fundingMentionPattern = regexp.MustCompile(`nsfas|bursar|scholarship|learnership|afford|fund(ing)?|fees|tuition`)

// GuidanceBuilder builds the generation prompt from the assembled context.
// Directive blocks are appended only when the signals that warrant them are
// present, so a plain query produces a plain prompt.
type GuidanceBuilder struct {
	query     string
	profile   *entity.StudentProfile
	bundle    *assembly.ContextBundle
	signals   *intent.Signals
	conflicts []intent.Conflict
}

func NewGuidanceBuilder(
	query string,
	profile *entity.StudentProfile,
	bundle *assembly.ContextBundle,
	signals *intent.Signals,
	conflicts []intent.Conflict,
) *GuidanceBuilder {
	return &GuidanceBuilder{
		query:     query,
		profile:   profile,
		bundle:    bundle,
		signals:   signals,
		conflicts: conflicts,
	}
}

// Build assembles the full prompt.
func (b *GuidanceBuilder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeProfile(&prompt)
	b.writeContext(&prompt)
	b.writeConflictDirectives(&prompt)
	b.writeFrameworkDirectives(&prompt)
	b.writeFundingDirectives(&prompt)
	b.writeUrgencyDirectives(&prompt)
	b.writeLowMarksDirectives(&prompt)
	b.writeResponseRules(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *GuidanceBuilder) writePersona(prompt *strings.Builder) {
	prompt.WriteString("<role>\n")
	prompt.WriteString("You are a career guidance counselor for South African high school learners.\n")
	prompt.WriteString("You give practical, realistic advice grounded strictly in the reference material.\n")
	prompt.WriteString("You never guarantee outcomes, admission, or employment.\n")
	prompt.WriteString("</role>\n\n")
}

func (b *GuidanceBuilder) writeProfile(prompt *strings.Builder) {
	if b.bundle == nil || b.bundle.ProfileSummary == "" {
		return
	}
	prompt.WriteString("<student_profile>\n")
	prompt.WriteString(b.bundle.ProfileSummary)
	prompt.WriteString("\n</student_profile>\n\n")
}

func (b *GuidanceBuilder) writeContext(prompt *strings.Builder) {
	if b.bundle == nil || b.bundle.ContextText == "" {
		return
	}
	prompt.WriteString("<reference_material>\n")
	prompt.WriteString(b.bundle.ContextText)
	prompt.WriteString("\n</reference_material>\n\n")
}

func (b *GuidanceBuilder) writeConflictDirectives(prompt *strings.Builder) {
	if len(b.conflicts) == 0 {
		return
	}
	prompt.WriteString("<constraint_tensions>\n")
	prompt.WriteString("The student's goals pull in different directions. Address each tension honestly:\n")
	for _, c := range b.conflicts {
		prompt.WriteString(fmt.Sprintf("- %s\n", c.Note))
	}
	prompt.WriteString("Present the trade-offs and suggest paths that balance them rather than picking one side silently.\n")
	prompt.WriteString("</constraint_tensions>\n\n")
}

func (b *GuidanceBuilder) writeFrameworkDirectives(prompt *strings.Builder) {
	if b.bundle == nil || !b.bundle.FrameworksDetected {
		return
	}
	prompt.WriteString("<frameworks>\n")
	prompt.WriteString("The reference material includes decision frameworks. Walk the student through the relevant one step by step instead of only naming it:\n")
	for _, f := range b.bundle.Frameworks {
		prompt.WriteString(fmt.Sprintf("- %s\n", f.Name))
	}
	prompt.WriteString("</frameworks>\n\n")
}

func (b *GuidanceBuilder) writeFundingDirectives(prompt *strings.Builder) {
	needsFunding := b.profile != nil && b.profile.FinancialTier == entity.FinancialTierLow
	if fundingMentionPattern.MatchString(strings.ToLower(b.query)) {
		needsFunding = true
	}
	if !needsFunding {
		return
	}
	prompt.WriteString("<funding>\n")
	prompt.WriteString("Cost matters for this student. For every study path you suggest:\n")
	prompt.WriteString("- Name concrete funding options from the reference material (NSFAS, bursaries, learnerships)\n")
	prompt.WriteString("- State eligibility requirements and deadlines where the material gives them\n")
	prompt.WriteString("- Never describe funding as guaranteed or automatic\n")
	prompt.WriteString("</funding>\n\n")
}

func (b *GuidanceBuilder) writeUrgencyDirectives(prompt *strings.Builder) {
	if b.profile == nil || b.profile.Grade != 12 {
		return
	}
	prompt.WriteString("<timing>\n")
	prompt.WriteString("This student is in Grade 12. Application windows are closing. Lead with the actions that have deadlines this year and say which ones cannot wait.\n")
	prompt.WriteString("</timing>\n\n")
}

func (b *GuidanceBuilder) writeLowMarksDirectives(prompt *strings.Builder) {
	if b.profile == nil || len(b.profile.Marks) == 0 {
		return
	}
	if b.profile.AverageMark() >= 50 {
		return
	}
	prompt.WriteString("<realistic_options>\n")
	prompt.WriteString("The student's current marks limit some university routes. Be honest about admission requirements without being discouraging, and give at least one pathway that is reachable from where they are now (TVET, bridging, improving specific subjects).\n")
	prompt.WriteString("</realistic_options>\n\n")
}

func (b *GuidanceBuilder) writeResponseRules(prompt *strings.Builder) {
	prompt.WriteString("<response_rules>\n")
	prompt.WriteString("1. Base every claim on the reference material; if it does not cover something, say so\n")
	prompt.WriteString("2. Use specific numbers from the material (APS scores, costs, durations), never invented ones\n")
	prompt.WriteString("3. Give next steps the student can act on this month\n")
	prompt.WriteString("4. Keep the tone warm and direct, suitable for a teenager\n")
	prompt.WriteString("</response_rules>\n\n")
}

func (b *GuidanceBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</question>\n")
}
