// Package assembly builds the token-budgeted prompt context from the
// top-ranked chunks and detects the named decision frameworks present in it.
package assembly

import (
	"fmt"
	"sort"
	"strings"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/pkg/guidance/rank"
	"career-compass-be/pkg/guidance/taxonomy"

	"github.com/google/uuid"
)

// Framework is a named, citable concept detected in a chunk's text.
type Framework struct {
	Name          string
	SourceChunkId uuid.UUID
}

// ContextBundle is the assembled, budgeted context handed to the prompt
// builder, plus bookkeeping about what was found vs included.
type ContextBundle struct {
	Chunks             []rank.ScoredChunk
	ContextText        string
	ProfileSummary     string
	Frameworks         []Framework
	FrameworksDetected bool
	TotalFound         int
	Included           int
	TokenCount         int
}

// DefaultTokenBudget bounds the assembled context. Tokens are estimated with
// the characters/4 heuristic.
const DefaultTokenBudget = 2000

type Assembler struct {
	tokenBudget int
	logger      logger.ILogger
}

func NewAssembler(tokenBudget int, log logger.ILogger) *Assembler {
	if tokenBudget <= 0 {
		tokenBudget = DefaultTokenBudget
	}
	return &Assembler{tokenBudget: tokenBudget, logger: log}
}

// Assemble formats chunks in rank order until the token budget would be
// exceeded, then detects frameworks across the included set.
func (a *Assembler) Assemble(chunks []rank.ScoredChunk, profile *entity.StudentProfile) *ContextBundle {
	bundle := &ContextBundle{
		TotalFound:     len(chunks),
		ProfileSummary: SummarizeProfile(profile),
	}

	var sb strings.Builder
	used := 0

	for _, chunk := range chunks {
		formatted := formatChunk(chunk)
		cost := estimateTokens(formatted)
		if used+cost > a.tokenBudget {
			break
		}
		sb.WriteString(formatted)
		sb.WriteString("\n")
		used += cost
		bundle.Chunks = append(bundle.Chunks, chunk)
	}

	bundle.ContextText = sb.String()
	bundle.Included = len(bundle.Chunks)
	bundle.TokenCount = used

	if dropped := bundle.TotalFound - bundle.Included; dropped > 0 {
		a.logger.Debug("assembly", "token budget reached", map[string]interface{}{
			"included": bundle.Included,
			"dropped":  dropped,
			"tokens":   used,
		})
	}

	bundle.Frameworks = detectFrameworks(bundle.Chunks)
	bundle.FrameworksDetected = len(bundle.Frameworks) > 0

	return bundle
}

func formatChunk(chunk rank.ScoredChunk) string {
	header := fmt.Sprintf("[source:%s", chunk.Source)
	if chunk.Chunk.ModuleName != "" {
		header += " module:" + chunk.Chunk.ModuleName
	}
	if career := chunk.Chunk.CareerName(); career != "" {
		header += " career:" + career
	}
	header += "]"
	return header + "\n" + chunk.Chunk.ChunkText + "\n"
}

// detectFrameworks scans chunks in order against the fixed dictionary. The
// first chunk to match a framework name wins; later duplicate matches for the
// same name are skipped.
func detectFrameworks(chunks []rank.ScoredChunk) []Framework {
	var detected []Framework
	seen := make(map[string]bool)

	for _, chunk := range chunks {
		for _, entry := range taxonomy.Frameworks {
			if seen[entry.Name] {
				continue
			}
			if entry.Pattern.MatchString(chunk.Chunk.ChunkText) {
				seen[entry.Name] = true
				detected = append(detected, Framework{
					Name:          entry.Name,
					SourceChunkId: chunk.Chunk.Id,
				})
			}
		}
	}
	return detected
}

// SummarizeProfile renders the structured student summary included alongside
// the knowledge context.
func SummarizeProfile(profile *entity.StudentProfile) string {
	if profile == nil {
		return "No profile provided."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Grade: %d\n", profile.Grade)

	if len(profile.Marks) > 0 {
		sb.WriteString("Marks: ")
		first := true
		// stable subject order first, then whatever else the profile carries
		written := make(map[string]bool)
		for _, subject := range taxonomy.Subjects {
			if mark, ok := profile.Marks[subject]; ok {
				if !first {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%s %d%%", subject, mark)
				written[subject] = true
				first = false
			}
		}
		rest := make([]string, 0, len(profile.Marks))
		for subject := range profile.Marks {
			if !written[subject] {
				rest = append(rest, subject)
			}
		}
		sort.Strings(rest)
		for _, subject := range rest {
			if !first {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s %d%%", subject, profile.Marks[subject])
			first = false
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "APS: %d\n", profile.APS())
	}

	if profile.FinancialTier != "" {
		fmt.Fprintf(&sb, "Financial constraint: %s\n", profile.FinancialTier)
	}
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&sb, "Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	return sb.String()
}

func estimateTokens(text string) int {
	return len(text) / 4
}
