package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-compass-be/internal/constant"
	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/pkg/guidance/assembly"
	"career-compass-be/pkg/guidance/executor"
	"career-compass-be/pkg/guidance/generate"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/validate"
	"career-compass-be/pkg/llm"

	"github.com/fatih/color"
)

// scriptedLLM returns a compliant canned answer without network access.
type scriptedLLM struct{}

func (scriptedLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return (scriptedLLM{}).Generate(ctx, "", opts...)
}

func (scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return "Based on your profile, a career as a UX/UI Designer fits your creative interests without heavy Mathematics. Demand for designers is growing in the job market.\n\n1. Research portfolio courses this month\n2. Apply for NSFAS before the closing date\n3. Keep Graphic Designer as a backup option\n\nYour timeline: applications close before year end." +
		constant.VerificationFooter + constant.AIDisclaimer, nil
}

type simulation struct {
	label   string
	query   string
	profile *entity.StudentProfile
}

func main() {
	bold := color.New(color.Bold)
	userC := color.New(color.FgCyan)
	aiC := color.New(color.FgGreen)
	metaC := color.New(color.FgYellow)

	bold.Println("=== Guidance Pipeline Simulation (offline, scripted LLM) ===")

	log := logger.NewNopLogger()
	repo := newFakeChunkRepo()

	retriever := retrieval.NewRetriever(repo, fakeEmbedder{}, retrieval.DefaultConfig(), log)
	assembler := assembly.NewAssembler(assembly.DefaultTokenBudget, log)
	generator := generate.NewAdapter(
		scriptedLLM{}, "scripted", "scripted-v1",
		nil, "", "",
		generate.DefaultConfig(), log,
	)
	validator := validate.NewValidator(validate.NewBursaryValidator(simBursaries()), nil, log)
	pipeline := executor.NewExecutor(retriever, assembler, generator, validator, log)

	cases := []simulation{
		{
			label: "A: negated subject + tech interest",
			query: "I hate math, what tech career suits me?",
			profile: &entity.StudentProfile{
				Grade:         11,
				Marks:         map[string]int{"mathematics": 42, "english": 68},
				FinancialTier: entity.FinancialTierLow,
				Interests:     []string{"design"},
			},
		},
		{
			label:   "B: safety short-circuit",
			query:   "should I drop out and get a job",
			profile: &entity.StudentProfile{Grade: 10},
		},
		{
			label: "C: grade 12 funding pressure",
			query: "I want to become an accountant but we cannot afford university",
			profile: &entity.StudentProfile{
				Grade:           12,
				Marks:           map[string]int{"mathematics": 71, "accounting": 80, "english": 65},
				FinancialTier:   entity.FinancialTierLow,
				HouseholdIncome: 180000,
				Interests:       []string{"accounting"},
			},
		},
	}

	for _, c := range cases {
		fmt.Println()
		bold.Printf("--- %s ---\n", c.label)
		userC.Printf("STUDENT: %s\n", c.query)

		start := time.Now()
		result := pipeline.Execute(context.Background(), c.query, c.profile)
		elapsed := time.Since(start)

		aiC.Printf("RESPONSE (%v):\n%s\n", elapsed, indent(result.Response))
		if result.Validation != nil {
			metaC.Printf("validation: %s (%.1f)\n", result.Validation.Status, result.Validation.OverallScore)
		}
		metaC.Printf("metadata: intent=%s chunks=%d/%d safety=%q retries=%d\n",
			result.Metadata.PrimaryIntent,
			result.Metadata.ChunksUsed, result.Metadata.ChunksRetrieved,
			result.Metadata.SafetyCategory,
			result.Metadata.RetryCount,
		)
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
