package executor

import (
	"context"
	"time"

	"career-compass-be/internal/constant"
	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/pkg/guidance/assembly"
	"career-compass-be/pkg/guidance/generate"
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/prompt"
	"career-compass-be/pkg/guidance/rank"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/safety"
	"career-compass-be/pkg/guidance/validate"
)

// Metadata is the operator-facing provenance attached to every result. The
// student never sees it.
type Metadata struct {
	Provider           string `json:"provider,omitempty"`
	Model              string `json:"model,omitempty"`
	GenerationMs       int64  `json:"generation_ms"`
	RetryCount         int    `json:"retry_count"`
	FooterAdded        bool   `json:"footer_added"`
	SafetyCategory     string `json:"safety_category,omitempty"`
	PrimaryIntent      string `json:"primary_intent,omitempty"`
	ConflictCount      int    `json:"conflict_count"`
	ChunksRetrieved    int    `json:"chunks_retrieved"`
	ChunksUsed         int    `json:"chunks_used"`
	FrameworksDetected bool   `json:"frameworks_detected"`
	ErrorProvenance    string `json:"error_provenance,omitempty"`
}

// Result is the structured pipeline outcome. Response is always safe to show
// to the student, whatever happened internally.
type Result struct {
	Response   string           `json:"response"`
	Validation *validate.Result `json:"validation,omitempty"`
	Metadata   Metadata         `json:"metadata"`
}

// Executor runs the full guidance pipeline: safety filter, intent extraction,
// conflict detection, three-channel retrieval, constraint re-ranking, context
// assembly, prompt construction, generation with retry/fallback, concurrent
// validation, and enhancement.
type Executor struct {
	filter    *safety.Filter
	extractor *intent.Extractor
	retriever *retrieval.Retriever
	reranker  *rank.Reranker
	assembler *assembly.Assembler
	generator *generate.Adapter
	validator *validate.Validator
	rankLimit int
	log       logger.ILogger
}

func NewExecutor(
	retriever *retrieval.Retriever,
	assembler *assembly.Assembler,
	generator *generate.Adapter,
	validator *validate.Validator,
	log logger.ILogger,
) *Executor {
	return &Executor{
		filter:    safety.NewFilter(),
		extractor: intent.NewExtractor(),
		retriever: retriever,
		reranker:  rank.NewReranker(),
		assembler: assembler,
		generator: generator,
		validator: validator,
		rankLimit: rank.DefaultLimit,
		log:       log,
	}
}

// Execute processes one query end to end. It never returns an error: failures
// degrade to the grade-keyed fallback response with provenance recorded in
// metadata.
func (e *Executor) Execute(ctx context.Context, query string, profile *entity.StudentProfile) *Result {
	// Stage 1: safety short-circuit. On match nothing else runs.
	if hit := e.filter.Match(query); hit != nil {
		e.log.Info("executor", "safety filter matched", map[string]interface{}{
			"category": hit.Category,
		})
		return &Result{
			Response: hit.Response,
			Metadata: Metadata{SafetyCategory: hit.Category},
		}
	}

	// Stage 2: intent signals and constraint conflicts.
	signals := e.extractor.Extract(query, profile)
	conflicts := intent.DetectConflicts(signals, query)

	// Stage 3-4: retrieval and re-ranking.
	retrieved := e.retriever.Retrieve(ctx, query, signals, conflicts)
	ranked := e.reranker.Rank(retrieved, signals, conflicts, e.rankLimit)
	ranked = assembly.CollapseNearDuplicates(ranked, assembly.DefaultOverlapThreshold)

	// Stage 5: context assembly and prompt construction.
	bundle := e.assembler.Assemble(ranked, profile)
	promptText := prompt.NewGuidanceBuilder(query, profile, bundle, signals, conflicts).Build()

	meta := Metadata{
		PrimaryIntent:      signals.PrimaryCategory,
		ConflictCount:      len(conflicts),
		ChunksRetrieved:    len(retrieved),
		ChunksUsed:         bundle.Included,
		FrameworksDetected: bundle.FrameworksDetected,
	}

	// Stage 6: generation with retry and provider fallback.
	genStart := time.Now()
	genResult, err := e.generator.Generate(ctx, promptText)
	if err != nil {
		e.log.Error("executor", "generation exhausted", map[string]interface{}{
			"error": err.Error(),
		})
		meta.GenerationMs = time.Since(genStart).Milliseconds()
		meta.ErrorProvenance = "generation: " + err.Error()
		return &Result{
			Response: fallbackForProfile(profile),
			Metadata: meta,
		}
	}
	meta.Provider = genResult.Provider
	meta.Model = genResult.Model
	meta.RetryCount = genResult.Retries
	meta.GenerationMs = genResult.DurationMs

	// Stage 7: concurrent validation and aggregation.
	verdict := validate.Aggregate(e.validator.Run(validate.Input{
		Text:    genResult.Text,
		Profile: profile,
		Bundle:  bundle,
	}))

	// A fully rejected response is replaced with the static fallback; every
	// other status keeps the generated text and only annotates it.
	if verdict.Status == constant.StatusRejected {
		e.log.Warn("executor", "response rejected by validation", map[string]interface{}{
			"score":  verdict.OverallScore,
			"issues": len(verdict.Issues),
		})
		meta.ErrorProvenance = "validation: response rejected"
		return &Result{
			Response:   fallbackForProfile(profile),
			Validation: verdict,
			Metadata:   meta,
		}
	}

	enhanced := validate.Enhance(genResult.Text, verdict)
	meta.FooterAdded = validate.FooterAdded(genResult.Text, enhanced)

	return &Result{
		Response:   enhanced,
		Validation: verdict,
		Metadata:   meta,
	}
}

func fallbackForProfile(profile *entity.StudentProfile) string {
	if profile != nil {
		if response, ok := constant.FallbackResponses[profile.Grade]; ok {
			return response
		}
	}
	return constant.FallbackDefault
}
