// Package retrieval fetches candidate knowledge passages through three
// independently tagged channels: explicit-entity lookup, intent-mapped
// category lookup and vector similarity search. Cross-channel deduplication
// is deferred to the re-ranker.
package retrieval

import (
	"context"
	"strings"
	"sync"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/pkg/embedding"
	"career-compass-be/pkg/guidance/intent"
	"career-compass-be/pkg/guidance/taxonomy"

	"github.com/google/uuid"
)

// Config encapsulates retrieval caps and thresholds.
type Config struct {
	PerCareerCap      int
	ExplicitTotalCap  int
	IntentTotalCap    int
	SemanticTrigger   int     // run semantic search only below this combined count
	SemanticTopK      int
	SemanticThreshold float64
}

// DefaultConfig returns the fixed production caps.
func DefaultConfig() Config {
	return Config{
		PerCareerCap:      5,
		ExplicitTotalCap:  15,
		IntentTotalCap:    30,
		SemanticTrigger:   8,
		SemanticTopK:      12,
		SemanticThreshold: 0.35,
	}
}

type Retriever struct {
	chunkRepo         contract.KnowledgeChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	config            Config
	logger            logger.ILogger
}

func NewRetriever(
	chunkRepo contract.KnowledgeChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
	config Config,
	log logger.ILogger,
) *Retriever {
	return &Retriever{
		chunkRepo:         chunkRepo,
		embeddingProvider: embeddingProvider,
		config:            config,
		logger:            log,
	}
}

// Retrieve runs the explicit and intent channels concurrently, then the
// semantic channel only when the first two came up short. Channel errors are
// logged and degrade to empty result sets; they never abort the pipeline.
func (r *Retriever) Retrieve(
	ctx context.Context,
	query string,
	signals *intent.Signals,
	conflicts []intent.Conflict,
) []Chunk {
	var (
		wg       sync.WaitGroup
		explicit []Chunk
		intented []Chunk
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		explicit = r.retrieveExplicit(ctx, signals)
	}()
	go func() {
		defer wg.Done()
		intented = r.retrieveIntent(ctx, signals, conflicts)
	}()
	wg.Wait()

	combined := append(explicit, intented...)

	// Semantic search is a fallback for thin results, not a parallel channel.
	if len(combined) < r.config.SemanticTrigger {
		combined = append(combined, r.retrieveSemantic(ctx, query)...)
	}

	r.logger.Debug("retrieval", "channels complete", map[string]interface{}{
		"explicit": len(explicit),
		"intent":   len(intented),
		"total":    len(combined),
	})

	return combined
}

// retrieveExplicit looks up chunks for every explicitly named career,
// capped per career and at ExplicitTotalCap overall, deduplicated by chunk id.
func (r *Retriever) retrieveExplicit(ctx context.Context, signals *intent.Signals) []Chunk {
	var out []Chunk
	seen := make(map[uuid.UUID]bool)

	for _, careerId := range signals.ExplicitCareers {
		if len(out) >= r.config.ExplicitTotalCap {
			break
		}
		chunks, err := r.chunkRepo.FindByCareerAlias(ctx, taxonomy.DisplayName(careerId), r.config.PerCareerCap)
		if err != nil {
			r.logger.Warn("retrieval", "explicit lookup failed", map[string]interface{}{
				"career": careerId, "error": err.Error(),
			})
			continue
		}
		for _, chunk := range chunks {
			if seen[chunk.Id] || len(out) >= r.config.ExplicitTotalCap {
				continue
			}
			seen[chunk.Id] = true
			out = append(out, Chunk{
				Chunk:     chunk,
				Source:    SourceExplicit,
				Priority:  PriorityExplicit,
				BaseScore: 0.95,
			})
		}
	}
	return out
}

// retrieveIntent resolves the primary category to a career list, filters it
// by subject signals and fetches chunks per career. Detected conflicts repeat
// the lookup for each alternate category, tagged intent-conflict.
func (r *Retriever) retrieveIntent(ctx context.Context, signals *intent.Signals, conflicts []intent.Conflict) []Chunk {
	out := r.fetchCategory(ctx, signals.PrimaryCategory, signals, SourceIntentPrimary, PriorityIntentPrimary, 0.85, nil)

	seen := make(map[uuid.UUID]bool, len(out))
	for _, c := range out {
		seen[c.Chunk.Id] = true
	}

	for _, conflict := range conflicts {
		for _, alt := range conflict.AltCategories {
			if alt == signals.PrimaryCategory {
				continue
			}
			out = append(out, r.fetchCategory(ctx, alt, signals, SourceIntentConflict, PriorityIntentConflict, 0.80, seen)...)
		}
	}

	if len(out) > r.config.IntentTotalCap {
		out = out[:r.config.IntentTotalCap]
	}
	return out
}

func (r *Retriever) fetchCategory(
	ctx context.Context,
	category string,
	signals *intent.Signals,
	source string,
	priority int,
	baseScore float64,
	seen map[uuid.UUID]bool,
) []Chunk {
	if seen == nil {
		seen = make(map[uuid.UUID]bool)
	}

	careers := FilterCareersForSubjects(taxonomy.CareersForCategory(category), signals)

	var out []Chunk
	for _, careerId := range careers {
		chunks, err := r.chunkRepo.FindByCareerAlias(ctx, taxonomy.DisplayName(careerId), r.config.PerCareerCap)
		if err != nil {
			r.logger.Warn("retrieval", "intent lookup failed", map[string]interface{}{
				"career": careerId, "category": category, "error": err.Error(),
			})
			continue
		}
		for _, chunk := range chunks {
			if seen[chunk.Id] {
				continue
			}
			seen[chunk.Id] = true
			out = append(out, Chunk{
				Chunk:     chunk,
				Source:    source,
				Priority:  priority,
				BaseScore: baseScore,
			})
		}
	}
	return out
}

// retrieveSemantic embeds the query and runs a vector similarity search,
// keeping only career-relevant chunks.
func (r *Retriever) retrieveSemantic(ctx context.Context, query string) []Chunk {
	res, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		r.logger.Warn("retrieval", "query embedding failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	scored, err := r.chunkRepo.SearchSimilarWithScore(ctx, res.Embedding.Values, r.config.SemanticTopK, r.config.SemanticThreshold)
	if err != nil {
		r.logger.Warn("retrieval", "vector search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var out []Chunk
	for _, sc := range scored {
		if !isCareerRelevant(sc.Chunk) {
			continue
		}
		out = append(out, Chunk{
			Chunk:     sc.Chunk,
			Source:    SourceSemantic,
			Priority:  PrioritySemantic,
			BaseScore: sc.Similarity,
		})
	}
	return out
}

// isCareerRelevant filters semantic hits down to guidance material by
// metadata and module-name heuristics.
func isCareerRelevant(chunk *entity.KnowledgeChunk) bool {
	if chunk.CareerName() != "" {
		return true
	}
	module := strings.ToLower(chunk.ModuleName)
	for _, marker := range []string{"career", "bursary", "pathway", "framework", "tvet"} {
		if strings.Contains(module, marker) {
			return true
		}
	}
	return false
}
