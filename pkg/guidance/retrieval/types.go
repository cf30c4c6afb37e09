package retrieval

import "career-compass-be/internal/entity"

// Source tags identify the channel a chunk came from. They survive through
// re-ranking so discounts and tie-breaks can be applied per channel.
const (
	SourceExplicit       = "explicit"
	SourceIntentPrimary  = "intent-primary"
	SourceIntentConflict = "intent-conflict"
	SourceSemantic       = "semantic"
)

// Priority tiers per channel, lower = stronger provenance.
const (
	PriorityExplicit       = 1
	PriorityIntentPrimary  = 2
	PriorityIntentConflict = 3
	PrioritySemantic       = 4
)

// Chunk is a retrieved knowledge passage before re-ranking: the immutable
// entity plus channel annotations.
type Chunk struct {
	Chunk     *entity.KnowledgeChunk
	Source    string
	Priority  int
	BaseScore float64 // channel base relevance, higher = more relevant
}
