package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is an immutable passage of career-guidance reference text.
// Chunks are annotated downstream (scores, source tags) but never mutated.
type KnowledgeChunk struct {
	Id               uuid.UUID
	ChunkText        string
	Metadata         map[string]interface{}
	ModuleName       string
	SourceEntityType string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// CareerName returns the career this chunk describes, if the metadata carries one.
func (c *KnowledgeChunk) CareerName() string {
	if c.Metadata == nil {
		return ""
	}
	if v, ok := c.Metadata["career_name"].(string); ok {
		return v
	}
	return ""
}

// MatchesCareer reports whether the chunk's career metadata contains the given
// name, case-insensitively.
func (c *KnowledgeChunk) MatchesCareer(name string) bool {
	career := c.CareerName()
	if career == "" || name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(career), strings.ToLower(name))
}
