package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeModule is the lookup table entry a chunk's module name resolves
// through. Priority orders modules when the assembler weighs semantic hits.
type KnowledgeModule struct {
	Id        uuid.UUID
	Name      string
	Priority  int
	CreatedAt time.Time
}
