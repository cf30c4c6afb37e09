package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types carried on the knowledge-ingestion bus.
const (
	TypeChunkCreated = "CHUNK_CREATED"
)

// NewChunkCreatedEvent signals that a knowledge chunk was stored and needs
// its embedding computed.
func NewChunkCreatedEvent(chunkId uuid.UUID, moduleName string) Event {
	return BaseEvent{
		Type: TypeChunkCreated,
		Data: map[string]interface{}{
			"chunk_id":    chunkId.String(),
			"module_name": moduleName,
		},
		OccurredAt: time.Now(),
	}
}
