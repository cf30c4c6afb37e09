package dto

import "github.com/google/uuid"

// PublishEmbedChunkMessage is the in-process bus payload asking the consumer
// to compute a chunk's embedding.
type PublishEmbedChunkMessage struct {
	ChunkId uuid.UUID `json:"chunk_id"`
}
