package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"career-compass-be/internal/dto"
	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/specification"
	"career-compass-be/pkg/embedding"
	"career-compass-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService listens for chunk-created events and writes the pgvector
// embedding back onto the chunk row. Chunks over the embedding window are
// re-split and only the first piece's vector is stored; knowledge passages
// are authored short, so this is a safety net rather than a code path.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	chunkRepo         contract.KnowledgeChunkRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chunkRepo contract.KnowledgeChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		chunkRepo:         chunkRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	// Catch up on chunks whose create events were lost (seeding while the
	// bus was down) before serving live events.
	cs.backfill(ctx)

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) backfill(ctx context.Context) {
	pending, err := cs.chunkRepo.FindAll(ctx, specification.MissingEmbedding{})
	if err != nil {
		log.Printf("[WARN] Embedding backfill scan failed: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}
	log.Printf("[INFO] Backfilling embeddings for %d chunks", len(pending))
	for _, chunk := range pending {
		if err := cs.embedChunk(ctx, chunk); err != nil {
			log.Printf("[ERROR] Backfill failed for chunk %s: %v", chunk.Id, err)
		}
	}
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for chunk %s", payload.ChunkId)

	chunk, err := cs.chunkRepo.FindOne(ctx, specification.ByID{ID: payload.ChunkId})
	if err != nil {
		log.Printf("[ERROR] Failed to get chunk %s: %v", payload.ChunkId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if chunk == nil {
		log.Printf("[ERROR] Chunk not found: %s", payload.ChunkId)
		msg.Ack() // Chunk deleted? Ack.
		return
	}

	if err := cs.embedChunk(ctx, chunk); err != nil {
		log.Printf("[ERROR] Failed to embed chunk %s: %v", payload.ChunkId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Stored embedding for chunk %s", payload.ChunkId)
	msg.Ack()
}

func (cs *consumerService) embedChunk(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	// ChunkSize 1500 chars (~375 tokens), overlap 200
	pieces := utils.SplitText(chunk.ChunkText, 1500, 200)
	if len(pieces) == 0 {
		return fmt.Errorf("chunk %s has no embeddable text", chunk.Id)
	}

	res, err := cs.embeddingProvider.Generate(pieces[0], "RETRIEVAL_DOCUMENT")
	if err != nil {
		return fmt.Errorf("generate embedding: %w", err)
	}

	if err := cs.chunkRepo.UpdateEmbedding(ctx, chunk.Id, res.Embedding.Values); err != nil {
		return fmt.Errorf("store embedding: %w", err)
	}
	return nil
}
