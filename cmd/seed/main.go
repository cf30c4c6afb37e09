package main

import (
	"context"
	"log"
	"os"

	"career-compass-be/internal/entity"
	"career-compass-be/internal/repository/implementation"
	"career-compass-be/internal/repository/specification"
	"career-compass-be/pkg/database"
	"career-compass-be/pkg/events"
	pktNats "career-compass-be/pkg/nats"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()

	moduleRepo := implementation.NewKnowledgeModuleRepository(db)
	chunkRepo := implementation.NewKnowledgeChunkRepository(db)
	bursaryRepo := implementation.NewBursaryRepository(db)

	// 1. Knowledge modules
	log.Println("Seeding knowledge modules...")
	for _, m := range seedModules {
		existing, err := moduleRepo.FindByName(ctx, m.Name)
		if err != nil {
			log.Fatalf("Error: module lookup failed: %v", err)
		}
		if existing != nil {
			continue
		}
		module := m
		if err := moduleRepo.Create(ctx, &module); err != nil {
			log.Fatalf("Error: failed to create module %s: %v", m.Name, err)
		}
	}

	// 2. Knowledge chunks
	log.Println("Seeding knowledge chunks...")
	var created []*entity.KnowledgeChunk
	for _, c := range seedChunks {
		count, err := chunkRepo.Count(ctx, specification.ByCareerMetadata{Career: careerOf(&c)})
		if err == nil && count > 0 && careerOf(&c) != "" {
			continue
		}
		chunk := c
		if err := chunkRepo.Create(ctx, &chunk); err != nil {
			log.Fatalf("Error: failed to create chunk: %v", err)
		}
		created = append(created, &chunk)
	}
	log.Printf("Created %d chunks", len(created))

	// 3. Bursary catalog
	log.Println("Seeding bursary catalog...")
	for _, b := range seedBursaries {
		existing, err := bursaryRepo.FindOne(ctx, specification.ByName{Name: b.Name})
		if err != nil {
			log.Fatalf("Error: bursary lookup failed: %v", err)
		}
		if existing != nil {
			continue
		}
		bursary := b
		if err := bursaryRepo.Create(ctx, &bursary); err != nil {
			log.Fatalf("Error: failed to create bursary %s: %v", b.Name, err)
		}
	}

	// 4. Announce new chunks so the embedding worker picks them up
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	publisher, err := pktNats.NewPublisher(natsURL)
	if err != nil {
		log.Printf("Warn: NATS unavailable, chunk embeddings must be triggered manually: %v", err)
	} else {
		defer publisher.Close()
		for _, chunk := range created {
			event := events.NewChunkCreatedEvent(chunk.Id, chunk.ModuleName)
			if err := publisher.Publish(ctx, event); err != nil {
				log.Printf("Warn: failed to publish chunk event: %v", err)
			}
		}
		log.Printf("Published %d chunk-created events", len(created))
	}

	log.Println("✅ Seed complete")
}

func careerOf(c *entity.KnowledgeChunk) string {
	if v, ok := c.Metadata["career_name"].(string); ok {
		return v
	}
	return ""
}
