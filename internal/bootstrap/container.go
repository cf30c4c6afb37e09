package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"career-compass-be/internal/config"
	"career-compass-be/internal/controller"
	"career-compass-be/internal/dto"
	"career-compass-be/internal/entity"
	"career-compass-be/internal/pkg/logger"
	"career-compass-be/internal/repository/contract"
	"career-compass-be/internal/repository/implementation"
	"career-compass-be/internal/repository/memory"
	"career-compass-be/internal/service"
	"career-compass-be/pkg/embedding"
	"career-compass-be/pkg/events"
	"career-compass-be/pkg/guidance/assembly"
	"career-compass-be/pkg/guidance/executor"
	"career-compass-be/pkg/guidance/generate"
	"career-compass-be/pkg/guidance/retrieval"
	"career-compass-be/pkg/guidance/validate"
	"career-compass-be/pkg/llm/factory"

	pktNats "career-compass-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GuidanceController controller.IGuidanceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	Logger        logger.ILogger
	PubSub        *gochannel.GoChannel
	NatsPublisher *pktNats.Publisher
	ChunkRepo     contract.KnowledgeChunkRepository
	BursaryRepo   contract.BursaryRepository
	ModuleRepo    contract.KnowledgeModuleRepository
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories
	chunkRepo := implementation.NewKnowledgeChunkRepository(db)
	bursaryRepo := implementation.NewBursaryRepository(db)
	moduleRepo := implementation.NewKnowledgeModuleRepository(db)

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	primaryLLM, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		llmAPIKey(cfg, cfg.Ai.LLMProvider),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	fallbackLLM, err := factory.NewLLMProvider(
		cfg.Ai.FallbackProvider,
		cfg.Ai.FallbackModel,
		cfg.Ai.OllamaBaseURL,
		llmAPIKey(cfg, cfg.Ai.FallbackProvider),
	)
	if err != nil {
		log.Printf("[WARN] Fallback LLM unavailable: %v", err)
		fallbackLLM = nil
	}

	// 5. Pipeline components
	generator := generate.NewAdapter(
		primaryLLM, cfg.Ai.LLMProvider, cfg.Ai.LLMModel,
		fallbackLLM, cfg.Ai.FallbackProvider, cfg.Ai.FallbackModel,
		generate.Config{
			MaxRetries:  cfg.Pipeline.MaxRetries,
			Timeout:     time.Duration(cfg.Pipeline.GenerationTimeoutSeconds) * time.Second,
			BackoffBase: 500 * time.Millisecond,
		},
		sysLogger,
	)

	retriever := retrieval.NewRetriever(chunkRepo, embeddingProvider, retrieval.DefaultConfig(), sysLogger)
	assembler := assembly.NewAssembler(cfg.Pipeline.ContextTokenBudget, sysLogger)

	// The bursary catalog is read-only reference data; load it once.
	catalog := loadBursaryCatalog(bursaryRepo, sysLogger)
	validator := validate.NewValidator(validate.NewBursaryValidator(catalog), nil, sysLogger)

	pipeline := executor.NewExecutor(retriever, assembler, generator, validator, sysLogger)

	// 6. Session + cache
	sessionRepo := memory.NewSessionRepository()
	responseCache := memory.NewResponseCache(time.Duration(cfg.Pipeline.ResponseCacheTTLMinutes) * time.Minute)

	// 7. NATS (deployed ingestion transport; in-process gochannel is the default)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		// Bridge chunk-created events from the bus onto the in-process
		// channel the embedding consumer listens on.
		err = natsSub.Subscribe("knowledge."+events.TypeChunkCreated, "chunk-embedder",
			chunkEventBridge(pubSub, cfg.Ai.EmbedChunkTopic))
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to chunk events: %v", err)
		}
	}

	// 8. Services and controllers
	guidanceService := service.NewGuidanceService(pipeline, responseCache, sessionRepo, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Ai.EmbedChunkTopic, chunkRepo, embeddingProvider)

	return &Container{
		GuidanceController: controller.NewGuidanceController(guidanceService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
		PubSub:             pubSub,
		NatsPublisher:      natsPub,
		ChunkRepo:          chunkRepo,
		BursaryRepo:        bursaryRepo,
		ModuleRepo:         moduleRepo,
	}
}

// chunkEventBridge republishes a bus event as the consumer's in-process
// message.
func chunkEventBridge(pubSub *gochannel.GoChannel, topic string) func(ctx context.Context, event events.Event) error {
	return func(ctx context.Context, event events.Event) error {
		rawId, _ := event.Payload()["chunk_id"].(string)
		chunkId, err := uuid.Parse(rawId)
		if err != nil {
			return fmt.Errorf("invalid chunk_id in event: %w", err)
		}
		payload, err := json.Marshal(dto.PublishEmbedChunkMessage{ChunkId: chunkId})
		if err != nil {
			return err
		}
		return pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
	}
}

func llmAPIKey(cfg *config.Config, provider string) string {
	switch provider {
	case "gemini":
		return cfg.Ai.GeminiAPIKey
	case "huggingface":
		return cfg.Ai.HuggingFaceAPIKey
	default:
		return ""
	}
}

func loadBursaryCatalog(repo contract.BursaryRepository, log logger.ILogger) []entity.Bursary {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := repo.FindAll(ctx)
	if err != nil {
		log.Warn("bootstrap", "bursary catalog unavailable, funding validation degraded", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	catalog := make([]entity.Bursary, len(rows))
	for i, b := range rows {
		catalog[i] = *b
	}
	return catalog
}
