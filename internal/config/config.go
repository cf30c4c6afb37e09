package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Pipeline PipelineConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini", "ollama", "huggingface"
	LLMModel          string
	FallbackProvider  string
	FallbackModel     string
	GeminiAPIKey      string
	HuggingFaceAPIKey string
	EmbedChunkTopic   string
}

type PipelineConfig struct {
	GenerationTimeoutSeconds int
	MaxRetries               int
	ContextTokenBudget       int
	ResponseCacheTTLMinutes  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.0-flash"),
			FallbackProvider:  getEnv("LLM_FALLBACK_PROVIDER", "ollama"),
			FallbackModel:     getEnv("LLM_FALLBACK_MODEL", "llama3"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
			EmbedChunkTopic:   getEnv("EMBED_CHUNK_TOPIC_NAME", "EMBED_KNOWLEDGE_CHUNK"),
		},
		Pipeline: PipelineConfig{
			GenerationTimeoutSeconds: getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 60),
			MaxRetries:               getEnvAsInt("GENERATION_MAX_RETRIES", 2),
			ContextTokenBudget:       getEnvAsInt("CONTEXT_TOKEN_BUDGET", 2000),
			ResponseCacheTTLMinutes:  getEnvAsInt("RESPONSE_CACHE_TTL_MINUTES", 15),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
