package embedding

// EmbeddingProvider defines the interface for generating text embeddings.
// Task types follow the Gemini convention ("RETRIEVAL_QUERY",
// "RETRIEVAL_DOCUMENT"); providers that don't distinguish ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
