package embedding

import "context"

// TaskType hints the provider about the embedding's purpose. Some models
// produce asymmetric embeddings for queries vs. indexed documents.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// EmbeddingProvider generates vector embeddings for text.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
