package contract

import (
	"context"

	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/repository/specification"
)

// ScoredCorpusEmbedding wraps CorpusEmbedding with its similarity score
type ScoredCorpusEmbedding struct {
	Embedding  *entity.CorpusEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type CorpusEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.CorpusEmbedding) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with their similarity
	// scores, best first, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredCorpusEmbedding, error)
}
