package search

import (
	"context"
	"fmt"

	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/unitofwork"
	"resort-concierge-be/pkg/embedding"
	"resort-concierge-be/pkg/rag"
	"resort-concierge-be/pkg/store"
)

// Orchestrator runs semantic retrieval over the indexed corpus. It embeds
// the query and ranks corpus documents by cosine similarity; all further
// gating happens downstream in the validator.
type Orchestrator struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

var _ rag.Retriever = &Orchestrator{}

func NewOrchestrator(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	logger logger.ILogger,
) *Orchestrator {
	return &Orchestrator{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Retrieve returns up to topK passages ranked best-first.
func (o *Orchestrator) Retrieve(ctx context.Context, query string, topK int) ([]store.Passage, error) {
	values, err := o.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := o.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.CorpusEmbeddingRepository().SearchSimilarWithScore(ctx, values, topK, 0.0)
	if err != nil {
		o.logger.Error("search", "vector search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	o.logger.Debug("search", "raw search results", map[string]interface{}{
		"query": query,
		"count": len(scored),
	})

	passages := make([]store.Passage, 0, len(scored))
	for _, res := range scored {
		passages = append(passages, store.Passage{
			ID:         res.Embedding.Id.String(),
			Content:    res.Embedding.Document,
			Score:      float32(res.Similarity),
			EntryIndex: res.Embedding.EntryIndex,
		})
	}

	return passages, nil
}
