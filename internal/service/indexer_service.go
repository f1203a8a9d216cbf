package service

import (
	"context"
	"encoding/json"

	"resort-concierge-be/internal/dto"
	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/internal/repository/unitofwork"
	"resort-concierge-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
	Rebuild(ctx context.Context) (int, error)
	IndexedCount(ctx context.Context) (int64, error)
}

// indexerService keeps the semantic index in sync with the corpus
// snapshot. Rebuilds are full replacements inside one transaction, so
// queries never observe a half-built index.
type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	corpusRepo        *memory.CorpusRepository
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	corpusRepo *memory.CorpusRepository,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	logger logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		corpusRepo:        corpusRepo,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Consume subscribes to the rebuild topic and processes events in the
// background until ctx is cancelled.
func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexCorpusMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.logger.Error("indexer", "failed to unmarshal rebuild message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	is.logger.Info("indexer", "corpus rebuild requested", map[string]interface{}{
		"reason": payload.Reason,
	})

	count, err := is.Rebuild(ctx)
	if err != nil {
		is.logger.Error("indexer", "corpus rebuild failed", map[string]interface{}{
			"reason": payload.Reason,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	is.logger.Info("indexer", "corpus rebuild finished", map[string]interface{}{
		"reason":    payload.Reason,
		"documents": count,
	})
	msg.Ack()
}

// Rebuild embeds every document of the current snapshot and replaces the
// stored index with the result. Embedding runs before the transaction
// opens so a backend failure leaves the old index untouched.
func (is *indexerService) Rebuild(ctx context.Context) (int, error) {
	snapshot := is.corpusRepo.Snapshot()
	documents := snapshot.Documents()

	embeddings := make([]*entity.CorpusEmbedding, 0, len(documents))
	for i, document := range documents {
		values, err := is.embeddingProvider.Generate(ctx, document, embedding.TaskRetrievalDocument)
		if err != nil {
			return 0, err
		}
		embeddings = append(embeddings, &entity.CorpusEmbedding{
			Document:       document,
			EmbeddingValue: values,
			EntryIndex:     i,
		})
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	if err := uow.CorpusEmbeddingRepository().DeleteAll(ctx); err != nil {
		uow.Rollback()
		return 0, err
	}

	if len(embeddings) > 0 {
		if err := uow.CorpusEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
			uow.Rollback()
			return 0, err
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	return len(embeddings), nil
}

// IndexedCount reports how many documents the stored index currently
// holds. Startup compares it with the snapshot size to decide whether an
// initial rebuild is needed.
func (is *indexerService) IndexedCount(ctx context.Context) (int64, error) {
	uow := is.uowFactory.NewUnitOfWork(ctx)
	return uow.CorpusEmbeddingRepository().Count(ctx)
}
