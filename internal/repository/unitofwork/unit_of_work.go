package unitofwork

import (
	"context"

	"resort-concierge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatLogRepository() contract.ChatLogRepository
	CorpusEmbeddingRepository() contract.CorpusEmbeddingRepository
}
