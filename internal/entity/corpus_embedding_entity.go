package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorpusEmbedding is one indexed corpus document with its vector.
type CorpusEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	EntryIndex     int
	CreatedAt      time.Time
}
