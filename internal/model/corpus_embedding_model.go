package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type CorpusEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	EntryIndex     int             `gorm:"default:0"`        // position of the source entry in the corpus
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (CorpusEmbedding) TableName() string {
	return "corpus_embeddings"
}
