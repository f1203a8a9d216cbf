package mapper

import (
	"github.com/pgvector/pgvector-go"

	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/model"
)

type CorpusEmbeddingMapper struct{}

func NewCorpusEmbeddingMapper() *CorpusEmbeddingMapper {
	return &CorpusEmbeddingMapper{}
}

func (m *CorpusEmbeddingMapper) ToEntity(e *model.CorpusEmbedding) *entity.CorpusEmbedding {
	if e == nil {
		return nil
	}
	return &entity.CorpusEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		EntryIndex:     e.EntryIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CorpusEmbeddingMapper) ToModel(e *entity.CorpusEmbedding) *model.CorpusEmbedding {
	if e == nil {
		return nil
	}
	return &model.CorpusEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		EntryIndex:     e.EntryIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CorpusEmbeddingMapper) ToModels(embeddings []*entity.CorpusEmbedding) []*model.CorpusEmbedding {
	models := make([]*model.CorpusEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
