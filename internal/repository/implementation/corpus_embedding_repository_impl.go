package implementation

import (
	"context"

	"resort-concierge-be/internal/entity"
	"resort-concierge-be/internal/mapper"
	"resort-concierge-be/internal/model"
	"resort-concierge-be/internal/repository/contract"
	"resort-concierge-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CorpusEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CorpusEmbeddingMapper
}

func NewCorpusEmbeddingRepository(db *gorm.DB) contract.CorpusEmbeddingRepository {
	return &CorpusEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewCorpusEmbeddingMapper(),
	}
}

func (r *CorpusEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CorpusEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.CorpusEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := r.mapper.ToModels(embeddings)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *CorpusEmbeddingRepositoryImpl) DeleteAll(ctx context.Context) error {
	// Hard delete: the index is rebuilt wholesale from the corpus snapshot.
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.CorpusEmbedding{}).Error
}

func (r *CorpusEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.CorpusEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore ranks corpus documents by cosine similarity.
// pgvector's <=> operator is cosine distance, so similarity = 1 - distance.
func (r *CorpusEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredCorpusEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.CorpusEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("corpus_embeddings").
		Select("corpus_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredCorpusEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredCorpusEmbedding{
			Embedding:  r.mapper.ToEntity(&res.CorpusEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
