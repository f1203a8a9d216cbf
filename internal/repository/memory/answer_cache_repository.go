package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AnswerCacheRepository memoizes generated answers per corrected question.
// A hit skips retrieval and generation; the exchange log is still written
// for every request. TTL <= 0 disables caching entirely.
type AnswerCacheRepository struct {
	cache *cache.Cache
}

func NewAnswerCacheRepository(ttl time.Duration) *AnswerCacheRepository {
	if ttl <= 0 {
		return &AnswerCacheRepository{}
	}
	return &AnswerCacheRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *AnswerCacheRepository) Get(question string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	if x, found := r.cache.Get(question); found {
		return x.(string), true
	}
	return "", false
}

func (r *AnswerCacheRepository) Set(question, answer string) {
	if r.cache == nil {
		return
	}
	r.cache.Set(question, answer, cache.DefaultExpiration)
}
