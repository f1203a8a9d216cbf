package service

import (
	"context"
	"errors"
	"strings"

	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/pkg/lexical"
	"resort-concierge-be/pkg/rag"
	"resort-concierge-be/pkg/rag/guard"
	"resort-concierge-be/pkg/rag/response"
)

// ErrEmptyQuestion rejects requests whose question is missing or blank
// after trimming. The controller maps it to a 400.
var ErrEmptyQuestion = errors.New("question must not be empty")

type IResolverService interface {
	Resolve(ctx context.Context, question, phone string) (string, error)
}

// resolverService runs the full answer pipeline: normalize, correct,
// retrieve, validate, generate, sanitize, log. Every resolved request
// produces exactly one exchange row; failed requests produce none.
type resolverService struct {
	corpusRepo     *memory.CorpusRepository
	answerCache    *memory.AnswerCacheRepository
	corrector      *lexical.Corrector
	retriever      rag.Retriever
	validator      *guard.Validator
	generator      rag.AnswerGenerator
	sanitizer      *response.Sanitizer
	chatLogService IChatLogService
	topK           int
	logger         logger.ILogger
}

func NewResolverService(
	corpusRepo *memory.CorpusRepository,
	answerCache *memory.AnswerCacheRepository,
	corrector *lexical.Corrector,
	retriever rag.Retriever,
	validator *guard.Validator,
	generator rag.AnswerGenerator,
	sanitizer *response.Sanitizer,
	chatLogService IChatLogService,
	topK int,
	logger logger.ILogger,
) IResolverService {
	return &resolverService{
		corpusRepo:     corpusRepo,
		answerCache:    answerCache,
		corrector:      corrector,
		retriever:      retriever,
		validator:      validator,
		generator:      generator,
		sanitizer:      sanitizer,
		chatLogService: chatLogService,
		topK:           topK,
		logger:         logger,
	}
}

// Resolve answers a guest question. The returned answer is always safe to
// show; errors are either ErrEmptyQuestion or a *rag.RetrievalError /
// *rag.GenerationError for the controller to translate.
func (s *resolverService) Resolve(ctx context.Context, question, phone string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if strings.TrimSpace(phone) == "" {
		phone = constant.DefaultRequesterId
	}

	normalized := strings.ToLower(question)

	snapshot := s.corpusRepo.Snapshot()
	corrected, match := s.corrector.Correct(normalized, snapshot.Questions())
	if match.Applied {
		s.logger.Info("resolver", "query corrected", map[string]interface{}{
			"original":  normalized,
			"corrected": corrected,
			"score":     match.Score,
		})
	}

	if cached, hit := s.answerCache.Get(corrected); hit {
		s.logger.Debug("resolver", "answer cache hit", map[string]interface{}{
			"question": corrected,
		})
		s.chatLogService.Record(ctx, phone, corrected, cached)
		return cached, nil
	}

	passages, err := s.retriever.Retrieve(ctx, corrected, s.topK)
	if err != nil {
		s.logger.Warn("resolver", "retrieval failed", map[string]interface{}{
			"question": corrected,
			"error":    err.Error(),
		})
		return "", &rag.RetrievalError{Err: err}
	}

	if len(passages) == 0 {
		s.logger.Info("resolver", "no passages retrieved", map[string]interface{}{
			"question": corrected,
		})
		answer := constant.FallbackNoResult
		s.chatLogService.Record(ctx, phone, corrected, answer)
		return answer, nil
	}

	top := passages[0]
	verdict := s.validator.Admit(top.Content, corrected)
	if !verdict.Admitted {
		s.logger.Info("resolver", "context rejected", map[string]interface{}{
			"question": corrected,
			"reason":   verdict.Reason,
		})
		answer := constant.FallbackFrontDesk
		s.chatLogService.Record(ctx, phone, corrected, answer)
		return answer, nil
	}

	draft, err := s.generator.Generate(ctx, top.Content, corrected)
	if err != nil {
		return "", err
	}

	answer, replaced := s.sanitizer.Sanitize(draft)
	if replaced {
		s.logger.Info("resolver", "draft replaced by sanitizer", map[string]interface{}{
			"question": corrected,
		})
	} else {
		s.answerCache.Set(corrected, answer)
	}

	s.chatLogService.Record(ctx, phone, corrected, answer)
	return answer, nil
}
