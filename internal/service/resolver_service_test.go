package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/dto"
	"resort-concierge-be/internal/repository/memory"
	"resort-concierge-be/pkg/lexical"
	"resort-concierge-be/pkg/rag"
	"resort-concierge-be/pkg/rag/guard"
	"resort-concierge-be/pkg/rag/response"
	"resort-concierge-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type fakeRetriever struct {
	passages []store.Passage
	err      error
	lastQ    string
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, topK int) ([]store.Passage, error) {
	f.lastQ = query
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

type fakeGenerator struct {
	draft string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, contextText, question string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", &rag.GenerationError{Err: f.err}
	}
	return f.draft, nil
}

type recordedExchange struct {
	phone    string
	question string
	answer   string
}

type fakeChatLogService struct {
	records []recordedExchange
}

func (f *fakeChatLogService) Record(ctx context.Context, phone, question, answer string) {
	f.records = append(f.records, recordedExchange{phone: phone, question: question, answer: answer})
}

func (f *fakeChatLogService) GetLogs(ctx context.Context, limit, offset int, phone string) (*dto.GetChatLogsResponse, error) {
	return &dto.GetChatLogsResponse{}, nil
}

func writeCorpusFile(t *testing.T, lines string) *memory.CorpusRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))
	repo := memory.NewCorpusRepository(path)
	require.NoError(t, repo.Load())
	return repo
}

func newTestResolver(
	t *testing.T,
	retriever rag.Retriever,
	generator rag.AnswerGenerator,
	logs *fakeChatLogService,
) IResolverService {
	t.Helper()
	corpusRepo := writeCorpusFile(t,
		`{"question": "What time is breakfast served?", "answer": "Breakfast is served 7-10am in the lobby restaurant."}
{"question": "Do you have a swimming pool?", "answer": "Yes, the pool is open 8am to 8pm."}
`)
	return NewResolverService(
		corpusRepo,
		memory.NewAnswerCacheRepository(0),
		lexical.NewCorrector(80),
		retriever,
		guard.NewValidator(),
		generator,
		response.NewSanitizer(constant.DefaultDeniedPhrases, constant.FallbackFrontDesk),
		logs,
		5,
		testLogger{},
	)
}

func TestResolveCorrectsAndAnswers(t *testing.T) {
	retriever := &fakeRetriever{passages: []store.Passage{{
		ID:      "p1",
		Content: "Q: What time is breakfast served?\nA: Breakfast is served 7-10am in the lobby restaurant.",
		Score:   0.92,
	}}}
	generator := &fakeGenerator{draft: "Breakfast is served from 7-10am in the lobby restaurant."}
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, retriever, generator, logs)

	answer, err := resolver.Resolve(context.Background(), "what time is brekfast served?", "101")

	require.NoError(t, err)
	assert.Contains(t, answer, "7-10am")
	// the misspelled query snapped onto the known corpus question
	assert.Equal(t, "what time is breakfast served?", retriever.lastQ)
	require.Len(t, logs.records, 1)
	assert.Equal(t, "101", logs.records[0].phone)
	assert.Equal(t, "what time is breakfast served?", logs.records[0].question)
	assert.Equal(t, answer, logs.records[0].answer)
}

func TestResolveEmptyQuestion(t *testing.T) {
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, &fakeRetriever{}, &fakeGenerator{}, logs)

	_, err := resolver.Resolve(context.Background(), "   ", "101")

	require.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, logs.records)
}

func TestResolveNoPassagesFallsBack(t *testing.T) {
	logs := &fakeChatLogService{}
	generator := &fakeGenerator{draft: "should not be used"}
	resolver := newTestResolver(t, &fakeRetriever{}, generator, logs)

	answer, err := resolver.Resolve(context.Background(), "is there a shuttle to the airport", "")

	require.NoError(t, err)
	assert.Equal(t, constant.FallbackNoResult, answer)
	assert.Zero(t, generator.calls)
	require.Len(t, logs.records, 1)
	assert.Equal(t, constant.DefaultRequesterId, logs.records[0].phone)
}

func TestResolveRejectedContextFallsBack(t *testing.T) {
	// passage lacks the corpus prefix, so validation must reject it
	retriever := &fakeRetriever{passages: []store.Passage{{
		ID:      "p1",
		Content: "The pool is open 8am to 8pm.",
		Score:   0.5,
	}}}
	generator := &fakeGenerator{draft: "should not be used"}
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, retriever, generator, logs)

	answer, err := resolver.Resolve(context.Background(), "do you have a swimming pool?", "204")

	require.NoError(t, err)
	assert.Equal(t, constant.FallbackFrontDesk, answer)
	assert.Zero(t, generator.calls)
	require.Len(t, logs.records, 1)
	assert.Equal(t, constant.FallbackFrontDesk, logs.records[0].answer)
}

func TestResolveSanitizerReplacesHedgingDraft(t *testing.T) {
	retriever := &fakeRetriever{passages: []store.Passage{{
		ID:      "p1",
		Content: "Q: Do you have a swimming pool?\nA: Yes, the pool is open 8am to 8pm.",
		Score:   0.88,
	}}}
	generator := &fakeGenerator{draft: "The context does not mention pool hours."}
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, retriever, generator, logs)

	answer, err := resolver.Resolve(context.Background(), "do you have a swimming pool?", "204")

	require.NoError(t, err)
	assert.Equal(t, constant.FallbackFrontDesk, answer)
	require.Len(t, logs.records, 1)
}

func TestResolveRetrievalErrorDoesNotLog(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("index unavailable")}
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, retriever, &fakeGenerator{}, logs)

	_, err := resolver.Resolve(context.Background(), "do you have a swimming pool?", "204")

	var retrievalErr *rag.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Empty(t, logs.records)
}

func TestResolveGenerationErrorDoesNotLog(t *testing.T) {
	retriever := &fakeRetriever{passages: []store.Passage{{
		ID:      "p1",
		Content: "Q: Do you have a swimming pool?\nA: Yes, the pool is open 8am to 8pm.",
		Score:   0.88,
	}}}
	generator := &fakeGenerator{err: errors.New("backend timeout")}
	logs := &fakeChatLogService{}
	resolver := newTestResolver(t, retriever, generator, logs)

	_, err := resolver.Resolve(context.Background(), "do you have a swimming pool?", "204")

	var generationErr *rag.GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Empty(t, logs.records)
}
