package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"resort-concierge-be/internal/constant"
	"resort-concierge-be/internal/service"
	"resort-concierge-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type fakeResolverService struct {
	answer    string
	err       error
	lastQ     string
	lastPhone string
}

func (f *fakeResolverService) Resolve(ctx context.Context, question, phone string) (string, error) {
	f.lastQ = question
	f.lastPhone = phone
	if f.err != nil {
		return "", f.err
	}
	if strings.TrimSpace(question) == "" {
		return "", service.ErrEmptyQuestion
	}
	return f.answer, nil
}

func newTestApp(resolver service.IResolverService) *fiber.App {
	app := fiber.New()
	NewQueryController(resolver, testLogger{}).RegisterRoutes(app)
	return app
}

func TestLiveness(t *testing.T) {
	app := newTestApp(&fakeResolverService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, constant.LivenessMessage, string(body))
}

func TestQueryReturnsAnswer(t *testing.T) {
	resolver := &fakeResolverService{answer: "Breakfast is served 7-10am."}
	app := newTestApp(resolver)

	req := httptest.NewRequest("POST", "/query",
		strings.NewReader(`{"question": "what time is breakfast?", "phone": "101"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Breakfast is served 7-10am.", body["answer"])
	assert.Equal(t, "what time is breakfast?", resolver.lastQ)
	assert.Equal(t, "101", resolver.lastPhone)
}

func TestChatAliasSharesHandler(t *testing.T) {
	resolver := &fakeResolverService{answer: "The pool is open 8am to 8pm."}
	app := newTestApp(resolver)

	req := httptest.NewRequest("POST", "/chat",
		strings.NewReader(`{"question": "pool hours?"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "The pool is open 8am to 8pm.", body["answer"])
}

func TestQueryMissingQuestion(t *testing.T) {
	app := newTestApp(&fakeResolverService{})

	for _, payload := range []string{`{}`, `{"question": "   "}`, `not json`} {
		req := httptest.NewRequest("POST", "/query", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload: %s", payload)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Missing or invalid 'question' field", body["error"])
		resp.Body.Close()
	}
}

func TestQueryPipelineFailureHidesDetail(t *testing.T) {
	for name, failure := range map[string]error{
		"retrieval":  &rag.RetrievalError{Err: errors.New("index down")},
		"generation": &rag.GenerationError{Err: errors.New("backend timeout")},
	} {
		t.Run(name, func(t *testing.T) {
			app := newTestApp(&fakeResolverService{err: failure})

			req := httptest.NewRequest("POST", "/query",
				strings.NewReader(`{"question": "pool hours?"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, constant.GenericServerError, body["answer"])
		})
	}
}
