package response

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resort-concierge-be/pkg/llm"
	"resort-concierge-be/pkg/rag"
)

// stubLLM returns a canned reply (or error) and records the last prompt.
type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestGeneratePromptEmbedsContextAndQuestion(t *testing.T) {
	stub := &stubLLM{reply: "  Breakfast is served 7-10am.  "}
	generator := NewGenerator(stub, noopLogger{})

	got, err := generator.Generate(context.Background(), "Q: what time is breakfast\nA: 7-10am", "what time is breakfast")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Breakfast is served 7-10am." {
		t.Errorf("Generate() = %q, want trimmed draft", got)
	}
	if !strings.Contains(stub.lastPrompt, "Context: Q: what time is breakfast") {
		t.Error("prompt missing context passage")
	}
	if !strings.Contains(stub.lastPrompt, "User Question: what time is breakfast") {
		t.Error("prompt missing user question")
	}
	if !strings.Contains(stub.lastPrompt, "Do NOT repeat or rephrase the question.") {
		t.Error("prompt missing instruction block")
	}
}

func TestGenerateWrapsBackendFailure(t *testing.T) {
	stub := &stubLLM{err: errors.New("backend timeout")}
	generator := NewGenerator(stub, noopLogger{})

	_, err := generator.Generate(context.Background(), "Q: q\nA: a", "q")
	var genErr *rag.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error = %v, want *rag.GenerationError", err)
	}
}

// noopLogger satisfies logger.ILogger for tests.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
