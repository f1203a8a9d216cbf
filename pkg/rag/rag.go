package rag

import (
	"context"
	"fmt"

	"resort-concierge-be/pkg/store"
)

// Retriever returns ranked context passages for a query from an externally
// maintained semantic index.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]store.Passage, error)
}

// AnswerGenerator produces a draft answer from a context passage and the
// user's question via an external generation backend.
type AnswerGenerator interface {
	Generate(ctx context.Context, contextText, question string) (string, error)
}

// RetrievalError wraps a failure of the semantic retriever. The
// orchestrator catches it and degrades to the generic server response
// instead of crashing the request.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// GenerationError wraps a failure of the generation backend (timeout,
// backend error). It is surfaced as the generic server response and the
// exchange is not logged.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
