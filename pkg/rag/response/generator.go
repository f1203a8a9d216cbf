package response

import (
	"context"
	"fmt"
	"strings"

	"resort-concierge-be/internal/pkg/logger"
	"resort-concierge-be/pkg/llm"
	"resort-concierge-be/pkg/rag"
)

// Generation parameters for the concierge answer. Short, direct answers;
// the prompt forbids meta-commentary so the sanitizer rarely has to fire.
const (
	answerTemperature = 0.4
	answerMaxTokens   = 400
)

// Generator drafts an answer from the admitted context passage and the
// corrected question.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

var _ rag.AnswerGenerator = &Generator{}

func NewGenerator(llmProvider llm.LLMProvider, logger logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate calls the generation backend with the fixed instructional
// prompt and returns the trimmed draft. Backend failures come back as a
// *rag.GenerationError for the orchestrator to catch.
func (g *Generator) Generate(ctx context.Context, contextText, question string) (string, error) {
	prompt := buildAnswerPrompt(contextText, question)

	draft, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(answerTemperature),
		llm.WithMaxTokens(answerMaxTokens),
	)
	if err != nil {
		g.logger.Error("response", "LLM generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", &rag.GenerationError{Err: err}
	}

	return strings.TrimSpace(draft), nil
}

func buildAnswerPrompt(contextText, question string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a helpful and polite hotel assistant. Respond briefly and clearly using only the provided context.\n")
	prompt.WriteString("If the context does not contain the answer, say: \"I'm sorry, Please contact front desk.\"\n\n")

	prompt.WriteString("Important Rules:\n")
	prompt.WriteString("- Use a friendly and professional tone.\n")
	prompt.WriteString("- Answer in 2 or 3 clear sentences.\n")
	prompt.WriteString("- Answer complete and clear sentences.\n")
	prompt.WriteString("- Do NOT repeat or rephrase the question.\n")
	prompt.WriteString("- Do NOT say things like: 'the context says', 'according to the context', 'as an AI', 'sure', or 'the answer is'.\n")
	prompt.WriteString("- Do NOT explain anything—only give a direct answer if available in the context.\n\n")

	prompt.WriteString("Based on the following context, answer the question clearly and naturally in one or two lines.\n\n")
	prompt.WriteString(fmt.Sprintf("Context: %s\n\n", contextText))
	prompt.WriteString(fmt.Sprintf("User Question: %s\n\n", question))
	prompt.WriteString("Answer:")

	return prompt.String()
}
