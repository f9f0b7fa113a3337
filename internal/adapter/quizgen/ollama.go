package quizgen

import (
	"context"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaGenerator implements domain.QuizGenerator against a local
// ollama server. Useful for development without a Gemini key.
type OllamaGenerator struct {
	llm    *ollama.LLM
	logger *zap.Logger
}

// NewOllamaGenerator creates a new ollama-backed quiz generator.
func NewOllamaGenerator(cfg config.OllamaConfig, logger *zap.Logger) (*OllamaGenerator, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("Initialized ollama quiz generator",
		zap.String("server_url", cfg.ServerURL), zap.String("model", cfg.Model))
	return &OllamaGenerator{llm: llm, logger: logger}, nil
}

// Generate sends the quiz prompt to ollama and returns the raw
// completion. An empty completion is reported the same way as an
// empty Gemini candidate.
func (g *OllamaGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, BuildPrompt(transcript))
	if err != nil {
		return "", domain.NewGenerationFailedError(err)
	}
	if text == "" {
		return "", domain.NewEmptyGenerationError()
	}
	return text, nil
}
