package quizgen

import (
	"context"
	"fmt"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"go.uber.org/zap"
)

// New creates a QuizGenerator based on the configured source.
func New(ctx context.Context, cfg config.GenerationConfig, logger *zap.Logger) (domain.QuizGenerator, error) {
	switch cfg.Source {
	case "gemini":
		return NewGeminiGenerator(ctx, cfg.Gemini, logger)
	case "ollama":
		return NewOllamaGenerator(cfg.Ollama, logger)
	default:
		return nil, fmt.Errorf("unsupported generation source: %s", cfg.Source)
	}
}
