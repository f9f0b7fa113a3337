package quizgen

import (
	"context"
	"errors"
	"net/http"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiGenerator implements domain.QuizGenerator using the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a new Gemini-backed quiz generator.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key cannot be empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Initialized Gemini quiz generator", zap.String("model", cfg.Model))
	return &GeminiGenerator{client: client, model: cfg.Model, logger: logger}, nil
}

// Generate sends the quiz prompt to Gemini and returns the raw model
// text. Quota exhaustion is reported as a throttling error so callers
// can surface it distinctly from other provider failures.
func (g *GeminiGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(transcript)), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := firstCandidateText(resp)
	if text == "" {
		return "", domain.NewEmptyGenerationError()
	}
	return text, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return domain.NewGenerationThrottledError(err)
	}
	return domain.NewGenerationFailedError(err)
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}
