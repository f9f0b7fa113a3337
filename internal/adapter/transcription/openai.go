package transcription

import (
	"context"
	"errors"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAITranscriber implements domain.Transcriber using the OpenAI
// audio transcription API.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAITranscriber creates a new OpenAI-backed transcriber.
func NewOpenAITranscriber(cfg config.OpenAITranscriptionConfig, logger *zap.Logger) (*OpenAITranscriber, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key cannot be empty")
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAITranscriber{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
		logger: logger,
	}, nil
}

// Transcribe uploads the audio file and returns the transcript text.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Info("Transcribing audio via OpenAI", zap.String("audio_path", audioPath))

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", domain.NewTranscriptionFailedError(err)
	}

	return resp.Text, nil
}
