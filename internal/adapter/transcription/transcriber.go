// Package transcription provides speech-to-text behind the
// domain.Transcriber port. Two backends are supported: a local
// whisper.cpp binary invoked as a subprocess, and the OpenAI audio API.
package transcription

import (
	"fmt"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"go.uber.org/zap"
)

// New creates a Transcriber based on the configured source.
func New(cfg config.TranscriptionConfig, logger *zap.Logger) (domain.Transcriber, error) {
	switch cfg.Source {
	case "whisper_cpp":
		return NewWhisperCPPTranscriber(cfg.WhisperCPP, logger), nil
	case "openai":
		return NewOpenAITranscriber(cfg.OpenAI, logger)
	default:
		return nil, fmt.Errorf("unsupported transcription source: %s", cfg.Source)
	}
}
