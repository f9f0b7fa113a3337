package transcription

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"go.uber.org/zap"
)

// WhisperCPPTranscriber implements domain.Transcriber by invoking the
// whisper.cpp CLI. A small, fast model is expected: latency matters more
// than accuracy for quiz generation.
type WhisperCPPTranscriber struct {
	binaryPath string
	modelPath  string
	logger     *zap.Logger
}

// NewWhisperCPPTranscriber creates a new local whisper.cpp transcriber.
func NewWhisperCPPTranscriber(cfg config.WhisperCPPConfig, logger *zap.Logger) *WhisperCPPTranscriber {
	return &WhisperCPPTranscriber{
		binaryPath: cfg.BinaryPath,
		modelPath:  cfg.ModelPath,
		logger:     logger,
	}
}

// Transcribe runs whisper.cpp on the audio file and returns its stdout
// as the transcript. The provider error is kept as the cause: failures
// here are rare and diagnostic detail matters more than normalization.
func (t *WhisperCPPTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := []string{
		"-m", t.modelPath,
		"-f", audioPath,
		"--no-timestamps",
	}

	cmd := exec.CommandContext(ctx, t.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	t.logger.Info("Transcribing audio", zap.String("audio_path", audioPath))

	if err := cmd.Run(); err != nil {
		return "", domain.NewTranscriptionFailedError(
			fmt.Errorf("whisper: %w: %s", err, strings.TrimSpace(stderr.String())))
	}

	transcript := strings.TrimSpace(stdout.String())
	t.logger.Info("Transcription complete", zap.Int("transcript_chars", len(transcript)))
	return transcript, nil
}
