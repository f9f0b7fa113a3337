package transcription

import (
	"testing"

	"quiztube/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("WhisperCPP", func(t *testing.T) {
		tr, err := New(config.TranscriptionConfig{
			Source:     "whisper_cpp",
			WhisperCPP: config.WhisperCPPConfig{BinaryPath: "whisper-cli", ModelPath: "ggml-tiny.bin"},
		}, zap.NewNop())
		assert.NoError(t, err)
		assert.IsType(t, &WhisperCPPTranscriber{}, tr)
	})

	t.Run("OpenAI", func(t *testing.T) {
		tr, err := New(config.TranscriptionConfig{
			Source: "openai",
			OpenAI: config.OpenAITranscriptionConfig{APIKey: "sk-test"},
		}, zap.NewNop())
		assert.NoError(t, err)
		assert.IsType(t, &OpenAITranscriber{}, tr)
	})

	t.Run("OpenAIWithoutKey", func(t *testing.T) {
		_, err := New(config.TranscriptionConfig{Source: "openai"}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, err := New(config.TranscriptionConfig{Source: "carrier-pigeon"}, zap.NewNop())
		assert.Error(t, err)
	})
}
