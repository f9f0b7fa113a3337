package acquisition

import (
	"context"
	"testing"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCommandArgs(t *testing.T) {
	acquirer := &YTDLPAcquirer{binaryPath: "yt-dlp", tempDir: "/tmp"}
	args := acquirer.commandArgs("https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	assert.Contains(t, args, "--no-playlist")
	assert.Contains(t, args, "bestaudio[ext=m4a]/bestaudio")
	assert.Contains(t, args, "--no-simulate")
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", args[len(args)-1])
}

func TestAcquireNormalizesProviderFailure(t *testing.T) {
	acquirer := NewYTDLPAcquirer(config.MediaConfig{
		YTDLPPath: "/nonexistent/yt-dlp",
		TempDir:   t.TempDir(),
	}, zap.NewNop())

	_, err := acquirer.Acquire(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeAcquisitionFailed, domainErr.Code)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "ERROR: video unavailable", lastLine("WARNING: something\nERROR: video unavailable\n"))
	assert.Equal(t, "", lastLine(""))
}
