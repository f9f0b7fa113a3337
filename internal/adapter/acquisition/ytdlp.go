// Package acquisition downloads the audio track of a video by shelling
// out to yt-dlp.
package acquisition

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"quiztube/internal/config"
	"quiztube/internal/domain"

	"go.uber.org/zap"
)

// YTDLPAcquirer implements domain.AudioAcquirer using the yt-dlp binary.
type YTDLPAcquirer struct {
	binaryPath string
	tempDir    string
	logger     *zap.Logger
}

// NewYTDLPAcquirer creates a new yt-dlp backed acquirer.
func NewYTDLPAcquirer(cfg config.MediaConfig, logger *zap.Logger) domain.AudioAcquirer {
	return &YTDLPAcquirer{
		binaryPath: cfg.YTDLPPath,
		tempDir:    cfg.TempDir,
		logger:     logger,
	}
}

// Acquire downloads the best available single audio track for videoURL,
// normalized to m4a, and returns the local file path. Every provider
// failure is normalized to an ACQUISITION_FAILED domain error so the
// orchestrator never inspects yt-dlp specifics. No retries happen here;
// repeated fetches are costly and leave temp files behind, so retrying
// is an operator decision.
func (a *YTDLPAcquirer) Acquire(ctx context.Context, videoURL string) (string, error) {
	args := a.commandArgs(videoURL)

	cmd := exec.CommandContext(ctx, a.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	a.logger.Info("Downloading audio", zap.String("video_url", videoURL))

	if err := cmd.Run(); err != nil {
		return "", domain.NewAcquisitionFailedError(
			fmt.Errorf("yt-dlp: %w: %s", err, lastLine(stderr.String())))
	}

	audioPath := strings.TrimSpace(stdout.String())
	if audioPath == "" {
		return "", domain.NewAcquisitionFailedError(errors.New("yt-dlp did not report an output file"))
	}
	if _, err := os.Stat(audioPath); err != nil {
		return "", domain.NewAcquisitionFailedError(fmt.Errorf("downloaded file missing: %w", err))
	}

	a.logger.Info("Audio downloaded", zap.String("audio_path", audioPath))
	return audioPath, nil
}

func (a *YTDLPAcquirer) commandArgs(videoURL string) []string {
	return []string{
		"-f", "bestaudio[ext=m4a]/bestaudio",
		"--no-playlist",
		"-x", "--audio-format", "m4a",
		"-o", filepath.Join(a.tempDir, "%(id)s.%(ext)s"),
		"--print", "after_move:filepath",
		"--no-simulate",
		"--quiet",
		videoURL,
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
