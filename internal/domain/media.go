package domain

import "context"

// AudioAcquirer downloads the audio track of a video to local storage.
type AudioAcquirer interface {
	// Acquire fetches the best available single audio track for the
	// canonical playback URL and returns the local artifact path.
	Acquire(ctx context.Context, videoURL string) (string, error)
}

// Transcriber converts a local audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
