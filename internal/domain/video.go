package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDPattern matches the 11-character YouTube video identifier.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// VideoReference is the validated form of a user-supplied video URL.
// It lives only for the duration of one pipeline run; the canonical
// watch URL is the only part that ends up on a persisted quiz.
type VideoReference struct {
	ID string
}

// WatchURL derives the canonical playback URL from the validated id.
// The original input is never echoed past identifier extraction, so a
// spoofed path or tracking payload cannot reach the rest of the pipeline.
func (v VideoReference) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// ParseVideoURL validates a raw URL as a YouTube video reference and
// extracts its canonical identifier. Only the short-link host (id in the
// path) and the watch hosts (id in the "v" query parameter) are accepted.
func ParseVideoURL(raw string) (VideoReference, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return VideoReference{}, NewInvalidReferenceError("not a recognized video host")
	}

	var videoID string
	switch strings.ToLower(parsed.Hostname()) {
	case "youtu.be":
		videoID = strings.TrimPrefix(parsed.Path, "/")
	case "youtube.com", "www.youtube.com", "m.youtube.com":
		videoID = parsed.Query().Get("v")
	default:
		return VideoReference{}, NewInvalidReferenceError("not a recognized video host")
	}

	if !videoIDPattern.MatchString(videoID) {
		return VideoReference{}, NewInvalidReferenceError("malformed video id")
	}

	return VideoReference{ID: videoID}, nil
}
