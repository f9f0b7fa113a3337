package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVideoURL(t *testing.T) {
	t.Run("WatchURL", func(t *testing.T) {
		ref, err := ParseVideoURL("https://www.youtube.com/watch?v=ok-plXXHlWw")
		assert.NoError(t, err)
		assert.Equal(t, "ok-plXXHlWw", ref.ID)
		assert.Equal(t, "https://www.youtube.com/watch?v=ok-plXXHlWw", ref.WatchURL())
	})

	t.Run("ShortLink", func(t *testing.T) {
		ref, err := ParseVideoURL("https://youtu.be/dQw4w9WgXcQ")
		assert.NoError(t, err)
		assert.Equal(t, "dQw4w9WgXcQ", ref.ID)
	})

	t.Run("MobileHost", func(t *testing.T) {
		ref, err := ParseVideoURL("https://m.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
		assert.NoError(t, err)
		assert.Equal(t, "dQw4w9WgXcQ", ref.ID)
	})

	t.Run("CanonicalURLIgnoresInputDecoration", func(t *testing.T) {
		ref, err := ParseVideoURL("http://youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&feature=share")
		assert.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ref.WatchURL())
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := ParseVideoURL("https://www.youtube.com/watch?v=")
		assertInvalidReference(t, err, "malformed video id")
	})

	t.Run("ShortIDRejected", func(t *testing.T) {
		_, err := ParseVideoURL("https://youtu.be/short")
		assertInvalidReference(t, err, "malformed video id")
	})

	t.Run("TwelveCharIDRejected", func(t *testing.T) {
		_, err := ParseVideoURL("https://youtu.be/dQw4w9WgXcQQ")
		assertInvalidReference(t, err, "malformed video id")
	})

	t.Run("IllegalCharactersRejected", func(t *testing.T) {
		_, err := ParseVideoURL("https://www.youtube.com/watch?v=dQw4w9Wg.cQ")
		assertInvalidReference(t, err, "malformed video id")
	})

	t.Run("ForeignHostRejected", func(t *testing.T) {
		_, err := ParseVideoURL("https://vimeo.com/watch?v=dQw4w9WgXcQ")
		assertInvalidReference(t, err, "not a recognized video host")
	})

	t.Run("NotAURL", func(t *testing.T) {
		_, err := ParseVideoURL("definitely not a url")
		assertInvalidReference(t, err, "not a recognized video host")
	})
}

func assertInvalidReference(t *testing.T, err error, message string) {
	t.Helper()
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeInvalidReference, domainErr.Code)
	assert.Equal(t, message, domainErr.Message)
}
