package quizgen

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"quiztube/internal/domain"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("  the speaker explains goroutines  ")

	assert.True(t, strings.HasSuffix(prompt, "the speaker explains goroutines"))
	assert.Contains(t, prompt, "exactly 10 questions")
	assert.Contains(t, prompt, "exactly 4 distinct options")
	assert.Contains(t, prompt, `"question_options"`)
	assert.Contains(t, prompt, "without markdown code fences")
}

func TestClassifyGeminiError(t *testing.T) {
	t.Run("QuotaExhausted", func(t *testing.T) {
		err := classifyGeminiError(genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"})

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationThrottled, domainErr.Code)
	})

	t.Run("OtherAPIError", func(t *testing.T) {
		err := classifyGeminiError(genai.APIError{Code: http.StatusInternalServerError, Message: "boom"})

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})

	t.Run("TransportError", func(t *testing.T) {
		err := classifyGeminiError(errors.New("connection refused"))

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})
}

func TestFirstCandidateText(t *testing.T) {
	t.Run("NilResponse", func(t *testing.T) {
		assert.Empty(t, firstCandidateText(nil))
	})

	t.Run("NoCandidates", func(t *testing.T) {
		assert.Empty(t, firstCandidateText(&genai.GenerateContentResponse{}))
	})

	t.Run("NilContent", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}
		assert.Empty(t, firstCandidateText(resp))
	})

	t.Run("TextPart", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: `{"title":"Go"}`}},
				},
			}},
		}
		assert.Equal(t, `{"title":"Go"}`, firstCandidateText(resp))
	})
}
