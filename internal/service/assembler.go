package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"quiztube/internal/domain"
)

// AssembleQuiz parses the raw LLM output into a structured quiz.
// Models sometimes wrap the JSON in markdown code fences despite being
// told not to, so fences are stripped before decoding. Any structural
// problem is reported as malformed generation naming the offending
// field; the raw text is never persisted.
func AssembleQuiz(raw string) (*domain.GeneratedQuiz, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, domain.NewEmptyGenerationError()
	}

	var quiz domain.GeneratedQuiz
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return nil, domain.NewMalformedGenerationError("generated text is not valid JSON", err)
	}

	if quiz.Title == "" {
		return nil, domain.NewMalformedGenerationError("generated quiz is missing a title", nil)
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.NewMalformedGenerationError("generated quiz has no questions", nil)
	}

	for i, q := range quiz.Questions {
		if err := validateGeneratedQuestion(i, q); err != nil {
			return nil, err
		}
	}

	return &quiz, nil
}

func validateGeneratedQuestion(index int, q domain.GeneratedQuestion) error {
	if q.Title == "" {
		return domain.NewMalformedGenerationError(
			fmt.Sprintf("question %d is missing question_title", index+1), nil)
	}
	if len(q.Options) != domain.QuestionOptionCount {
		return domain.NewMalformedGenerationError(
			fmt.Sprintf("question %d has %d question_options, want %d", index+1, len(q.Options), domain.QuestionOptionCount), nil)
	}
	seen := make(map[string]struct{}, len(q.Options))
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return domain.NewMalformedGenerationError(
				fmt.Sprintf("question %d has an empty option", index+1), nil)
		}
		if _, dup := seen[opt]; dup {
			return domain.NewMalformedGenerationError(
				fmt.Sprintf("question %d has duplicate option %q", index+1, opt), nil)
		}
		seen[opt] = struct{}{}
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return domain.NewMalformedGenerationError(
			fmt.Sprintf("question %d answer is not one of its question_options", index+1), nil)
	}
	return nil
}

// stripCodeFences removes a leading ```json (or bare ```) fence and a
// trailing ``` fence, if present.
func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
