package service

import (
	"fmt"
	"strings"
	"testing"

	"quiztube/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizJSON(t *testing.T) string {
	t.Helper()
	var questions []string
	for i := 0; i < 10; i++ {
		questions = append(questions, fmt.Sprintf(`{
			"question_title": "Question %d?",
			"question_options": ["A%d", "B%d", "C%d", "D%d"],
			"answer": "B%d"
		}`, i+1, i, i, i, i, i))
	}
	return fmt.Sprintf(`{
		"title": "Concurrency in Go",
		"description": "Questions about goroutines and channels",
		"questions": [%s]
	}`, strings.Join(questions, ","))
}

func TestAssembleQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		quiz, err := AssembleQuiz(validQuizJSON(t))

		require.NoError(t, err)
		assert.Equal(t, "Concurrency in Go", quiz.Title)
		assert.Len(t, quiz.Questions, 10)
		assert.Equal(t, "B0", quiz.Questions[0].Answer)
	})

	t.Run("StripsCodeFences", func(t *testing.T) {
		fenced := "```json\n" + validQuizJSON(t) + "\n```"

		quiz, err := AssembleQuiz(fenced)

		require.NoError(t, err)
		assert.Equal(t, "Concurrency in Go", quiz.Title)
	})

	t.Run("EmptyOutput", func(t *testing.T) {
		_, err := AssembleQuiz("   \n")

		assertCode(t, err, domain.CodeEmptyGeneration)
	})

	t.Run("NotJSON", func(t *testing.T) {
		_, err := AssembleQuiz("Sure! Here is your quiz:")

		assertCode(t, err, domain.CodeMalformedGeneration)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		_, err := AssembleQuiz(`{"description": "d", "questions": [{"question_title": "q", "question_options": ["a","b","c","d"], "answer": "a"}]}`)

		assertCode(t, err, domain.CodeMalformedGeneration)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		_, err := AssembleQuiz(`{"title": "t", "description": "d", "questions": []}`)

		assertCode(t, err, domain.CodeMalformedGeneration)
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		_, err := AssembleQuiz(`{"title": "t", "questions": [{"question_title": "q", "question_options": ["a","b","c"], "answer": "a"}]}`)

		assertCode(t, err, domain.CodeMalformedGeneration)
	})

	t.Run("DuplicateOptions", func(t *testing.T) {
		_, err := AssembleQuiz(`{"title": "t", "questions": [{"question_title": "q", "question_options": ["a","a","c","d"], "answer": "a"}]}`)

		assertCode(t, err, domain.CodeMalformedGeneration)
	})

	t.Run("AnswerNotAnOption", func(t *testing.T) {
		_, err := AssembleQuiz(`{"title": "t", "questions": [{"question_title": "q", "question_options": ["a","b","c","d"], "answer": "e"}]}`)

		assertCode(t, err, domain.CodeMalformedGeneration)
	})
}

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}
