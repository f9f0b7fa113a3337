package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() *Question {
	return NewQuestion("quiz-1", "What is the capital of France?",
		[]string{"Paris", "Berlin", "Madrid", "Rome"}, "Paris")
}

func TestQuestionValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validQuestion().Validate())
	})

	t.Run("MissingParent", func(t *testing.T) {
		q := validQuestion()
		q.QuizID = ""
		assertPersistenceRejected(t, q.Validate())
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		q := validQuestion()
		q.Title = ""
		assertPersistenceRejected(t, q.Validate())
	})

	t.Run("ThreeOptions", func(t *testing.T) {
		q := validQuestion()
		q.Options = q.Options[:3]
		assertPersistenceRejected(t, q.Validate())
	})

	t.Run("FiveOptions", func(t *testing.T) {
		q := validQuestion()
		q.Options = append(q.Options, "Lisbon")
		assertPersistenceRejected(t, q.Validate())
	})

	t.Run("DuplicateOptions", func(t *testing.T) {
		q := validQuestion()
		q.Options = []string{"Paris", "Paris", "Madrid", "Rome"}
		assertPersistenceRejected(t, q.Validate())
	})

	t.Run("AnswerNotAnOption", func(t *testing.T) {
		q := validQuestion()
		q.Answer = "Lisbon"
		assertPersistenceRejected(t, q.Validate())
	})
}

func TestQuizValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		quiz := NewQuiz("user-1", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "Title", "Desc")
		assert.NoError(t, quiz.Validate())
	})

	t.Run("NoCreator", func(t *testing.T) {
		quiz := NewQuiz("", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "Title", "Desc")
		assertPersistenceRejected(t, quiz.Validate())
	})

	t.Run("NoTitle", func(t *testing.T) {
		quiz := NewQuiz("user-1", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "", "Desc")
		assertPersistenceRejected(t, quiz.Validate())
	})
}

func TestAuthorize(t *testing.T) {
	quiz := &Quiz{ID: "quiz-1", CreatorID: "owner"}

	t.Run("UnauthenticatedBeforeOwnership", func(t *testing.T) {
		err := Authorize("", quiz, ActionDelete)
		var domainErr *DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodeUnauthenticated, domainErr.Code)
	})

	t.Run("OwnerMayActOnOwnQuiz", func(t *testing.T) {
		for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
			assert.NoError(t, Authorize("owner", quiz, action))
		}
	})

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		for _, action := range []Action{ActionRead, ActionUpdate, ActionDelete} {
			err := Authorize("someone-else", quiz, action)
			var domainErr *DomainError
			assert.ErrorAs(t, err, &domainErr)
			assert.Equal(t, CodeForbidden, domainErr.Code)
		}
	})
}

func assertPersistenceRejected(t *testing.T, err error) {
	t.Helper()
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodePersistenceRejected, domainErr.Code)
}
