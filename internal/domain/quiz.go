package domain

import (
	"time"
)

// QuestionOptionCount is the number of answer options every question carries.
const QuestionOptionCount = 4

// Quiz is a generated quiz together with its owned questions.
type Quiz struct {
	ID          string
	CreatorID   string
	Title       string
	Description string
	VideoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Questions   []*Question
}

// NewQuiz creates a Quiz owned by the given creator. The creator and the
// canonical video URL are fixed at construction and never change.
func NewQuiz(creatorID, videoURL, title, description string) *Quiz {
	now := time.Now()
	return &Quiz{
		CreatorID:   creatorID,
		VideoURL:    videoURL,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the quiz-level invariants.
func (q *Quiz) Validate() error {
	if q.CreatorID == "" {
		return NewPersistenceRejectedError("quiz has no creator", nil)
	}
	if q.Title == "" {
		return NewPersistenceRejectedError("quiz title is empty", nil)
	}
	if q.VideoURL == "" {
		return NewPersistenceRejectedError("quiz has no video url", nil)
	}
	return nil
}

// Question is a single multiple-choice question owned by a quiz.
type Question struct {
	ID        string
	QuizID    string
	Title     string
	Options   []string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestion creates a Question attached to its parent quiz.
func NewQuestion(quizID, title string, options []string, answer string) *Question {
	now := time.Now()
	return &Question{
		QuizID:    quizID,
		Title:     title,
		Options:   options,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate enforces the question invariants: a non-empty title, exactly
// four distinct options, and an answer that is one of those options.
// Violations are construction errors, never silently coerced.
func (q *Question) Validate() error {
	if q.QuizID == "" {
		return NewPersistenceRejectedError("question has no parent quiz", nil)
	}
	if q.Title == "" {
		return NewPersistenceRejectedError("question title is empty", nil)
	}
	if len(q.Options) != QuestionOptionCount {
		return NewPersistenceRejectedError("question must have exactly 4 options", nil).
			WithContext("option_count", len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	answerFound := false
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return NewPersistenceRejectedError("question options must be distinct", nil).
				WithContext("option", opt)
		}
		seen[opt] = struct{}{}
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return NewPersistenceRejectedError("answer is not one of the options", nil)
	}
	return nil
}

// GeneratedQuiz is the assembled output of the generation stage, not yet
// persisted and not yet owned by anyone.
type GeneratedQuiz struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []GeneratedQuestion `json:"questions"`
}

// GeneratedQuestion mirrors the generation provider's question schema.
type GeneratedQuestion struct {
	Title   string   `json:"question_title"`
	Options []string `json:"question_options"`
	Answer  string   `json:"answer"`
}
