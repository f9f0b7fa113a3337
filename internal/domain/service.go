package domain

import "context"

// QuizRepository defines the interface for quiz persistence.
// Implementations must honor a transaction carried in the context
// (see repository.GetExecutor) so the orchestrator can persist a quiz
// and its questions as one unit.
type QuizRepository interface {
	// CreateQuiz persists a new quiz row and assigns its ID.
	CreateQuiz(ctx context.Context, quiz *Quiz) error

	// CreateQuestion persists a question attached to its parent quiz.
	CreateQuestion(ctx context.Context, question *Question) error

	// GetQuizByID returns the quiz with its questions ordered by
	// creation, or nil when no such quiz exists.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// ListQuizzes returns all quizzes with nested questions.
	ListQuizzes(ctx context.Context) ([]*Quiz, error)

	// UpdateQuiz persists changes to title, description and video URL.
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// DeleteQuiz removes the quiz and its questions.
	DeleteQuiz(ctx context.Context, id string) error
}

// TransactionManager runs a function within a database transaction.
// The transaction is committed when fn returns nil and rolled back on
// error or panic, on every exit path.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
