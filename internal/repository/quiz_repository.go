package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiztube/internal/domain"
	"quiztube/internal/repository/models"
	"quiztube/internal/util"

	"github.com/jmoiron/sqlx"
)

// Column aliases keep Oracle's uppercase result columns matched to the
// lowercase db tags on the models.
const quizColumns = `
	id "id",
	creator_id "creator_id",
	title "title",
	description "description",
	video_url "video_url",
	created_at "created_at",
	updated_at "updated_at"`

const questionColumns = `
	id "id",
	quiz_id "quiz_id",
	question_title "question_title",
	question_options "question_options",
	answer "answer",
	created_at "created_at",
	updated_at "updated_at"`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter.
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz implements domain.QuizRepository. It honors a transaction
// carried in the context.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	now := time.Now()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	query := `INSERT INTO quizzes (id, creator_id, title, description, video_url, created_at, updated_at)
	          VALUES (:id, :creator_id, :title, :description, :video_url, :created_at, :updated_at)`

	executor := GetExecutor(ctx, a.db)
	if _, err := executor.NamedExecContext(ctx, query, toModelQuiz(quiz)); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// CreateQuestion implements domain.QuizRepository.
func (a *QuizDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now

	query := `INSERT INTO questions (id, quiz_id, question_title, question_options, answer, created_at, updated_at)
	          VALUES (:id, :quiz_id, :question_title, :question_options, :answer, :created_at, :updated_at)`

	executor := GetExecutor(ctx, a.db)
	if _, err := executor.NamedExecContext(ctx, query, toModelQuestion(question)); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository. It returns nil, nil when
// the quiz does not exist; the service layer decides how to surface that.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = :1`

	executor := GetExecutor(ctx, a.db)
	if err := executor.GetContext(ctx, &modelQuiz, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}

	questions, err := a.questionsForQuiz(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	quiz := toDomainQuiz(&modelQuiz)
	quiz.Questions = questions
	return quiz, nil
}

// ListQuizzes implements domain.QuizRepository. Quizzes and their
// questions are ordered by creation.
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes ORDER BY created_at, id`

	executor := GetExecutor(ctx, a.db)
	if err := executor.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quiz := toDomainQuiz(&modelQuizzes[i])
		questions, err := a.questionsForQuiz(ctx, executor, quiz.ID)
		if err != nil {
			return nil, err
		}
		quiz.Questions = questions
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// UpdateQuiz implements domain.QuizRepository. Only title, description
// and video_url are updatable; creator and questions are immutable here.
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	quiz.UpdatedAt = time.Now()

	query := `UPDATE quizzes SET
	            title = :title,
	            description = :description,
	            video_url = :video_url,
	            updated_at = :updated_at
	          WHERE id = :id`

	executor := GetExecutor(ctx, a.db)
	result, err := executor.NamedExecContext(ctx, query, toModelQuiz(quiz))
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewQuizNotFoundError(quiz.ID)
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository. Questions are removed
// first so a quiz row never outlives its question set mid-delete; the
// caller wraps both statements in one transaction.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, a.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = :1`, id); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}

	result, err := executor.ExecContext(ctx, `DELETE FROM quizzes WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

func (a *QuizDatabaseAdapter) questionsForQuiz(ctx context.Context, executor DBTX, quizID string) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id = :1 ORDER BY created_at, id`

	if err := executor.SelectContext(ctx, &modelQuestions, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz: %w", err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:          quiz.ID,
		CreatorID:   quiz.CreatorID,
		Title:       quiz.Title,
		Description: quiz.Description,
		VideoURL:    quiz.VideoURL,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		VideoURL:    m.VideoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:        q.ID,
		QuizID:    q.QuizID,
		Title:     q.Title,
		Options:   models.StringSlice(q.Options),
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:        m.ID,
		QuizID:    m.QuizID,
		Title:     m.Title,
		Options:   []string(m.Options),
		Answer:    m.Answer,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
