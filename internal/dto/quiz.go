package dto

import (
	"time"

	"quiztube/internal/domain"
)

// CreateQuizRequest is the body for creating a quiz from a video URL
// @Description Request to generate a quiz from a YouTube video
type CreateQuizRequest struct {
	URL string `json:"url" example:"https://www.youtube.com/watch?v=ok-plXXHlWw"`
}

// UpdateQuizRequest is the body for a partial quiz update. Nil fields
// are left unchanged.
// @Description Request to update quiz metadata
type UpdateQuizRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}

// QuestionResponse represents a single question in the API response
// @Description Multiple-choice question information
type QuestionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"question_title"`
	Options   []string  `json:"question_options"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information with nested questions
type QuizResponse struct {
	ID          string             `json:"id"`
	CreatorID   string             `json:"creator_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	VideoURL    string             `json:"video_url"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Questions   []QuestionResponse `json:"questions"`
}

// QuizListResponse wraps the quiz collection
// @Description List of quizzes
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// ErrorResponse is the standard error body
// @Description Error information
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewQuizResponse maps a domain quiz to its API representation.
func NewQuizResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuestionResponse{
			ID:        q.ID,
			Title:     q.Title,
			Options:   q.Options,
			Answer:    q.Answer,
			CreatedAt: q.CreatedAt,
			UpdatedAt: q.UpdatedAt,
		})
	}
	return QuizResponse{
		ID:          quiz.ID,
		CreatorID:   quiz.CreatorID,
		Title:       quiz.Title,
		Description: quiz.Description,
		VideoURL:    quiz.VideoURL,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
		Questions:   questions,
	}
}
