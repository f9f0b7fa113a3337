package handler

import (
	"quiztube/internal/dto"
	"quiztube/internal/logger"
	"quiztube/internal/middleware"
	"quiztube/internal/service"
	"quiztube/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests. It parses and
// validates requests and delegates to the service; errors are returned
// upward for the centralized error handler to map.
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   quizService,
		validator: validation.NewValidator(),
	}
}

func principalID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return userID
}

// CreateQuiz godoc
// @Summary Generate a quiz from a YouTube video
// @Description Downloads the video audio, transcribes it and generates a 10-question quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body dto.CreateQuizRequest true "Video URL"
// @Security ApiKeyAuth
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid URL or malformed generation"
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse "LLM quota exhausted"
// @Failure 502 {object} middleware.ErrorResponse "Acquisition, transcription or generation failure"
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse create quiz request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuizFromVideo(c.Context(), principalID(c), req.URL)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzes(c.Context(), principalID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetQuiz(c.Context(), principalID(c), quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateQuiz godoc
// @Summary Update quiz metadata
// @Description Partially updates title, description or video URL. Creator only.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param body body dto.UpdateQuizRequest true "Fields to update"
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [patch]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse update quiz request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateUpdateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateQuiz(c.Context(), principalID(c), quizID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Removes the quiz and its questions. Creator only.
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse "Caller is not the creator"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	if err := h.service.DeleteQuiz(c.Context(), principalID(c), quizID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
