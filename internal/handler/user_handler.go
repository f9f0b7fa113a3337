package handler

import (
	"quiztube/internal/middleware"
	"quiztube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMyProfile returns the authenticated user's profile.
// @Summary Get my profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "UNAUTHENTICATED", Message: "User not authenticated", Status: fiber.StatusUnauthorized,
		})
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
