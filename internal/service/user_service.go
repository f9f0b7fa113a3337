package service

import (
	"context"
	"fmt"

	"quiztube/internal/domain"
	"quiztube/internal/dto"
	"quiztube/internal/repository"
)

// UserService exposes user profile operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.CodeNotFound, fmt.Sprintf("user %s not found", userID), nil)
	}

	return &dto.UserProfileResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name.String,
		ProfilePictureURL: user.ProfilePictureURL.String,
	}, nil
}
