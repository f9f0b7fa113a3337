package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiztube/internal/config"
	"quiztube/internal/domain"
	"quiztube/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock type for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "testsecretkeydontuseinproduction32bytes!",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	cfg := newAuthTestConfig()
	cfg.JWT.SecretKey = "too-short"

	_, err := NewAuthService(new(MockUserRepository), cfg)

	assert.Error(t, err)
}

func TestAuthService_CreateAndValidateJWT(t *testing.T) {
	authService, err := NewAuthService(new(MockUserRepository), newAuthTestConfig())
	require.NoError(t, err)

	user := &models.User{ID: "01HUSER000000000000000000A"}
	tokenString, err := authService.CreateJWT(context.Background(), user, 15*time.Minute, tokenTypeAccess)
	require.NoError(t, err)

	claims, err := authService.ValidateJWT(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
}

func TestAuthService_ValidateJWT_RejectsGarbage(t *testing.T) {
	authService, err := NewAuthService(new(MockUserRepository), newAuthTestConfig())
	require.NoError(t, err)

	_, err = authService.ValidateJWT(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("UserNotFound", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		authService, err := NewAuthService(mockUserRepo, newAuthTestConfig())
		require.NoError(t, err)

		user := &models.User{ID: "01HUSER000000000000000000A"}
		refreshToken, err := authService.CreateJWT(context.Background(), user, time.Hour, tokenTypeRefresh)
		require.NoError(t, err)

		mockUserRepo.On("GetUserByID", mock.Anything, user.ID).Return(nil, nil)

		_, _, err = authService.RefreshToken(context.Background(), refreshToken)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		authService, err := NewAuthService(mockUserRepo, newAuthTestConfig())
		require.NoError(t, err)

		user := &models.User{ID: "01HUSER000000000000000000A"}
		refreshToken, err := authService.CreateJWT(context.Background(), user, time.Hour, tokenTypeRefresh)
		require.NoError(t, err)

		repoErr := errors.New("some database connection error")
		mockUserRepo.On("GetUserByID", mock.Anything, user.ID).Return(nil, repoErr)

		_, _, err = authService.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("AccessTokenIsRejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		authService, err := NewAuthService(mockUserRepo, newAuthTestConfig())
		require.NoError(t, err)

		user := &models.User{ID: "01HUSER000000000000000000A"}
		accessToken, err := authService.CreateJWT(context.Background(), user, time.Hour, tokenTypeAccess)
		require.NoError(t, err)

		_, _, err = authService.RefreshToken(context.Background(), accessToken)

		assert.Error(t, err)
		mockUserRepo.AssertNotCalled(t, "GetUserByID")
	})
}

func TestAuthService_TokenEncryptionRoundTrip(t *testing.T) {
	authService, err := NewAuthService(new(MockUserRepository), newAuthTestConfig())
	require.NoError(t, err)

	encrypted, err := authService.EncryptToken("ya29.someGoogleAccessToken")
	require.NoError(t, err)
	assert.NotEqual(t, "ya29.someGoogleAccessToken", encrypted)

	decrypted, err := authService.DecryptToken(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "ya29.someGoogleAccessToken", decrypted)
}

func TestAuthService_DecryptToken_RejectsTampering(t *testing.T) {
	authService, err := NewAuthService(new(MockUserRepository), newAuthTestConfig())
	require.NoError(t, err)

	_, err = authService.DecryptToken("bm90LWEtcmVhbC1jaXBoZXJ0ZXh0")

	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
