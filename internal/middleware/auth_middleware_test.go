package middleware_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"quiztube/internal/dto"
	"quiztube/internal/middleware"
	"quiztube/internal/repository/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock of service.AuthService; only ValidateJWT matters here.
type manualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *manualMockAuthService) GetGoogleLoginURL(state string) string {
	panic("not implemented in mock")
}

func (m *manualMockAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *models.User, error) {
	panic("not implemented in mock")
}

func (m *manualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *manualMockAuthService) CreateJWT(ctx context.Context, user *models.User, ttl time.Duration, tokenType string) (string, error) {
	panic("not implemented in mock")
}

func (m *manualMockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	panic("not implemented in mock")
}

func (m *manualMockAuthService) EncryptToken(token string) (string, error) {
	panic("not implemented in mock")
}

func (m *manualMockAuthService) DecryptToken(encryptedToken string) (string, error) {
	panic("not implemented in mock")
}

func accessClaims(userID string) *dto.AuthClaims {
	return &dto.AuthClaims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthTestApp(handler fiber.Handler, probe func(c *fiber.Ctx) error) *fiber.App {
	app := fiber.New()
	app.Get("/probe", handler, probe)
	return app
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		validateJWT    func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "NoAuthHeader",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "WrongScheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "ValidAccessToken",
			authHeader: "Bearer valid_access_token",
			validateJWT: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return accessClaims("user123"), nil
			},
			expectedStatus: fiber.StatusOK,
			expectedUserID: "user123",
		},
		{
			name:       "InvalidToken",
			authHeader: "Bearer garbage",
			validateJWT: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return nil, errors.New("invalid jwt token")
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "RefreshTokenRejected",
			authHeader: "Bearer refresh_token",
			validateJWT: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				claims := accessClaims("user123")
				claims.TokenType = "refresh"
				return claims, nil
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &manualMockAuthService{ValidateJWTFunc: tt.validateJWT}
			var seenUserID string
			app := newAuthTestApp(middleware.Protected(mockSvc), func(c *fiber.Ctx) error {
				seenUserID, _ = c.Locals(middleware.UserIDKey).(string)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/probe", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedUserID != "" {
				assert.Equal(t, tt.expectedUserID, seenUserID)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("AnonymousProceeds", func(t *testing.T) {
		app := newAuthTestApp(middleware.OptionalAuth(&manualMockAuthService{}), func(c *fiber.Ctx) error {
			assert.Nil(t, c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidTokenProceedsAnonymously", func(t *testing.T) {
		mockSvc := &manualMockAuthService{
			ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return nil, errors.New("invalid jwt token")
			},
		}
		app := newAuthTestApp(middleware.OptionalAuth(mockSvc), func(c *fiber.Ctx) error {
			assert.Nil(t, c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set(middleware.AuthorizationHeader, "Bearer garbage")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("ValidTokenSetsUserID", func(t *testing.T) {
		mockSvc := &manualMockAuthService{
			ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return accessClaims("user123"), nil
			},
		}
		app := newAuthTestApp(middleware.OptionalAuth(mockSvc), func(c *fiber.Ctx) error {
			assert.Equal(t, "user123", c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set(middleware.AuthorizationHeader, "Bearer valid")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
