package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiztube/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `
	id "id",
	google_id "google_id",
	email "email",
	name "name",
	profile_picture_url "profile_picture_url",
	encrypted_access_token "encrypted_access_token",
	encrypted_refresh_token "encrypted_refresh_token",
	token_expires_at "token_expires_at",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, google_id, email, name, profile_picture_url, encrypted_access_token, encrypted_refresh_token, token_expires_at, created_at, updated_at)
	          VALUES (:id, :google_id, :email, :name, :profile_picture_url, :encrypted_access_token, :encrypted_refresh_token, :token_expires_at, :created_at, :updated_at)`

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByGoogleID retrieves a user by their Google ID.
// It returns nil, nil when no such user exists.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = :1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &user, query, googleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = :1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// UpdateUser updates an existing user's profile and token fields.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `UPDATE users SET
	            email = :email,
	            name = :name,
	            profile_picture_url = :profile_picture_url,
	            encrypted_access_token = :encrypted_access_token,
	            encrypted_refresh_token = :encrypted_refresh_token,
	            token_expires_at = :token_expires_at,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("no user updated for id %s", user.ID)
	}
	return nil
}
