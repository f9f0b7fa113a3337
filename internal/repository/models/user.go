package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID                    string         `db:"id"`                      // ULID
	GoogleID              string         `db:"google_id"`               // Google's unique identifier for the user
	Email                 string         `db:"email"`                   // User's email address
	Name                  sql.NullString `db:"name"`                    // User's full name
	ProfilePictureURL     sql.NullString `db:"profile_picture_url"`     // URL of the user's profile picture
	EncryptedAccessToken  sql.NullString `db:"encrypted_access_token"`  // Encrypted Google OAuth access token
	EncryptedRefreshToken sql.NullString `db:"encrypted_refresh_token"` // Encrypted Google OAuth refresh token
	TokenExpiresAt        sql.NullTime   `db:"token_expires_at"`        // Expiry time for the access token
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
	DeletedAt             sql.NullTime   `db:"deleted_at"` // Soft deletion timestamp, if applicable
}
