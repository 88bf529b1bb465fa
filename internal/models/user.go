package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	UserName     string    `json:"user_name" db:"user_name"`   // Display name, 1-50 chars
	Email        string    `json:"email" db:"email"`           // Unique email address
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserPatch carries the optional fields of a partial profile update.
// Nil fields keep their stored values.
type UserPatch struct {
	UserName *string `json:"user_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"` // plaintext, hashed by the service before storage
}
