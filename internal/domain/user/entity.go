package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User represents a user account (matches users table)
type User struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	DisplayName  string         `db:"display_name"`
	AvatarURL    sql.NullString `db:"avatar_url"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
