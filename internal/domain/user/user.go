package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles known to the navigation surface. Role is stored as free-form text;
// anything other than RoleAdmin is treated as a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Email        string
	PasswordHash string
	Role         string
}
