package repository

import (
	"context"

	"github.com/google/uuid"

	"task-service/internal/domain/user"
)

// UserRepository is the auth provider's user store. Task, notification and
// profile storage live elsewhere; only identity and role matter here.
type UserRepository interface {
	Create(ctx context.Context, input user.CreateUserInput) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
