package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-service/internal/domain/user"
	apperrors "task-service/pkg/errors"
)

const (
	errUserNotFound = "user not found"
	errEmailExists  = "user with this email already exists"
)

// UserRepository is the in-process user store used in dev mode and tests.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (r *UserRepository) Create(_ context.Context, input user.CreateUserInput) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[input.Email]; exists {
		return nil, apperrors.Conflict(errEmailExists)
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u

	copied := *u
	return &copied, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound(errUserNotFound)
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound(errUserNotFound)
	}
	copied := *u
	return &copied, nil
}
