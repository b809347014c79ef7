package session

import (
	"context"

	"github.com/go-logr/logr"
)

// TokenValidator optionally vets the persisted token before it counts as an
// authentication signal. When nil, raw presence is sufficient; that matches
// the page-reload continuity behavior but accepts a stale or revoked token
// until the next explicit logout.
type TokenValidator interface {
	Validate(ctx context.Context, token string) error
}

// Service captures session snapshots for the guard and carries the writes the
// auth provider performs on login and logout. The guard side is read-only.
type Service struct {
	store     Store
	validator TokenValidator
	log       logr.Logger
}

func NewService(store Store, validator TokenValidator, log logr.Logger) *Service {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Service{store: store, validator: validator, log: log}
}

// Snapshot merges the per-request identity with the persisted signals for the
// given session ID. Store failures degrade to absence: a snapshot is always
// produced, never an error.
func (s *Service) Snapshot(ctx context.Context, sid string, identity *Identity) Snapshot {
	snap := Snapshot{Identity: identity}

	token, err := s.store.Get(ctx, sid, KeyToken)
	if err != nil {
		s.log.V(1).Info("persisted token read failed, treating as absent", "sid", sid, "error", err.Error())
		token = ""
	}
	role, err := s.store.Get(ctx, sid, KeyUserRole)
	if err != nil {
		s.log.V(1).Info("persisted role read failed, treating as absent", "sid", sid, "error", err.Error())
		role = ""
	}

	if token != "" && s.validator != nil {
		if err := s.validator.Validate(ctx, token); err != nil {
			s.log.V(1).Info("persisted token rejected by validator", "sid", sid)
			token = ""
		}
	}

	snap.Token = token
	snap.PersistedRole = role
	return snap
}

// Establish persists the credential token and role for a session. Called by
// the auth provider on login; the guard never calls this.
func (s *Service) Establish(ctx context.Context, sid, token, role string) error {
	if err := s.store.Set(ctx, sid, KeyToken, token); err != nil {
		return err
	}
	return s.store.Set(ctx, sid, KeyUserRole, role)
}

// Reset drops all persisted state for a session, returning it to anonymous.
func (s *Service) Reset(ctx context.Context, sid string) error {
	return s.store.Clear(ctx, sid)
}
