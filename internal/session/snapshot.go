package session

import (
	"github.com/google/uuid"
)

// Identity is the in-memory authenticated principal for the current
// navigation event, rehydrated from the request credential by the auth
// provider. A nil Identity means no in-memory signal.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  string
}

func (i *Identity) HasRole(role string) bool {
	return i != nil && i.Role == role
}

// Snapshot is the session state observed at a single navigation event.
// It merges two independent signals: the in-memory identity and the
// persisted token/role pair. Snapshots are values; capture one per event
// and pass it explicitly, never read ambient state inside decision code.
type Snapshot struct {
	Identity      *Identity
	Token         string
	PersistedRole string
}

// Anonymous is the zero snapshot: no identity, no persisted signals.
var Anonymous = Snapshot{}

// IsAuthenticated reports whether either authentication signal is present.
// The OR is deliberate: a persisted token keeps a reloaded page authenticated
// before the in-memory identity has been rehydrated.
func (s Snapshot) IsAuthenticated() bool {
	return s.Identity != nil || s.Token != ""
}

// Role returns the identity's role when an identity is present, falling back
// to the persisted role, then to the empty string. Never errors; absence is
// a valid answer.
func (s Snapshot) Role() string {
	if s.Identity != nil && s.Identity.Role != "" {
		return s.Identity.Role
	}
	return s.PersistedRole
}
