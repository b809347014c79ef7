package navigation_test

import (
	"testing"

	"github.com/google/uuid"

	"task-service/internal/navigation"
	"task-service/internal/session"
)

func identity(role string) *session.Identity {
	return &session.Identity{ID: uuid.New(), Email: "someone@example.com", Role: role}
}

func TestDecidePublicAlwaysRenders(t *testing.T) {
	snapshots := map[string]session.Snapshot{
		"anonymous":        session.Anonymous,
		"identity only":    {Identity: identity("user")},
		"token only":       {Token: "abc"},
		"admin everything": {Identity: identity("admin"), Token: "abc", PersistedRole: "admin"},
		"role no identity": {PersistedRole: "admin"},
	}

	for name, snap := range snapshots {
		t.Run(name, func(t *testing.T) {
			out := navigation.Decide(navigation.Public(), snap)
			if out.Kind != navigation.Render {
				t.Errorf("public route: got %+v, expected render", out)
			}
		})
	}
}

func TestDecideUnauthenticatedRedirectsToLogin(t *testing.T) {
	requirements := map[string]navigation.Requirement{
		"authenticated-any": navigation.Authenticated(),
		"admin role":        navigation.RequireRole("admin"),
	}

	// A persisted role alone is not an authentication signal.
	snap := session.Snapshot{PersistedRole: "admin"}

	for name, req := range requirements {
		t.Run(name, func(t *testing.T) {
			out := navigation.Decide(req, snap)
			if out.Kind != navigation.Redirect {
				t.Fatalf("got render, expected redirect")
			}
			if out.Target != navigation.LoginPath {
				t.Errorf("got target %q, expected %q", out.Target, navigation.LoginPath)
			}
			if !out.CarryReturn {
				t.Errorf("login redirect should carry the return context")
			}
		})
	}
}

func TestDecideAuthenticatedAny(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
	}{
		{"identity present", session.Snapshot{Identity: identity("user")}},
		{"token only", session.Snapshot{Token: "abc"}},
		{"identity without role", session.Snapshot{Identity: identity("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := navigation.Decide(navigation.Authenticated(), tt.snap)
			if out.Kind != navigation.Render {
				t.Errorf("got %+v, expected render", out)
			}
		})
	}
}

func TestDecideRoleRequirement(t *testing.T) {
	tests := []struct {
		name       string
		snap       session.Snapshot
		wantKind   navigation.OutcomeKind
		wantTarget string
	}{
		{
			name:     "matching identity role",
			snap:     session.Snapshot{Identity: identity("admin")},
			wantKind: navigation.Render,
		},
		{
			name:       "wrong role bounces to own home",
			snap:       session.Snapshot{Identity: identity("user")},
			wantKind:   navigation.Redirect,
			wantTarget: navigation.UserHomePath,
		},
		{
			name:       "authenticated but no role at all",
			snap:       session.Snapshot{Token: "abc"},
			wantKind:   navigation.Redirect,
			wantTarget: navigation.UserHomePath,
		},
		{
			name:     "persisted role satisfies the check",
			snap:     session.Snapshot{Token: "abc", PersistedRole: "admin"},
			wantKind: navigation.Render,
		},
		{
			name:     "identity role wins over persisted role",
			snap:     session.Snapshot{Identity: identity("admin"), PersistedRole: "user"},
			wantKind: navigation.Render,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := navigation.Decide(navigation.RequireRole("admin"), tt.snap)
			if out.Kind != tt.wantKind {
				t.Fatalf("got kind %v, expected %v", out.Kind, tt.wantKind)
			}
			if tt.wantKind == navigation.Redirect {
				if out.Target != tt.wantTarget {
					t.Errorf("got target %q, expected %q", out.Target, tt.wantTarget)
				}
				if out.CarryReturn {
					t.Errorf("role bounce must not carry return context")
				}
			}
		})
	}
}

// The wrong-role outcome is a navigation correction, never a login prompt:
// an already-authenticated user must not see the login view again.
func TestDecideWrongRoleNeverLogin(t *testing.T) {
	snap := session.Snapshot{Identity: identity("user")}
	out := navigation.Decide(navigation.RequireRole("admin"), snap)
	if out.Target == navigation.LoginPath {
		t.Fatalf("authenticated user bounced to login")
	}
}

func TestDecideIdempotent(t *testing.T) {
	snap := session.Snapshot{Token: "abc", PersistedRole: "user"}
	req := navigation.RequireRole("admin")

	first := navigation.Decide(req, snap)
	second := navigation.Decide(req, snap)
	if first != second {
		t.Errorf("identical inputs produced %+v then %+v", first, second)
	}
}

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name       string
		snap       session.Snapshot
		wantKind   navigation.OutcomeKind
		wantTarget string
	}{
		{"anonymous renders landing", session.Anonymous, navigation.Render, ""},
		{"admin goes to admin dashboard", session.Snapshot{Identity: identity("admin")}, navigation.Redirect, navigation.AdminHomePath},
		{"user goes to user dashboard", session.Snapshot{Identity: identity("user")}, navigation.Redirect, navigation.UserHomePath},
		{"authenticated without role goes to user dashboard", session.Snapshot{Token: "abc"}, navigation.Redirect, navigation.UserHomePath},
		{"persisted admin role", session.Snapshot{Token: "abc", PersistedRole: "admin"}, navigation.Redirect, navigation.AdminHomePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := navigation.ResolveRoot(tt.snap)
			if out.Kind != tt.wantKind {
				t.Fatalf("got kind %v, expected %v", out.Kind, tt.wantKind)
			}
			if out.Target != tt.wantTarget {
				t.Errorf("got target %q, expected %q", out.Target, tt.wantTarget)
			}
		})
	}
}

func TestRoleHome(t *testing.T) {
	tests := []struct {
		role     string
		expected string
	}{
		{"admin", navigation.AdminHomePath},
		{"user", navigation.UserHomePath},
		{"", navigation.UserHomePath},
		{"viewer", navigation.UserHomePath},
	}

	for _, tt := range tests {
		if got := navigation.RoleHome(tt.role); got != tt.expected {
			t.Errorf("RoleHome(%q) = %q, expected %q", tt.role, got, tt.expected)
		}
	}
}
