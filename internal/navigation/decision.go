package navigation

import (
	"task-service/internal/domain/user"
	"task-service/internal/session"
)

// Well-known paths of the navigation surface.
const (
	RootPath      = "/"
	LandingPath   = "/landing"
	LoginPath     = "/login"
	AdminHomePath = "/admin/dashboard"
	UserHomePath  = "/user/dashboard"
)

// AdminRole is the one role the route surface gates on.
const AdminRole = user.RoleAdmin

// OutcomeKind discriminates the two possible results of a decision.
type OutcomeKind int

const (
	Render OutcomeKind = iota
	Redirect
)

// Outcome is the computed result for one navigation event. CarryReturn marks
// the login redirect, which carries the originally requested path so the
// caller can resume navigation after authenticating. Outcomes are derived
// fresh per event and never cached.
type Outcome struct {
	Kind        OutcomeKind
	Target      string
	CarryReturn bool
}

func renderOutcome() Outcome {
	return Outcome{Kind: Render}
}

func redirectOutcome(target string) Outcome {
	return Outcome{Kind: Redirect, Target: target}
}

// RoleHome is the canonical landing view for a role. Admins go to the admin
// dashboard; every other role, including absent, goes to the user dashboard.
func RoleHome(role string) string {
	if role == AdminRole {
		return AdminHomePath
	}
	return UserHomePath
}

// Decide computes the render-or-redirect outcome for a route requirement and
// a session snapshot. Pure and total: no ambient reads, no errors, identical
// inputs always yield the identical outcome.
//
// Missing authentication and wrong role are distinct outcomes. The first is a
// security gate and goes to the login view with return context. The second is
// a navigation correction for a legitimate user, who is bounced to their own
// role home rather than shown a login prompt or an error page.
func Decide(req Requirement, snap session.Snapshot) Outcome {
	if req.Access == AccessPublic {
		return renderOutcome()
	}
	if !snap.IsAuthenticated() {
		out := redirectOutcome(LoginPath)
		out.CarryReturn = true
		return out
	}
	if req.Access == AccessAuthenticated {
		return renderOutcome()
	}
	if snap.Role() == req.Role {
		return renderOutcome()
	}
	return redirectOutcome(RoleHome(snap.Role()))
}

// ResolveRoot dispatches the bootstrap path, which has no static requirement
// and branches purely on session state: anonymous visitors get the limited
// landing view rendered in place, authenticated visitors are forwarded to
// their role home and never see the bootstrap view itself.
func ResolveRoot(snap session.Snapshot) Outcome {
	if !snap.IsAuthenticated() {
		return renderOutcome()
	}
	return redirectOutcome(RoleHome(snap.Role()))
}
