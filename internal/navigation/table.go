package navigation

import "fmt"

// WildcardPath is the required catch-all entry. Any path without an exact
// entry resolves to it, which keeps dispatch total: there is no "not found"
// at this layer, only a redirect back to the bootstrap path.
const WildcardPath = "*"

const (
	errDuplicatePathFmt = "duplicate route path %q"
	errMissingWildcard  = "route table has no catch-all entry"
	errEmptyPath        = "route with empty path"
)

// Route maps a literal path to an opaque view identity and its access gate.
// When Redirect is set the route is a pure forward, the view is never
// consulted (used by the catch-all).
type Route struct {
	Path        string
	View        string
	Requirement Requirement
	Redirect    string
}

// Table is the static path dispatch table, fixed for the process lifetime.
type Table struct {
	routes   map[string]Route
	wildcard Route
}

// NewTable validates uniqueness and the catch-all invariant.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{routes: make(map[string]Route, len(routes))}
	haveWildcard := false
	for _, r := range routes {
		if r.Path == "" {
			return nil, fmt.Errorf(errEmptyPath)
		}
		if r.Path == WildcardPath {
			if haveWildcard {
				return nil, fmt.Errorf(errDuplicatePathFmt, r.Path)
			}
			haveWildcard = true
			t.wildcard = r
			continue
		}
		if _, exists := t.routes[r.Path]; exists {
			return nil, fmt.Errorf(errDuplicatePathFmt, r.Path)
		}
		t.routes[r.Path] = r
	}
	if !haveWildcard {
		return nil, fmt.Errorf(errMissingWildcard)
	}
	return t, nil
}

func MustNewTable(routes []Route) *Table {
	t, err := NewTable(routes)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the unique entry for a concrete path, falling back to the
// catch-all. Total over all strings.
func (t *Table) Resolve(path string) Route {
	if r, ok := t.routes[path]; ok {
		return r
	}
	return t.wildcard
}

// Routes returns the exact-path entries for registration, wildcard excluded.
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r)
	}
	return out
}

// Wildcard returns the catch-all entry.
func (t *Table) Wildcard() Route {
	return t.wildcard
}

// DefaultRoutes is the navigation surface of the task-management app. The
// bootstrap path "/" is absent on purpose: it has no static requirement and
// is resolved by ResolveRoot instead.
func DefaultRoutes() []Route {
	return []Route{
		{Path: LandingPath, View: "landing", Requirement: Public()},
		{Path: LoginPath, View: "login", Requirement: Public()},
		{Path: "/signup", View: "signup", Requirement: Public()},
		{Path: "/forgot-password", View: "forgot-password", Requirement: Public()},
		{Path: "/reset-password", View: "reset-password", Requirement: Public()},

		{Path: UserHomePath, View: "user-dashboard", Requirement: Authenticated()},
		{Path: "/user/userpage", View: "user-page", Requirement: Authenticated()},
		{Path: "/user/notifications", View: "user-notifications", Requirement: Authenticated()},
		{Path: "/user/calendar", View: "user-calendar", Requirement: Authenticated()},
		{Path: "/user/profile", View: "user-profile", Requirement: Authenticated()},
		{Path: "/user/task-filter", View: "user-task-filter", Requirement: Authenticated()},

		{Path: AdminHomePath, View: "admin-dashboard", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/users", View: "admin-users", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/manage-users", View: "admin-manage-users", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/manage-tasks", View: "admin-manage-tasks", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/settings", View: "admin-settings", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/user-logs", View: "admin-user-logs", Requirement: RequireRole(AdminRole)},
		{Path: "/admin/task-filter", View: "admin-task-filter", Requirement: RequireRole(AdminRole)},

		{Path: WildcardPath, Redirect: RootPath},
	}
}
