package navigation

// Access classifies a route's gate.
type Access int

const (
	// AccessPublic routes render for anyone, session state is irrelevant.
	AccessPublic Access = iota
	// AccessAuthenticated routes render for any authenticated session.
	AccessAuthenticated
	// AccessRole routes render only for authenticated sessions whose
	// effective role matches the requirement's role.
	AccessRole
)

// Requirement is the declared gate on a route.
type Requirement struct {
	Access Access
	Role   string
}

func Public() Requirement {
	return Requirement{Access: AccessPublic}
}

func Authenticated() Requirement {
	return Requirement{Access: AccessAuthenticated}
}

func RequireRole(role string) Requirement {
	return Requirement{Access: AccessRole, Role: role}
}
