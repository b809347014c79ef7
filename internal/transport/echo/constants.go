package echo

const (
	loginEndpoint  = "/auth/login"
	signupEndpoint = "/auth/signup"
	logoutEndpoint = "/auth/logout"
	healthEndpoint = "/health"

	headerAuthorization = "Authorization"

	redirectQueryParam = "redirect"

	jsonKeyStatus = "status"
	statusOK      = "ok"
)

const (
	msgLoginFailed  = "login failed"
	msgSignupFailed = "signup failed"
	msgLogoutFailed = "logout failed"
)
