package auth

const (
	bearerScheme    = "bearer"
	authHeaderParts = 2

	// TokenCookie carries the credential between requests; SessionCookie
	// names the persisted-store session.
	TokenCookie   = "task_token"
	SessionCookie = "task_sid"
)

const (
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
	msgEmailRequired           = "email is required"
	msgPasswordRequired        = "password is required"
	msgBadCredentials          = "invalid email or password"
	msgHashFailed              = "failed to hash password"
	msgIssueFailed             = "failed to issue session token"
	msgPersistFailed           = "failed to persist session state"
)
