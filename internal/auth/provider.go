package auth

import (
	"context"
	"strings"

	"github.com/go-logr/logr"

	"task-service/internal/domain/user"
	"task-service/internal/repository"
	"task-service/internal/session"
	apperrors "task-service/pkg/errors"
)

// Provider is the authentication collaborator of the navigation guard and
// the single writer of session state. Login establishes the in-memory
// identity and the persisted token/role pair; Logout resets the session to
// anonymous. The guard itself only ever reads.
type Provider struct {
	users    repository.UserRepository
	jwt      *JWTService
	sessions *session.Service
	log      logr.Logger
}

func NewProvider(users repository.UserRepository, jwtService *JWTService, sessions *session.Service, log logr.Logger) *Provider {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Provider{
		users:    users,
		jwt:      jwtService,
		sessions: sessions,
		log:      log,
	}
}

// Login verifies the credentials, issues a token, and persists the
// token/role pair under the session ID. It returns the established identity
// and the raw token.
func (p *Provider) Login(ctx context.Context, sid, email, password string) (*session.Identity, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, "", apperrors.Validation(msgEmailRequired)
	}
	if password == "" {
		return nil, "", apperrors.Validation(msgPasswordRequired)
	}

	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, "", apperrors.InvalidCredentials(msgBadCredentials)
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return nil, "", apperrors.InvalidCredentials(msgBadCredentials)
	}

	token, err := p.jwt.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", apperrors.InternalServer(msgIssueFailed, err)
	}

	if err := p.sessions.Establish(ctx, sid, token, u.Role); err != nil {
		return nil, "", apperrors.InternalServer(msgPersistFailed, err)
	}

	p.log.Info("session established", "user", u.ID.String(), "role", u.Role)

	return &session.Identity{ID: u.ID, Email: u.Email, Role: u.Role}, token, nil
}

// Signup registers a user with the default role and logs them in.
func (p *Provider) Signup(ctx context.Context, sid, email, password string) (*session.Identity, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, "", apperrors.Validation(msgEmailRequired)
	}
	if password == "" {
		return nil, "", apperrors.Validation(msgPasswordRequired)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", apperrors.InternalServer(msgHashFailed, err)
	}

	u, err := p.users.Create(ctx, user.CreateUserInput{
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := p.jwt.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", apperrors.InternalServer(msgIssueFailed, err)
	}

	if err := p.sessions.Establish(ctx, sid, token, u.Role); err != nil {
		return nil, "", apperrors.InternalServer(msgPersistFailed, err)
	}

	p.log.Info("user registered", "user", u.ID.String())

	return &session.Identity{ID: u.ID, Email: u.Email, Role: u.Role}, token, nil
}

// Logout resets the persisted session state to anonymous.
func (p *Provider) Logout(ctx context.Context, sid string) error {
	return p.sessions.Reset(ctx, sid)
}

// ResolveIdentity rehydrates the in-memory identity from a request
// credential. Absent or invalid tokens yield nil; the persisted signals in
// the snapshot still apply, so this never rejects a request on its own.
func (p *Provider) ResolveIdentity(_ context.Context, token string) *session.Identity {
	if token == "" {
		return nil
	}
	claims, err := p.jwt.Verify(token)
	if err != nil {
		return nil
	}
	return &session.Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

// TokenVerifier adapts the JWT service to session.TokenValidator so the
// persisted token can optionally be vetted before it counts as an
// authentication signal.
type TokenVerifier struct {
	jwt *JWTService
}

func NewTokenVerifier(jwtService *JWTService) *TokenVerifier {
	return &TokenVerifier{jwt: jwtService}
}

func (v *TokenVerifier) Validate(_ context.Context, token string) error {
	_, err := v.jwt.Verify(token)
	return err
}

// ExtractBearerToken pulls the credential from an Authorization header value.
func ExtractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}
	return parts[1]
}
