package echo

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-service/internal/auth"
	"task-service/internal/navigation"
	"task-service/internal/session"
	apperrors "task-service/pkg/errors"
)

type credentialsRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Redirect string `json:"redirect" form:"redirect"`
}

type authResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

// loginHandler authenticates and establishes the session. The response
// carries the resume target: the return-context path the guard attached to
// the login redirect when present, the role home otherwise.
func (s *Server) loginHandler(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgLoginFailed)
	}

	sid := s.ensureSessionID(c)

	identity, token, err := s.deps.Provider.Login(c.Request().Context(), sid, req.Email, req.Password)
	if err != nil {
		return s.authFailure(c, err, msgLoginFailed)
	}

	s.setTokenCookie(c, token)

	return respondSuccess(c, http.StatusOK, authResponse{
		UserID:   identity.ID.String(),
		Email:    identity.Email,
		Role:     identity.Role,
		Redirect: resumeTarget(req.Redirect, identity),
	})
}

func (s *Server) signupHandler(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, msgSignupFailed)
	}

	sid := s.ensureSessionID(c)

	identity, token, err := s.deps.Provider.Signup(c.Request().Context(), sid, req.Email, req.Password)
	if err != nil {
		return s.authFailure(c, err, msgSignupFailed)
	}

	s.setTokenCookie(c, token)

	return respondSuccess(c, http.StatusCreated, authResponse{
		UserID:   identity.ID.String(),
		Email:    identity.Email,
		Role:     identity.Role,
		Redirect: navigation.RoleHome(identity.Role),
	})
}

// logoutHandler resets the session to anonymous: persisted state cleared,
// cookies expired.
func (s *Server) logoutHandler(c echo.Context) error {
	sid := sessionID(c)
	if err := s.deps.Provider.Logout(c.Request().Context(), sid); err != nil {
		return respondError(c, http.StatusInternalServerError, msgLogoutFailed)
	}

	s.expireCookie(c, auth.TokenCookie)
	s.expireCookie(c, auth.SessionCookie)

	return respondSuccess(c, http.StatusOK, map[string]string{jsonKeyStatus: statusOK})
}

func (s *Server) authFailure(c echo.Context, err error, fallback string) error {
	message := fallback
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return respondError(c, http.StatusBadRequest, message)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return respondError(c, http.StatusUnauthorized, message)
	case errors.Is(err, apperrors.ErrConflict):
		return respondError(c, http.StatusConflict, message)
	default:
		s.log.Error(err, fallback)
		return respondError(c, http.StatusInternalServerError, fallback)
	}
}

func resumeTarget(requested string, identity *session.Identity) string {
	if safe := safeReturnPath(requested); safe != "" {
		return safe
	}
	return navigation.RoleHome(identity.Role)
}

// ensureSessionID returns the session ID cookie, minting one when absent so
// the persisted store has a stable key for this browser session.
func (s *Server) ensureSessionID(c echo.Context) string {
	if sid := sessionID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	s.setCookie(c, auth.SessionCookie, sid, s.cookieTTL())
	return sid
}

func (s *Server) setTokenCookie(c echo.Context, token string) {
	s.setCookie(c, auth.TokenCookie, token, s.cookieTTL())
}

func (s *Server) cookieTTL() time.Duration {
	if s.deps.Config != nil {
		return s.deps.Config.Session.TTL
	}
	return 0
}

func (s *Server) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	c.SetCookie(cookie)
}

func (s *Server) expireCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
