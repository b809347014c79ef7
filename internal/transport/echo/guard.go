package echo

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/auth"
	"task-service/internal/navigation"
	"task-service/internal/session"
)

// guard wraps a route's view behind the access decision. The snapshot is
// captured once, the decision is computed on it, and on a redirect outcome
// the view handler is never entered.
func (s *Server) guard(route navigation.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		if route.Redirect != "" {
			return s.redirect(c, navigation.Outcome{Kind: navigation.Redirect, Target: route.Redirect})
		}

		snap := s.snapshot(c)
		outcome := navigation.Decide(route.Requirement, snap)
		if outcome.Kind == navigation.Redirect {
			return s.redirect(c, outcome)
		}

		return s.renderView(c, route.View)
	}
}

// rootHandler resolves the bootstrap path on session state alone: anonymous
// visitors see the landing view in place, authenticated visitors are
// forwarded to their role home.
func (s *Server) rootHandler(c echo.Context) error {
	snap := s.snapshot(c)
	outcome := navigation.ResolveRoot(snap)
	if outcome.Kind == navigation.Redirect {
		return s.redirect(c, outcome)
	}
	return s.renderView(c, landingView)
}

func (s *Server) redirect(c echo.Context, outcome navigation.Outcome) error {
	requested := c.Request().URL.Path
	target := outcome.Target
	if outcome.CarryReturn {
		target += "?" + redirectQueryParam + "=" + url.QueryEscape(requested)
	}

	s.log.V(1).Info("navigation redirected", "requested", requested, "target", outcome.Target)

	// 303 never records the rejected path in history, so back-navigation
	// cannot return to it.
	return c.Redirect(http.StatusSeeOther, target)
}

// snapshot merges the rehydrated identity with the persisted session state
// for this request. Read-only: nothing here writes session state.
func (s *Server) snapshot(c echo.Context) session.Snapshot {
	ctx := c.Request().Context()
	return s.deps.Sessions.Snapshot(ctx, sessionID(c), s.identity(c))
}

// identity rehydrates the in-memory identity from the bearer header or the
// token cookie. Absent or invalid credentials yield nil; the persisted
// signals still apply.
func (s *Server) identity(c echo.Context) *session.Identity {
	token := auth.ExtractBearerToken(c.Request().Header.Get(headerAuthorization))
	if token == "" {
		if cookie, err := c.Cookie(auth.TokenCookie); err == nil {
			token = cookie.Value
		}
	}
	return s.deps.Provider.ResolveIdentity(c.Request().Context(), token)
}

func sessionID(c echo.Context) string {
	cookie, err := c.Cookie(auth.SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// safeReturnPath keeps the login return-context on-site: only absolute local
// paths are honored.
func safeReturnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	return raw
}
