package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const landingView = "landing"

// ViewPayload is the opaque view descriptor returned on a Render outcome.
// The guard never looks inside it; the frontend mounts the named component.
type ViewPayload struct {
	View string `json:"view"`
	Path string `json:"path"`
}

func (s *Server) renderView(c echo.Context, view string) error {
	return respondSuccess(c, http.StatusOK, ViewPayload{
		View: view,
		Path: c.Request().URL.Path,
	})
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{jsonKeyStatus: statusOK})
}
