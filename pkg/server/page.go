package server

import (
	"cmp"
	"errors"
	"mime"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"dreamweaver/pkg/form"
	"dreamweaver/pkg/session"
	"dreamweaver/pkg/utils"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", s.Controller.Snapshot())
}

// POST /generate
func (s *Server) handlePostGenerate(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	draft, err := form.FromValues(values)
	params := draft.Params()
	if err == nil {
		err = params.Validate()
	}
	if err != nil {
		log.Warn("rejected story form", "error", err)
		s.Controller.Reject(params, err)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	// Failures are already recorded on the controller and shown by the page.
	if _, err := s.generate(c.Request().Context(), params); err != nil && !errors.Is(err, session.ErrBusy) {
		log.Warn("story generation failed", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// POST /reset
func (s *Server) handlePostReset(c echo.Context) error {
	s.Controller.Reset()
	return c.Redirect(http.StatusSeeOther, "/")
}

// GET /export
func (s *Server) handleGetExport(c echo.Context) error {
	st := s.Controller.Snapshot()
	if st.Story == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no story to export")
	}

	name := cmp.Or(utils.SanitizeFilename(st.Story.Title), st.Story.ID) + ".txt"
	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(st.Story.Content))
}
