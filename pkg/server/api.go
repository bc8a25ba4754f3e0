package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"dreamweaver/pkg/schema"
	"dreamweaver/pkg/session"
	"dreamweaver/pkg/utils"
)

type draftReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// GET /api/state
func (s *Server) handleGetState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Controller.Snapshot())
}

// POST /api/draft
func (s *Server) handlePostDraft(c echo.Context) error {
	var req draftReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	draft, err := s.Controller.UpdateDraft(req.Field, req.Value)
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}
	return c.JSON(http.StatusOK, draft)
}

// POST /api/generate
func (s *Server) handleAPIGenerate(c echo.Context) error {
	var params schema.StoryParams
	if err := c.Bind(&params); err != nil {
		log.Warn("invalid JSON in /api/generate", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if err := params.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(err.Error()))
	}

	generated, err := s.generate(c.Request().Context(), params)
	if errors.Is(err, session.ErrBusy) {
		return c.JSON(http.StatusConflict, utils.ErrJSON(err.Error()))
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(session.Message(err)))
	}
	return c.JSON(http.StatusOK, generated)
}

// POST /api/reset
func (s *Server) handleAPIReset(c echo.Context) error {
	s.Controller.Reset()
	return c.JSON(http.StatusOK, s.Controller.Snapshot())
}
