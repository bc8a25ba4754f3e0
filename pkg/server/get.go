package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dreamweaver/pkg/schema"
)

func (s *Server) handleGetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "DreamWeaver",
		"status":  "ok",
	})
}

// GET /api/schema
func (s *Server) handleGetSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.StoryParamsSchema)
}
