package server

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dreamweaver/pkg/schema"
	"dreamweaver/pkg/session"
	"dreamweaver/pkg/story"
	"dreamweaver/pkg/utils"
)

type Server struct {
	Echo       *echo.Echo
	Controller *session.Controller
	Ctx        context.Context

	// Timeout bounds a single generation. Zero means no limit.
	Timeout time.Duration
}

func NewServer(ctx context.Context, ctrl *session.Controller, renderer echo.Renderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		Echo:       e,
		Controller: ctrl,
		Ctx:        ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// page
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.POST("/generate", s.handlePostGenerate)
	s.Echo.POST("/reset", s.handlePostReset)
	s.Echo.GET("/export", s.handleGetExport)

	api := s.Echo.Group("/api")
	api.GET("/state", s.handleGetState)
	api.GET("/schema", s.handleGetSchema)
	api.POST("/draft", s.handlePostDraft)
	api.POST("/generate", s.handleAPIGenerate)
	api.POST("/reset", s.handleAPIReset)

	s.Echo.GET("/healthz", s.handleGetHealth)
	s.Echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (s *Server) Start(addr string) error {
	log.Info("Server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}

// generate runs one submission through the controller and records metrics.
// The generation outlives the client connection and is bounded by Timeout.
func (s *Server) generate(ctx context.Context, p schema.StoryParams) (*schema.GeneratedStory, error) {
	ctx = context.WithoutCancel(ctx)
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	if log.GetLevel() <= log.DebugLevel {
		prompt := story.BuildPrompt(p)
		if tokens, err := utils.NumTokens(prompt); err == nil {
			log.Debug("submitting story prompt", "chars", len(prompt), "tokens", tokens)
		} else {
			log.Debug("submitting story prompt", "chars", len(prompt))
		}
	}

	start := time.Now()
	generated, err := s.Controller.Submit(ctx, p)
	switch {
	case errors.Is(err, session.ErrBusy):
		storyFailuresTotal.WithLabelValues("busy").Inc()
		log.Warn("submission ignored while a story is generating")
	case errors.Is(err, story.ErrEmptyResponse):
		storyFailuresTotal.WithLabelValues("empty").Inc()
		storyGenerationSeconds.Observe(time.Since(start).Seconds())
	case err != nil:
		storyFailuresTotal.WithLabelValues("provider").Inc()
		storyGenerationSeconds.Observe(time.Since(start).Seconds())
	default:
		storiesGeneratedTotal.Inc()
		storyGenerationSeconds.Observe(time.Since(start).Seconds())
	}
	return generated, err
}
