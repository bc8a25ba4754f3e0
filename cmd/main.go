package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	glog "github.com/labstack/gommon/log"
	"google.golang.org/genai"

	"dreamweaver/pkg/config"
	"dreamweaver/pkg/inference"
	"dreamweaver/pkg/server"
	"dreamweaver/pkg/session"
	"dreamweaver/pkg/story"
	"dreamweaver/pkg/web"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	log.SetLevel(cfg.LogLevel)

	inf, model, err := newInferencer(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create model client", "provider", cfg.Provider, "error", err)
	}
	log.Info("model client ready", "provider", cfg.Provider, "model", model)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("failed to load templates", "error", err)
	}

	ctrl := session.NewController(story.NewGenerator(inf, cfg.Model))
	srv := server.NewServer(ctx, ctrl, renderer)
	srv.Timeout = cfg.GenerationTimeout
	if cfg.LogLevel <= log.DebugLevel {
		srv.Echo.Logger.SetLevel(glog.DEBUG)
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		done()
		os.Exit(1)
	}
	<-finishedShutDown
}

// newInferencer builds the single model client for the process.
func newInferencer(ctx context.Context, cfg config.Config) (inference.Inferencer, string, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		openAI := inference.NewOpenAIInferencer(cfg.APIKey, model)
		if cfg.OpenAIBaseURL != "" {
			openAI.ChangeBaseURL(cfg.OpenAIBaseURL)
		}
		return openAI, openAI.Model(), nil
	default:
		gemini, err := inference.NewGeminiInferencer(ctx, &genai.ClientConfig{APIKey: cfg.APIKey}, cfg.Model)
		if err != nil {
			return nil, "", err
		}
		return gemini, gemini.Model(), nil
	}
}
