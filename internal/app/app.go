// Package app ties the webhook server and the review workers together.
package app

import (
	"fmt"
	"log/slog"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/jobs"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/llm"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/server"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	logger     *slog.Logger
	dispatcher *jobs.Dispatcher
}

// NewApp assembles the service. The provider settings are checked here once
// so a bad AI_PROVIDER or missing key stops the process before it listens.
func NewApp(cfg *config.Config, logger *slog.Logger, srv *server.Server, dispatcher *jobs.Dispatcher) (*App, error) {
	provider, err := llm.NewProvider(cfg.AI, logger)
	if err != nil {
		dispatcher.Stop()
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	logger.Info("AI code reviewer initialized",
		"provider", provider.Name(),
		"github_app", cfg.GitHub.UsesApp(),
		"max_workers", cfg.Server.MaxWorkers,
		"max_files", cfg.Review.MaxFiles,
		"severity", cfg.Review.Severity,
	)
	return &App{
		cfg:        cfg,
		server:     srv,
		logger:     logger,
		dispatcher: dispatcher,
	}, nil
}

// Start runs the HTTP server until it is stopped.
func (a *App) Start() error {
	a.logger.Info("starting AI code reviewer", "server_port", a.cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the server first so no new events arrive, then lets the
// queued reviews finish.
func (a *App) Stop() error {
	a.logger.Info("shutting down AI code reviewer")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("AI code reviewer stopped successfully")
	return nil
}
