// Package wire assembles the webhook service with google/wire.
package wire

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/app"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/jobs"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/logger"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/server"
)

// AppSet provides everything app.NewApp needs.
var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	config.LoadConfig,
	logger.NewLogger,
	provideLoggerConfig,
	provideLogWriter,
	provideReviewJob,
	provideDispatcher,
	wire.Bind(new(core.JobDispatcher), new(*jobs.Dispatcher)),
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) (io.Writer, func()) {
	w := logger.Writer(cfg.Logging.Output)
	return w, func() {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			_ = f.Close()
		}
	}
}

func provideReviewJob(cfg *config.Config, logger *slog.Logger) core.Job {
	return jobs.NewReviewJob(cfg, logger)
}

func provideDispatcher(job core.Job, cfg *config.Config, logger *slog.Logger) *jobs.Dispatcher {
	return jobs.NewDispatcher(job, cfg.Server.MaxWorkers, logger)
}
