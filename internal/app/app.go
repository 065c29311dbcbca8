package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/ntree/internal/treefile"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *treefile.Loader
}

// NewApp is the constructor for the main application. Tree output goes to
// outW and log records to logW; the App gets its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: treefile.NewLoader(cfg.Vars),
	}
}
