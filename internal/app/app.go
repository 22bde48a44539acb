package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/rectgrid/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// Option customises an App.
type Option func(*App)

// WithLoader overrides the extension-based choice of rule file loader.
func WithLoader(l config.Loader) Option {
	return func(a *App) { a.loader = l }
}

// New is the constructor for the main application. Reports go to outW and
// logs go to logW; each App has its own logger.
func New(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config: cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.loader == nil {
		a.loader = loaderFor(cfg.RulesPath)
	}
	a.logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return a
}
