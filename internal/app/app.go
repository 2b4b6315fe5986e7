// Package app wires the errlint catalog checker.
package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"cindererr/internal/config"
	"cindererr/internal/platform/logger"
	"cindererr/pkg/catalog"
)

// App wires application components.
type App struct {
	cfg config.Config
	log *slog.Logger
}

// New creates a new App instance and loads configuration.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		Env:          cfg.Env,
		ConsoleLevel: cfg.Log.ConsoleLevel,
		FileLevel:    cfg.Log.FileLevel,
		File:         cfg.Log.File,
		App:          "errlint",
	})
	return &App{cfg: cfg, log: log}, nil
}

// Run lints the configured catalog document and reports every finding.
// It returns an error when the catalog has problems that would make it
// unusable at runtime; ordering warnings alone do not fail the run.
func (a *App) Run() error {
	defer func() { _ = logger.Close(a.log) }()

	source := a.cfg.Catalog.Path
	var data []byte
	if source == "" {
		source = "embedded engine catalog"
		data = catalog.BuiltinJSON()
	} else {
		var err error
		data, err = os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
	}
	a.log.Info("checking catalog", slog.String("source", source))

	broken := 0
	for _, f := range catalog.Lint(data) {
		if f.Warning {
			a.log.Warn(f.Problem, slog.String("class", f.Class))
			continue
		}
		broken++
		a.log.Error(f.Problem, slog.String("class", f.Class))
	}
	if broken > 0 {
		return fmt.Errorf("catalog has %d problem(s)", broken)
	}

	c, err := catalog.Load(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	a.log.Info("catalog ok", slog.Int("classes", len(c.Classes())))
	return nil
}
