package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/expdata"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/manifest"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/registry"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	closeLog func() error
	config   *Config
	manifest *manifest.Manifest
	adapters []sim.Adapter
	registry *registry.Registry
	store    *expdata.Store
}

// New is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Startup failures are fatal and panic; the entrypoint recovers them into
// an exit code.
func New(outW io.Writer, cfg *Config, adapters ...sim.Adapter) *App {
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, outW)
	if err != nil {
		panic(fmt.Errorf("failed to configure logging: %w", err))
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	man, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}

	if len(adapters) == 0 {
		adapters = coreAdapters
	}
	catalog := sim.NewCatalog()
	for _, adapter := range adapters {
		catalog.Add(adapter)
	}
	logger.Debug("All simulation adapters registered.", "count", len(adapters))

	// The manifest's run list picks from the compiled-in catalog; an empty
	// list selects every adapter in registration order.
	resolved, err := catalog.Resolve(man.Simulations)
	if err != nil {
		panic(fmt.Errorf("failed to resolve simulation run list: %w", err))
	}
	logger.Debug("Simulation run list resolved.", "count", len(resolved))

	return &App{
		outW:     outW,
		logger:   logger,
		closeLog: closeLog,
		config:   cfg,
		manifest: man,
		adapters: resolved,
		registry: registry.New(),
		store:    expdata.NewStore(cfg.DataDir),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Manifest returns the loaded manifest. This is primarily for testing.
func (a *App) Manifest() *manifest.Manifest {
	return a.manifest
}

// Close releases the optional log file sink.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}
