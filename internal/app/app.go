// Package app implements the application layer for dpnd.
package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/adapters/detector"
	"github.com/scribibble/dpnd/internal/adapters/git"
	"github.com/scribibble/dpnd/internal/adapters/telemetry"
	"github.com/scribibble/dpnd/internal/core/domain"
	"github.com/scribibble/dpnd/internal/core/ports"
	"github.com/scribibble/dpnd/internal/engine/editor"
	"github.com/scribibble/dpnd/internal/engine/resolver"
)

// App represents the main application logic.
type App struct {
	store        ports.BomStore
	paths        ports.PathResolver
	runner       ports.Runner
	configLoader ports.ConfigLoader
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	store ports.BomStore,
	paths ports.PathResolver,
	runner ports.Runner,
	configLoader ports.ConfigLoader,
	logger ports.Logger,
) *App {
	return &App{
		store:        store,
		paths:        paths,
		runner:       runner,
		configLoader: configLoader,
		logger:       logger,
	}
}

// PopulateOptions configures the Populate operation.
type PopulateOptions struct {
	// DryRun logs the fetches that would happen without performing them.
	DryRun bool

	// JSONLogs forces JSON log output.
	JSONLogs bool
}

// Populate materializes the dependency tree of the component in the current
// working directory.
func (a *App) Populate(ctx context.Context, opts PopulateOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.applyLogMode(opts.JSONLogs || settings.JSONLogs)

	bom, err := a.store.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load bill of materials")
	}

	tracer := ports.Tracer(telemetry.NewNoopTracer())
	if telemetry.Enabled() {
		shutdown := telemetry.Setup()
		defer func() { _ = shutdown(ctx) }()
		tracer = telemetry.NewOTelTracer("dpnd")
	}

	backend := git.NewBackend(a.runner, a.logger, git.Options{
		Binary: settings.GitBinary,
		DryRun: opts.DryRun,
		Quiet:  settings.Quiet,
	})

	res := resolver.New(a.store, backend, a.paths, a.logger, tracer)
	if err := res.Populate(ctx, cwd, bom); err != nil {
		return errors.Join(domain.ErrPopulateFailed, err)
	}

	a.logger.Info("populate complete")
	return nil
}

// RequireOptions carries the arguments of the require verb.
type RequireOptions struct {
	Component string
	URL       string
	Ref       string
	Dir       string
	Depth     int
	JSONLogs  bool
}

// Require pins a dependency in the current component's BOM and persists it.
func (a *App) Require(_ context.Context, opts RequireOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.applyLogMode(opts.JSONLogs || settings.JSONLogs)

	ed := editor.New(a.store, a.logger)
	return ed.Require(cwd, opts.Component, opts.URL, opts.Ref, opts.Dir, opts.Depth)
}

// applyLogMode switches the logger to JSON output when forced or when the
// environment calls for it.
func (a *App) applyLogMode(forceJSON bool) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), forceJSON)
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(mode == detector.ModeJSON)
	}
}
