package app

import (
	"context"
	"fmt"
	"os"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/archive"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/report"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/validation"
)

// Run executes the validation pipeline: load the experimental references,
// run the simulations, evaluate the check table, emit the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// Every later phase assumes the store is complete, so a reference file
	// that cannot be loaded is fatal.
	for _, exp := range a.manifest.Experiments {
		if err := a.store.Load(ctx, exp.File); err != nil {
			return fmt.Errorf("failed to load experimental data %s: %w", exp.File, err)
		}
	}
	a.logger.Debug("Experimental references loaded.", "files", a.store.Loaded())

	a.logger.Info("🚀 Starting validation run.",
		"simulations", len(a.adapters), "checks", len(a.manifest.Checks))

	outcomes, err := sim.NewRunner(a.registry).RunAll(ctx, a.adapters)
	if err != nil {
		return fmt.Errorf("simulation run failed: %w", err)
	}

	rep, err := validation.NewEngine(a.registry, a.store).Validate(ctx, a.manifest.Checks)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	a.decorate(rep, outcomes)

	if err := a.emit(ctx, rep); err != nil {
		return err
	}

	a.logger.Info("🏁 Validation run finished.",
		"checks", rep.Summary.Checks, "pass", rep.Summary.Pass, "fail", rep.Summary.Fail)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// decorate fills the report header with the run's composition: which
// manifests, which reference documents, how each simulation went.
func (a *App) decorate(rep *report.Report, outcomes []sim.Outcome) {
	rep.Manifest = a.manifest.Paths
	for _, exp := range a.manifest.Experiments {
		rep.Sources = append(rep.Sources, report.Source{
			Label:  exp.Label,
			File:   exp.File,
			Source: exp.Source,
		})
	}
	for _, out := range outcomes {
		adapter := report.AdapterOutcome{
			Name:       out.Name,
			Title:      out.Title,
			Parameters: out.Parameters,
			Formulas:   out.Formulas,
		}
		if out.Err != nil {
			adapter.Error = out.Err.Error()
		}
		rep.Adapters = append(rep.Adapters, adapter)
	}
}

// emit writes the JSON artifact when configured, always prints the table,
// and archives the run when an archive path is set. Each failure is fatal.
func (a *App) emit(ctx context.Context, rep *report.Report) error {
	if a.config.ReportPath != "" {
		f, err := os.Create(a.config.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to create report file %s: %w", a.config.ReportPath, err)
		}
		if err := rep.WriteJSON(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write report file %s: %w", a.config.ReportPath, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close report file %s: %w", a.config.ReportPath, err)
		}
		a.logger.Info("Report written.", "path", a.config.ReportPath)
	}

	if err := rep.WriteTable(a.outW); err != nil {
		return fmt.Errorf("failed to render report table: %w", err)
	}

	if a.config.ArchivePath != "" {
		arch, err := archive.Open(a.config.ArchivePath)
		if err != nil {
			return fmt.Errorf("failed to open archive %s: %w", a.config.ArchivePath, err)
		}
		defer arch.Close()
		if err := arch.SaveRun(ctx, rep); err != nil {
			return fmt.Errorf("failed to archive run: %w", err)
		}
		a.logger.Info("Run archived.", "path", a.config.ArchivePath, "run_id", rep.RunID)
	}

	return nil
}
