package cli

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"github.com/toyz/scaffold/internal/config"
	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/pipeline"
	"github.com/toyz/scaffold/internal/utils"
)

// Generator coordinates the CLI generation process: input expansion,
// pipeline runs and terminal output
type Generator struct {
	fs          afero.Fs
	diagnostics *utils.DiagnosticSystem
	reporter    *DiagnosticReporter
	options     []pipeline.Option
}

// NewGenerator creates a CLI generator over fs. Extra options are passed to
// every pipeline it starts.
func NewGenerator(fs afero.Fs, diagnostics *utils.DiagnosticSystem, reporter *DiagnosticReporter, opts ...pipeline.Option) *Generator {
	return &Generator{
		fs:          fs,
		diagnostics: diagnostics,
		reporter:    reporter,
		options:     opts,
	}
}

// Generate expands paths (or the configured inputs when paths is empty), runs
// the pipeline once and prints the outcome
func (g *Generator) Generate(ctx context.Context, cfg *config.Config, paths []string) (pipeline.Summary, error) {
	if len(paths) == 0 {
		paths = cfg.Inputs
	}

	inputs, err := NewInputScanner(g.fs, cfg.Extension).Expand(paths)
	if err != nil {
		g.reporter.ReportError(err)
		return pipeline.Summary{}, err
	}
	if len(inputs) == 0 {
		err := errors.NewConfigurationError(config.KeyInputs, paths, "no source files to process")
		g.reporter.ReportError(err)
		return pipeline.Summary{}, err
	}

	g.diagnostics.Header("Generating test scaffolds")
	g.diagnostics.Debug("Configuration file: %s", valueOr(cfg.Source, "none"))
	g.diagnostics.Verbose("Processing %d source files into %s", len(inputs), cfg.OutputDir)

	return g.run(ctx, cfg.WithInputs(inputs))
}

// Watch runs Generate once, then regenerates changed source files until ctx
// is cancelled. Failed runs are reported and watching continues.
func (g *Generator) Watch(ctx context.Context, cfg *config.Config, paths []string) error {
	if len(paths) == 0 {
		paths = cfg.Inputs
	}

	_, _ = g.Generate(ctx, cfg, paths)

	scanner := NewInputScanner(g.fs, cfg.Extension)
	dirs, err := scanner.Dirs(paths)
	if err != nil {
		return err
	}

	watcher, err := NewWatcher(
		time.Duration(cfg.Watch.DebounceMS)*time.Millisecond,
		scanner.Matches,
		[]string{cfg.OutputDir},
		func(ctx context.Context, changed []string) {
			g.diagnostics.Info("%d source files changed", len(changed))
			_, _ = g.run(ctx, cfg.WithInputs(changed))
		},
	)
	if err != nil {
		return err
	}
	if err := watcher.Add(dirs...); err != nil {
		return err
	}

	g.diagnostics.Info("Watching %d directories, press Ctrl+C to stop", len(dirs))
	return watcher.Run(ctx)
}

func (g *Generator) run(ctx context.Context, cfg *config.Config) (pipeline.Summary, error) {
	opts := append([]pipeline.Option{pipeline.WithFs(g.fs)}, g.options...)
	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		g.reporter.ReportError(err)
		return pipeline.Summary{}, err
	}

	summary, err := p.Run(ctx)
	g.printSummary(summary)
	if err != nil {
		g.reporter.ReportError(err)
		return summary, err
	}

	g.diagnostics.GenerationComplete()
	return summary, nil
}

func (g *Generator) printSummary(summary pipeline.Summary) {
	if len(summary.Outputs) > 0 {
		g.diagnostics.Section("Generated files")
		g.diagnostics.Indent()
		for _, path := range summary.Outputs {
			g.diagnostics.Written(path)
		}
		g.diagnostics.Unindent()
	}
	for _, path := range summary.Overwrites {
		g.diagnostics.Warn("%s was generated by more than one class, the last one written was kept", path)
	}

	g.diagnostics.Summary("Summary", map[string]interface{}{
		"Files read":      summary.FilesRead,
		"Units generated": summary.UnitsGenerated,
		"Files written":   summary.FilesWritten,
		"Duration":        summary.Duration.Round(time.Millisecond),
		"Run":             summary.RunID,
	})
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
