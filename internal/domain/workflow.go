package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	"rocqtrace.dev/pkg/rocqtrace/internal/controller"
	"rocqtrace.dev/pkg/rocqtrace/internal/metrics"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// ExtractorFactory builds the extractor of cfg bound to the replay port.
type ExtractorFactory func(cfg m.PackageConfig, port int) Extractor

// WorkflowDeps are the collaborators of a Workflow.
type WorkflowDeps struct {
	Sandboxes adapter.SandboxAdapter
	Dialers   adapter.DialerFactory
	Resolvers adapter.ResolverFactory
	Parser    Parser
	Governor  adapter.ResourceGovernor
	UI        controller.UI
	Metrics   *metrics.Recorder
	// Extractors overrides how extractors are built. Nil means the default
	// extractor over a docker session.
	Extractors ExtractorFactory
}

// WorkflowOptions are the run knobs of a Workflow.
type WorkflowOptions struct {
	Extractor          ExtractorOptions
	BasePort           int
	KillClones         bool
	ServerStartTimeout time.Duration
	RecoverGrace       time.Duration
	// Parallel is how many packages run at once. Each one gets its own
	// port, counted up from BasePort.
	Parallel           int
	FailOnPackageError bool
	Rebuild            bool
	MetricsTextfile    string
}

// Workflow runs stages over several package sets.
type Workflow interface {
	Build(ctx context.Context, cfgs []m.PackageConfig) error
	// Run runs every stage in order over every package. A package failing a
	// stage is reported and skipped; the others go on.
	Run(ctx context.Context, cfgs []m.PackageConfig, stages []m.Stage) error
	Status(ctx context.Context, cfgs []m.PackageConfig) error
}

type workflow struct {
	WorkflowDeps

	opts      WorkflowOptions
	deadlines DeadlineSupervisor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(deps WorkflowDeps, opts WorkflowOptions) Workflow {
	w := &workflow{
		WorkflowDeps: deps,
		opts:         opts,
		deadlines:    NewDeadlineSupervisor(deps.Metrics.DeadlineExceeded),
	}

	if w.Extractors == nil {
		w.Extractors = w.newExtractor
	}

	return w
}

func (w *workflow) newExtractor(cfg m.PackageConfig, port int) Extractor {
	sessions := NewSessionManager(w.Sandboxes, w.Dialers, SessionSpec{
		Image:              cfg.Image(),
		User:               cfg.User,
		Label:              cfg.SessionLabel(),
		KillClones:         w.opts.KillClones,
		Port:               port,
		ServerStartTimeout: w.opts.ServerStartTimeout,
	}, w.opts.RecoverGrace)

	return NewExtractor(cfg, ExtractorDeps{
		Sessions:  sessions,
		Resolvers: w.Resolvers,
		Parser:    w.Parser,
		Governor:  w.Governor,
		Deadlines: w.deadlines,
		UI:        w.UI,
		Metrics:   w.Metrics,
	}, w.opts.Extractor)
}

func (w *workflow) Run(ctx context.Context, cfgs []m.PackageConfig, stages []m.Stage) error {
	var failures []error

	for _, stage := range stages {
		failures = append(failures, w.forEachPackage(ctx, cfgs, stage, func(ctx context.Context, cfg m.PackageConfig, port int) error {
			return w.runStage(ctx, cfg, port, stage)
		})...)

		if err := w.Metrics.WriteTextfile(w.opts.MetricsTextfile); err != nil {
			slog.Warn("Failed to write metrics", "path", w.opts.MetricsTextfile, "error", err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return w.outcome(failures)
}

func (w *workflow) runStage(ctx context.Context, cfg m.PackageConfig, port int, stage m.Stage) (err error) {
	extractor := w.Extractors(cfg, port)

	defer func() {
		if closeErr := extractor.Close(context.WithoutCancel(ctx)); closeErr != nil {
			slog.Warn("Failed to close session", "package", cfg.Name, "error", closeErr)
		}
	}()

	switch stage {
	case m.StageSources:
		_, err = extractor.Sources(ctx)
	case m.StageMetadata:
		_, err = extractor.Metadata(ctx)
	case m.StageElements:
		_, err = extractor.Elements(ctx)
	default:
		err = fmt.Errorf("%w: unknown stage %q", m.ErrConfiguration, stage)
	}

	return err
}

func (w *workflow) Build(ctx context.Context, cfgs []m.PackageConfig) error {
	failures := w.forEachPackage(ctx, cfgs, m.StageBuild, func(ctx context.Context, cfg m.PackageConfig, _ int) error {
		return w.build(ctx, cfg)
	})

	return w.outcome(failures)
}

func (w *workflow) build(ctx context.Context, cfg m.PackageConfig) error {
	image := cfg.Image()

	if !w.opts.Rebuild {
		exists, err := w.Sandboxes.ImageExists(ctx, image)
		if err != nil {
			return err
		}

		if exists {
			slog.Info("Image already exists", "image", image)
			w.UI.StageFinished(ctx, m.StageSummary{Package: cfg.Name, Stage: m.StageBuild, Skipped: 1})

			return nil
		}
	}

	w.UI.StageStarted(ctx, cfg.Name, m.StageBuild)
	started := time.Now()

	sandbox, err := w.Sandboxes.Start(ctx, adapter.SandboxSpec{
		Image: cfg.BaseImage,
		User:  cfg.User,
		Label: cfg.SessionLabel(),
	})
	if err != nil {
		return err
	}

	defer func() {
		if err := sandbox.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to remove build sandbox", "package", cfg.Name, "error", err)
		}
	}()

	quoted := make([]string, len(cfg.Packages))
	for i, pkg := range cfg.Packages {
		quoted[i] = adapter.ShellQuote(pkg)
	}

	script := "OPAMYES=1 OPAMCOLOR=never opam install " + strings.Join(quoted, " ")
	if err := sandbox.ExecStream(ctx, script, w.UI.BuildOutput(ctx, cfg.Name)); err != nil {
		return fmt.Errorf("install %s: %w", strings.Join(cfg.Packages, " "), err)
	}

	if err := sandbox.Commit(ctx, image); err != nil {
		return err
	}

	w.UI.StageFinished(ctx, m.StageSummary{
		Package:  cfg.Name,
		Stage:    m.StageBuild,
		Appended: 1,
		Elapsed:  time.Since(started),
	})

	return nil
}

func (w *workflow) Status(ctx context.Context, cfgs []m.PackageConfig) error {
	rows := make([]m.StatusRow, 0, len(cfgs)*len(m.Stages))

	for _, cfg := range cfgs {
		for _, stage := range m.Stages {
			rows = append(rows, adapter.ResultStatus(cfg, stage))
		}
	}

	return w.UI.DisplayStatus(ctx, rows)
}

// forEachPackage runs fn for every package, at most Parallel at a time, and
// returns the failures. A failure never stops the other packages.
func (w *workflow) forEachPackage(
	ctx context.Context,
	cfgs []m.PackageConfig,
	stage m.Stage,
	fn func(ctx context.Context, cfg m.PackageConfig, port int) error,
) []error {
	var (
		failures []error
		mu       sync.Mutex
	)

	var group errgroup.Group

	parallel := max(w.opts.Parallel, 1)
	group.SetLimit(parallel)

	for index, cfg := range cfgs {
		port := w.opts.BasePort
		if parallel > 1 {
			port += index
		}

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}

			if err := fn(ctx, cfg, port); err != nil {
				slog.Error("Package skipped", "package", cfg.Name, "stage", stage, "kind", m.Classify(err), "error", err)
				w.UI.PackageSkipped(ctx, cfg.Name, stage, err)

				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %s: %w", cfg.Name, stage, err))
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	return failures
}

func (w *workflow) outcome(failures []error) error {
	if len(failures) == 0 || !w.opts.FailOnPackageError {
		return nil
	}

	return errors.Join(failures...)
}
