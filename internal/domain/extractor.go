package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	"rocqtrace.dev/pkg/rocqtrace/internal/controller"
	"rocqtrace.dev/pkg/rocqtrace/internal/metrics"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// Recovery reasons.
const (
	reasonMemoryPressure = "memory pressure"
	reasonTimeout        = "timeout"
	reasonServiceFailure = "service failure"
)

// ExtractorOptions are the run knobs shared by every stage.
type ExtractorOptions struct {
	TOCTimeout     time.Duration
	ExtractTimeout time.Duration
	// MaxMemory is the used memory fraction at which the session is
	// recovered before the next item. Zero disables the check.
	MaxMemory float64
}

// ExtractorDeps are the collaborators of an Extractor.
type ExtractorDeps struct {
	Sessions  SessionManager
	Resolvers adapter.ResolverFactory
	Parser    Parser
	Governor  adapter.ResourceGovernor
	Deadlines DeadlineSupervisor
	UI        controller.UI
	Metrics   *metrics.Recorder
}

// Extractor runs the stages of one package set against its own session.
// It is not safe for concurrent use.
type Extractor interface {
	Sources(ctx context.Context) (m.StageSummary, error)
	Metadata(ctx context.Context) (m.StageSummary, error)
	Elements(ctx context.Context) (m.StageSummary, error)
	Close(ctx context.Context) error
}

type extractor struct {
	ExtractorDeps

	cfg     m.PackageConfig
	opts    ExtractorOptions
	session *Session
}

// NewExtractor returns the extractor of cfg. The session is started lazily
// by the first stage that needs it.
func NewExtractor(cfg m.PackageConfig, deps ExtractorDeps, opts ExtractorOptions) Extractor {
	return &extractor{ExtractorDeps: deps, cfg: cfg, opts: opts}
}

// stageRun tracks one stage of one package.
type stageRun struct {
	stage   m.Stage
	started time.Time
	summary m.StageSummary
}

func (e *extractor) begin(ctx context.Context, stage m.Stage) *stageRun {
	e.UI.StageStarted(ctx, e.cfg.Name, stage)
	slog.Info("Stage started", "package", e.cfg.Name, "stage", stage)

	return &stageRun{
		stage:   stage,
		started: time.Now(),
		summary: m.StageSummary{Package: e.cfg.Name, Stage: stage},
	}
}

func (e *extractor) finish(ctx context.Context, run *stageRun) m.StageSummary {
	run.summary.Elapsed = time.Since(run.started)
	e.UI.StageFinished(ctx, run.summary)

	slog.Info("Stage finished",
		"package", e.cfg.Name,
		"stage", run.stage,
		"appended", run.summary.Appended,
		"skipped", run.summary.Skipped,
		"warnings", run.summary.Warnings,
		"recoveries", run.summary.Recoveries,
		"elapsed", run.summary.Elapsed,
	)

	return run.summary
}

func (e *extractor) skip(run *stageRun) {
	run.summary.Skipped++
	e.Metrics.Item(run.stage, metrics.OutcomeSkipped)
}

func (e *extractor) appended(run *stageRun) {
	run.summary.Appended++
	e.Metrics.Item(run.stage, metrics.OutcomeAppended)
}

func (e *extractor) Close(ctx context.Context) error {
	session := e.session
	e.session = nil

	return session.Close(ctx)
}

func (e *extractor) ensureSession(ctx context.Context) error {
	if e.session != nil {
		return nil
	}

	session, err := e.Sessions.Start(ctx)
	if err != nil {
		return fmt.Errorf("start session for %s: %w", e.cfg.Name, err)
	}

	e.session = session

	return nil
}

// admit prepares the session for the next item. Memory pressure at or above
// the threshold replaces the session first.
func (e *extractor) admit(ctx context.Context, run *stageRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.opts.MaxMemory > 0 && e.session != nil {
		pressure, err := e.Governor.MemoryPressure()
		if err != nil {
			slog.Warn("Failed to sample memory", "package", e.cfg.Name, "error", err)
		} else {
			e.Metrics.MemoryPressure(pressure)

			if pressure >= e.opts.MaxMemory {
				cause := fmt.Errorf("%w: %.2f in use, threshold %.2f", m.ErrMemoryPressure, pressure, e.opts.MaxMemory)
				slog.Warn("Memory pressure above threshold", "package", e.cfg.Name, "error", cause)

				if err := e.recover(ctx, run, reasonMemoryPressure); err != nil {
					return fmt.Errorf("%w: %w", cause, err)
				}
			}
		}
	}

	return e.ensureSession(ctx)
}

func (e *extractor) recover(ctx context.Context, run *stageRun, reason string) error {
	session, err := e.Sessions.Recover(ctx, e.session, reason)

	e.session = session
	if err != nil {
		return err
	}

	run.summary.Recoveries++
	e.Metrics.Recovered(run.stage, reason)
	e.UI.Recovered(ctx, e.cfg.Name, run.stage, reason)

	return nil
}

// handle decides what an item failure means for the stage. A nil return
// lets the stage go on with the next item.
func (e *extractor) handle(ctx context.Context, run *stageRun, item string, err error) error {
	kind := m.Classify(err)

	switch kind {
	case m.FailureConsistency, m.FailureConfiguration:
		return err
	case m.FailureExtraction:
		slog.Warn("Item dropped", "package", e.cfg.Name, "stage", run.stage, "item", item, "error", err)

		run.summary.Warnings++
		e.Metrics.Item(run.stage, metrics.OutcomeDropped)
		e.UI.ItemWarning(ctx, e.cfg.Name, run.stage, item, err)

		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	slog.Warn("Item failed", "package", e.cfg.Name, "stage", run.stage, "item", item, "kind", kind, "error", err)

	run.summary.Warnings++
	e.Metrics.Item(run.stage, metrics.OutcomeFailed)
	e.UI.ItemWarning(ctx, e.cfg.Name, run.stage, item, err)

	reason := reasonServiceFailure
	if errors.Is(err, m.ErrTimeout) {
		reason = reasonTimeout
	}

	return e.recover(ctx, run, reason)
}

func (e *extractor) resolver() (adapter.PackageResolver, error) {
	sandbox, err := e.session.Sandbox()
	if err != nil {
		return nil, err
	}

	return e.Resolvers(sandbox, e.cfg), nil
}

func (e *extractor) dialer() (adapter.ReplayDialer, error) {
	return e.session.Replay()
}

func (e *extractor) Sources(ctx context.Context) (m.StageSummary, error) {
	run := e.begin(ctx, m.StageSources)
	path := e.cfg.ResultPath(m.StageSources)

	done, err := adapter.LoadCheckpoint(path, m.StageSources, m.SourceIdentity)
	if err != nil {
		return run.summary, err
	}

	writer, err := adapter.OpenResultWriter[m.SourceRecord](path, m.StageSources)
	if err != nil {
		return run.summary, err
	}
	defer closeWriter(writer, path)

	if err := e.ensureSession(ctx); err != nil {
		return run.summary, err
	}

	libraries, err := e.resolveLibraries(ctx)
	if err != nil {
		return run.summary, err
	}

	for _, library := range libraries {
		for _, file := range library.Subfiles {
			if _, ok := done[string(file)]; ok {
				e.skip(run)
				continue
			}

			if err := e.admit(ctx, run); err != nil {
				return run.summary, err
			}

			source, err := e.fetch(ctx, file)
			if err != nil {
				if err := e.handle(ctx, run, string(file), err); err != nil {
					return run.summary, err
				}

				continue
			}

			record := m.SourceRecord{Library: library, Source: source}
			if err := writer.Append(record); err != nil {
				return run.summary, err
			}

			done[string(file)] = record
			e.appended(run)
		}
	}

	return e.finish(ctx, run), nil
}

func (e *extractor) fetch(ctx context.Context, file m.Path) (m.Source, error) {
	resolver, err := e.resolver()
	if err != nil {
		return m.Source{}, err
	}

	return callWithDeadline(ctx, e.Deadlines, e.opts.TOCTimeout, "fetch", func(ctx context.Context) (m.Source, error) {
		return resolver.FetchContent(ctx, file)
	})
}

// resolveLibraries checks that every package resolves before any file is
// read, writes the resolved configuration next to the results and lists the
// files of every package.
func (e *extractor) resolveLibraries(ctx context.Context) ([]m.Library, error) {
	resolver, err := e.resolver()
	if err != nil {
		return nil, err
	}

	snapshot := e.cfg
	snapshot.InfoPath = make(map[string]string, len(e.cfg.Packages))

	for _, pkg := range e.cfg.Packages {
		fqn, _, err := resolver.ResolveFQN(ctx, pkg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", pkg, err)
		}

		snapshot.InfoPath[pkg] = fqn
	}

	if err := adapter.SavePackageConfig(e.cfg.SnapshotPath(), snapshot); err != nil {
		return nil, err
	}

	libraries := make([]m.Library, 0, len(e.cfg.Packages))

	for _, pkg := range e.cfg.Packages {
		library, err := resolver.ListFiles(ctx, pkg)
		if err != nil {
			return nil, fmt.Errorf("list files of %s: %w", pkg, err)
		}

		slog.Info("Package resolved", "package", pkg, "fqn", library.FQN, "files", len(library.Subfiles))

		libraries = append(libraries, library)
	}

	return libraries, nil
}

func (e *extractor) Metadata(ctx context.Context) (m.StageSummary, error) {
	run := e.begin(ctx, m.StageMetadata)
	path := e.cfg.ResultPath(m.StageMetadata)

	done, err := adapter.LoadCheckpoint(path, m.StageMetadata, m.MetadataIdentity)
	if err != nil {
		return run.summary, err
	}

	writer, err := adapter.OpenResultWriter[m.MetadataRecord](path, m.StageMetadata)
	if err != nil {
		return run.summary, err
	}
	defer closeWriter(writer, path)

	input := e.cfg.ResultPath(m.StageSources)

	err = adapter.ReadRecords(input, m.StageSources, func(_ uint64, in m.SourceRecord) error {
		id := m.SourceIdentity(in)
		if _, ok := done[id]; ok {
			e.skip(run)
			return nil
		}

		if err := e.admit(ctx, run); err != nil {
			return err
		}

		record, err := e.metadata(ctx, in)
		if err != nil {
			return e.handle(ctx, run, id, err)
		}

		if err := writer.Append(record); err != nil {
			return err
		}

		done[id] = record
		e.appended(run)

		return nil
	})
	if err != nil {
		return run.summary, inputError(input, m.StageSources, err)
	}

	return e.finish(ctx, run), nil
}

func (e *extractor) metadata(ctx context.Context, in m.SourceRecord) (m.MetadataRecord, error) {
	dialer, err := e.dialer()
	if err != nil {
		return m.MetadataRecord{}, err
	}

	theorems, err := callWithDeadline(ctx, e.Deadlines, e.opts.TOCTimeout, "toc", func(ctx context.Context) ([]m.Element, error) {
		return e.Parser.ExtractTOC(ctx, dialer, in.Source)
	})
	if err != nil {
		return m.MetadataRecord{}, err
	}

	record := m.MetadataRecord{Library: in.Library, Source: in.Source, Theorems: theorems}
	if len(theorems) == 0 {
		return record, nil
	}

	type dependencies struct {
		loadPath m.LoadPath
		modules  []m.Dependency
	}

	deps, err := callWithDeadline(ctx, e.Deadlines, e.opts.ExtractTimeout, "dependencies", func(ctx context.Context) (dependencies, error) {
		loadPath, modules, err := e.Parser.ExtractDependencies(ctx, dialer, in.Source, theorems)
		return dependencies{loadPath: loadPath, modules: modules}, err
	})
	if err != nil {
		return m.MetadataRecord{}, err
	}

	record.LoadPath = deps.loadPath
	record.Dependencies = deps.modules

	return record, nil
}

func (e *extractor) Elements(ctx context.Context) (m.StageSummary, error) {
	run := e.begin(ctx, m.StageElements)
	path := e.cfg.ResultPath(m.StageElements)

	done, err := adapter.LoadCheckpoint(path, m.StageElements, m.ElementIdentity)
	if err != nil {
		return run.summary, err
	}

	writer, err := adapter.OpenResultWriter[m.ElementRecord](path, m.StageElements)
	if err != nil {
		return run.summary, err
	}
	defer closeWriter(writer, path)

	input := e.cfg.ResultPath(m.StageMetadata)

	err = adapter.ReadRecords(input, m.StageMetadata, func(_ uint64, in m.MetadataRecord) error {
		for _, theorem := range in.Theorems {
			id := m.TheoremIdentity(theorem)
			if _, ok := done[id]; ok {
				e.skip(run)
				continue
			}

			if err := e.admit(ctx, run); err != nil {
				return err
			}

			item := string(in.Source.Path) + "#" + theorem.Name

			steps, err := e.replay(ctx, theorem, nextTheoremStart(theorem, in.Theorems), in.Source)
			if err != nil {
				if err := e.handle(ctx, run, item, err); err != nil {
					return err
				}

				continue
			}

			record := m.ElementRecord{Library: in.Library, Theorem: theorem, Steps: steps}
			if err := writer.Append(record); err != nil {
				return err
			}

			done[id] = record
			e.appended(run)
		}

		return nil
	})
	if err != nil {
		return run.summary, inputError(input, m.StageMetadata, err)
	}

	return e.finish(ctx, run), nil
}

func (e *extractor) replay(ctx context.Context, theorem m.Element, bound *m.Position, source m.Source) ([]m.Step, error) {
	dialer, err := e.dialer()
	if err != nil {
		return nil, err
	}

	return callWithDeadline(ctx, e.Deadlines, e.opts.ExtractTimeout, "replay", func(ctx context.Context) ([]m.Step, error) {
		return e.Parser.Replay(ctx, dialer, theorem, bound, source)
	})
}

// nextTheoremStart returns the closest start of another theorem after the
// end of theorem, or nil when theorem is the last one of its file.
func nextTheoremStart(theorem m.Element, theorems []m.Element) *m.Position {
	var bound *m.Position

	for _, other := range theorems {
		start := other.Range.Start
		if start.Compare(theorem.Range.End) < 0 {
			continue
		}

		if bound == nil || start.Compare(*bound) < 0 {
			bound = &start
		}
	}

	return bound
}

// inputError marks a missing input file as a configuration problem: the
// previous stage has not run yet.
func inputError(path m.Path, previous m.Stage, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return m.Wrap(m.ErrConfiguration, previous, "read", fmt.Sprintf("%s not found, run the %s stage first", path, previous), nil)
	}

	return err
}

type closer interface {
	Close() error
}

func closeWriter(writer closer, path m.Path) {
	if err := writer.Close(); err != nil {
		slog.Error("Failed to close result file", "path", path, "error", err)
	}
}
