package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// maxStartAttempts bounds how many theorems are tried when a proof state is
// only needed to run queries.
const maxStartAttempts = 10

var theoremKinds = map[string]bool{"Lemma": true, "Theorem": true}

// Parser extracts theorems, dependencies and proof steps through a replay
// server. Every call opens its own connection.
type Parser interface {
	ExtractTOC(ctx context.Context, dialer adapter.ReplayDialer, source m.Source) ([]m.Element, error)
	ExtractDependencies(ctx context.Context, dialer adapter.ReplayDialer, source m.Source, theorems []m.Element) (m.LoadPath, []m.Dependency, error)
	// Replay runs the proof of theorem step by step. bound, when not nil, is
	// where the next theorem of the file starts.
	Replay(ctx context.Context, dialer adapter.ReplayDialer, theorem m.Element, bound *m.Position, source m.Source) ([]m.Step, error)
}

type parser struct {
	tacticTimeout time.Duration
}

// NewParser returns a parser forwarding tacticTimeout to the server for
// every proof step.
func NewParser(tacticTimeout time.Duration) Parser {
	return &parser{tacticTimeout: tacticTimeout}
}

func (p *parser) ExtractTOC(ctx context.Context, dialer adapter.ReplayDialer, source m.Source) ([]m.Element, error) {
	conn, err := dialer.Dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	entries, err := conn.TOC(ctx, source.Path)
	if err != nil {
		return nil, err
	}

	var theorems []m.Element

	for _, entry := range entries {
		if len(entry.Details) == 0 {
			continue
		}

		last := entry.Details[len(entry.Details)-1]
		if !theoremKinds[last.Detail] {
			continue
		}

		theorem := m.Element{
			Origin: string(source.Path),
			Name:   entry.Name,
			Range:  last.Range,
		}
		UpdateStatement(&theorem, source)

		theorems = append(theorems, theorem)
	}

	return theorems, nil
}

func (p *parser) ExtractDependencies(ctx context.Context, dialer adapter.ReplayDialer, source m.Source, theorems []m.Element) (m.LoadPath, []m.Dependency, error) {
	conn, err := dialer.Dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	st, err := p.startAny(ctx, conn, source, theorems)
	if err != nil {
		return nil, nil, err
	}

	answer, err := p.query(ctx, conn, st, "Print LoadPath.")
	if err != nil {
		return nil, nil, err
	}

	loadPath := parseLoadPath(answer)

	var dependencies []m.Dependency

	for _, module := range requiredModules(source) {
		answer, err := p.query(ctx, conn, st, "Locate "+module.Name+".")
		if err != nil {
			return nil, nil, err
		}

		for _, qualid := range parseLocate(answer) {
			span := module.Range
			dependencies = append(dependencies, m.Dependency{
				Origin: module.Name,
				Name:   qualid,
				Range:  &span,
				Kind:   m.DependencyModule,
			})
		}
	}

	return loadPath, dependencies, nil
}

// startAny opens a proof state on the first theorem the server accepts.
func (p *parser) startAny(ctx context.Context, conn adapter.ReplayConn, source m.Source, theorems []m.Element) (adapter.ReplayState, error) {
	if len(theorems) == 0 {
		return adapter.ReplayState{}, fmt.Errorf("%w: no theorem to open a proof state in %s", m.ErrExtraction, source.Path)
	}

	var lastErr error

	for attempt := range min(maxStartAttempts, len(theorems)) {
		st, err := conn.Start(ctx, source.Path, theorems[attempt].Name)
		if err == nil {
			return st, nil
		}

		if ctx.Err() != nil {
			return adapter.ReplayState{}, err
		}

		slog.Debug("Theorem did not start", "theorem", theorems[attempt].Name, "source", source.Path, "error", err)
		lastErr = err
	}

	return adapter.ReplayState{}, fmt.Errorf("open a proof state in %s: %w", source.Path, lastErr)
}

// query runs a vernacular command and returns its single informational
// answer.
func (p *parser) query(ctx context.Context, conn adapter.ReplayConn, st adapter.ReplayState, command string) (string, error) {
	next, err := conn.Run(ctx, st, command, 0)
	if err != nil {
		return "", err
	}

	if len(next.Feedback) != 1 || next.Feedback[0].Level != adapter.FeedbackInfo {
		return "", fmt.Errorf("%w: %q answered with %d messages", m.ErrService, command, len(next.Feedback))
	}

	return next.Feedback[0].Message, nil
}

func (p *parser) Replay(ctx context.Context, dialer adapter.ReplayDialer, theorem m.Element, bound *m.Position, source m.Source) ([]m.Step, error) {
	tactics, err := ProofSteps(theorem.Range.End, bound, source)
	if err != nil {
		return nil, err
	}

	conn, err := dialer.Dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	st, err := conn.Start(ctx, source.Path, theorem.Name)
	if err != nil {
		return nil, err
	}

	goals, err := conn.Goals(ctx, st)
	if err != nil {
		return nil, err
	}

	steps := make([]m.Step, 0, len(tactics))

	for _, tactic := range tactics {
		dependencies, err := p.stepDependencies(ctx, conn, st, tactic.Text)
		if err != nil {
			return nil, err
		}

		stateIn, err := json.Marshal(goals)
		if err != nil {
			return nil, err
		}

		st, err = conn.Run(ctx, st, tactic.Text, p.tacticTimeout)
		if err != nil {
			return nil, err
		}

		goals, err = conn.Goals(ctx, st)
		if err != nil {
			return nil, err
		}

		stateOut, err := json.Marshal(goals)
		if err != nil {
			return nil, err
		}

		steps = append(steps, m.Step{
			Step:         tactic.Text,
			Range:        tactic.Range,
			StateIn:      stateIn,
			StateOut:     stateOut,
			Dependencies: dependencies,
		})
	}

	if len(goals) > 0 {
		return nil, fmt.Errorf("%w: proof of %s is incomplete, %d goals left", m.ErrExtraction, theorem.Name, len(goals))
	}

	return steps, nil
}

// stepDependencies asks the server about every identifier the tactic
// mentions, in the state the tactic runs in.
func (p *parser) stepDependencies(ctx context.Context, conn adapter.ReplayConn, st adapter.ReplayState, tactic string) ([]m.Dependency, error) {
	ast, err := conn.AST(ctx, st, tactic)
	if err != nil {
		return nil, err
	}

	dependencies := []m.Dependency{}

	for _, name := range qualifiedNames(ast) {
		about, err := conn.Run(ctx, st, "About "+name+".", 0)
		if err != nil {
			return nil, err
		}

		if len(about.Feedback) == 0 {
			continue
		}

		if dependency, ok := parseAbout(about.Feedback[0].Message); ok {
			dependencies = append(dependencies, dependency)
		}
	}

	return dependencies, nil
}
