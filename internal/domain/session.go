package domain

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// Session is one sandbox together with the replay server running inside it.
// Once closed, every accessor fails with ErrSessionClosed.
type Session struct {
	id      int
	sandbox adapter.Sandbox
	replay  adapter.ReplayDialer
	closed  atomic.Bool
}

// NewSession binds a sandbox and the dialer of its replay server.
func NewSession(id int, sandbox adapter.Sandbox, replay adapter.ReplayDialer) *Session {
	return &Session{id: id, sandbox: sandbox, replay: replay}
}

// ID is the generation number of the session, starting at 1.
func (s *Session) ID() int {
	return s.id
}

// Sandbox returns the container of the session.
func (s *Session) Sandbox() (adapter.Sandbox, error) {
	if s == nil || s.closed.Load() {
		return nil, m.ErrSessionClosed
	}

	return s.sandbox, nil
}

// Replay returns the dialer of the replay server of the session.
func (s *Session) Replay() (adapter.ReplayDialer, error) {
	if s == nil || s.closed.Load() {
		return nil, m.ErrSessionClosed
	}

	return s.replay, nil
}

// Close removes the sandbox. Closing twice is a no-op.
func (s *Session) Close(ctx context.Context) error {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	return s.sandbox.Close(ctx)
}

// SessionSpec is what every session of one package set is started from.
type SessionSpec struct {
	Image              string
	User               string
	Label              string
	KillClones         bool
	Port               int
	ServerStartTimeout time.Duration
}

// SessionManager starts sessions and replaces broken ones.
type SessionManager interface {
	Start(ctx context.Context) (*Session, error)
	// Recover closes old, reclaims leftovers, waits for the grace interval
	// and starts a fresh session from the same spec.
	Recover(ctx context.Context, old *Session, reason string) (*Session, error)
}

type sessionManager struct {
	sandboxes adapter.SandboxAdapter
	dialers   adapter.DialerFactory
	spec      SessionSpec
	grace     time.Duration
	started   int
}

// NewSessionManager returns a manager starting sessions described by spec.
func NewSessionManager(sandboxes adapter.SandboxAdapter, dialers adapter.DialerFactory, spec SessionSpec, grace time.Duration) SessionManager {
	return &sessionManager{
		sandboxes: sandboxes,
		dialers:   dialers,
		spec:      spec,
		grace:     grace,
	}
}

func (sm *sessionManager) Start(ctx context.Context) (*Session, error) {
	sandbox, err := sm.sandboxes.Start(ctx, adapter.SandboxSpec{
		Image:      sm.spec.Image,
		User:       sm.spec.User,
		Label:      sm.spec.Label,
		KillClones: sm.spec.KillClones,
	})
	if err != nil {
		return nil, fmt.Errorf("start sandbox: %w", err)
	}

	if err := sandbox.StartReplayServer(ctx, sm.spec.Port, sm.spec.ServerStartTimeout); err != nil {
		if closeErr := sandbox.Close(ctx); closeErr != nil {
			slog.Warn("Failed to close sandbox after server failure", "sandbox", sandbox.ID(), "error", closeErr)
		}

		return nil, fmt.Errorf("start replay server: %w", err)
	}

	sm.started++
	session := NewSession(sm.started, sandbox, sm.dialers(sm.spec.Port))

	slog.Info("Session started", "label", sm.spec.Label, "session", session.ID(), "port", sm.spec.Port)

	return session, nil
}

func (sm *sessionManager) Recover(ctx context.Context, old *Session, reason string) (*Session, error) {
	slog.Warn("Recovering session", "label", sm.spec.Label, "reason", reason)

	if old != nil {
		if err := old.Close(ctx); err != nil {
			slog.Warn("Failed to close session", "session", old.ID(), "error", err)
		}
	}

	if err := sm.sandboxes.Prune(ctx, sm.spec.Label); err != nil {
		slog.Warn("Failed to prune sandboxes", "label", sm.spec.Label, "error", err)
	}

	runtime.GC()

	if err := sleepContext(ctx, sm.grace); err != nil {
		return nil, err
	}

	session, err := sm.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("recover session after %s: %w", reason, err)
	}

	return session, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
