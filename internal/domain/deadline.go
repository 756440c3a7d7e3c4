package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// DeadlineSupervisor bounds the wall-clock time of one operation.
type DeadlineSupervisor interface {
	// WithDeadline runs op with a context that expires after timeout. When op
	// has not returned in time the call fails with an error wrapping
	// ErrTimeout and label; op keeps running in the background until it
	// notices its context and whatever it leaves behind is never read.
	WithDeadline(ctx context.Context, timeout time.Duration, label string, op func(ctx context.Context) error) error
}

type deadlineSupervisor struct {
	onTimeout func(label string)
}

// NewDeadlineSupervisor returns a supervisor calling onTimeout, when not
// nil, every time a deadline is exceeded.
func NewDeadlineSupervisor(onTimeout func(label string)) DeadlineSupervisor {
	return &deadlineSupervisor{onTimeout: onTimeout}
}

func (d *deadlineSupervisor) WithDeadline(ctx context.Context, timeout time.Duration, label string, op func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- op(opCtx)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() == nil && opCtx.Err() != nil {
			return d.timedOut(label, timeout, err)
		}

		return err
	case <-opCtx.Done():
		if err := ctx.Err(); err != nil {
			return err
		}

		return d.timedOut(label, timeout, nil)
	}
}

func (d *deadlineSupervisor) timedOut(label string, timeout time.Duration, cause error) error {
	slog.Warn("Deadline exceeded", "label", label, "timeout", timeout)

	if d.onTimeout != nil {
		d.onTimeout(label)
	}

	if cause != nil {
		return fmt.Errorf("%w: %s after %s: %w", m.ErrTimeout, label, timeout, cause)
	}

	return fmt.Errorf("%w: %s after %s", m.ErrTimeout, label, timeout)
}

// callWithDeadline runs op under supervisor and returns its value only when
// it finished in time.
func callWithDeadline[T any](
	ctx context.Context,
	supervisor DeadlineSupervisor,
	timeout time.Duration,
	label string,
	op func(ctx context.Context) (T, error),
) (T, error) {
	var (
		zero   T
		result T
	)

	err := supervisor.WithDeadline(ctx, timeout, label, func(ctx context.Context) error {
		value, err := op(ctx)
		if err != nil {
			return err
		}

		result = value

		return nil
	})
	if err != nil {
		return zero, err
	}

	return result, nil
}
