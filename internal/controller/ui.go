// Package controller renders the progress and results of extraction runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// UI receives progress events from the stages. Implementations must accept
// calls from several packages running at once.
type UI interface {
	StageStarted(ctx context.Context, pkg string, stage m.Stage)
	ItemWarning(ctx context.Context, pkg string, stage m.Stage, item string, err error)
	Recovered(ctx context.Context, pkg string, stage m.Stage, reason string)
	PackageSkipped(ctx context.Context, pkg string, stage m.Stage, err error)
	StageFinished(ctx context.Context, summary m.StageSummary)
	// BuildOutput is where the output of image builds is copied.
	BuildOutput(ctx context.Context, pkg string) io.Writer
	DisplayStatus(ctx context.Context, rows []m.StatusRow) error
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewUI returns the console UI of cmd. Notices are styled when styled is
// true.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}
