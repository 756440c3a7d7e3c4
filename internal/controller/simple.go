package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// SimpleUI prints one line per event on the command output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	mu     sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// StageStarted announces a stage of a package.
func (s *SimpleUI) StageStarted(ctx context.Context, pkg string, stage m.Stage) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%s] %s: started\n", pkg, stage)
}

// ItemWarning reports a work item that was not written.
func (s *SimpleUI) ItemWarning(ctx context.Context, pkg string, stage m.Stage, item string, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%s] %s: %s\n", pkg, stage, s.style(warningStyle, fmt.Sprintf("warning %s: %v", item, err)))
}

// Recovered reports a session restart.
func (s *SimpleUI) Recovered(ctx context.Context, pkg string, stage m.Stage, reason string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%s] %s: %s\n", pkg, stage, s.style(warningStyle, "session restarted after "+reason))
}

// PackageSkipped reports a package abandoned for the rest of the stage.
func (s *SimpleUI) PackageSkipped(_ context.Context, pkg string, stage m.Stage, err error) {
	s.printf("[%s] %s: %s\n", pkg, stage, s.style(errorStyle, fmt.Sprintf("ignore %s: %v", pkg, err)))
}

// StageFinished prints the counters of a stage.
func (s *SimpleUI) StageFinished(_ context.Context, summary m.StageSummary) {
	line := fmt.Sprintf("done in %s: %d appended, %d skipped, %d warnings, %d recoveries",
		summary.Elapsed.Round(time.Millisecond), summary.Appended, summary.Skipped, summary.Warnings, summary.Recoveries)

	s.printf("[%s] %s: %s\n", summary.Package, summary.Stage, s.style(doneStyle, line))
}

// BuildOutput returns the command error stream.
func (s *SimpleUI) BuildOutput(_ context.Context, _ string) io.Writer {
	return s.cmd.ErrOrStderr()
}

// DisplayStatus prints one table row per result file.
func (s *SimpleUI) DisplayStatus(ctx context.Context, rows []m.StatusRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderStatusTable(rows))

	return nil
}

func renderStatusTable(rows []m.StatusRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Stage", "Records", "Size", "State"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, row := range rows {
		total += row.Records
		table.Append([]string{
			row.Package,
			string(row.Stage),
			strconv.Itoa(row.Records),
			humanize.Bytes(uint64(max(row.Bytes, 0))),
			statusState(row),
		})
	}

	table.SetFooter([]string{"", "", strconv.Itoa(total), "", ""})
	table.Render()

	return tableBuffer.String()
}

func statusState(row m.StatusRow) string {
	switch {
	case row.Err != nil:
		return row.Err.Error()
	case row.Bytes == 0 && row.Records == 0:
		return "missing"
	default:
		return "ok"
	}
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
