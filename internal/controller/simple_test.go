package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return NewSimpleUI(cmd, false), &out
}

func TestSimpleUI_Events(t *testing.T) {
	ui, out := newTestUI()
	ctx := context.Background()

	ui.StageStarted(ctx, "coq-actuary", m.StageElements)
	ui.ItemWarning(ctx, "coq-actuary", m.StageElements, "A.v#add0", errors.New("proof has no terminator"))
	ui.Recovered(ctx, "coq-actuary", m.StageElements, "timeout")
	ui.PackageSkipped(ctx, "coq-actuary", m.StageElements, errors.New("duplicate identity"))
	ui.StageFinished(ctx, m.StageSummary{
		Package:  "coq-actuary",
		Stage:    m.StageElements,
		Appended: 3,
		Skipped:  2,
		Warnings: 1,
		Elapsed:  1500 * time.Millisecond,
	})

	text := out.String()
	assert.Contains(t, text, "[coq-actuary] elements: started")
	assert.Contains(t, text, "warning A.v#add0: proof has no terminator")
	assert.Contains(t, text, "session restarted after timeout")
	assert.Contains(t, text, "ignore coq-actuary: duplicate identity")
	assert.Contains(t, text, "done in 1.5s: 3 appended, 2 skipped, 1 warnings, 0 recoveries")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.StageStarted(ctx, "pkg", m.StageSources)
	ui.ItemWarning(ctx, "pkg", m.StageSources, "A.v", errors.New("x"))
	assert.Empty(t, out.String())

	require.ErrorIs(t, ui.DisplayStatus(ctx, nil), context.Canceled)
}

func TestSimpleUI_DisplayStatus(t *testing.T) {
	ui, out := newTestUI()

	rows := []m.StatusRow{
		{Package: "pkg", Stage: m.StageSources, Records: 12, Bytes: 2048},
		{Package: "pkg", Stage: m.StageMetadata},
		{Package: "pkg", Stage: m.StageElements, Records: 1, Bytes: 10, Err: errors.New("invalid record")},
	}

	require.NoError(t, ui.DisplayStatus(context.Background(), rows))

	text := out.String()
	assert.Contains(t, text, "PACKAGE")
	assert.Contains(t, text, "2.0 kB")
	assert.Contains(t, text, "missing")
	assert.Contains(t, text, "invalid record")
	assert.Contains(t, text, "13")
}

func TestSimpleUI_BuildOutput(t *testing.T) {
	ui, out := newTestUI()

	_, err := ui.BuildOutput(context.Background(), "pkg").Write([]byte("opam install"))
	require.NoError(t, err)
	assert.Equal(t, "opam install", out.String())
}

func TestSimpleUI_Styled(t *testing.T) {
	ui := NewSimpleUI(&cobra.Command{}, true)
	assert.Contains(t, ui.style(warningStyle, "careful"), "careful")
	assert.False(t, IsTTY(nil))
}
