package domain_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	adaptermocks "rocqtrace.dev/pkg/rocqtrace/internal/adapter/mocks"
	controllermocks "rocqtrace.dev/pkg/rocqtrace/internal/controller/mocks"
	"rocqtrace.dev/pkg/rocqtrace/internal/domain"
	domainmocks "rocqtrace.dev/pkg/rocqtrace/internal/domain/mocks"
	"rocqtrace.dev/pkg/rocqtrace/internal/metrics"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

func packageConfigs(t *testing.T, names ...string) []m.PackageConfig {
	t.Helper()

	dir := t.TempDir()
	cfgs := make([]m.PackageConfig, len(names))

	for i, name := range names {
		cfgs[i] = m.PackageConfig{
			Name:        name,
			Output:      filepath.Join(dir, name),
			Tag:         "latest",
			Packages:    []string{name},
			BaseImage:   "rocq/base:9.0",
			OpamEnvPath: "/home/rocq/.opam/default",
			User:        "rocq",
		}
	}

	return cfgs
}

// extractorCalls builds one mock extractor per package and remembers the
// port each one was bound to.
type extractorCalls struct {
	mu         sync.Mutex
	extractors map[string]*domainmocks.MockExtractor
	ports      map[string]int
}

func newExtractorCalls(extractors map[string]*domainmocks.MockExtractor) *extractorCalls {
	return &extractorCalls{extractors: extractors, ports: map[string]int{}}
}

func (c *extractorCalls) factory(cfg m.PackageConfig, port int) domain.Extractor {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ports[cfg.Name] = port

	return c.extractors[cfg.Name]
}

func closingExtractor() *domainmocks.MockExtractor {
	extractor := new(domainmocks.MockExtractor)
	extractor.EXPECT().Close(mock.Anything).Return(nil)

	return extractor
}

func quietWorkflowUI() *controllermocks.MockUI {
	ui := new(controllermocks.MockUI)
	ui.EXPECT().StageStarted(mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().StageFinished(mock.Anything, mock.Anything).Maybe()

	return ui
}

func TestWorkflow_Run(t *testing.T) {
	cfgs := packageConfigs(t, "coq-actuary", "coq-broken")
	actuary := closingExtractor()
	broken := closingExtractor()

	var order []string

	record := func(name string) func(context.Context) {
		return func(context.Context) { order = append(order, name) }
	}

	actuary.EXPECT().Sources(mock.Anything).Run(record("actuary sources")).Return(m.StageSummary{}, nil).Once()
	broken.EXPECT().Sources(mock.Anything).Run(record("broken sources")).Return(m.StageSummary{}, m.ErrConsistency).Once()
	actuary.EXPECT().Metadata(mock.Anything).Run(record("actuary metadata")).Return(m.StageSummary{}, nil).Once()
	broken.EXPECT().Metadata(mock.Anything).Run(record("broken metadata")).Return(m.StageSummary{}, nil).Once()

	ui := new(controllermocks.MockUI)
	ui.EXPECT().PackageSkipped(mock.Anything, "coq-broken", m.StageSources, mock.Anything).Once()

	textfile := filepath.Join(t.TempDir(), "metrics", "rocqtrace.prom")
	calls := newExtractorCalls(map[string]*domainmocks.MockExtractor{"coq-actuary": actuary, "coq-broken": broken})

	workflow := domain.NewWorkflow(domain.WorkflowDeps{
		UI:         ui,
		Metrics:    metrics.NewRecorder(),
		Extractors: calls.factory,
	}, domain.WorkflowOptions{BasePort: 8765, Parallel: 1, MetricsTextfile: textfile})

	err := workflow.Run(context.Background(), cfgs, []m.Stage{m.StageSources, m.StageMetadata})
	require.NoError(t, err)

	assert.Equal(t, []string{"actuary sources", "broken sources", "actuary metadata", "broken metadata"}, order)
	assert.Equal(t, map[string]int{"coq-actuary": 8765, "coq-broken": 8765}, calls.ports)
	assert.FileExists(t, textfile)

	actuary.AssertExpectations(t)
	broken.AssertExpectations(t)
	broken.AssertNumberOfCalls(t, "Close", 2)
	ui.AssertExpectations(t)
}

func TestWorkflow_Run_FailOnPackageError(t *testing.T) {
	cfgs := packageConfigs(t, "coq-broken")
	broken := closingExtractor()
	broken.EXPECT().Elements(mock.Anything).Return(m.StageSummary{}, m.ErrService)

	ui := new(controllermocks.MockUI)
	ui.EXPECT().PackageSkipped(mock.Anything, "coq-broken", m.StageElements, mock.Anything)

	workflow := domain.NewWorkflow(domain.WorkflowDeps{
		UI:         ui,
		Extractors: newExtractorCalls(map[string]*domainmocks.MockExtractor{"coq-broken": broken}).factory,
	}, domain.WorkflowOptions{FailOnPackageError: true})

	err := workflow.Run(context.Background(), cfgs, []m.Stage{m.StageElements})
	require.ErrorIs(t, err, m.ErrService)
	assert.Contains(t, err.Error(), "coq-broken: elements")
}

func TestWorkflow_Run_Parallel(t *testing.T) {
	cfgs := packageConfigs(t, "coq-a", "coq-b", "coq-c")
	extractors := map[string]*domainmocks.MockExtractor{}

	for _, cfg := range cfgs {
		extractor := closingExtractor()
		extractor.EXPECT().Sources(mock.Anything).Return(m.StageSummary{}, nil)
		extractors[cfg.Name] = extractor
	}

	calls := newExtractorCalls(extractors)

	workflow := domain.NewWorkflow(domain.WorkflowDeps{
		UI:         new(controllermocks.MockUI),
		Extractors: calls.factory,
	}, domain.WorkflowOptions{BasePort: 9000, Parallel: 2})

	require.NoError(t, workflow.Run(context.Background(), cfgs, []m.Stage{m.StageSources}))
	assert.Equal(t, map[string]int{"coq-a": 9000, "coq-b": 9001, "coq-c": 9002}, calls.ports)
}

func TestWorkflow_Run_UnknownStage(t *testing.T) {
	cfgs := packageConfigs(t, "coq-actuary")

	ui := new(controllermocks.MockUI)
	ui.EXPECT().PackageSkipped(mock.Anything, "coq-actuary", m.StageBuild, mock.Anything).
		Run(func(_ context.Context, _ string, _ m.Stage, err error) {
			assert.ErrorIs(t, err, m.ErrConfiguration)
		})

	workflow := domain.NewWorkflow(domain.WorkflowDeps{
		UI:         ui,
		Extractors: newExtractorCalls(map[string]*domainmocks.MockExtractor{"coq-actuary": closingExtractor()}).factory,
	}, domain.WorkflowOptions{})

	require.NoError(t, workflow.Run(context.Background(), cfgs, []m.Stage{m.StageBuild}))
	ui.AssertExpectations(t)
}

func TestWorkflow_Run_Cancelled(t *testing.T) {
	cfgs := packageConfigs(t, "coq-actuary")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	workflow := domain.NewWorkflow(domain.WorkflowDeps{
		UI:         new(controllermocks.MockUI),
		Extractors: newExtractorCalls(nil).factory,
	}, domain.WorkflowOptions{})

	err := workflow.Run(ctx, cfgs, []m.Stage{m.StageSources, m.StageMetadata})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Build(t *testing.T) {
	t.Run("existing image is kept", func(t *testing.T) {
		cfgs := packageConfigs(t, "coq-actuary")
		sandboxes := new(adaptermocks.MockSandboxAdapter)
		sandboxes.EXPECT().ImageExists(mock.Anything, "coq-actuary:latest").Return(true, nil)

		ui := new(controllermocks.MockUI)
		ui.EXPECT().StageFinished(mock.Anything, m.StageSummary{Package: "coq-actuary", Stage: m.StageBuild, Skipped: 1}).Once()

		workflow := domain.NewWorkflow(domain.WorkflowDeps{Sandboxes: sandboxes, UI: ui}, domain.WorkflowOptions{})

		require.NoError(t, workflow.Build(context.Background(), cfgs))
		sandboxes.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
		ui.AssertExpectations(t)
	})

	t.Run("rebuild installs and commits", func(t *testing.T) {
		cfgs := packageConfigs(t, "coq-actuary")
		cfgs[0].Packages = []string{"coq-actuary", "coq-mathcomp-ssreflect.2.2.0"}

		sandboxes := new(adaptermocks.MockSandboxAdapter)
		sandbox := new(adaptermocks.MockSandbox)
		var out bytes.Buffer

		sandboxes.EXPECT().Start(mock.Anything, adapter.SandboxSpec{
			Image: "rocq/base:9.0",
			User:  "rocq",
			Label: "coq-actuary",
		}).Return(sandbox, nil)
		sandbox.EXPECT().ExecStream(mock.Anything,
			"OPAMYES=1 OPAMCOLOR=never opam install 'coq-actuary' 'coq-mathcomp-ssreflect.2.2.0'", &out).Return(nil)
		sandbox.EXPECT().Commit(mock.Anything, "coq-actuary:latest").Return(nil)
		sandbox.EXPECT().Close(mock.Anything).Return(nil)

		ui := quietWorkflowUI()
		ui.EXPECT().BuildOutput(mock.Anything, "coq-actuary").Return(&out)

		workflow := domain.NewWorkflow(domain.WorkflowDeps{Sandboxes: sandboxes, UI: ui}, domain.WorkflowOptions{Rebuild: true})

		require.NoError(t, workflow.Build(context.Background(), cfgs))
		sandboxes.AssertNotCalled(t, "ImageExists", mock.Anything, mock.Anything)
		sandbox.AssertExpectations(t)
	})

	t.Run("failed install removes the sandbox", func(t *testing.T) {
		cfgs := packageConfigs(t, "coq-actuary")

		sandboxes := new(adaptermocks.MockSandboxAdapter)
		sandbox := new(adaptermocks.MockSandbox)

		sandboxes.EXPECT().ImageExists(mock.Anything, mock.Anything).Return(false, nil)
		sandboxes.EXPECT().Start(mock.Anything, mock.Anything).Return(sandbox, nil)
		sandbox.EXPECT().ExecStream(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("exit status 5"))
		sandbox.EXPECT().Close(mock.Anything).Return(nil).Once()

		ui := quietWorkflowUI()
		ui.EXPECT().BuildOutput(mock.Anything, mock.Anything).Return(&bytes.Buffer{})
		ui.EXPECT().PackageSkipped(mock.Anything, "coq-actuary", m.StageBuild, mock.Anything).Once()

		workflow := domain.NewWorkflow(domain.WorkflowDeps{Sandboxes: sandboxes, UI: ui}, domain.WorkflowOptions{FailOnPackageError: true})

		err := workflow.Build(context.Background(), cfgs)
		require.ErrorContains(t, err, "exit status 5")
		sandbox.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
		sandbox.AssertExpectations(t)
	})
}

func TestWorkflow_Status(t *testing.T) {
	cfgs := packageConfigs(t, "coq-actuary")
	writeRecords(t, cfgs[0].ResultPath(m.StageSources), m.StageSources, m.SourceRecord{
		Library: actuaryLibrary("/lib/A.v"),
		Source:  m.Source{Path: "/lib/A.v", Content: "Lemma a : True."},
	})
	require.NoError(t, os.WriteFile(string(cfgs[0].ResultPath(m.StageMetadata)), []byte("{\"library\":1}\n"), 0o644))

	ui := new(controllermocks.MockUI)
	ui.EXPECT().DisplayStatus(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rows []m.StatusRow) error {
			require.Len(t, rows, 3)

			assert.Equal(t, m.StageSources, rows[0].Stage)
			assert.Equal(t, 1, rows[0].Records)
			assert.NoError(t, rows[0].Err)
			assert.Positive(t, rows[0].Bytes)

			assert.ErrorIs(t, rows[1].Err, m.ErrRecordInvalid)

			assert.Zero(t, rows[2].Bytes)
			assert.NoError(t, rows[2].Err)

			return nil
		})

	workflow := domain.NewWorkflow(domain.WorkflowDeps{UI: ui}, domain.WorkflowOptions{})

	require.NoError(t, workflow.Status(context.Background(), cfgs))
	ui.AssertExpectations(t)
}
