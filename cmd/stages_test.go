package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rocqtrace.dev/pkg/rocqtrace/internal/domain"
	domainmocks "rocqtrace.dev/pkg/rocqtrace/internal/domain/mocks"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const actuaryConfig = `name: coq-actuary
output: out/actuary
tag: "9.0"
packages: [coq-actuary]
base_image: rocq/base:9.0
opam_env_path: /home/rocq/.opam/default
`

const mathcompConfig = `name: coq-mathcomp
output: out/mathcomp
tag: "9.0"
packages: [coq-mathcomp-ssreflect, coq-mathcomp-algebra]
base_image: rocq/base:9.0
opam_env_path: /home/rocq/.opam/default
`

func writePackageConfigs(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "actuary.yaml"), []byte(actuaryConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mathcomp.yaml"), []byte(mathcompConfig), 0o644))

	return dir
}

// stubWorkflow makes every command run against workflow and records the
// options it was built with.
func stubWorkflow(t *testing.T, workflow domain.Workflow) *domain.WorkflowOptions {
	t.Helper()

	var opts domain.WorkflowOptions

	original := workflowFactory
	workflowFactory = func(_ *cobra.Command, o domain.WorkflowOptions) domain.Workflow {
		opts = o
		return workflow
	}
	t.Cleanup(func() { workflowFactory = original })

	return &opts
}

func stageRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := newTestRoot(t)
	cmd.AddCommand(newBuildCmd(), newSourcesCmd(), newMetadataCmd(), newElementsCmd(), newAllCmd(), newStatusCmd())
	cmd.SetArgs(args)

	return cmd
}

func packageNames(cfgs []m.PackageConfig) []string {
	names := make([]string, len(cfgs))
	for i, cfg := range cfgs {
		names[i] = cfg.Name
	}

	return names
}

func TestStageCmd_Sources(t *testing.T) {
	dir := writePackageConfigs(t)
	workflow := domainmocks.NewMockWorkflow(t)
	opts := stubWorkflow(t, workflow)

	workflow.EXPECT().Run(mock.Anything, mock.Anything, []m.Stage{m.StageSources}).
		RunAndReturn(func(_ context.Context, cfgs []m.PackageConfig, _ []m.Stage) error {
			assert.Equal(t, []string{"coq-actuary"}, packageNames(cfgs))
			return nil
		})

	cmd := stageRoot(t, "sources", "coq-actuary",
		"--config-path", dir,
		"--parallel", "2",
		"--max-memory", "0.5",
		"--toc-timeout", "1m",
		"--fail-on-package-error",
	)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 2, opts.Parallel)
	assert.InDelta(t, 0.5, opts.Extractor.MaxMemory, 1e-9)
	assert.Equal(t, time.Minute, opts.Extractor.TOCTimeout)
	assert.Equal(t, 2*time.Minute, opts.Extractor.ExtractTimeout)
	assert.Equal(t, 8765, opts.BasePort)
	assert.True(t, opts.FailOnPackageError)
}

func TestStageCmd_EveryStage(t *testing.T) {
	for _, stage := range m.Stages {
		t.Run(string(stage), func(t *testing.T) {
			dir := writePackageConfigs(t)
			workflow := domainmocks.NewMockWorkflow(t)
			stubWorkflow(t, workflow)

			workflow.EXPECT().Run(mock.Anything, mock.Anything, []m.Stage{stage}).
				RunAndReturn(func(_ context.Context, cfgs []m.PackageConfig, _ []m.Stage) error {
					assert.Equal(t, []string{"coq-actuary", "coq-mathcomp"}, packageNames(cfgs))
					return nil
				})

			require.NoError(t, stageRoot(t, string(stage), "--config-path", dir).Execute())
		})
	}
}

func TestStageCmd_UnknownPackage(t *testing.T) {
	dir := writePackageConfigs(t)
	workflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, workflow)

	err := stageRoot(t, "metadata", "coq-missing", "--config-path", dir).Execute()
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestAllCmd(t *testing.T) {
	t.Run("builds then runs every stage", func(t *testing.T) {
		dir := writePackageConfigs(t)
		workflow := domainmocks.NewMockWorkflow(t)
		opts := stubWorkflow(t, workflow)

		build := workflow.EXPECT().Build(mock.Anything, mock.Anything).Return(nil).Once()
		workflow.EXPECT().Run(mock.Anything, mock.Anything, m.Stages).Return(nil).Once().NotBefore(build)

		require.NoError(t, stageRoot(t, "all", "--config-path", dir, "--rebuild").Execute())
		assert.True(t, opts.Rebuild)
	})

	t.Run("stops when the build fails", func(t *testing.T) {
		dir := writePackageConfigs(t)
		workflow := domainmocks.NewMockWorkflow(t)
		stubWorkflow(t, workflow)

		workflow.EXPECT().Build(mock.Anything, mock.Anything).Return(errors.New("docker not running"))

		err := stageRoot(t, "all", "--config-path", dir).Execute()
		require.ErrorContains(t, err, "docker not running")
		workflow.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBuildCmd(t *testing.T) {
	dir := writePackageConfigs(t)
	workflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, workflow)

	workflow.EXPECT().Build(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, cfgs []m.PackageConfig) error {
			assert.Equal(t, []string{"coq-mathcomp"}, packageNames(cfgs))
			assert.Equal(t, []string{"coq-mathcomp-ssreflect", "coq-mathcomp-algebra"}, cfgs[0].Packages)
			return nil
		})

	require.NoError(t, stageRoot(t, "build", "mathcomp", "--config-path", dir).Execute())
}

func TestStatusCmd(t *testing.T) {
	dir := writePackageConfigs(t)
	workflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, workflow)

	workflow.EXPECT().Status(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, cfgs []m.PackageConfig) error {
			assert.Len(t, cfgs, 2)
			return nil
		})

	require.NoError(t, stageRoot(t, "status", "--config-path", dir).Execute())
}
