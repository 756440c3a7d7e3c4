// Package cmd provides the root command and CLI setup for rocqtrace.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	"rocqtrace.dev/pkg/rocqtrace/internal/controller"
	"rocqtrace.dev/pkg/rocqtrace/internal/domain"
	"rocqtrace.dev/pkg/rocqtrace/internal/metrics"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// workflowFactory builds the workflow a command runs. Tests replace it.
var workflowFactory = newWorkflow

func newWorkflow(cmd *cobra.Command, opts domain.WorkflowOptions) domain.Workflow {
	return domain.NewWorkflow(domain.WorkflowDeps{
		Sandboxes: adapter.NewDockerSandboxAdapter(),
		Dialers:   adapter.NewPetanqueDialer,
		Resolvers: adapter.NewSandboxPackageResolver,
		Parser:    domain.NewParser(tacticTimeout()),
		Governor:  adapter.NewMemInfoGovernor(),
		UI:        controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
		Metrics:   metrics.NewRecorder(),
	}, opts)
}

const packagesHelp = `Packages are the names (or file stems) of the package configurations found
in the config path. Without arguments every configuration is used.`

const rootLongDescription = `Rocqtrace extracts proof datasets from installed Rocq packages.

Each package set is installed into its own image (build), then its files are
collected (sources), their theorems and load paths are discovered (metadata)
and every proof is replayed step by step with its goal states (elements).
Every stage appends to its own result file and resumes where a previous run
stopped.

` + packagesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rocqtrace",
		Short: "Rocq proof dataset extraction",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its flags but no subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(configPathFlagName, viper.GetString(configPathKey), "directory holding one YAML configuration per package set")
	bindFlagToConfig(flags.Lookup(configPathFlagName), configPathKey)

	flags.Int(portFlagName, viper.GetInt(portKey), "port of the replay server, counted up per package when running in parallel")
	bindFlagToConfig(flags.Lookup(portFlagName), portKey)

	flags.Float64(maxMemoryFlagName, viper.GetFloat64(maxMemoryKey), "used memory fraction that restarts the session (0 disables)")
	bindFlagToConfig(flags.Lookup(maxMemoryFlagName), maxMemoryKey)

	flags.Duration(tocTimeoutFlagName, viper.GetDuration(tocTimeoutKey), "deadline for reading a file and discovering its theorems")
	bindFlagToConfig(flags.Lookup(tocTimeoutFlagName), tocTimeoutKey)

	flags.Duration(extractTimeoutFlagName, viper.GetDuration(extractTimeoutKey), "deadline for replaying one proof")
	bindFlagToConfig(flags.Lookup(extractTimeoutFlagName), extractTimeoutKey)

	flags.Duration(tacticTimeoutFlagName, viper.GetDuration(tacticTimeoutKey), "timeout the replay server applies to one tactic")
	bindFlagToConfig(flags.Lookup(tacticTimeoutFlagName), tacticTimeoutKey)

	flags.Bool(killCloneFlagName, viper.GetBool(killCloneKey), "kill running containers of the same image before starting a session")
	bindFlagToConfig(flags.Lookup(killCloneFlagName), killCloneKey)

	flags.Bool(rebuildFlagName, viper.GetBool(rebuildKey), "rebuild images that already exist")
	bindFlagToConfig(flags.Lookup(rebuildFlagName), rebuildKey)

	flags.IntP(parallelFlagName, "p", viper.GetInt(parallelKey), "number of package sets processed at once")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelKey)

	flags.Bool(failOnPackageErrorFlagName, viper.GetBool(failOnPackageErrorKey), "exit with an error when a package set was skipped")
	bindFlagToConfig(flags.Lookup(failOnPackageErrorFlagName), failOnPackageErrorKey)

	flags.String(metricsTextfileFlagName, viper.GetString(metricsTextfileKey), "write Prometheus metrics to this file after each stage")
	bindFlagToConfig(flags.Lookup(metricsTextfileFlagName), metricsTextfileKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// loadPackageConfigs reads the package configurations named by args, or all
// of them when args is empty.
func loadPackageConfigs(args []string) ([]m.PackageConfig, error) {
	return adapter.LoadPackageConfigs(viper.GetString(configPathKey), args)
}
