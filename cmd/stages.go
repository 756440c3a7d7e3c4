package cmd

import (
	"github.com/spf13/cobra"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [packages...]",
		Short: "Install the packages of each package set into its image",
		Long: `Start a container from the base image, install the packages with opam and
commit the result as name:tag. Existing images are kept unless --rebuild is set.

` + packagesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgs, err := loadPackageConfigs(args)
			if err != nil {
				return err
			}

			return workflowFactory(cmd, workflowOptions()).Build(cmd.Context(), cfgs)
		},
	}
}

func newStageCmd(stage m.Stage, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   string(stage) + " [packages...]",
		Short: short,
		Long:  long + "\n\n" + packagesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgs, err := loadPackageConfigs(args)
			if err != nil {
				return err
			}

			return workflowFactory(cmd, workflowOptions()).Run(cmd.Context(), cfgs, []m.Stage{stage})
		},
	}
}

func newSourcesCmd() *cobra.Command {
	return newStageCmd(m.StageSources,
		"Collect the source files of each package set",
		`Resolve every package to its logical root, list its .v files and append
their content to <output>_sources.jsonl.`)
}

func newMetadataCmd() *cobra.Command {
	return newStageCmd(m.StageMetadata,
		"Discover the theorems and load paths of every source file",
		`Read <output>_sources.jsonl and append the theorems, load path and required
modules of every file to <output>_metadata.jsonl.`)
}

func newElementsCmd() *cobra.Command {
	return newStageCmd(m.StageElements,
		"Replay every proof step by step",
		`Read <output>_metadata.jsonl and append every theorem with its proof steps,
goal states and premises to <output>_elements.jsonl.`)
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [packages...]",
		Short: "Build the images and run every stage",
		Long: `Run build, sources, metadata and elements in order.

` + packagesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgs, err := loadPackageConfigs(args)
			if err != nil {
				return err
			}

			workflow := workflowFactory(cmd, workflowOptions())

			if err := workflow.Build(cmd.Context(), cfgs); err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), cfgs, m.Stages)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [packages...]",
		Short: "Show the result files of each package set",
		Long: `Count and validate the records of every result file.

` + packagesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgs, err := loadPackageConfigs(args)
			if err != nil {
				return err
			}

			return workflowFactory(cmd, workflowOptions()).Status(cmd.Context(), cfgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newBuildCmd(),
		newSourcesCmd(),
		newMetadataCmd(),
		newElementsCmd(),
		newAllCmd(),
		newStatusCmd(),
	)
}
