package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default rocqtrace.yaml configuration file",
		Long: `Create a rocqtrace.yaml in the current working directory holding the
current run settings (timeouts, memory threshold, port, logging) so it can be
edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s, package configurations are read from %s/\n", targetPath, viper.GetString(configPathKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
