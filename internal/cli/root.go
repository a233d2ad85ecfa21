// Package cli implements the heroes command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/heroes/internal/config"
	"github.com/rshade/heroes/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the heroes CLI.
// It wires up config loading, logging and tracing, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult     *logging.LogPathResult
		configPath    string
		projectDirArg string
	)

	cmd := &cobra.Command{
		Use:           "heroes",
		Short:         "Browse DC and Marvel heroes from the terminal",
		Long:          "heroes: look up heroes by id and browse them in an interactive terminal UI",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, configPath, projectDirArg); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.heroes/config.yaml)")
	cmd.PersistentFlags().StringVar(&projectDirArg, "project-dir", "",
		"project directory holding a .heroes/ overlay (default: search upward from the working directory)")

	cmd.AddCommand(NewShowCmd(), newConfigCmd(), NewSetupCmd())

	return cmd
}

// loadConfig resolves the configuration for this invocation and installs it
// as the global config. An explicit --config file replaces the global file;
// otherwise the project overlay, if any, is merged on top of it.
func loadConfig(cmd *cobra.Command, configPath, projectDirArg string) error {
	ctx := cmd.Context()

	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	projectDir := config.ResolveProjectDir(ctx, projectDirArg, wd)
	config.SetResolvedProjectDir(projectDir)

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyEnvOverrides(os.LookupEnv)
	} else {
		cfg = config.NewWithProjectDir(ctx, projectDir)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Open the interactive browser on the hero list
  heroes show

  # Open a hero directly
  heroes show marvel-iron

  # Print heroes as JSON
  heroes show dc-batman dc-flash --output json

  # Read heroes from a json-server instance
  HEROES_DATA_SOURCE=api HEROES_API_URL=http://localhost:3000 heroes show dc-superman

  # Create ~/.heroes with a default config and hero database
  heroes setup`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
