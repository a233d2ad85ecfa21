package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/heroes/internal/config"
)

const configFileName = "config.yaml"

// NewConfigInitCmd creates the config init command for initializing configuration.
// When a project .heroes/ directory is resolved (without --global), it writes
// a project-local config.yaml and .gitignore there. Otherwise, it creates the
// global ~/.heroes/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project (a directory tree containing .heroes/, or one named by
--project-dir or HEROES_PROJECT_DIR) it creates $PROJECT/.heroes/config.yaml
with a .gitignore for local logs. Use --global to write ~/.heroes/config.yaml
instead.`,
		Example: `  # Create configuration for the current project or globally
  heroes config init

  # Create global configuration
  heroes config init --global

  # Create configuration, overwriting existing
  heroes config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")

	return cmd
}

// checkWritable fails when path exists and force is not set.
func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates project-local config at projectDir/config.yaml with .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, configFileName)
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Never overwrites an existing .gitignore.
	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep local logs out of version control\n")
	}

	return nil
}

// initGlobalConfig creates global config at ~/.heroes/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	configPath := config.DefaultConfigPath()
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
