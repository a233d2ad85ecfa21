package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/heroes/internal/config"
	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/tui/detail"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (global file, project overlay and
HEROES_* environment variables) for semantic correctness.

This includes:
- Data source and API URL
- Lookup timeout
- Default output format
- Loading the hero database when the file source is selected`,
		Example: `  # Validate current configuration
  heroes config validate

  # Validate and show detailed information
  heroes config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	source, err := newHeroSource(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, source)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, source detail.HeroGetter) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Data source: %s\n", cfg.Data.Source)
	switch cfg.Data.Source {
	case config.SourceAPI:
		cmd.Printf("  API URL: %s\n", cfg.Data.APIURL)
		cmd.Printf("  Timeout: %s\n", cfg.Data.Timeout())
	default:
		cmd.Printf("  Data file: %s\n", cfg.DataFilePath())
		if store, ok := source.(*hero.MemoryStore); ok {
			cmd.Printf("  Heroes: %d\n", store.Len())
		}
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project overlay: %s\n", dir)
	}
}
