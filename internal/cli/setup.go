package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/heroes/internal/config"
	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/logging"
	"github.com/rshade/heroes/internal/tui"
	"github.com/rshade/heroes/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipData       bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// dirPermBase is the permission mode for the heroes directories.
const dirPermBase = 0o700

// dataFileName is the name of the hero database written by setup.
const dataFileName = "heroes.yaml"

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the top-level setup command that bootstraps ~/.heroes.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the heroes environment",
		Long: `Sets up the heroes environment by creating directories, initializing
configuration and writing the hero database with the built-in roster.

This command is idempotent; it is safe to run multiple times. Existing
configuration and database files are preserved.`,
		Example: `  # Full setup
  heroes setup

  # CI/CD setup (no TTY-dependent output)
  heroes setup --non-interactive

  # Setup without the hero database (API data source)
  heroes setup --skip-data`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols)")
	cmd.Flags().BoolVar(&opts.SkipData, "skip-data", false,
		"Skip writing the hero database")

	return cmd
}

// runSetup runs every setup step in order. A failing step does not stop the
// ones after it; the command fails only if a critical step failed.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	if !opts.NonInteractive && tui.DetectOutputMode(false, false, false) == tui.OutputModePlain {
		opts.NonInteractive = true
	}

	result := &SetupResult{}
	record := func(steps ...StepResult) {
		for _, s := range steps {
			printStep(cmd, s, opts.NonInteractive)
			result.Steps = append(result.Steps, s)
		}
	}

	record(stepDisplayVersion())
	record(stepCreateDirectories()...)
	record(stepInitConfig())
	if opts.SkipData {
		record(StepResult{
			Name:    "Hero database",
			Status:  StepSkipped,
			Message: "Skipped hero database",
		})
	} else {
		record(stepWriteDatabase(ctx))
	}

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "setup").
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'heroes show' to browse heroes.")
	}
}

// stepDisplayVersion reports the heroes version and Go runtime.
func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("heroes v%s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the heroes home and log directories.
// Returns one StepResult per directory.
func stepCreateDirectories() []StepResult {
	baseDir := config.ConfigDir()
	dirs := []string{baseDir, filepath.Dir(config.DefaultLogPath())}

	var results []StepResult
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(dir, dirPermBase); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export HEROES_HOME=/path/to/writable/directory",
					dir,
					mkErr,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig writes the default config file if one does not exist.
func stepInitConfig() StepResult {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Config already exists (%s)", configPath),
			Critical: true,
		}
	}

	if err := config.Default().Save(configPath); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", configPath),
		Critical: true,
	}
}

// stepWriteDatabase writes the built-in roster as the default hero database.
// An existing database is checked instead of overwritten; one that does not
// load is reported as a warning.
func stepWriteDatabase(ctx context.Context) StepResult {
	path := filepath.Join(config.ConfigDir(), dataFileName)

	if _, err := os.Stat(path); err == nil {
		store, loadErr := hero.LoadFile(path)
		if loadErr != nil {
			logging.FromContext(ctx).Warn().
				Ctx(ctx).
				Str("component", "setup").
				Err(loadErr).
				Msg("existing hero database does not load")
			return StepResult{
				Name:    "Hero database",
				Status:  StepWarning,
				Message: fmt.Sprintf("Hero database exists but does not load: %v", loadErr),
				Err:     loadErr,
			}
		}
		return StepResult{
			Name:    "Hero database",
			Status:  StepSuccess,
			Message: fmt.Sprintf("Hero database already exists (%s, %d heroes)", path, store.Len()),
		}
	}

	roster := hero.Seed()
	if err := hero.SaveFile(path, roster); err != nil {
		return StepResult{
			Name:    "Hero database",
			Status:  StepError,
			Message: fmt.Sprintf("Failed to write hero database: %v", err),
			Err:     err,
		}
	}

	return StepResult{
		Name:    "Hero database",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Wrote hero database (%s, %d heroes)", path, len(roster)),
	}
}
