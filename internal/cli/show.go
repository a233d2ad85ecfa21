package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/rshade/heroes/internal/config"
	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/router"
	"github.com/rshade/heroes/internal/tui"
	"github.com/rshade/heroes/internal/tui/app"
	"github.com/rshade/heroes/internal/tui/detail"
)

// maxConcurrentLookups bounds parallel lookups for multi-id output.
const maxConcurrentLookups = 4

// ShowFlags holds the flags of the show command.
type ShowFlags struct {
	Output        string
	Plain         bool
	NoColor       bool
	NoInteractive bool
}

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var flags ShowFlags

	cmd := &cobra.Command{
		Use:   "show [id...]",
		Short: "Show hero details",
		Long: `Shows heroes by id.

On an interactive terminal this opens the hero browser: the detail page of the
given hero, or the hero list when no id is given. Elsewhere, and with
--output json, the heroes are printed and the command exits. A hero id with no
record opens the hero list in the browser and fails with exit code 2 otherwise.`,
		Example: `  # Browse interactively
  heroes show

  # Print one hero as plain text
  heroes show dc-batman --plain

  # Print several heroes as a JSON array
  heroes show dc-batman marvel-iron --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "",
		"output format: table, json (default from config output.default_format)")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "plain text output without styling")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&flags.NoInteractive, "no-interactive", false, "print instead of opening the browser")

	return cmd
}

func runShow(cmd *cobra.Command, ids []string, flags ShowFlags) error {
	ctx := cmd.Context()

	format := config.GetOutputFormat(flags.Output)
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	source, err := newHeroSource(ctx, config.GetGlobalConfig())
	if err != nil {
		return fmt.Errorf("opening hero source: %w", err)
	}

	if format == config.FormatJSON {
		if len(ids) == 0 {
			return errors.New("json output needs at least one hero id")
		}
		heroes, lookupErr := lookupHeroes(ctx, source, ids)
		if lookupErr != nil {
			return lookupErr
		}
		return writeHeroesJSON(cmd.OutOrStdout(), heroes)
	}

	mode := tui.DetectOutputMode(flags.Plain, flags.NoColor, flags.NoInteractive)
	logger.Debug().Ctx(ctx).Str("output_mode", mode.String()).Int("ids", len(ids)).Msg("rendering heroes")

	if mode == tui.OutputModeInteractive {
		if len(ids) > 1 {
			return errors.New("the interactive browser opens one hero at a time")
		}
		startURL := router.HeroListURL
		if len(ids) == 1 {
			startURL = router.JoinSegments("heroes", ids[0])
		}
		return runInteractiveTUI(ctx, source, startURL)
	}

	if len(ids) == 0 {
		return errors.New("a hero id is required when not running interactively")
	}
	heroes, err := lookupHeroes(ctx, source, ids)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, h := range heroes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if mode == tui.OutputModeStyled {
			fmt.Fprintln(w, tui.RenderHeroCard(h, tui.TerminalWidth()))
			continue
		}
		if err = tui.WriteHeroPlain(w, h); err != nil {
			return err
		}
	}
	return nil
}

// lookupHeroes fetches ids concurrently and returns the heroes in ids order.
// Every id without a record is reported in one ErrHeroNotFound error.
func lookupHeroes(ctx context.Context, source detail.HeroGetter, ids []string) ([]*hero.Hero, error) {
	for _, id := range ids {
		if err := hero.ValidateID(id); err != nil {
			return nil, err
		}
	}

	heroes := make([]*hero.Hero, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids {
		g.Go(func() error {
			h, err := source.GetHeroByID(gctx, id)
			if err != nil {
				return fmt.Errorf("looking up hero %s: %w", id, err)
			}
			heroes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var missing []string
	for i, h := range heroes {
		if h == nil {
			missing = append(missing, ids[i])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrHeroNotFound, strings.Join(missing, ", "))
	}
	return heroes, nil
}

// writeHeroesJSON writes a single hero as an object and several as an array.
func writeHeroesJSON(w io.Writer, heroes []*hero.Hero) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	var v any = heroes
	if len(heroes) == 1 {
		v = heroes[0]
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding heroes: %w", err)
	}
	return nil
}

func runInteractiveTUI(ctx context.Context, source detail.HeroGetter, startURL string) error {
	// Log lines written to the terminal would tear the TUI; keep them only
	// when they go to a file or a redirected stderr.
	if config.GetLoggingConfig().File == "" && term.IsTerminal(int(os.Stderr.Fd())) {
		ctx = zerolog.Nop().WithContext(ctx)
	}

	m := app.New(ctx, source, startURL)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return m.Err()
}
