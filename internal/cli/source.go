package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/heroes/internal/config"
	"github.com/rshade/heroes/internal/hero"
	"github.com/rshade/heroes/internal/logging"
	"github.com/rshade/heroes/internal/tui/detail"
)

// newHeroSource builds the hero data source selected by cfg. With the file
// source and no explicit file, a missing default database falls back to the
// built-in roster.
func newHeroSource(ctx context.Context, cfg *config.Config) (detail.HeroGetter, error) {
	log := logging.FromContext(ctx)

	switch cfg.Data.Source {
	case config.SourceAPI:
		log.Debug().Ctx(ctx).
			Str("component", "source").
			Str("api_url", cfg.Data.APIURL).
			Dur("timeout", cfg.Data.Timeout()).
			Msg("using heroes API")
		return hero.NewHTTPClient(cfg.Data.APIURL, hero.WithTimeout(cfg.Data.Timeout())), nil

	case config.SourceFile:
		path := cfg.DataFilePath()
		store, err := hero.LoadFile(path)
		if err == nil {
			log.Debug().Ctx(ctx).
				Str("component", "source").
				Str("path", path).
				Int("heroes", store.Len()).
				Msg("loaded hero database")
			return store, nil
		}
		if cfg.Data.File == "" && errors.Is(err, os.ErrNotExist) {
			log.Debug().Ctx(ctx).
				Str("component", "source").
				Str("path", path).
				Msg("no hero database, using built-in roster")
			return hero.NewMemoryStore(hero.Seed()), nil
		}
		return nil, err

	default:
		return nil, fmt.Errorf("%w: unknown data source %q", config.ErrInvalidConfig, cfg.Data.Source)
	}
}
