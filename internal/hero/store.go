package hero

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedDataVersion is the semver constraint a hero database file must satisfy.
const SupportedDataVersion = "^1.0.0"

// defaultDataVersion is assumed for files that predate the version field.
const defaultDataVersion = "1.0.0"

var (
	// ErrUnsupportedDataVersion is returned when a database file's version is outside SupportedDataVersion.
	ErrUnsupportedDataVersion = errors.New("unsupported hero database version")
	// ErrDuplicateID is returned when a database lists the same id twice.
	ErrDuplicateID = errors.New("duplicate hero id")
)

// Database is the on-disk YAML layout of a hero database.
type Database struct {
	Version string `yaml:"version"`
	Heroes  []Hero `yaml:"heroes"`
}

// MemoryStore serves heroes from an in-memory snapshot. It is read-only
// after construction and safe for concurrent use.
type MemoryStore struct {
	byID map[string]Hero
	ids  []string
}

// NewMemoryStore returns a MemoryStore preloaded with items. Later entries
// with a duplicate id replace earlier ones.
func NewMemoryStore(items []Hero) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]Hero, len(items))}
	for _, h := range items {
		if _, exists := s.byID[h.ID]; !exists {
			s.ids = append(s.ids, h.ID)
		}
		s.byID[h.ID] = h
	}
	return s
}

// GetHeroByID returns the hero with id, or (nil, nil) when there is none.
func (s *MemoryStore) GetHeroByID(ctx context.Context, id string) (*Hero, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// List returns every hero in insertion order.
func (s *MemoryStore) List() []Hero {
	out := make([]Hero, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.byID[id])
	}
	return out
}

// IDs returns every hero id, sorted.
func (s *MemoryStore) IDs() []string {
	ids := append([]string(nil), s.ids...)
	sort.Strings(ids)
	return ids
}

// Len returns the number of heroes in the store.
func (s *MemoryStore) Len() int {
	return len(s.ids)
}

// LoadFile reads a YAML hero database from path.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hero database %s: %w", path, err)
	}

	var db Database
	if err = yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing hero database %s: %w", path, err)
	}

	if err = checkDataVersion(db.Version); err != nil {
		return nil, fmt.Errorf("hero database %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(db.Heroes))
	for i, h := range db.Heroes {
		if idErr := ValidateID(h.ID); idErr != nil {
			return nil, fmt.Errorf("hero database %s: entry %d: %w", path, i, idErr)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("hero database %s: %w: %s", path, ErrDuplicateID, h.ID)
		}
		seen[h.ID] = struct{}{}
	}

	return NewMemoryStore(db.Heroes), nil
}

// SaveFile writes heroes to path as a versioned YAML database.
func SaveFile(path string, heroes []Hero) error {
	data, err := yaml.Marshal(Database{Version: defaultDataVersion, Heroes: heroes})
	if err != nil {
		return fmt.Errorf("encoding hero database: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing hero database %s: %w", path, err)
	}
	return nil
}

func checkDataVersion(raw string) error {
	if raw == "" {
		raw = defaultDataVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version: %w", ErrUnsupportedDataVersion, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedDataVersion)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", SupportedDataVersion, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedDataVersion, v, SupportedDataVersion)
	}
	return nil
}
