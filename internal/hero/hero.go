// Package hero defines the hero record and the data sources that serve it.
package hero

import (
	"errors"
	"fmt"
	"strings"
)

// Publisher is the comic publisher a hero belongs to.
type Publisher string

const (
	// PublisherDC is DC Comics.
	PublisherDC Publisher = "DC Comics"
	// PublisherMarvel is Marvel Comics.
	PublisherMarvel Publisher = "Marvel Comics"
)

const (
	imageDir     = "assets/heroes"
	noImagePath  = "assets/no-image.png"
	imageFileExt = ".jpg"
)

// ErrInvalidID is returned for identifiers that cannot address a hero.
var ErrInvalidID = errors.New("invalid hero id")

// Hero is a single hero record.
type Hero struct {
	ID              string    `json:"id" yaml:"id"`
	Superhero       string    `json:"superhero" yaml:"superhero"`
	Publisher       Publisher `json:"publisher" yaml:"publisher"`
	AlterEgo        string    `json:"alter_ego" yaml:"alter_ego"`
	FirstAppearance string    `json:"first_appearance" yaml:"first_appearance"`
	Characters      string    `json:"characters" yaml:"characters"`
	AltImg          string    `json:"alt_img,omitempty" yaml:"alt_img,omitempty"`
}

// ImagePath resolves the image shown for h: the alternate image when set,
// the bundled asset for its id otherwise, and a placeholder for records
// without an id.
func (h *Hero) ImagePath() string {
	if h == nil || h.ID == "" {
		return noImagePath
	}
	if h.AltImg != "" {
		return h.AltImg
	}
	return imageDir + "/" + h.ID + imageFileExt
}

// Clone returns a copy of h that shares no memory with it.
func (h *Hero) Clone() *Hero {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}

// ValidateID rejects empty ids and ids that would escape a URL path segment.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if strings.ContainsAny(id, "/?#") {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidID, id)
	}
	return nil
}
