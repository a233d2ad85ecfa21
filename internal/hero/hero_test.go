package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/heroes/internal/hero"
)

func TestHero_ImagePath(t *testing.T) {
	tests := []struct {
		name string
		hero *hero.Hero
		want string
	}{
		{name: "nil hero", hero: nil, want: "assets/no-image.png"},
		{name: "no id", hero: &hero.Hero{Superhero: "Nobody"}, want: "assets/no-image.png"},
		{name: "bundled asset", hero: &hero.Hero{ID: "dc-batman"}, want: "assets/heroes/dc-batman.jpg"},
		{
			name: "alternate image wins",
			hero: &hero.Hero{ID: "dc-batman", AltImg: "https://cdn.test/batman.png"},
			want: "https://cdn.test/batman.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hero.ImagePath())
		})
	}
}

func TestHero_Clone(t *testing.T) {
	var nilHero *hero.Hero
	assert.Nil(t, nilHero.Clone())

	orig := &hero.Hero{ID: "marvel-iron", Superhero: "Iron Man"}
	c := orig.Clone()
	c.Superhero = "War Machine"

	assert.Equal(t, "Iron Man", orig.Superhero)
	assert.NotSame(t, orig, c)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "1"},
		{id: "dc-batman"},
		{id: "", wantErr: true},
		{id: "   ", wantErr: true},
		{id: "a/b", wantErr: true},
		{id: "x?y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := hero.ValidateID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, hero.ErrInvalidID)
				return
			}
			assert.NoError(t, err)
		})
	}
}
