package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/heroes/internal/hero"
)

func ironMan() *hero.Hero {
	return &hero.Hero{
		ID:              "marvel-iron",
		Superhero:       "iron man",
		Publisher:       hero.PublisherMarvel,
		AlterEgo:        "Tony Stark",
		FirstAppearance: "Tales of Suspense #39",
		Characters:      "Tony Stark",
	}
}

func TestHeroTitle(t *testing.T) {
	assert.Equal(t, "Iron Man", HeroTitle(ironMan()))
	assert.Empty(t, HeroTitle(nil))
}

func TestRenderHeroCard(t *testing.T) {
	out := RenderHeroCard(ironMan(), DefaultWidth)

	assert.Contains(t, out, "Iron Man")
	assert.Contains(t, out, "Tony Stark")
	assert.Contains(t, out, "Marvel Comics")
	assert.Contains(t, out, "Tales of Suspense #39")
	assert.Contains(t, out, "assets/heroes/marvel-iron.jpg")
}

func TestRenderHeroCard_EmptyFieldsAndNarrowWidth(t *testing.T) {
	out := RenderHeroCard(&hero.Hero{ID: "x", Superhero: "x"}, 10)
	assert.Contains(t, out, "-")
}

func TestRenderHeroCard_Nil(t *testing.T) {
	assert.Contains(t, RenderHeroCard(nil, DefaultWidth), "No hero selected.")
}

func TestWriteHeroPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeroPlain(&buf, ironMan()))

	assert.Equal(t, "Iron Man (marvel-iron)\n"+
		"  Alter ego: Tony Stark\n"+
		"  Publisher: Marvel Comics\n"+
		"  First appearance: Tales of Suspense #39\n"+
		"  Characters: Tony Stark\n"+
		"  Image: assets/heroes/marvel-iron.jpg\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteHeroPlain(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestLoadingState(t *testing.T) {
	l := NewLoadingStateWithMessage("Loading hero...")
	assert.Equal(t, "Loading hero...", l.Message())
	assert.NotNil(t, l.Init())
	assert.Nil(t, l.Update("not a tick"))
	assert.Contains(t, RenderLoading(l), "Loading hero...")
	assert.Contains(t, RenderLoading(nil), "Loading...")
}
