package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/heroes/list", want: "heroes/list"},
		{in: "heroes/list", want: "heroes/list"},
		{in: "  //heroes//1/ ", want: "heroes/1"},
		{in: "/heroes/1?tab=bio#top", want: "heroes/1"},
		{in: "/", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestJoinSegments(t *testing.T) {
	assert.Equal(t, "heroes/list", JoinSegments("/heroes/list"))
	assert.Equal(t, "heroes/dc-batman", JoinSegments("heroes", "dc-batman"))
	assert.Equal(t, "heroes/1", JoinSegments("/heroes/", "/1"))
}

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{pattern: "heroes/list"},
		{pattern: "/heroes/:id"},
		{pattern: "teams/:team/heroes/:id"},
		{pattern: "", wantErr: true},
		{pattern: "heroes/:", wantErr: true},
		{pattern: "a/:id/b/:id", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := CompilePattern(tt.pattern)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPattern)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Normalize(tt.pattern), p.Original)
		})
	}
}

func TestCompiledPattern_Match(t *testing.T) {
	p, err := CompilePattern("heroes/:id")
	require.NoError(t, err)
	assert.True(t, p.HasParams())

	params, ok := p.Match("heroes/dc-flash")
	require.True(t, ok)
	assert.Equal(t, Params{"id": "dc-flash"}, params)

	_, ok = p.Match("heroes")
	assert.False(t, ok)
	_, ok = p.Match("villains/1")
	assert.False(t, ok)
	_, ok = p.Match("heroes/1/edit")
	assert.False(t, ok)
	_, ok = p.Match("")
	assert.False(t, ok)
}

func TestHeroRouter_Resolve(t *testing.T) {
	r := NewHeroRouter()
	ctx := context.Background()

	tests := []struct {
		name       string
		url        string
		wantRoute  string
		wantParams Params
		wantReason MatchReason
	}{
		{
			name:       "list",
			url:        "/heroes/list",
			wantRoute:  RouteHeroList,
			wantParams: Params{},
			wantReason: MatchReasonExact,
		},
		{
			name:       "list is not captured as an id",
			url:        "heroes/list",
			wantRoute:  RouteHeroList,
			wantParams: Params{},
			wantReason: MatchReasonExact,
		},
		{
			name:       "detail",
			url:        "/heroes/1",
			wantRoute:  RouteHeroDetail,
			wantParams: Params{"id": "1"},
			wantReason: MatchReasonParams,
		},
		{
			name:       "unknown falls back to list",
			url:        "/villains/joker",
			wantRoute:  RouteHeroList,
			wantParams: Params{},
			wantReason: MatchReasonFallback,
		},
		{
			name:       "empty falls back to list",
			url:        "",
			wantRoute:  RouteHeroList,
			wantParams: Params{},
			wantReason: MatchReasonFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(ctx, tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoute, m.Route.Name)
			assert.Equal(t, tt.wantParams, m.Params)
			assert.Equal(t, tt.wantReason, m.Reason)
		})
	}
}

func TestRouter_NoFallback(t *testing.T) {
	r, err := New(WithRoute("only", "a/b"))
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), "c")
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(WithRoute("bad", "a/:"))
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = New(WithRoute("a", "a"), WithFallback("b"))
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestMatchReason_String(t *testing.T) {
	assert.Equal(t, "exact", MatchReasonExact.String())
	assert.Equal(t, "params", MatchReasonParams.String())
	assert.Equal(t, "fallback", MatchReasonFallback.String())
	assert.Equal(t, "unknown", MatchReason(42).String())
}

func TestNavigator(t *testing.T) {
	var nav Navigator

	msg := nav.Navigate("/heroes/list")()
	assert.Equal(t, NavigateMsg{URL: "heroes/list"}, msg)

	msg = nav.Navigate("heroes", "marvel-iron")()
	assert.Equal(t, NavigateMsg{URL: "heroes/marvel-iron"}, msg)

	msg = nav.NavigateByURL("heroes/list")()
	assert.Equal(t, NavigateMsg{URL: "heroes/list"}, msg)
}

func TestActivatedRoute(t *testing.T) {
	t.Run("initial params are emitted", func(t *testing.T) {
		a := NewActivatedRoute(Params{"id": "1"})
		assert.Equal(t, Params{"id": "1"}, <-a.Params())
		assert.Equal(t, Params{"id": "1"}, a.Snapshot())
	})

	t.Run("unread emission is replaced by the latest", func(t *testing.T) {
		a := NewActivatedRoute(Params{"id": "1"})
		require.True(t, a.Emit(Params{"id": "2"}))
		require.True(t, a.Emit(Params{"id": "3"}))

		assert.Equal(t, Params{"id": "3"}, <-a.Params())
		select {
		case p := <-a.Params():
			t.Fatalf("unexpected extra emission %v", p)
		default:
		}
	})

	t.Run("emitted params are copied", func(t *testing.T) {
		p := Params{"id": "1"}
		a := NewActivatedRoute(p)
		p["id"] = "mutated"
		assert.Equal(t, "1", (<-a.Params()).Get("id"))
	})

	t.Run("close ends the stream", func(t *testing.T) {
		a := NewActivatedRoute(nil)
		<-a.Params()
		a.Close()
		a.Close()

		assert.True(t, a.Closed())
		assert.False(t, a.Emit(Params{"id": "2"}))
		_, ok := <-a.Params()
		assert.False(t, ok)
	})
}
