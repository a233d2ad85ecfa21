// Package router maps navigation URLs to screens and carries route
// parameters to the screen that is active.
package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/heroes/internal/logging"
)

// Route names and URLs of the heroes application.
const (
	RouteHeroList   = "hero-list"
	RouteHeroDetail = "hero-detail"

	HeroListURL       = "heroes/list"
	HeroDetailPattern = "heroes/:id"
)

// ErrNoRoute is returned when a URL matches no route and no fallback is configured.
var ErrNoRoute = errors.New("no route matches url")

// Params holds the parameters captured from a URL.
type Params map[string]string

// Get returns the value of key, or "".
func (p Params) Get(key string) string {
	return p[key]
}

// Route binds a name to a URL pattern.
type Route struct {
	Name    string
	Pattern string
}

// Match is the result of resolving a URL.
type Match struct {
	Route  Route
	URL    string
	Params Params
	Reason MatchReason
}

// MatchReason describes how a URL was matched to a route.
type MatchReason int

const (
	// MatchReasonExact means the route pattern has no parameters and equals the URL.
	MatchReasonExact MatchReason = iota
	// MatchReasonParams means the URL matched a parameterised pattern.
	MatchReasonParams
	// MatchReasonFallback means nothing matched and the fallback URL was used.
	MatchReasonFallback
)

// String returns the string representation of a MatchReason.
func (r MatchReason) String() string {
	switch r {
	case MatchReasonExact:
		return "exact"
	case MatchReasonParams:
		return "params"
	case MatchReasonFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Router resolves URLs against an ordered route table. The first matching
// route wins. It is immutable after construction.
type Router struct {
	routes   []Route
	patterns []*CompiledPattern
	fallback string
}

// Option configures a Router.
type Option func(*Router)

// WithRoute appends a route to the table.
func WithRoute(name, pattern string) Option {
	return func(r *Router) {
		r.routes = append(r.routes, Route{Name: name, Pattern: pattern})
	}
}

// WithFallback sets the URL used when nothing matches. The fallback must
// itself resolve to a route.
func WithFallback(url string) Option {
	return func(r *Router) {
		r.fallback = Normalize(url)
	}
}

// New creates a Router and compiles every route pattern.
func New(opts ...Option) (*Router, error) {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}

	for _, route := range r.routes {
		compiled, err := CompilePattern(route.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", route.Name, err)
		}
		r.patterns = append(r.patterns, compiled)
	}

	if r.fallback != "" {
		if _, ok := r.match(r.fallback); !ok {
			return nil, fmt.Errorf("fallback %q: %w", r.fallback, ErrNoRoute)
		}
	}
	return r, nil
}

// NewHeroRouter returns the route table of the heroes application:
// the hero list, the hero detail, and a wildcard redirect to the list.
func NewHeroRouter() *Router {
	r, err := New(
		WithRoute(RouteHeroList, HeroListURL),
		WithRoute(RouteHeroDetail, HeroDetailPattern),
		WithFallback(HeroListURL),
	)
	if err != nil {
		// The table above is static; failing to compile it is a programming error.
		panic(err)
	}
	return r
}

// Resolve matches url against the table, falling back when configured.
func (r *Router) Resolve(ctx context.Context, url string) (Match, error) {
	log := logging.FromContext(ctx)
	norm := Normalize(url)

	if m, ok := r.match(norm); ok {
		log.Debug().
			Ctx(ctx).
			Str("component", "router").
			Str("url", norm).
			Str("route", m.Route.Name).
			Str("match_reason", m.Reason.String()).
			Msg("url resolved")
		return m, nil
	}

	if r.fallback == "" {
		return Match{}, fmt.Errorf("%w: %q", ErrNoRoute, norm)
	}

	m, _ := r.match(r.fallback)
	m.Reason = MatchReasonFallback
	log.Debug().
		Ctx(ctx).
		Str("component", "router").
		Str("url", norm).
		Str("fallback", r.fallback).
		Msg("no route matched, using fallback")
	return m, nil
}

func (r *Router) match(url string) (Match, bool) {
	for i, p := range r.patterns {
		params, ok := p.Match(url)
		if !ok {
			continue
		}
		reason := MatchReasonExact
		if p.HasParams() {
			reason = MatchReasonParams
		}
		return Match{Route: r.routes[i], URL: url, Params: params, Reason: reason}, true
	}
	return Match{}, false
}
