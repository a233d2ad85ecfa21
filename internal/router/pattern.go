package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned for route patterns that cannot be compiled.
var ErrInvalidPattern = errors.New("invalid route pattern")

const paramPrefix = ":"

// CompiledPattern is a route pattern split into segments for matching.
// A segment starting with ":" captures the URL segment at that position
// under the name that follows the colon.
type CompiledPattern struct {
	// Original is the normalized pattern text.
	Original string

	segments []string
}

// CompilePattern validates and compiles a route pattern such as "heroes/:id".
func CompilePattern(pattern string) (*CompiledPattern, error) {
	norm := Normalize(pattern)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	segments := strings.Split(norm, "/")
	seen := make(map[string]struct{})
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}
		if !strings.HasPrefix(seg, paramPrefix) {
			continue
		}
		name := strings.TrimPrefix(seg, paramPrefix)
		if name == "" {
			return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, pattern, name)
		}
		seen[name] = struct{}{}
	}

	return &CompiledPattern{Original: norm, segments: segments}, nil
}

// Match reports whether url matches the pattern and returns the captured params.
// url must already be normalized.
func (p *CompiledPattern) Match(url string) (Params, bool) {
	if url == "" {
		return nil, false
	}
	parts := strings.Split(url, "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := Params{}
	for i, seg := range p.segments {
		if name, ok := strings.CutPrefix(seg, paramPrefix); ok {
			if parts[i] == "" {
				return nil, false
			}
			params[name] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// HasParams reports whether the pattern captures any parameter.
func (p *CompiledPattern) HasParams() bool {
	for _, seg := range p.segments {
		if strings.HasPrefix(seg, paramPrefix) {
			return true
		}
	}
	return false
}

// Normalize strips surrounding whitespace, any query string or fragment,
// and leading, trailing and duplicate slashes: "/heroes//list/?x=1" -> "heroes/list".
func Normalize(url string) string {
	url = strings.TrimSpace(url)
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	parts := strings.Split(url, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "/")
}

// JoinSegments joins path segments into a normalized URL.
// Segments may themselves contain slashes, as in Navigate("/heroes/list").
func JoinSegments(segments ...string) string {
	return Normalize(strings.Join(segments, "/"))
}
