package hero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rshade/heroes/internal/logging"
)

const (
	heroesPath         = "heroes"
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 1 << 20
)

// HTTPClient looks heroes up from a json-server style API at
// {baseURL}/heroes/{id}.
//
// Any failure other than cancellation of the caller's context is reported
// as a miss: a 404, a non-2xx status, a transport error or an undecodable
// body all yield (nil, nil) and are logged at warn level.
//
// Concurrent lookups of the same id share one request.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	group   singleflight.Group
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(h *HTTPClient) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHTTPClient returns a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		timeout: defaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetHeroByID fetches the hero with id. It returns (nil, nil) on a miss and
// ctx.Err() when ctx is done before the lookup completes.
func (c *HTTPClient) GetHeroByID(ctx context.Context, id string) (*Hero, error) {
	logger := logging.FromContext(ctx)

	if err := ValidateID(id); err != nil {
		logger.Warn().Ctx(ctx).Str("component", "hero_client").Err(err).Msg("hero lookup skipped")
		return nil, nil
	}

	// The shared request must outlive any single caller; each caller still
	// stops waiting when its own ctx is done.
	ch := c.group.DoChan(id, func() (interface{}, error) {
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(reqCtx, id)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			logger.Warn().
				Ctx(ctx).
				Str("component", "hero_client").
				Str("hero_id", id).
				Err(res.Err).
				Msg("hero lookup failed, treating as not found")
			return nil, nil
		}
		h, _ := res.Val.(*Hero)
		return h.Clone(), nil
	}
}

// fetch performs one request. A 404 is a miss, not an error.
func (c *HTTPClient) fetch(ctx context.Context, id string) (*Hero, error) {
	endpoint := c.baseURL + "/" + heroesPath + "/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "hero_client").
		Str("hero_id", id).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("hero lookup response")

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	var h Hero
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err = dec.Decode(&h); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding hero %s: %w", id, err)
	}
	// json-server answers some misses with an empty object.
	if h.ID == "" {
		return nil, nil
	}
	return &h, nil
}
