// Package uex is the client for the UEX Corporation trade API: commodities,
// terminals, and trade routes. Responses are cached in memory with a TTL so
// the dashboard can refresh freely without hammering the API.
package uex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/corsair-sc/corsair/internal/cachemanager"
	"github.com/corsair-sc/corsair/internal/log"
)

const defaultBaseURL = "https://uexcorp.space/api/2.0"

var tracer = otel.Tracer("corsair/uex")

// Client calls the UEX API. Each endpoint family gets its own read-through
// cache, keyed by request path.
type Client struct {
	baseURL string
	http    *http.Client
	ttl     time.Duration

	commodities *cachemanager.ReadThroughCache[[]Commodity, string]
	terminals   *cachemanager.ReadThroughCache[[]Terminal, string]
	routes      *cachemanager.ReadThroughCache[[]TradeRoute, string]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests and mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCacheTTL sets how long responses stay fresh. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// NewClient creates a UEX client with a 5 minute response cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		ttl:     5 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.commodities = newReadThrough[Commodity](c, "uex_commodities")
	c.terminals = newReadThrough[Terminal](c, "uex_terminals")
	c.routes = newReadThrough[TradeRoute](c, "uex_routes")
	return c
}

// newReadThrough builds the per-endpoint cache. A non-positive TTL disables
// caching entirely.
func newReadThrough[T any](c *Client, useCase string) *cachemanager.ReadThroughCache[[]T, string] {
	cleanup := 2 * c.ttl
	return cachemanager.NewReadThroughCache[[]T, string](
		cachemanager.NewInMemoryCacheManager[[]T](useCase, c.ttl, cleanup),
		func(ctx context.Context, path string) ([]T, error) {
			return fetch[[]T](ctx, c, path)
		},
		c.ttl <= 0,
	)
}

// Commodities fetches all commodities.
func (c *Client) Commodities(ctx context.Context) ([]Commodity, error) {
	return c.commodities.Get(ctx, "/commodities", "/commodities", c.ttl)
}

// Terminals fetches all trade terminals.
func (c *Client) Terminals(ctx context.Context) ([]Terminal, error) {
	return c.terminals.Get(ctx, "/terminals", "/terminals", c.ttl)
}

// TerminalsInSystem fetches the terminals of one star system.
func (c *Client) TerminalsInSystem(ctx context.Context, system string) ([]Terminal, error) {
	path := "/terminals?star_system_name=" + url.QueryEscape(system)
	return c.terminals.Get(ctx, path, path, c.ttl)
}

// TradeRoutes fetches the current profitable routes.
func (c *Client) TradeRoutes(ctx context.Context) ([]TradeRoute, error) {
	return c.routes.Get(ctx, "/commodities_routes", "/commodities_routes", c.ttl)
}

// fetch wraps the raw request in a span so slow upstream calls show up in
// traces.
func fetch[T any](ctx context.Context, c *Client, path string) (T, error) {
	ctx, span := tracer.Start(ctx, "uex.get",
		trace.WithAttributes(attribute.String("uex.path", path)))
	defer span.End()

	result, err := getJSON[T](ctx, c, path)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn(log.CatUEX, "api error", "path", path, "status", resp.StatusCode)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return zero, fmt.Errorf("%w: %s", ErrNotFound, path)
		case http.StatusTooManyRequests:
			return zero, ErrRateLimited
		default:
			return zero, &StatusError{Status: resp.StatusCode, Message: string(body)}
		}
	}

	var wrapped envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil {
		return zero, fmt.Errorf("decode %s: %w", path, err)
	}
	return wrapped.Data, nil
}
