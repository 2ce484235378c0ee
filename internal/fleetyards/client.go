// Package fleetyards pulls the live ship catalogue from the FleetYards API
// so the cargo fleet tracks what is actually flight ready, instead of only
// the built-in static list.
package fleetyards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/corsair-sc/corsair/internal/cachemanager"
	"github.com/corsair-sc/corsair/internal/log"
)

const (
	defaultBaseURL = "https://api.fleetyards.net/v1"
	pageSize       = 100
	// maxPages bounds the pagination loop so a misbehaving API cannot spin
	// us forever. 20 pages of 100 covers the whole catalogue with room.
	maxPages = 20
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Client calls the FleetYards API. The full model listing is cached
// read-through, keyed by the listing path.
type Client struct {
	baseURL string
	http    *http.Client
	ttl     time.Duration

	models *cachemanager.ReadThroughCache[[]ShipModel, string]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCacheTTL sets how long the ship listing stays fresh. Zero disables
// caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// NewClient creates a FleetYards client. The catalogue changes rarely, so
// the default cache TTL is a full hour.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		ttl:     time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.models = cachemanager.NewReadThroughCache[[]ShipModel, string](
		cachemanager.NewInMemoryCacheManager[[]ShipModel]("fleetyards_models", c.ttl, 2*c.ttl),
		func(ctx context.Context, _ string) ([]ShipModel, error) {
			return c.fetchAllModels(ctx)
		},
		c.ttl <= 0,
	)
	return c
}

// Models fetches every ship model, walking the paginated listing.
func (c *Client) Models(ctx context.Context) ([]ShipModel, error) {
	return c.models.Get(ctx, "/models", "/models", c.ttl)
}

func (c *Client) fetchAllModels(ctx context.Context) ([]ShipModel, error) {
	var all []ShipModel
	for page := 1; page <= maxPages; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
	}
	log.Debug(log.CatUEX, "fleetyards catalogue fetched", "models", len(all))
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]ShipModel, error) {
	path := fmt.Sprintf("/models?page=%d&perPage=%d", page, pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn(log.CatUEX, "fleetyards api error", "path", path, "status", resp.StatusCode)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case http.StatusTooManyRequests:
			return nil, ErrRateLimited
		default:
			return nil, fmt.Errorf("fleetyards api error %d: %s", resp.StatusCode, string(body))
		}
	}

	var models []ShipModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return models, nil
}
