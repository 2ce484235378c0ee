package sqlite

import (
	"context"

	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/uex"
)

// TradeData is the trade data surface the snapshot sources provide. The UEX
// client satisfies it, as do both sources below.
type TradeData interface {
	TradeRoutes(ctx context.Context) ([]uex.TradeRoute, error)
	Terminals(ctx context.Context) ([]uex.Terminal, error)
	Commodities(ctx context.Context) ([]uex.Commodity, error)
}

// SnapshotSource serves trade data from the local snapshot only. Used in
// offline mode; returns ErrNoSnapshot when the store was never warmed.
type SnapshotSource struct {
	repo *SnapshotRepository
}

// NewSnapshotSource wraps the repository as a TradeData source.
func NewSnapshotSource(repo *SnapshotRepository) *SnapshotSource {
	return &SnapshotSource{repo: repo}
}

func (s *SnapshotSource) TradeRoutes(ctx context.Context) ([]uex.TradeRoute, error) {
	return s.repo.LoadTradeRoutes(ctx)
}

func (s *SnapshotSource) Terminals(ctx context.Context) ([]uex.Terminal, error) {
	return s.repo.LoadTerminals(ctx)
}

func (s *SnapshotSource) Commodities(ctx context.Context) ([]uex.Commodity, error) {
	return s.repo.LoadCommodities(ctx)
}

// FallbackSource serves live trade data, persisting every successful fetch
// to the snapshot store and falling back to the last snapshot when the live
// source fails. The live error is returned only when the snapshot is empty
// too.
type FallbackSource struct {
	live TradeData
	repo *SnapshotRepository
}

// NewFallbackSource wraps a live source with the snapshot store.
func NewFallbackSource(live TradeData, repo *SnapshotRepository) *FallbackSource {
	return &FallbackSource{live: live, repo: repo}
}

func (f *FallbackSource) TradeRoutes(ctx context.Context) ([]uex.TradeRoute, error) {
	routes, err := f.live.TradeRoutes(ctx)
	if err != nil {
		return fallback(ctx, "trade routes", err, f.repo.LoadTradeRoutes)
	}
	if err := f.repo.SaveTradeRoutes(ctx, routes); err != nil {
		log.ErrorErr(log.CatDB, "trade route snapshot save failed", err)
	}
	return routes, nil
}

func (f *FallbackSource) Terminals(ctx context.Context) ([]uex.Terminal, error) {
	terminals, err := f.live.Terminals(ctx)
	if err != nil {
		return fallback(ctx, "terminals", err, f.repo.LoadTerminals)
	}
	if err := f.repo.SaveTerminals(ctx, terminals); err != nil {
		log.ErrorErr(log.CatDB, "terminal snapshot save failed", err)
	}
	return terminals, nil
}

func (f *FallbackSource) Commodities(ctx context.Context) ([]uex.Commodity, error) {
	commodities, err := f.live.Commodities(ctx)
	if err != nil {
		return fallback(ctx, "commodities", err, f.repo.LoadCommodities)
	}
	if err := f.repo.SaveCommodities(ctx, commodities); err != nil {
		log.ErrorErr(log.CatDB, "commodity snapshot save failed", err)
	}
	return commodities, nil
}

// fallback loads the snapshot after a live fetch failed. The live error wins
// when the snapshot is empty as well.
func fallback[T any](ctx context.Context, what string, liveErr error, load func(context.Context) ([]T, error)) ([]T, error) {
	stored, err := load(ctx)
	if err != nil {
		return nil, liveErr
	}
	log.Warn(log.CatDB, "live fetch failed, serving snapshot", "data", what, "error", liveErr)
	return stored, nil
}
