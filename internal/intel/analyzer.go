// Package intel predicts piracy targets from live trade data and the static
// item registry.
package intel

import (
	"context"
	"sort"
	"strings"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/routegraph"
	"github.com/corsair-sc/corsair/internal/uex"
)

// RouteSource provides the live trade data the analyzer works from. The UEX
// client satisfies it.
type RouteSource interface {
	TradeRoutes(ctx context.Context) ([]uex.TradeRoute, error)
	Terminals(ctx context.Context) ([]uex.Terminal, error)
}

// Analyzer turns trade routes into target predictions.
type Analyzer struct {
	routes RouteSource
	items  *items.Registry
	fleet  *ships.Registry
}

// New creates an analyzer over the given data sources.
func New(routes RouteSource, registry *items.Registry, fleet *ships.Registry) *Analyzer {
	return &Analyzer{routes: routes, items: registry, fleet: fleet}
}

// TrafficDirection marks which way a predicted target is moving relative to
// a location.
type TrafficDirection string

const (
	Arriving  TrafficDirection = "arriving"
	Departing TrafficDirection = "departing"
)

// HotRoute is a profitable trade route ranked by expected haul value.
type HotRoute struct {
	Commodity     string          `json:"commodity"`
	CommodityCode string          `json:"commodity_code"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	ProfitPerSCU  float64         `json:"profit_per_scu"`
	AvailableSCU  float64         `json:"available_scu"`
	LikelyShip    ships.CargoShip `json:"likely_ship"`
	// EstimatedHaulValue is the profit a full likely-ship load would clear.
	EstimatedHaulValue float64 `json:"estimated_haul_value"`
	// RiskScore estimates how likely the route is to be actively run, 0-100.
	RiskScore float64 `json:"risk_score"`
}

// TargetPrediction describes probable traffic at a location.
type TargetPrediction struct {
	Direction  TrafficDirection `json:"direction"`
	Commodity  string           `json:"commodity"`
	LikelyShip ships.CargoShip  `json:"likely_ship"`
	// EstimatedCargoValue includes the cargo's purchase cost, since the
	// hold's contents are worth more than the margin.
	EstimatedCargoValue float64 `json:"estimated_cargo_value"`
	Destination         string  `json:"destination"`
}

// CargoGuess is an item likely carried by a ship leaving a location, along
// with how reliable that sourcing information is.
type CargoGuess struct {
	ItemID         string                  `json:"item_id"`
	Name           string                  `json:"name"`
	Category       items.ItemCategory      `json:"category"`
	Method         items.AcquisitionMethod `json:"method"`
	Reliability    int                     `json:"reliability"`
	EstimatedValue uint64                  `json:"estimated_value"`
}

// HotRoutes returns the most valuable trade routes, best first. Routes with
// no profit or no origin stock are dropped.
func (a *Analyzer) HotRoutes(ctx context.Context, limit int) ([]HotRoute, error) {
	routes, err := a.routes.TradeRoutes(ctx)
	if err != nil {
		return nil, err
	}

	hot := make([]HotRoute, 0, len(routes))
	for i := range routes {
		r := &routes[i]
		if r.ProfitPerUnit <= 0 || r.SCUOrigin <= 0 {
			continue
		}

		ship := a.fleet.EstimateForRoute(r.MaxProfitableSCU(), r.TerminalOriginName, r.TerminalDestinationName)
		hot = append(hot, HotRoute{
			Commodity:          r.CommodityName,
			CommodityCode:      r.CommodityCode,
			Origin:             r.TerminalOriginName,
			Destination:        r.TerminalDestinationName,
			ProfitPerSCU:       r.ProfitPerUnit,
			AvailableSCU:       r.MaxProfitableSCU(),
			LikelyShip:         ship,
			EstimatedHaulValue: r.ProfitForSCU(float64(ship.CargoSCU)),
			RiskScore:          riskScore(r),
		})
	}

	sort.SliceStable(hot, func(i, j int) bool {
		return hot[i].EstimatedHaulValue > hot[j].EstimatedHaulValue
	})
	if limit > 0 && len(hot) > limit {
		hot = hot[:limit]
	}

	log.Debug(log.CatIntel, "ranked hot routes", "total", len(routes), "kept", len(hot))
	return hot, nil
}

// TargetsAt predicts traffic at a location by substring match on terminal
// names, so "Everus" matches "Everus Harbor".
func (a *Analyzer) TargetsAt(ctx context.Context, location string) ([]TargetPrediction, error) {
	routes, err := a.routes.TradeRoutes(ctx)
	if err != nil {
		return nil, err
	}

	var predictions []TargetPrediction
	for i := range routes {
		r := &routes[i]
		departing := contains(r.TerminalOriginName, location)
		if !departing && !contains(r.TerminalDestinationName, location) {
			continue
		}

		ship := a.fleet.EstimateForRoute(r.MaxProfitableSCU(), r.TerminalOriginName, r.TerminalDestinationName)
		cargo := float64(ship.CargoSCU)
		prediction := TargetPrediction{
			Direction:           Arriving,
			Commodity:           r.CommodityName,
			LikelyShip:          ship,
			EstimatedCargoValue: r.ProfitForSCU(cargo) + r.PriceOrigin*cargo,
			Destination:         r.TerminalOriginName,
		}
		if departing {
			prediction.Direction = Departing
			prediction.Destination = r.TerminalDestinationName
		}
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}

// LikelyCargoAt lists items sourced at a location, most valuable first. A
// ship lifting off from there is probably carrying some of these.
func (a *Analyzer) LikelyCargoAt(location string) []CargoGuess {
	found := a.items.ItemsAtLocation(location)

	guesses := make([]CargoGuess, 0, len(found))
	for _, it := range found {
		guess := CargoGuess{
			ItemID:         it.ID,
			Name:           it.Name,
			Category:       it.Category,
			EstimatedValue: it.EstimatedValue,
		}
		// Report the strongest source claim for this specific location.
		for i := range it.Sources {
			s := &it.Sources[i]
			if s.Location.Name != location {
				continue
			}
			if s.Reliability > guess.Reliability {
				guess.Reliability = s.Reliability
				guess.Method = s.Method
			}
		}
		guesses = append(guesses, guess)
	}

	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].EstimatedValue > guesses[j].EstimatedValue
	})
	return guesses
}

// Chokepoints ranks interdiction points by live route traffic. Route terminal
// IDs are resolved to graph node codes through the terminal list.
func (a *Analyzer) Chokepoints(ctx context.Context, g *routegraph.Graph, topN int) ([]routegraph.Chokepoint, error) {
	routes, err := a.routes.TradeRoutes(ctx)
	if err != nil {
		return nil, err
	}
	terminals, err := a.routes.Terminals(ctx)
	if err != nil {
		return nil, err
	}

	codeByID := make(map[int64]string, len(terminals))
	for i := range terminals {
		codeByID[terminals[i].ID] = terminals[i].Code
	}

	pairs := make([]routegraph.RoutePair, 0, len(routes))
	for i := range routes {
		r := &routes[i]
		pairs = append(pairs, routegraph.RoutePair{
			Origin:       codeByID[r.TerminalOriginID],
			Destination:  codeByID[r.TerminalDestinationID],
			ProfitPerSCU: r.ProfitPerUnit,
		})
	}

	chokepoints := routegraph.FindChokepoints(g, pairs)
	if topN > 0 && len(chokepoints) > topN {
		chokepoints = chokepoints[:topN]
	}
	return chokepoints, nil
}

// riskScore estimates how likely a route is to be actively run.
func riskScore(r *uex.TradeRoute) float64 {
	var score float64

	// High margins attract haulers.
	score += min(r.ProfitPerUnit/10, 30)

	// Deep origin stock means repeat runs.
	score += min(r.SCUOrigin/100, 20)

	// Bulk routes pull the big freighters.
	if r.SCUOrigin > 500 {
		score += 20
	}

	return min(score, 100)
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
