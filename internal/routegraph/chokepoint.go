package routegraph

import (
	"fmt"
	"sort"
)

// RoutePair is one origin/destination trade route with its profitability.
type RoutePair struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	ProfitPerSCU float64 `json:"profit_per_scu"`
}

// InterdictPosition suggests where to sit relative to a chokepoint node.
type InterdictPosition struct {
	Description string  `json:"description"`
	DistanceKM  float64 `json:"distance_km"`
	Direction   string  `json:"direction"`
}

// Chokepoint is a node where multiple profitable routes converge.
type Chokepoint struct {
	Node       Node        `json:"node"`
	RouteCount int         `json:"route_count"`
	// TrafficScore is the profit-weighted traffic estimate.
	TrafficScore      float64           `json:"traffic_score"`
	Routes            []RoutePair       `json:"routes"`
	SuggestedPosition InterdictPosition `json:"suggested_position"`
}

// FindChokepoints ranks graph nodes by how much profitable route traffic
// touches them, highest traffic first. Routes whose endpoints are not in the
// graph are skipped.
func FindChokepoints(g *Graph, routes []RoutePair) []Chokepoint {
	traffic := make(map[string][]RoutePair)
	for _, route := range routes {
		traffic[route.Origin] = append(traffic[route.Origin], route)
		traffic[route.Destination] = append(traffic[route.Destination], route)
	}

	chokepoints := make([]Chokepoint, 0, len(traffic))
	for code, touching := range traffic {
		node, ok := g.Node(code)
		if !ok {
			continue
		}

		score := 0.0
		for _, r := range touching {
			score += r.ProfitPerSCU
		}

		chokepoints = append(chokepoints, Chokepoint{
			Node:              *node,
			RouteCount:        len(touching),
			TrafficScore:      score,
			Routes:            touching,
			SuggestedPosition: suggestPosition(node),
		})
	}

	sort.SliceStable(chokepoints, func(i, j int) bool {
		return chokepoints[i].TrafficScore > chokepoints[j].TrafficScore
	})
	return chokepoints
}

// suggestPosition picks an interdiction spot by node type. Mantis range is
// ~20km, so positions sit 50-200km out on the approach.
func suggestPosition(node *Node) InterdictPosition {
	var (
		distance  float64
		direction string
	)
	switch node.Type {
	case NodeStation:
		distance = 150
		direction = fmt.Sprintf("Between %s and station", node.ParentBody)
	case NodeOutpost:
		distance = 100
		direction = "Low orbit above outpost"
	case NodeLandingZone, NodeCity:
		distance = 200
		direction = "Main approach corridor"
	default:
		distance = 50
		direction = "Near OM marker"
	}

	return InterdictPosition{
		Description: fmt.Sprintf("Position %.0fkm from %s on %s", distance, node.Name, direction),
		DistanceKM:  distance,
		Direction:   direction,
	}
}
