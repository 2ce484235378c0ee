// Package routegraph builds a graph of trade terminals connected by quantum
// travel routes and ranks the chokepoints where profitable traffic converges.
package routegraph

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/corsair-sc/corsair/internal/uex"
)

// Graph errors.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNoPath       = errors.New("no path exists")
)

// NodeType classifies a location node.
type NodeType string

const (
	NodeStation       NodeType = "station"
	NodeOutpost       NodeType = "outpost"
	NodeLandingZone   NodeType = "landing_zone"
	NodeCity          NodeType = "city"
	NodeOrbitalMarker NodeType = "orbital_marker"
)

// ParseNodeType maps a terminal type string onto the closed node type set.
func ParseNodeType(s string) NodeType {
	switch s {
	case "station", "STATION":
		return NodeStation
	case "outpost", "OUTPOST":
		return NodeOutpost
	case "landing_zone", "LANDING_ZONE":
		return NodeLandingZone
	case "city", "CITY":
		return NodeCity
	default:
		return NodeOrbitalMarker
	}
}

// Node is a terminal in the route graph.
type Node struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Type       NodeType `json:"type"`
	System     string   `json:"system"`
	ParentBody string   `json:"parent_body"`
	// IsFuelStation marks locations offering refueling.
	IsFuelStation bool `json:"is_fuel_station"`
}

// Edge is a quantum travel leg between two nodes.
type Edge struct {
	// DistanceKM is the estimated travel distance.
	DistanceKM float64 `json:"distance_km"`
	// TravelTimeSec assumes ~0.2c average quantum speed plus spool time.
	TravelTimeSec float64 `json:"travel_time_sec"`
}

// Intra-system mesh edges default to this distance when no coordinates are
// known for either endpoint.
const defaultMeshDistanceKM = 500_000

// newEdge derives travel time from distance: 60,000 km/s cruise plus 10s
// spool and calibration.
func newEdge(distanceKM float64) Edge {
	return Edge{
		DistanceKM:    distanceKM,
		TravelTimeSec: distanceKM/60_000 + 10,
	}
}

// Graph is an undirected graph of terminals keyed by terminal code.
// Build it single-threaded, then share it read-only.
type Graph struct {
	nodes map[string]*Node
	// adjacency maps node code to neighbor code to edge.
	adjacency map[string]map[string]Edge
	edgeCount int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]Edge),
	}
}

// AddTerminal inserts a node for the terminal. Re-adding the same code is a
// no-op so snapshot replays stay idempotent.
func (g *Graph) AddTerminal(t *uex.Terminal) {
	if t.Code == "" {
		return
	}
	if _, exists := g.nodes[t.Code]; exists {
		return
	}

	parent := t.MoonName
	if parent == "" {
		parent = t.PlanetName
	}

	g.nodes[t.Code] = &Node{
		Code:          t.Code,
		Name:          t.Name,
		Type:          ParseNodeType(t.Type),
		System:        t.StarSystemName,
		ParentBody:    parent,
		IsFuelStation: t.IsRefuel,
	}
	g.adjacency[t.Code] = make(map[string]Edge)
}

// Connect links two nodes bidirectionally at the given distance.
func (g *Graph) Connect(fromCode, toCode string, distanceKM float64) error {
	if _, ok := g.nodes[fromCode]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, fromCode)
	}
	if _, ok := g.nodes[toCode]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, toCode)
	}

	edge := newEdge(distanceKM)
	if _, existed := g.adjacency[fromCode][toCode]; !existed {
		g.edgeCount += 2
	}
	g.adjacency[fromCode][toCode] = edge
	g.adjacency[toCode][fromCode] = edge
	return nil
}

// ConnectSystem links every pair of nodes within a system (full mesh).
func (g *Graph) ConnectSystem(system string) {
	var codes []string
	for code, node := range g.nodes {
		if node.System == system {
			codes = append(codes, code)
		}
	}
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			_ = g.Connect(codes[i], codes[j], defaultMeshDistanceKM)
		}
	}
}

// Node returns the node with the given code.
func (g *Graph) Node(code string) (*Node, bool) {
	n, ok := g.nodes[code]
	return n, ok
}

// Nodes returns every node (unordered).
func (g *Graph) Nodes() []*Node {
	result := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		result = append(result, n)
	}
	return result
}

// Degree returns the number of connections of a node, 0 when unknown.
func (g *Graph) Degree(code string) int {
	return len(g.adjacency[code])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// FindPath returns the fastest path between two nodes as a code sequence,
// endpoints included (Dijkstra over travel time).
func (g *Graph) FindPath(fromCode, toCode string) ([]string, error) {
	if _, ok := g.nodes[fromCode]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, fromCode)
	}
	if _, ok := g.nodes[toCode]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, toCode)
	}

	dist := map[string]float64{fromCode: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := &nodeQueue{{code: fromCode, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(queueEntry)
		if visited[current.code] {
			continue
		}
		visited[current.code] = true
		if current.code == toCode {
			break
		}

		for neighbor, edge := range g.adjacency[current.code] {
			candidate := current.cost + edge.TravelTimeSec
			if best, seen := dist[neighbor]; !seen || candidate < best {
				dist[neighbor] = candidate
				prev[neighbor] = current.code
				heap.Push(pq, queueEntry{code: neighbor, cost: candidate})
			}
		}
	}

	if !visited[toCode] {
		return nil, fmt.Errorf("%w between %s and %s", ErrNoPath, fromCode, toCode)
	}

	var path []string
	for at := toCode; ; {
		path = append([]string{at}, path...)
		if at == fromCode {
			break
		}
		at = prev[at]
	}
	return path, nil
}

type queueEntry struct {
	code string
	cost float64
}

type nodeQueue []queueEntry

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)         { *q = append(*q, x.(queueEntry)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}
