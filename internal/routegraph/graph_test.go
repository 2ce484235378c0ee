package routegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/uex"
)

func terminal(code, name, system, termType string) *uex.Terminal {
	return &uex.Terminal{Code: code, Name: name, StarSystemName: system, Type: termType}
}

func TestGraph_AddTerminal(t *testing.T) {
	g := New()
	g.AddTerminal(terminal("ARCL1", "ARC-L1", "Stanton", "station"))
	g.AddTerminal(terminal("ARCL1", "ARC-L1 again", "Stanton", "station"))
	g.AddTerminal(&uex.Terminal{}) // no code, ignored

	assert.Equal(t, 1, g.NodeCount())
	node, ok := g.Node("ARCL1")
	require.True(t, ok)
	assert.Equal(t, "ARC-L1", node.Name, "first add wins")
	assert.Equal(t, NodeStation, node.Type)
}

func TestGraph_Connect(t *testing.T) {
	g := New()
	g.AddTerminal(terminal("A", "A", "Stanton", "station"))
	g.AddTerminal(terminal("B", "B", "Stanton", "outpost"))

	require.NoError(t, g.Connect("A", "B", 600_000))
	assert.Equal(t, 2, g.EdgeCount(), "bidirectional")
	assert.Equal(t, 1, g.Degree("A"))

	err := g.Connect("A", "missing", 1)
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestGraph_ConnectSystem(t *testing.T) {
	g := New()
	g.AddTerminal(terminal("A", "A", "Stanton", "station"))
	g.AddTerminal(terminal("B", "B", "Stanton", "station"))
	g.AddTerminal(terminal("C", "C", "Stanton", "station"))
	g.AddTerminal(terminal("P", "P", "Pyro", "station"))

	g.ConnectSystem("Stanton")

	// Full mesh over three nodes, Pyro untouched.
	assert.Equal(t, 2, g.Degree("A"))
	assert.Equal(t, 2, g.Degree("B"))
	assert.Equal(t, 2, g.Degree("C"))
	assert.Equal(t, 0, g.Degree("P"))
}

func TestGraph_FindPath(t *testing.T) {
	g := New()
	for _, code := range []string{"A", "B", "C", "D"} {
		g.AddTerminal(terminal(code, code, "Stanton", "station"))
	}
	// A-B-D is faster than the direct A-D long haul.
	require.NoError(t, g.Connect("A", "B", 100_000))
	require.NoError(t, g.Connect("B", "D", 100_000))
	require.NoError(t, g.Connect("A", "D", 5_000_000))
	require.NoError(t, g.Connect("A", "C", 100_000))

	path, err := g.FindPath("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	_, err = g.FindPath("A", "missing")
	require.ErrorIs(t, err, ErrNodeNotFound)

	g.AddTerminal(terminal("ISLAND", "Island", "Pyro", "station"))
	_, err = g.FindPath("A", "ISLAND")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestFindChokepoints(t *testing.T) {
	g := New()
	g.AddTerminal(terminal("HUB", "Everus Harbor", "Stanton", "station"))
	g.AddTerminal(terminal("OUT", "Rayari Deltana", "Stanton", "outpost"))
	g.AddTerminal(terminal("LZ", "Area18", "Stanton", "landing_zone"))

	routes := []RoutePair{
		{Origin: "HUB", Destination: "OUT", ProfitPerSCU: 10},
		{Origin: "HUB", Destination: "LZ", ProfitPerSCU: 30},
		{Origin: "GHOST", Destination: "NOWHERE", ProfitPerSCU: 99},
	}

	chokepoints := FindChokepoints(g, routes)
	require.Len(t, chokepoints, 3, "unknown endpoints skipped")

	top := chokepoints[0]
	assert.Equal(t, "HUB", top.Node.Code)
	assert.Equal(t, 2, top.RouteCount)
	assert.InDelta(t, 40, top.TrafficScore, 1e-9)
	assert.Contains(t, top.SuggestedPosition.Direction, "station")

	// Sorted by traffic score descending.
	assert.GreaterOrEqual(t, chokepoints[0].TrafficScore, chokepoints[1].TrafficScore)
	assert.GreaterOrEqual(t, chokepoints[1].TrafficScore, chokepoints[2].TrafficScore)
}

func TestSuggestPosition_ByNodeType(t *testing.T) {
	tests := []struct {
		nodeType NodeType
		distance float64
	}{
		{NodeStation, 150},
		{NodeOutpost, 100},
		{NodeLandingZone, 200},
		{NodeCity, 200},
		{NodeOrbitalMarker, 50},
	}
	for _, tt := range tests {
		pos := suggestPosition(&Node{Name: "X", Type: tt.nodeType, ParentBody: "Hurston"})
		assert.Equal(t, tt.distance, pos.DistanceKM, "%s", tt.nodeType)
	}
}
