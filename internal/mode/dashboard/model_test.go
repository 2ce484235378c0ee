package dashboard

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/mode"
	"github.com/corsair-sc/corsair/internal/uex"
)

type stubSource struct {
	routes []uex.TradeRoute
	err    error
}

func (s *stubSource) TradeRoutes(_ context.Context) ([]uex.TradeRoute, error) {
	return s.routes, s.err
}

func (s *stubSource) Terminals(_ context.Context) ([]uex.Terminal, error) {
	return nil, s.err
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	registry, err := items.BuildRegistry(items.BuiltinItems())
	require.NoError(t, err)
	fleet := ships.Default()

	src := &stubSource{routes: []uex.TradeRoute{{
		CommodityName:           "Laranite",
		TerminalOriginName:      "Everus Harbor",
		TerminalDestinationName: "Area18",
		ProfitPerUnit:           12,
		SCUOrigin:               300,
		SCUDestination:          300,
	}}}

	m := New(mode.Services{
		Items:    registry,
		Fleet:    fleet,
		Analyzer: intel.New(src, registry, fleet),
	})
	m.width = 120
	m.height = 40
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	panic("unknown key " + s)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestDashboard_TabSwitching(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, TabItems, m.tab)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, TabTargets, m.tab)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, TabRoutes, m.tab)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, TabItems, m.tab, "wraps around")

	m = update(t, m, keyMsg("3"))
	assert.Equal(t, TabRoutes, m.tab)
}

func TestDashboard_ItemsNavigation(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 0, m.cursor)
	m = update(t, m, keyMsg("j"))
	assert.Equal(t, 1, m.cursor)
	m = update(t, m, keyMsg("k"))
	assert.Equal(t, 0, m.cursor)
	m = update(t, m, keyMsg("k"))
	assert.Equal(t, 0, m.cursor, "clamped at top")
}

func TestDashboard_CategoryCycling(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "all", m.activeCategory())
	total := len(m.visible)

	m = update(t, m, keyMsg("c"))
	assert.Equal(t, string(items.Categories()[0]), m.activeCategory())
	assert.Less(t, len(m.visible), total, "filter narrows the list")

	// Cycling through every category returns to "all".
	for range items.Categories() {
		m = update(t, m, keyMsg("c"))
	}
	assert.Equal(t, "all", m.activeCategory())
	assert.Len(t, m.visible, total)
}

func TestDashboard_RoutesLoaded(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabRoutes

	m = update(t, m, routesLoadedMsg{routes: []intel.HotRoute{{
		Commodity:          "Laranite",
		Origin:             "Everus Harbor",
		Destination:        "Area18",
		ProfitPerSCU:       12,
		EstimatedHaulValue: 3600,
		RiskScore:          21,
	}}})

	view := m.View()
	assert.Contains(t, view, "Laranite")
	assert.Contains(t, view, "Everus Harbor")
	assert.NotContains(t, view, "fetching")
}

func TestDashboard_RoutesError(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabRoutes

	m = update(t, m, routesLoadedMsg{err: errors.New("uex down")})
	assert.Contains(t, m.View(), "uex down")
}

func TestDashboard_TargetsFlow(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabTargets

	// Focus the input, type a location, submit.
	m = update(t, m, keyMsg("/"))
	require.True(t, m.locationInput.Focused())

	m = update(t, m, keyMsg("E"))
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.NotNil(t, cmd, "enter with a location triggers a fetch")
	assert.True(t, m.loadingTargets)
	assert.False(t, m.locationInput.Focused())

	m = update(t, m, targetsLoadedMsg{predictions: []intel.TargetPrediction{{
		Direction:   intel.Departing,
		Commodity:   "Laranite",
		Destination: "Area18",
	}}})
	assert.Contains(t, m.View(), "departing")
}

func TestDashboard_RegistryReload(t *testing.T) {
	m := newTestModel(t)
	before := len(m.visible)

	extra := items.BuiltinItems()[0]
	fresh, err := items.BuildRegistry([]items.Item{extra})
	require.NoError(t, err)

	m = update(t, m, registryReloadedMsg{registry: fresh})
	assert.Equal(t, 1, len(m.visible))
	assert.NotEqual(t, before, len(m.visible))

	// A failed reload keeps the last good registry.
	m = update(t, m, registryReloadedMsg{err: errors.New("bad yaml")})
	assert.Equal(t, 1, len(m.visible))
}

func TestDashboard_ViewShowsReliability(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "REL")
	assert.Contains(t, view, "/5")
}

func TestDashboard_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
