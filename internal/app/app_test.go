package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/config"
	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/mode"
	"github.com/corsair-sc/corsair/internal/mode/dashboard"
	"github.com/corsair-sc/corsair/internal/uex"
)

type emptySource struct{}

func (emptySource) TradeRoutes(ctx context.Context) ([]uex.TradeRoute, error) { return nil, nil }
func (emptySource) Terminals(ctx context.Context) ([]uex.Terminal, error)     { return nil, nil }

func testServices(t *testing.T) mode.Services {
	t.Helper()
	registry, err := items.BuildRegistry(items.BuiltinItems())
	require.NoError(t, err)
	fleet := ships.Default()
	cfg := config.Defaults()
	return mode.Services{
		Items:    registry,
		Fleet:    fleet,
		Analyzer: intel.New(emptySource{}, registry, fleet),
		Config:   &cfg,
	}
}

func TestApp_RendersDashboardAndQuits(t *testing.T) {
	tm := teatest.NewTestModel(t,
		New(dashboard.New(testServices(t))),
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Items"))
	}, teatest.WithCheckInterval(10*time.Millisecond), teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestApp_LogOverlayToggle(t *testing.T) {
	_, err := log.Init(filepath.Join(t.TempDir(), "test.log"))
	require.NoError(t, err)

	m := New(dashboard.New(testServices(t)))
	require.True(t, m.overlay.Enabled())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	root, ok := updated.(Model)
	require.True(t, ok)

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	root = updated.(Model)
	require.True(t, root.overlay.Visible())
	require.Contains(t, root.View(), "Logs")

	// esc hands input back to the dashboard.
	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(Model)
	require.False(t, root.overlay.Visible())
}

func TestApp_ResizeReachesController(t *testing.T) {
	m := New(dashboard.New(testServices(t)))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	root, ok := updated.(Model)
	require.True(t, ok)
	require.Equal(t, 80, root.width)
	require.Equal(t, 24, root.height)
	require.NotEmpty(t, root.View())
}
