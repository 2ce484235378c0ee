package logoverlay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/log"
)

// TestMain initializes the logger so Listen has a stream to subscribe to.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "logoverlay-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	cleanup, err := log.Init(filepath.Join(tmpDir, "test.log"))
	if err != nil {
		panic(err)
	}
	defer cleanup()

	os.Exit(m.Run())
}

func entry(level, msg string) EntryMsg {
	return EntryMsg{Line: fmt.Sprintf("2026-08-31T10:00:00 [%s] [ui] %s\n", level, msg)}
}

func TestNew(t *testing.T) {
	m := New()
	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, log.LevelDebug, m.minLevel)
}

func TestToggleShowsBufferedEntries(t *testing.T) {
	m := New()
	m.SetSize(120, 40)

	m, cmd := m.Update(entry("INFO", "route graph ready"))
	require.Nil(t, cmd, "no re-arm without a subscription")

	m.Toggle()
	require.True(t, m.Visible())
	assert.Contains(t, m.View(), "route graph ready")

	// esc closes.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Visible())
}

func TestLevelFilter(t *testing.T) {
	m := New()
	m.SetSize(120, 40)
	m, _ = m.Update(entry("DEBUG", "cache miss"))
	m, _ = m.Update(entry("ERROR", "fetch failed"))
	m.Toggle()

	view := m.View()
	assert.Contains(t, view, "cache miss")
	assert.Contains(t, view, "fetch failed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	view = m.View()
	assert.NotContains(t, view, "cache miss")
	assert.Contains(t, view, "fetch failed")
	assert.Equal(t, log.LevelError, m.minLevel)
}

func TestClearEmptiesBuffer(t *testing.T) {
	m := New()
	m.SetSize(120, 40)
	m, _ = m.Update(entry("INFO", "something happened"))
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.NotContains(t, m.View(), "something happened")
	assert.Contains(t, m.View(), "No logs to display")
}

func TestBufferIsBounded(t *testing.T) {
	m := New()
	for i := 0; i < maxEntries+50; i++ {
		m, _ = m.Update(entry("INFO", fmt.Sprintf("entry %d", i)))
	}
	require.Len(t, m.entries, maxEntries)
	assert.True(t, strings.Contains(m.entries[len(m.entries)-1], "entry"))
}

func TestListenDeliversLogEntries(t *testing.T) {
	m := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := m.Listen(ctx)
	require.NotNil(t, cmd)
	require.True(t, m.Enabled())

	log.Info(log.CatUI, "overlay wired")

	msg := cmd()
	delivered, ok := msg.(EntryMsg)
	require.True(t, ok)
	assert.Contains(t, delivered.Line, "overlay wired")
}

func TestKeysIgnoredWhileHidden(t *testing.T) {
	m := New()
	m.SetSize(120, 40)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.Equal(t, log.LevelDebug, m.minLevel)
}
