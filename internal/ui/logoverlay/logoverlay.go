// Package logoverlay is a modal log viewer for the dashboard. It subscribes
// to the in-process log stream and keeps the most recent entries in memory,
// so debug output can be read without leaving the TUI.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/ui/styles"
)

const (
	// maxEntries bounds the in-memory buffer.
	maxEntries = 500

	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40
)

// EntryMsg delivers one formatted log entry to the overlay.
type EntryMsg struct {
	Line string
}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	entries  []string
	width    int
	height   int
	viewport viewport.Model
	events   <-chan log.LogEvent
}

// New creates a hidden overlay showing everything down to debug level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Listen subscribes the overlay to the log stream and returns the command
// that waits for the first entry. Returns nil when logging is not
// initialized; the overlay stays disabled then.
func (m *Model) Listen(ctx context.Context) tea.Cmd {
	ch := log.Subscribe(ctx)
	if ch == nil {
		return nil
	}
	m.events = ch
	return m.waitForEntry()
}

// Enabled reports whether the overlay has a log stream to show.
func (m Model) Enabled() bool {
	return m.events != nil
}

// waitForEntry blocks on the subscription channel. Re-armed after every
// delivered entry.
func (m Model) waitForEntry() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return EntryMsg{Line: event.Payload}
	}
}

// Update handles overlay messages. Key handling only applies while visible;
// entries are buffered either way.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntryMsg:
		m.entries = append(m.entries, strings.TrimSuffix(msg.Line, "\n"))
		if len(m.entries) > maxEntries {
			m.entries = m.entries[len(m.entries)-maxEntries:]
		}
		if m.visible {
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
		if m.events == nil {
			return m, nil
		}
		return m, m.waitForEntry()

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "c":
			m.entries = nil
			m.refreshViewport()
		case "d":
			m.minLevel = log.LevelDebug
			m.refreshViewport()
		case "i":
			m.minLevel = log.LevelInfo
			m.refreshViewport()
		case "w":
			m.minLevel = log.LevelWarn
			m.refreshViewport()
		case "e":
			m.minLevel = log.LevelError
			m.refreshViewport()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc":
			m.visible = false
		}
	}
	return m, nil
}

// View renders the overlay box. Empty while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	divider := styles.Muted.Render(strings.Repeat("─", boxWidth))

	var b strings.Builder
	b.WriteString(styles.Header.Render(" Logs"))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.filterHint())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderColor).
		Width(boxWidth)
	return box.Render(b.String())
}

// Overlay renders the log viewer centered over the screen, or returns the
// background untouched while hidden.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.View())
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
}

// SetSize updates the overlay's knowledge of the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.visible {
		m.refreshViewport()
	}
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.boxWidth() - 2

	// Header, footer, and borders take six lines around the content.
	height := min(viewportMaxHeight, m.height-6)
	height = max(height, viewportMinHeight)

	offset := m.viewport.YOffset
	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.SetYOffset(offset)
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m Model) content(maxWidth int) string {
	var lines []string
	for _, entry := range m.entries {
		if !m.matchesLevel(entry) {
			continue
		}
		lines = append(lines, colorize(entry, maxWidth))
	}
	if len(lines) == 0 {
		return styles.Muted.Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// matchesLevel filters on the [LEVEL] marker in the formatted entry.
// Unmarked entries are always shown.
func (m Model) matchesLevel(entry string) bool {
	var level log.Level
	switch {
	case strings.Contains(entry, "[ERROR]"):
		level = log.LevelError
	case strings.Contains(entry, "[WARN]"):
		level = log.LevelWarn
	case strings.Contains(entry, "[INFO]"):
		level = log.LevelInfo
	case strings.Contains(entry, "[DEBUG]"):
		level = log.LevelDebug
	default:
		return true
	}
	return level >= m.minLevel
}

func colorize(entry string, maxWidth int) string {
	if len(entry) > maxWidth && maxWidth > 3 {
		entry = entry[:maxWidth-3] + "..."
	}

	switch {
	case strings.Contains(entry, "[ERROR]"):
		return styles.Error.Render(entry)
	case strings.Contains(entry, "[WARN]"):
		return lipgloss.NewStyle().Foreground(styles.TextWarningColor).Render(entry)
	case strings.Contains(entry, "[DEBUG]"):
		return styles.Muted.Render(entry)
	default:
		return entry
	}
}

func (m Model) filterHint() string {
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	hint := func(key, label string, level log.Level) string {
		s := "[" + key + "] " + label
		if m.minLevel == level {
			return active.Render(s)
		}
		return styles.Muted.Render(s)
	}

	parts := []string{
		styles.Muted.Render("[c] Clear"),
		hint("d", "Debug", log.LevelDebug),
		hint("i", "Info", log.LevelInfo),
		hint("w", "Warn", log.LevelWarn),
		hint("e", "Error", log.LevelError),
	}
	return " " + strings.Join(parts, "  ")
}
