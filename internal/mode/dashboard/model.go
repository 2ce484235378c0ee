// Package dashboard implements the interdiction dashboard mode with tabs for
// registry items, target predictions, and hot trade routes.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/keys"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/mode"
	"github.com/corsair-sc/corsair/internal/watcher"
)

// Tab identifies the active dashboard tab.
type Tab int

const (
	TabItems Tab = iota
	TabTargets
	TabRoutes
)

var tabNames = []string{"Items", "Targets", "Routes"}

const fetchTimeout = 20 * time.Second

// Model holds the dashboard state.
type Model struct {
	services mode.Services
	keymap   keys.KeyMap

	// registry is swapped wholesale when the items file changes.
	registry *items.Registry

	tab    Tab
	width  int
	height int

	// Items tab
	categoryIdx int // 0 = all categories
	cursor      int
	visible     []*items.Item

	// Targets tab
	locationInput  textinput.Model
	predictions    []intel.TargetPrediction
	targetsErr     error
	loadingTargets bool

	// Routes tab
	routes        []intel.HotRoute
	routesErr     error
	loadingRoutes bool

	fileWatcher *watcher.Watcher
	onChange    <-chan struct{}
}

// New creates the dashboard mode controller.
func New(services mode.Services) Model {
	input := textinput.New()
	input.Placeholder = "location name, e.g. Everus"
	input.CharLimit = 60
	input.Width = 40

	m := Model{
		services:      services,
		keymap:        keys.DefaultKeyMap(),
		registry:      services.Items,
		locationInput: input,
		loadingRoutes: true,
	}
	m.refreshVisible()

	if services.ItemsPath != "" && services.Config != nil && services.Config.Data.WatchItems {
		if w, err := watcher.New(watcher.DefaultConfig(services.ItemsPath)); err == nil {
			if ch, err := w.Start(); err == nil {
				m.fileWatcher = w
				m.onChange = ch
			} else {
				_ = w.Stop()
			}
		}
	}
	return m
}

// routesLoadedMsg carries the hot routes fetch result.
type routesLoadedMsg struct {
	routes []intel.HotRoute
	err    error
}

// targetsLoadedMsg carries the target prediction fetch result.
type targetsLoadedMsg struct {
	predictions []intel.TargetPrediction
	err         error
}

// itemsFileChangedMsg signals the watched items file was modified.
type itemsFileChangedMsg struct{}

// registryReloadedMsg carries a freshly built registry.
type registryReloadedMsg struct {
	registry *items.Registry
	err      error
}

// Init kicks off the routes fetch and, when watching is enabled, the wait
// for items file changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRoutes()}
	if m.onChange != nil {
		cmds = append(cmds, waitForChange(m.onChange))
	}
	return tea.Batch(cmds...)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return itemsFileChangedMsg{}
	}
}

func (m Model) loadRoutes() tea.Cmd {
	analyzer := m.services.Analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		routes, err := analyzer.HotRoutes(ctx, 20)
		return routesLoadedMsg{routes: routes, err: err}
	}
}

func (m Model) loadTargets(location string) tea.Cmd {
	analyzer := m.services.Analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		predictions, err := analyzer.TargetsAt(ctx, location)
		return targetsLoadedMsg{predictions: predictions, err: err}
	}
}

func (m Model) reloadRegistry() tea.Cmd {
	path := m.services.ItemsPath
	return func() tea.Msg {
		registry, err := items.LoadRegistry(path)
		return registryReloadedMsg{registry: registry, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case routesLoadedMsg:
		m.loadingRoutes = false
		m.routes = msg.routes
		m.routesErr = msg.err
		return m, nil

	case targetsLoadedMsg:
		m.loadingTargets = false
		m.predictions = msg.predictions
		m.targetsErr = msg.err
		return m, nil

	case itemsFileChangedMsg:
		cmds := []tea.Cmd{m.reloadRegistry()}
		if m.onChange != nil {
			cmds = append(cmds, waitForChange(m.onChange))
		}
		return m, tea.Batch(cmds...)

	case registryReloadedMsg:
		if msg.err != nil {
			// Keep serving the last good registry.
			log.ErrorErr(log.CatUI, "items reload failed", msg.err)
			return m, nil
		}
		m.registry = msg.registry
		m.refreshVisible()
		log.Info(log.CatUI, "items reloaded", "count", m.registry.Len())
		return m, nil
	}

	if m.tab == TabTargets && m.locationInput.Focused() {
		var cmd tea.Cmd
		m.locationInput, cmd = m.locationInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	// Typing in the location input captures everything except tab switches,
	// enter, and quit chords.
	if m.tab == TabTargets && m.locationInput.Focused() {
		switch {
		case key.Matches(msg, m.keymap.Submit):
			location := m.locationInput.Value()
			if location == "" {
				return m, nil
			}
			m.locationInput.Blur()
			m.loadingTargets = true
			m.targetsErr = nil
			return m, m.loadTargets(location)
		case key.Matches(msg, m.keymap.Escape):
			m.locationInput.Blur()
			return m, nil
		case msg.String() == "ctrl+c":
			return m.quit()
		default:
			var cmd tea.Cmd
			m.locationInput, cmd = m.locationInput.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m, nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m, nil
	case key.Matches(msg, m.keymap.ItemsTab):
		m.tab = TabItems
		return m, nil
	case key.Matches(msg, m.keymap.TargetsTab):
		m.tab = TabTargets
		return m, nil
	case key.Matches(msg, m.keymap.RoutesTab):
		m.tab = TabRoutes
		return m, nil
	}

	switch m.tab {
	case TabItems:
		switch {
		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keymap.CycleCategory):
			m.categoryIdx = (m.categoryIdx + 1) % (len(items.Categories()) + 1)
			m.refreshVisible()
		}
	case TabTargets:
		if key.Matches(msg, m.keymap.FocusLocation) {
			m.locationInput.Focus()
			return m, textinput.Blink
		}
	case TabRoutes:
		if key.Matches(msg, m.keymap.Refresh) && !m.loadingRoutes {
			m.loadingRoutes = true
			m.routesErr = nil
			return m, m.loadRoutes()
		}
	}
	return m, nil
}

func (m Model) quit() (mode.Controller, tea.Cmd) {
	if m.fileWatcher != nil {
		_ = m.fileWatcher.Stop()
	}
	return m, tea.Quit
}

// refreshVisible rebuilds the items tab rows for the active category filter.
func (m *Model) refreshVisible() {
	if m.categoryIdx == 0 {
		all := m.registry.AllItems()
		m.visible = make([]*items.Item, len(all))
		for i := range all {
			m.visible[i] = &all[i]
		}
	} else {
		m.visible = m.registry.ItemsInCategory(items.Categories()[m.categoryIdx-1])
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// activeCategory returns the filter label for the items tab header.
func (m Model) activeCategory() string {
	if m.categoryIdx == 0 {
		return "all"
	}
	return string(items.Categories()[m.categoryIdx-1])
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}
