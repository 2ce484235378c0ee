// Package app contains the root application model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/corsair-sc/corsair/internal/mode"
	"github.com/corsair-sc/corsair/internal/ui/logoverlay"
)

// Model is the root bubbletea model. It adapts the active mode controller
// to the tea.Model interface, routes resize events to it, and hosts the
// log overlay (ctrl+x) above whatever the controller renders.
type Model struct {
	controller mode.Controller
	overlay    logoverlay.Model
	// listen is the initial log subscription command, nil when logging is
	// off.
	listen tea.Cmd

	width  int
	height int
}

// New wraps a mode controller as the program root.
func New(controller mode.Controller) Model {
	m := Model{controller: controller, overlay: logoverlay.New()}
	m.listen = m.overlay.Listen(context.Background())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.controller.Init(), m.listen)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overlay.SetSize(msg.Width, msg.Height)
		m.controller = m.controller.SetSize(msg.Width, msg.Height)
		return m, nil

	case logoverlay.EntryMsg:
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+x" && m.overlay.Enabled() && !m.overlay.Visible() {
			m.overlay.Toggle()
			return m, nil
		}
		// A visible overlay captures all input.
		if m.overlay.Visible() {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.controller, cmd = m.controller.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.overlay.Visible() {
		return m.overlay.Overlay(m.controller.View())
	}
	return m.controller.View()
}
