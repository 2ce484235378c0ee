// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/corsair-sc/corsair/internal/config"
	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/intel"
)

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Items    *items.Registry
	Fleet    *ships.Registry
	Analyzer *intel.Analyzer
	Config   *config.Config
	// ItemsPath is the user items file, watched for live reloads.
	ItemsPath string
}
