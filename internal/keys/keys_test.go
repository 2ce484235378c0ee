package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_TabBindings(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "NextTab uses tab, l, and right",
			binding:  DefaultKeyMap().NextTab,
			expected: []string{"tab", "l", "right"},
		},
		{
			name:     "PrevTab uses shift+tab, h, and left",
			binding:  DefaultKeyMap().PrevTab,
			expected: []string{"shift+tab", "h", "left"},
		},
		{
			name:     "Quit uses q and ctrl+c",
			binding:  DefaultKeyMap().Quit,
			expected: []string{"q", "ctrl+c"},
		},
		{
			name:     "Refresh uses r",
			binding:  DefaultKeyMap().Refresh,
			expected: []string{"r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	km := DefaultKeyMap()
	for _, b := range []key.Binding{
		km.Up, km.Down, km.NextTab, km.PrevTab,
		km.CycleCategory, km.FocusLocation, km.Refresh, km.Quit,
	} {
		help := b.Help()
		require.NotEmpty(t, help.Key)
		require.NotEmpty(t, help.Desc)
	}
}

func TestDefaultKeyMap_DirectTabsAreDigits(t *testing.T) {
	km := DefaultKeyMap()
	require.Equal(t, []string{"1"}, km.ItemsTab.Keys())
	require.Equal(t, []string{"2"}, km.TargetsTab.Keys())
	require.Equal(t, []string{"3"}, km.RoutesTab.Keys())
}
