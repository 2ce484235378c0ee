package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveTabIsDistinctFromTab(t *testing.T) {
	require.True(t, ActiveTab.GetBold())
	require.False(t, Tab.GetBold())
	require.True(t, ActiveTab.GetUnderline())
}

func TestPanelHasBorder(t *testing.T) {
	border := Panel.GetBorderStyle()
	require.NotEmpty(t, border.Top)
	require.NotEmpty(t, border.Left)
}

func TestErrorAndMutedUseDifferentColors(t *testing.T) {
	require.NotEqual(t, Error.GetForeground(), Muted.GetForeground())
}
