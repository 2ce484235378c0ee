package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/ui/styles"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabItems:
		b.WriteString(m.renderItems())
	case TabTargets:
		b.WriteString(m.renderTargets())
	case TabRoutes:
		b.WriteString(m.renderRoutes())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			rendered[i] = styles.ActiveTab.Render(name)
		} else {
			rendered[i] = styles.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderItems() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n",
		styles.Header.Render("Registry"),
		styles.Muted.Render("category: "+m.activeCategory()))

	if len(m.visible) == 0 {
		b.WriteString(styles.Muted.Render("no items in this category"))
		return b.String()
	}

	b.WriteString(styles.Header.Render(fmt.Sprintf("  %-28s %-17s %-22s %-11s %3s", "NAME", "CATEGORY", "PRIMARY SOURCE", "METHOD", "REL")))
	b.WriteString("\n")

	for i, it := range m.visible {
		line := formatItemRow(it)
		if i == m.cursor {
			b.WriteString(styles.SelectedRow.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.visible) {
		b.WriteString("\n")
		b.WriteString(m.renderItemDetail(m.visible[m.cursor]))
	}
	return b.String()
}

func formatItemRow(it *items.Item) string {
	source := "-"
	method := "-"
	rel := "-"
	if primary := it.PrimarySource(); primary != nil {
		source = primary.Location.Name
		method = string(primary.Method)
		rel = fmt.Sprintf("%d/5", primary.Reliability)
	}
	return fmt.Sprintf("%-28s %-17s %-22s %-11s %3s", truncate(it.Name, 28), it.Category, truncate(source, 22), method, rel)
}

func (m Model) renderItemDetail(it *items.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", styles.Header.Render(it.Name))
	fmt.Fprintf(&b, "id: %s   value: %d aUEC   systems: %s\n",
		it.ID, it.EstimatedValue, strings.Join(it.SourceSystems(), ", "))

	width := m.width - 8
	if width < 20 {
		width = 60
	}
	for i := range it.Sources {
		s := &it.Sources[i]
		fmt.Fprintf(&b, "  %s (%s) via %s, reliability %d/5\n",
			s.Location.Name, s.Location.System, s.Method, s.Reliability)
		if s.Notes != "" {
			notes := wordwrap.String(s.Notes, width)
			for _, line := range strings.Split(notes, "\n") {
				b.WriteString(styles.Muted.Render("    " + line))
				b.WriteString("\n")
			}
		}
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderTargets() string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Target predictions"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "location: %s\n\n", m.locationInput.View())

	switch {
	case m.loadingTargets:
		b.WriteString(styles.Muted.Render("fetching trade data..."))
	case m.targetsErr != nil:
		b.WriteString(styles.Error.Render("error: " + m.targetsErr.Error()))
	case len(m.predictions) == 0:
		b.WriteString(styles.Muted.Render("no predictions, enter a location and press enter"))
	default:
		b.WriteString(styles.Header.Render(fmt.Sprintf("%-10s %-22s %-20s %-22s %14s", "DIRECTION", "COMMODITY", "LIKELY SHIP", "TO/FROM", "CARGO VALUE")))
		b.WriteString("\n")
		for i := range m.predictions {
			p := &m.predictions[i]
			fmt.Fprintf(&b, "%-10s %-22s %-20s %-22s %14s\n",
				p.Direction, truncate(p.Commodity, 22), truncate(p.LikelyShip.Name, 20),
				truncate(p.Destination, 22), formatUEC(p.EstimatedCargoValue))
		}
	}
	return b.String()
}

func (m Model) renderRoutes() string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Hot routes"))
	b.WriteString("\n\n")

	switch {
	case m.loadingRoutes:
		b.WriteString(styles.Muted.Render("fetching trade data..."))
	case m.routesErr != nil:
		b.WriteString(styles.Error.Render("error: " + m.routesErr.Error()))
	case len(m.routes) == 0:
		b.WriteString(styles.Muted.Render("no profitable routes right now"))
	default:
		b.WriteString(styles.Header.Render(fmt.Sprintf("%-20s %-22s %-22s %10s %14s %5s", "COMMODITY", "ORIGIN", "DESTINATION", "PROFIT/SCU", "HAUL VALUE", "RISK")))
		b.WriteString("\n")
		for i := range m.routes {
			r := &m.routes[i]
			fmt.Fprintf(&b, "%-20s %-22s %-22s %10.0f %14s %5.0f\n",
				truncate(r.Commodity, 20), truncate(r.Origin, 22), truncate(r.Destination, 22),
				r.ProfitPerSCU, formatUEC(r.EstimatedHaulValue), r.RiskScore)
		}
	}
	return b.String()
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	switch m.tab {
	case TabItems:
		bindings = []key.Binding{m.keymap.Down, m.keymap.Up, m.keymap.CycleCategory}
	case TabTargets:
		bindings = []key.Binding{m.keymap.FocusLocation, m.keymap.Escape}
	case TabRoutes:
		bindings = []key.Binding{m.keymap.Refresh}
	}
	bindings = append(bindings, m.keymap.NextTab, m.keymap.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return styles.Muted.Render(strings.Join(parts, "   "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func formatUEC(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM aUEC", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.0fK aUEC", v/1_000)
	default:
		return fmt.Sprintf("%.0f aUEC", v)
	}
}
