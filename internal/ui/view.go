package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sheetboard/internal/rows"
	"sheetboard/internal/state"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	faintStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	tierStyles = map[string]lipgloss.Style{
		rows.TierHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		rows.TierMedium:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		rows.TierLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		rows.TierVeryLow: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		rows.TierNoScore: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sheetboard"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, len(m.sheets))
	for i, ref := range m.sheets {
		label := fmt.Sprintf("%d:%s", i+1, ref.Name)
		if slot, ok := m.store.Slot(ref.Name); ok && slot.Status == state.Failed {
			label += "!"
		}
		if i == m.active {
			parts[i] = tabActiveStyle.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderFilterLine() string {
	if m.filtering {
		return m.filter.View()
	}
	if q := strings.TrimSpace(m.filter.Value()); q != "" {
		return faintStyle.Render(fmt.Sprintf("filter: %q (esc clears, / edits)", q))
	}
	return faintStyle.Render("/ to filter")
}

func (m *Model) renderBody() string {
	ref := m.currentRef()
	slot, ok := m.store.Slot(ref.Name)
	if !ok {
		return errorStyle.Render("unknown sheet " + ref.Name)
	}

	switch slot.Status {
	case state.Loading:
		return m.spin.View() + faintStyle.Render(" loading "+ref.Name+"...")
	case state.Failed:
		return errorStyle.Render("failed to load "+ref.Name+": ") + slot.Err
	}

	visible := m.visibleRows()
	if len(visible) == 0 {
		return faintStyle.Render("(no rows)")
	}
	return m.renderTable(visible) + "\n" + faintStyle.Render("source: "+slot.SourceURL)
}

func (m *Model) renderTable(visible []rows.Row) string {
	var b strings.Builder

	head := fmt.Sprintf("%5s  %-26s  %-26s  %10s  %-9s",
		"ROW",
		sortMarker("ITEM", rows.SortItem, m.sortSpec),
		sortMarker("NAME", rows.SortName, m.sortSpec),
		sortMarker("VALUE", rows.SortValue, m.sortSpec),
		"TIER")
	b.WriteString(headStyle.Render(head))
	b.WriteString("\n")

	maxRows := m.height - 8
	if maxRows < 3 {
		maxRows = len(visible)
	}

	for i, r := range visible {
		if i >= maxRows {
			b.WriteString(faintStyle.Render(fmt.Sprintf("  ... %d more rows", len(visible)-maxRows)))
			b.WriteString("\n")
			break
		}

		v, ok := r.Value()
		tier := rows.Tier(v, ok)
		line := fmt.Sprintf("%5d  %-26s  %-26s  %10s  ",
			r.Num(),
			truncate(r.Item(), 26),
			truncate(r.Name(), 26),
			truncate(r.RawValue(), 10))
		b.WriteString(line)
		b.WriteString(tierStyles[tier].Render(tier))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render(fmt.Sprintf("%d rows", len(visible))))
	return b.String()
}

func (m *Model) renderFooter() string {
	help := "tab/1-9 sheets • / filter • i/n/v sort • r reload • c copy • q quit"
	if m.status != "" {
		return statusStyle.Render(m.status) + "  " + faintStyle.Render(help)
	}
	return faintStyle.Render(help)
}

func sortMarker(label string, key rows.SortKey, spec rows.SortSpec) string {
	if spec.Key != key {
		return label
	}
	if spec.Desc {
		return label + " v"
	}
	return label + " ^"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
