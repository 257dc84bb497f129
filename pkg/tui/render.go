package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
)

const tuiTitle = "thermo-badge"

// View renders the header, one line per visible sensor, collector errors
// and the help or filter line. Badges are marked as mouse zones.
func (m Model) View() string {
	lines := []string{m.tuiRenderHeader(), ""}

	switch rows := m.visibleRows(); {
	case m.waiting:
		lines = append(lines, m.r.NewStyle().Faint(true).Render("waiting for readings…"))
	case len(rows) == 0 && m.filter.Value() != "":
		lines = append(lines, m.r.NewStyle().Faint(true).Render(fmt.Sprintf("no sensors match %q", m.filter.Value())))
	default:
		lines = append(lines, m.tuiRenderRows(rows)...)
	}

	if errs := m.tuiRenderErrors(); len(errs) > 0 {
		lines = append(lines, "")
		lines = append(lines, errs...)
	}
	if m.status != "" {
		lines = append(lines, "", m.status)
	}

	lines = append(lines, "", m.tuiRenderFooter())

	return m.zones.Scan(strings.Join(lines, "\n"))
}

// tuiRenderHeader renders the title with the active unit and theme.
func (m Model) tuiRenderHeader() string {
	title := m.r.NewStyle().Bold(true).Render(tuiTitle)
	info := fmt.Sprintf("unit %s  theme %s", strings.TrimSpace(m.unit.Symbol()), m.themeName)
	if m.closed {
		info += "  (no more updates)"
	}
	return title + "  " + m.r.NewStyle().Faint(true).Render(info)
}

// tuiRenderRows renders "name badge thermometer" lines with the names and
// badges padded to common widths.
func (m Model) tuiRenderRows(rows []*tuiRow) []string {
	nameW := 0
	for _, r := range rows {
		nameW = max(nameW, components.Cells(r.id))
	}

	badges := make([]string, len(rows))
	gauges := make([]string, len(rows))
	badgeW := 0
	faint := m.r.NewStyle().Faint(true)

	for i, r := range rows {
		d, err := r.display(m.unit, m.overrides)
		if err != nil {
			badges[i] = faint.Render(err.Error())
			continue
		}
		badges[i] = m.zones.Mark(r.id, components.Badge(m.r, d, m.style))
		gauges[i] = components.Thermometer(m.r, d, m.opts.ThermometerWidth, "")
		badgeW = max(badgeW, components.Cells(badges[i]))
	}

	alert := m.r.NewStyle().Bold(true).Foreground(lipgloss.Color(m.style.Theme.Hot))
	lines := make([]string, len(rows))
	for i, r := range rows {
		var b strings.Builder
		b.WriteString(faint.Render(components.Pad(r.id, nameW)))
		b.WriteString(" ")
		b.WriteString(components.Pad(badges[i], badgeW))
		if gauges[i] != "" {
			b.WriteString(" ")
			b.WriteString(gauges[i])
		}
		if r.reading.AboveHigh() {
			b.WriteString(" ")
			b.WriteString(alert.Render("high"))
		}
		if m.tuiIsStale(r) {
			b.WriteString(" ")
			b.WriteString(faint.Render("stale"))
		}
		lines[i] = b.String()
	}
	return lines
}

// tuiIsStale reports whether a row has not been updated for StaleAfter.
func (m Model) tuiIsStale(r *tuiRow) bool {
	if m.now.IsZero() || r.updated.IsZero() {
		return false
	}
	return m.now.Sub(r.updated) > m.opts.StaleAfter
}

// tuiRenderErrors renders one line per failing source, sorted by name.
func (m Model) tuiRenderErrors() []string {
	if len(m.errs) == 0 {
		return nil
	}
	sources := make([]string, 0, len(m.errs))
	for s := range m.errs {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	style := m.r.NewStyle().Foreground(lipgloss.Color(m.style.Theme.Hot))
	lines := make([]string, len(sources))
	for i, s := range sources {
		lines[i] = style.Render(fmt.Sprintf("%s: %v", s, m.errs[s]))
	}
	return lines
}

// tuiRenderFooter renders the filter input while filtering, otherwise the
// help line prefixed by any kept filter.
func (m Model) tuiRenderFooter() string {
	if m.filtering {
		return tuiRenderSearchBar(m.filter.View(), m.width)
	}
	footer := m.help.View(m.keys)
	if q := m.filter.Value(); q != "" {
		footer = m.r.NewStyle().Faint(true).Render("filter: "+q) + "  " + footer
	}
	return footer
}
