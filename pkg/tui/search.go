package tui

import (
	"strings"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
)

// tuiRenderSearchBar renders the filter input line that replaces the help
// line while filtering. It pads or truncates to exactly width cells.
func tuiRenderSearchBar(input string, width int) string {
	if width <= 0 {
		return input
	}
	return components.Fit(input, width)
}

// tuiFilterRows returns the rows whose ID matches the query
// (case-insensitive substring match). An empty query returns all rows.
func tuiFilterRows(rows []*tuiRow, query string) []*tuiRow {
	if query == "" {
		return rows
	}

	lower := strings.ToLower(query)
	var result []*tuiRow

	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.id), lower) {
			result = append(result, r)
		}
	}

	return result
}
