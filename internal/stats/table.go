package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one column of a plain-text table.
type column struct {
	title string
	right bool
}

// formatTable lays rows out under a header and a rule line. Cell widths are
// measured in terminal cells.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
		rules[i] = strings.Repeat("-", widths[i])
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, joinCells(cols, widths, titles), strings.Join(rules, " "))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func joinCells(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		if c.right {
			cells[i] = runewidth.FillLeft(value, widths[i])
		} else {
			cells[i] = runewidth.FillRight(value, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
