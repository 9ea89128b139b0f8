package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiarcade/internal/model"
	"github.com/verte-zerg/tuiarcade/internal/stats"
)

// historyChrome is the number of body lines around the table: cards,
// sparkline and spacing.
const historyChrome = 8

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Mode", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Combo", Width: 6},
		{Title: "Detail", Width: 20},
		{Title: "Rating", Width: 18},
	}
}

func buildHistoryTable(rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	t.SetStyles(historyTableStyles())
	return t
}

func historyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func historyRows(rounds []model.RoundResult) []table.Row {
	rows := make([]table.Row, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Mode,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.PeakCombo),
			roundDetail(r),
			r.Rating,
		})
	}
	return rows
}

func roundDetail(r model.RoundResult) string {
	switch r.Mode {
	case "swing":
		return fmt.Sprintf("%d darts", r.DartsThrown)
	case "collector":
		return fmt.Sprintf("%d caught, %d missed", r.Caught, r.Missed)
	case "typing":
		return fmt.Sprintf("%d words", r.WordsCompleted)
	default:
		return ""
	}
}

func (m *Model) resizeHistory() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.history.SetWidth(minInt(m.width, 70))
	m.history.SetHeight(maxInt(3, m.height-historyChrome-4))
}

func (m *Model) renderHistory() string {
	if len(m.report.Rounds) == 0 {
		return statusStyle.Render("No rounds yet. Finish a game to see it here.")
	}
	cards := []string{
		metricCard("Rounds", fmt.Sprintf("%d", m.report.Summary.Rounds)),
		metricCard("Best", fmt.Sprintf("%d", m.report.Summary.Best)),
		metricCard("Avg", fmt.Sprintf("%.1f", m.report.Summary.AvgScore)),
		metricCard("Top combo", fmt.Sprintf("%d", m.report.Summary.PeakCombo)),
	}
	modes := make([]string, 0, len(m.report.Modes))
	for _, agg := range m.report.Modes {
		modes = append(modes, fmt.Sprintf("%s best %d", agg.Mode, agg.Best))
	}
	spark := stats.Sparkline(stats.Scores(m.report.Rounds))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		statusStyle.Render(strings.Join(modes, " · ")),
		statusStyle.Render("Scores ")+valueStyle.Render(spark),
		"",
		m.history.View(),
	)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), valueStyle.Render(value))
	return cardStyle.Render(content)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
