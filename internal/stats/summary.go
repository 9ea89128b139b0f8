package stats

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Summary output formats.
const (
	FormatNone = "none"
	FormatText = "text"
	FormatYAML = "yaml"
)

// WriteSummary prints the report in the requested format.
func WriteSummary(w io.Writer, report Report, format string) error {
	switch format {
	case FormatNone, "":
		return nil
	case FormatText:
		return writeText(w, report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

func writeText(w io.Writer, report Report) error {
	if len(report.Rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	cols := []column{
		{title: "#", right: true},
		{title: "Mode"},
		{title: "Score", right: true},
		{title: "Combo", right: true},
		{title: "Rating"},
	}
	rows := make([][]string, 0, len(report.Rounds))
	for i, r := range report.Rounds {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Mode,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.PeakCombo),
			r.Rating,
		})
	}
	lines := formatTable(cols, rows)
	lines = append(lines, "")
	for _, m := range report.Modes {
		lines = append(lines, fmt.Sprintf("%s: %d rounds, best %d, avg %.1f", m.Mode, m.Rounds, m.Best, m.AvgScore))
	}
	lines = append(lines, fmt.Sprintf("Scores: %s", Sparkline(Scores(report.Rounds))))
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
