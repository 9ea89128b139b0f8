package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	cols := []column{{title: "Mode"}, {title: "Score", right: true}, {title: "Combo", right: true}}
	rows := [][]string{
		{"swing", "700", "5"},
		{"collector", "60", "12"},
	}

	lines := formatTable(cols, rows)
	want := []string{
		"Mode      Score Combo",
		"--------- ----- -----",
		"swing       700     5",
		"collector    60    12",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatTableShortRows(t *testing.T) {
	cols := []column{{title: "#", right: true}, {title: "Rating"}}
	lines := formatTable(cols, [][]string{{"1"}})
	if lines[2] != "1" {
		t.Fatalf("expected trailing blanks trimmed, got %q", lines[2])
	}
	if formatTable(nil, nil) != nil {
		t.Fatalf("expected nil for no columns")
	}
}
