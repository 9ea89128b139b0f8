package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiarcade/internal/game"
	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

const (
	boardCols = 44
	boardRows = 22
	// boardSpan is the half-width of the field window drawn around the
	// bullseye; it covers the whole swing arc.
	boardSpan = 130.0

	fieldCols = 40
	fieldRows = 20
)

var (
	ringStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#EA580C")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")),
	}
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	dartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true)
	aimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	standardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
	bonusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	playerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	bandStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E2E2E"))
)

type cell struct {
	r     rune
	style lipgloss.Style
}

// grid maps a rectangle of field coordinates onto terminal cells.
type grid struct {
	cols, rows int
	minX, minY float64
	maxX, maxY float64
	cells      [][]cell
}

func newGrid(cols, rows int, minX, minY, maxX, maxY float64) *grid {
	g := &grid{cols: cols, rows: rows, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
	g.cells = make([][]cell, rows)
	for y := range g.cells {
		g.cells[y] = make([]cell, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' ', style: emptyStyle}
		}
	}
	return g
}

// center returns the field coordinate of the middle of a cell.
func (g *grid) center(col, row int) game.Point {
	return game.Point{
		X: g.minX + (float64(col)+0.5)/float64(g.cols)*(g.maxX-g.minX),
		Y: g.minY + (float64(row)+0.5)/float64(g.rows)*(g.maxY-g.minY),
	}
}

// cellAt returns the cell containing p and whether p is inside the grid.
func (g *grid) cellAt(p game.Point) (int, int, bool) {
	if p.X < g.minX || p.X > g.maxX || p.Y < g.minY || p.Y > g.maxY {
		return 0, 0, false
	}
	col := int((p.X - g.minX) / (g.maxX - g.minX) * float64(g.cols))
	row := int((p.Y - g.minY) / (g.maxY - g.minY) * float64(g.rows))
	if col >= g.cols {
		col = g.cols - 1
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return col, row, true
}

func (g *grid) set(p game.Point, r rune, style lipgloss.Style) {
	if col, row, ok := g.cellAt(p); ok {
		g.cells[row][col] = cell{r: r, style: style}
	}
}

func (g *grid) render() string {
	lines := make([]string, g.rows)
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func ringIndex(distance float64) int {
	for i, tier := range scoring.Tiers {
		if distance <= tier.Radius {
			return i
		}
	}
	return -1
}

func renderSwing(s *game.SwingState) string {
	if s == nil {
		return ""
	}
	c := game.BoardCenter
	g := newGrid(boardCols, boardRows, c.X-boardSpan, c.Y-boardSpan, c.X+boardSpan, c.Y+boardSpan)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if idx := ringIndex(g.center(col, row).Dist(c)); idx >= 0 {
				g.cells[row][col] = cell{r: '●', style: ringStyles[idx]}
			} else {
				g.cells[row][col] = cell{r: '·', style: emptyStyle}
			}
		}
	}
	for _, hit := range s.Hits {
		g.set(hit.Position, 'x', dartStyle)
	}
	if s.Active {
		g.set(game.ReleasePosition(s.Angle), '+', aimStyle)
	}
	lines := []string{
		cardStyle.Render(g.render()),
		renderGauge(s.Angle),
		statusStyle.Render(fmt.Sprintf("Darts left %d", s.Budget-s.DartsThrown)),
	}
	if n := len(s.Hits); n > 0 {
		last := s.Hits[n-1]
		lines = append(lines, statusStyle.Render(fmt.Sprintf("Last +%d (%d × %d)", last.Score, last.Base, last.Multiplier)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderGauge draws the pendulum angle as a marker on a fixed-width bar.
func renderGauge(angle float64) string {
	const width = 31
	pos := int((angle + 45) / 90 * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	bar := []rune(strings.Repeat("─", width))
	bar[width/2] = '┼'
	bar[pos] = '▼'
	return fmt.Sprintf("%s %+3.0f°", string(bar), angle)
}

func renderCollector(s *game.CollectorState) string {
	if s == nil {
		return ""
	}
	g := newGrid(fieldCols, fieldRows, 0, 0, game.FieldWidth, game.FieldHeight)
	for col := 0; col < g.cols; col++ {
		for row := 0; row < g.rows; row++ {
			p := g.center(col, row)
			if p.Y >= game.CatchTop && p.Y <= game.CatchBottom {
				g.cells[row][col] = cell{r: '░', style: bandStyle}
			}
		}
	}
	for _, item := range s.Items {
		switch item.Kind {
		case scoring.Bonus:
			g.set(item.Position, '★', bonusStyle)
		default:
			g.set(item.Position, 'o', standardStyle)
		}
	}
	playerY := (game.CatchTop + game.CatchBottom) / 2
	for x := s.PlayerX - game.CatchRange; x <= s.PlayerX+game.CatchRange; x += game.FieldWidth / fieldCols {
		g.set(game.Point{X: x, Y: playerY}, '▀', playerStyle)
	}
	legend := fmt.Sprintf("o %d   ★ %d   Caught %d   Missed %d",
		scoring.KindValue(scoring.Standard), scoring.KindValue(scoring.Bonus), s.Caught, s.Missed)
	return lipgloss.JoinVertical(lipgloss.Center, cardStyle.Render(g.render()), statusStyle.Render(legend))
}
