// Package tui provides the Bubble Tea arcade interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiarcade/internal/game"
	"github.com/verte-zerg/tuiarcade/internal/model"
	"github.com/verte-zerg/tuiarcade/internal/scoring"
	"github.com/verte-zerg/tuiarcade/internal/stats"
	"github.com/verte-zerg/tuiarcade/internal/store"
)

const (
	tabPlay = iota
	tabHistory
)

// maxFrameGap bounds the dt of a single tick after the terminal stalled.
const maxFrameGap = 250 * time.Millisecond

type tickMsg struct {
	epoch int
	at    time.Time
}

// Model implements the Bubble Tea arcade UI.
type Model struct {
	ctrl  *game.Controller
	store *store.Store
	frame time.Duration

	// epoch tags the tick chain of the current session; ticks from an older
	// epoch are dropped and never rescheduled.
	epoch    int
	lastTick time.Time

	initial game.Mode

	keys    keyMap
	help    help.Model
	tab     int
	history table.Model
	report  stats.Report
	errMsg  string

	width  int
	height int
}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	resultStyle = cardStyle.Copy().
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 3)
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// NewModel constructs the arcade model. The controller's observer is taken
// over to journal finished rounds.
func NewModel(ctrl *game.Controller, st *store.Store, fps int) *Model {
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		ctrl:    ctrl,
		store:   st,
		frame:   time.Second / time.Duration(fps),
		keys:    newKeyMap(),
		help:    help.New(),
		history: buildHistoryTable(nil, 0, 1),
	}
	ctrl.SetObserver(m.recordRound)
	m.refreshHistory()
	return m
}

// SetInitialMode makes Init start a session in mode instead of showing the
// menu.
func (m *Model) SetInitialMode(mode game.Mode) {
	m.initial = mode
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initial == game.ModeNone {
		return nil
	}
	return m.Start(m.initial)
}

// Start begins a session in mode and returns the tick chain for it.
func (m *Model) Start(mode game.Mode) tea.Cmd {
	if !m.ctrl.SelectMode(mode) {
		return nil
	}
	m.epoch++
	m.lastTick = time.Time{}
	m.tab = tabPlay
	return m.scheduleTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeHistory()
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.MouseMsg:
		if m.tab == tabPlay && m.running() && m.ctrl.Mode() == game.ModeSwing &&
			msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctrl.HandleInput(game.Pointer(float64(msg.X), float64(msg.Y)))
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Tab) {
			m.toggleTab()
			return m, nil
		}
		if m.tab == tabHistory {
			return m.updateHistory(msg)
		}
		if m.running() {
			return m.updateRunning(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.epoch != m.epoch || !m.running() {
		return nil
	}
	dt := m.frame
	if !m.lastTick.IsZero() {
		dt = msg.at.Sub(m.lastTick)
	}
	m.lastTick = msg.at
	if dt > maxFrameGap {
		dt = maxFrameGap
	}
	m.ctrl.Tick(dt)
	if !m.running() {
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return tickMsg{epoch: epoch, at: t}
	})
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Swing):
		return m, m.Start(game.ModeSwing)
	case key.Matches(msg, m.keys.Collector):
		return m, m.Start(game.ModeCollector)
	case key.Matches(msg, m.keys.Typing):
		return m, m.Start(game.ModeTyping)
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	}
	return m, nil
}

func (m *Model) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Stop) {
		m.reset()
		return m, nil
	}
	switch m.ctrl.Mode() {
	case game.ModeSwing:
		if key.Matches(msg, m.keys.Throw) {
			m.ctrl.HandleInput(game.Throw())
		}
	case game.ModeCollector:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.ctrl.HandleInput(game.Left())
		case key.Matches(msg, m.keys.Right):
			m.ctrl.HandleInput(game.Right())
		}
	case game.ModeTyping:
		m.handleTyping(msg)
	}
	return m, nil
}

func (m *Model) handleTyping(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace:
		m.ctrl.HandleInput(game.Backspace())
	case tea.KeySpace:
		m.ctrl.HandleInput(game.Char(' '))
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !m.running() {
				return
			}
			m.ctrl.HandleInput(game.Char(r))
		}
	}
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// reset cancels the running session's tick chain along with the session.
func (m *Model) reset() {
	m.ctrl.Reset()
	m.epoch++
	m.lastTick = time.Time{}
}

func (m *Model) running() bool {
	return m.ctrl.Status() == game.StatusRunning
}

func (m *Model) toggleTab() {
	if m.tab == tabPlay {
		m.tab = tabHistory
		m.history.Focus()
		return
	}
	m.tab = tabPlay
	m.history.Blur()
}

func (m *Model) recordRound(r game.Result) {
	round := model.RoundResult{
		Mode:           r.Mode.String(),
		Score:          r.Score,
		PeakCombo:      r.PeakCombo,
		DartsThrown:    r.DartsThrown,
		Caught:         r.Caught,
		Missed:         r.Missed,
		WordsCompleted: r.WordsCompleted,
		Rating:         r.Rating,
		PlayedMs:       r.Played.Milliseconds(),
		StartedAt:      r.StartedAt,
		EndedAt:        r.EndedAt,
	}
	if _, err := m.store.InsertRound(context.Background(), round); err != nil {
		m.errMsg = fmt.Sprintf("failed to record round: %v", err)
		logErrf("failed to record round: %v\n", err)
		return
	}
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	report, err := stats.BuildReport(context.Background(), m.store)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load history: %v", err)
		return
	}
	m.report = report
	m.history.SetRows(historyRows(report.Rounds))
}

// Report returns the round journal as last loaded.
func (m *Model) Report() stats.Report {
	return m.report
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderTabs()
	var body string
	if m.tab == tabHistory {
		body = m.renderHistory()
	} else {
		body = m.renderPlay()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		return body
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footer = lipgloss.Place(m.width, footerHeight, lipgloss.Center, lipgloss.Bottom, footer)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderTabs() string {
	labels := []string{"Play", "History"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == m.tab {
			rendered[i] = activeNavStyle.Render(label)
		} else {
			rendered[i] = inactiveNavStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderFooter() string {
	m.updateBindings()
	lines := []string{m.help.View(m.keys)}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

// updateBindings enables only the keys that do something in the current
// state, so the help line stays short.
func (m *Model) updateBindings() {
	snap := m.ctrl.Snapshot()
	play := m.tab == tabPlay
	menu := play && snap.Status != game.StatusRunning
	m.keys.Swing.SetEnabled(menu)
	m.keys.Collector.SetEnabled(menu)
	m.keys.Typing.SetEnabled(menu)
	m.keys.Reset.SetEnabled(menu && snap.Status == game.StatusOver)
	m.keys.Quit.SetEnabled(menu || !play)
	m.keys.Stop.SetEnabled(play && snap.Status == game.StatusRunning)
	m.keys.Throw.SetEnabled(play && snap.Status == game.StatusRunning && snap.Mode == game.ModeSwing)
	moving := play && snap.Status == game.StatusRunning && snap.Mode == game.ModeCollector
	m.keys.Left.SetEnabled(moving)
	m.keys.Right.SetEnabled(moving)
	m.keys.Backspace.SetEnabled(play && snap.Status == game.StatusRunning && snap.Mode == game.ModeTyping)
	if play {
		m.keys.Tab.SetHelp("tab", "history")
	} else {
		m.keys.Tab.SetHelp("tab", "play")
	}
}

func (m *Model) renderPlay() string {
	snap := m.ctrl.Snapshot()
	if snap.Status == game.StatusIdle {
		return renderMenu(snap.BestScore)
	}
	parts := []string{renderStatusLine(snap)}
	switch snap.Mode {
	case game.ModeSwing:
		parts = append(parts, renderSwing(snap.Swing))
	case game.ModeCollector:
		parts = append(parts, renderCollector(snap.Collector))
	case game.ModeTyping:
		parts = append(parts, renderTyping(snap.Typing))
	}
	if snap.Status == game.StatusOver && snap.Result != nil {
		parts = append(parts, renderResult(*snap.Result))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func renderMenu(best int) string {
	title := valueStyle.Render("Arcade")
	modes := []string{
		"1  Swing      time the pendulum, five darts",
		"2  Collector  catch falling items",
		"3  Typing     type the words",
	}
	guide := make([]string, 0, len(scoring.Tiers))
	for _, tier := range scoring.Tiers {
		guide = append(guide, fmt.Sprintf("≤%3.0f  %3d pts", tier.Radius, tier.Points))
	}
	lines := []string{
		title,
		"",
		strings.Join(modes, "\n"),
		"",
		cardTitleStyle.Render("Scoring guide"),
		strings.Join(guide, "\n"),
		"",
		statusStyle.Render(fmt.Sprintf("Best %d", best)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStatusLine(s game.Snapshot) string {
	segments := []string{
		statusStyle.Render(strings.ToUpper(s.Mode.String())),
		statusStyle.Render("Score ") + valueStyle.Render(fmt.Sprintf("%d", s.Score)),
		statusStyle.Render("Combo ") + valueStyle.Render(fmt.Sprintf("%d", s.Combo)),
		statusStyle.Render("Time ") + valueStyle.Render(fmt.Sprintf("%ds", s.TimeRemaining)),
		statusStyle.Render("Best ") + valueStyle.Render(fmt.Sprintf("%d", s.BestScore)),
	}
	return strings.Join(segments, "   ")
}

func renderResult(r game.Result) string {
	lines := []string{
		valueStyle.Render(r.Rating),
		fmt.Sprintf("Final Score: %d", r.Score),
	}
	switch r.Mode {
	case game.ModeSwing:
		lines = append(lines, fmt.Sprintf("Darts: %d", r.DartsThrown))
	case game.ModeCollector:
		lines = append(lines, fmt.Sprintf("Caught %d · Missed %d", r.Caught, r.Missed))
	case game.ModeTyping:
		lines = append(lines, fmt.Sprintf("Words: %d", r.WordsCompleted))
	}
	lines = append(lines, fmt.Sprintf("Best combo %d · Best score %d", r.PeakCombo, r.BestScore))
	lines = append(lines, footerStyle.Render("1-3 play again · r reset"))
	return resultStyle.Render(strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
