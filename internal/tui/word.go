package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuiarcade/internal/game"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle    = pendingStyle.Copy().Underline(true)
)

type styledRune struct {
	s     string
	width int
}

// buildStyledRunes styles the target word against what has been typed.
// Characters from the first mismatch on are marked wrong; typed characters
// past the end of the target are appended as wrong.
func buildStyledRunes(targetRunes, inputRunes []rune, mismatchAt int) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		style := pendingStyle
		if i < len(inputRunes) {
			if mismatchAt >= 0 && i >= mismatchAt {
				style = incorrectStyle
			} else {
				style = correctStyle
			}
		} else if i == len(inputRunes) {
			style = cursorStyle
		}
		out = append(out, styledRune{
			s:     style.Render(string(target)),
			width: runewidth.RuneWidth(target),
		})
	}
	for i := len(targetRunes); i < len(inputRunes); i++ {
		r := inputRunes[i]
		if unicode.IsSpace(r) {
			r = '•'
		}
		out = append(out, styledRune{
			s:     incorrectStyle.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func renderTyping(s *game.TypingState) string {
	if s == nil {
		return ""
	}
	word := buildStyledRunes([]rune(s.Target), []rune(s.Typed), s.MismatchAt)
	underline := footerStyle.Render(strings.Repeat("─", lineWidthOf(word)))
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		renderStyledRunes(word),
		underline,
		"",
		statusStyle.Render(fmt.Sprintf("Words %d", s.WordsCompleted)),
	)
}
