package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankpalette/internal/theme"
)

type Styles struct {
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")),
		Normal:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0abfc")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

// Swatch renders label on a block of the given background using fg for the
// text.
func Swatch(bg, fg, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(label)
}

// swatchRows groups tokens into preview rows with the slot each one is
// labelled on.
var swatchRows = [][]theme.Token{
	{theme.Bg, theme.Card, theme.Card2, theme.Border},
	{theme.Primary, theme.Secondary, theme.Accent, theme.Ring},
	{theme.Good, theme.Warn, theme.Bad},
}

// RenderPreview draws one side of a theme: surfaces with text on them, brand
// and status colors with their on-color foregrounds.
func RenderPreview(t theme.Tokens, title string) string {
	var b strings.Builder
	b.WriteString(Swatch(t[theme.Bg], t[theme.Text], fmt.Sprintf("%-6s", title)))
	b.WriteString(Swatch(t[theme.Bg], t[theme.TextMuted], "muted"))
	b.WriteString("\n")

	for _, row := range swatchRows {
		for _, tok := range row {
			fg := t[theme.Text]
			if pair, ok := onColor(tok); ok {
				fg = t[pair]
			}
			b.WriteString(Swatch(t[tok], fg, fmt.Sprintf("%-9s", tok)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// onColor finds the foreground slot drawn on tok, if any.
func onColor(tok theme.Token) (theme.Token, bool) {
	for _, fg := range theme.AllTokens() {
		if bg, ok := theme.ForegroundPair(fg); ok && bg == tok && fg != theme.TextOnColor {
			return fg, true
		}
	}
	return 0, false
}
