package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewSelectHarmony() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Harmony"))
	b.WriteString("\n\n")

	for i, h := range m.harmonies {
		if i == m.selectedConfig {
			b.WriteString(m.styles.Selected.Render(fmt.Sprintf("> %s", h)))
		} else {
			b.WriteString(m.styles.Normal.Render(fmt.Sprintf("  %s", h)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Press Enter to apply, Esc to go back"))
	return b.String()
}

func (m Model) updateSelectHarmonyState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.selectedConfig > 0 {
			m.selectedConfig--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selectedConfig < len(m.harmonies)-1 {
			m.selectedConfig++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.opts.Mode = m.harmonies[m.selectedConfig]
		m.regenerate()
		m.state = StateTuning
	case key.Matches(keyMsg, m.keys.Back):
		m.state = StateTuning
	}
	return m, nil
}
