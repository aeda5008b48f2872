package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AvengeMedia/dankpalette/internal/theme"
)

func (m Model) renderBanner() string {
	return m.styles.Title.Render("dankpalette tuner")
}

func levelBar(v int) string {
	var b strings.Builder
	for i := theme.MinLevel; i <= theme.MaxLevel; i++ {
		switch {
		case i == v:
			b.WriteString("●")
		case i == 0:
			b.WriteString("┼")
		default:
			b.WriteString("─")
		}
	}
	return b.String()
}

func (m Model) viewTuning() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("harmony %s  seed %s", m.theme.Mode, m.opts.Seed)))
	b.WriteString("\n\n")

	editing := "both modes"
	if m.splitDark {
		editing = m.editing.String() + " mode"
	}
	b.WriteString(m.styles.Normal.Render("Editing " + editing))
	if m.opts.DarkFirst {
		b.WriteString(m.styles.Subtle.Render("  (dark first)"))
	}
	b.WriteString("\n")

	lv := *m.levels()
	for a := axis(0); a < axisCount; a++ {
		v := [axisCount]int{lv.Saturation, lv.Contrast, lv.Brightness}[a]
		line := fmt.Sprintf("  %-10s %s %+d", a, levelBar(v), v)
		if a == m.axis {
			b.WriteString(m.styles.Selected.Render("> " + strings.TrimPrefix(line, "  ")))
		} else {
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderPreview(m.theme.Light, "light"))
	b.WriteString("\n")
	b.WriteString(RenderPreview(m.theme.Dark, "dark"))
	b.WriteString("\n")

	if m.status != "" {
		if m.isErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) updateTuningState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.axis = (m.axis + axisCount - 1) % axisCount
	case key.Matches(keyMsg, m.keys.Down):
		m.axis = (m.axis + 1) % axisCount
	case key.Matches(keyMsg, m.keys.Less):
		m.nudge(-1)
	case key.Matches(keyMsg, m.keys.More):
		m.nudge(1)
	case key.Matches(keyMsg, m.keys.Side):
		if m.splitDark {
			m.editing = m.editing.Other()
		}
	case key.Matches(keyMsg, m.keys.Split):
		m.splitDark = !m.splitDark
		if !m.splitDark {
			m.dark = m.light
			m.editing = theme.Light
		}
		m.regenerate()
	case key.Matches(keyMsg, m.keys.Flip):
		m.opts.DarkFirst = !m.opts.DarkFirst
		m.regenerate()
	case key.Matches(keyMsg, m.keys.Harmony):
		m.state = StateSelectHarmony
		m.selectedConfig = 0
		for i, h := range m.harmonies {
			if h == m.opts.Mode {
				m.selectedConfig = i
			}
		}
	case key.Matches(keyMsg, m.keys.Reseed):
		m.opts.Seed = uuid.NewString()
		m.regenerate()
		m.setStatus("new seed", false)
	case key.Matches(keyMsg, m.keys.Save):
		if m.store == nil {
			m.setStatus("saving is not available", true)
			return m, nil
		}
		store, light, dark, split := m.store, m.light, m.dark, m.splitDark
		return m, func() tea.Msg {
			return savedMsg{err: store.SaveLevels(light, dark, split)}
		}
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
