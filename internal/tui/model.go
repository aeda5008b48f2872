package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

// LevelStore persists the tuned levels.
type LevelStore interface {
	SaveLevels(light, dark theme.Levels, splitDark bool) error
}

// Model is the interactive tuner. Every change regenerates the dual theme
// from scratch.
type Model struct {
	state  ApplicationState
	styles Styles
	keys   keyMap
	help   help.Model

	opts      theme.Options
	light     theme.Levels
	dark      theme.Levels
	splitDark bool
	editing   theme.Mode
	axis      axis

	harmonies      []theme.HarmonyMode
	selectedConfig int

	theme  theme.DualTheme
	status string
	isErr  bool
	store  LevelStore
	width  int
}

// NewModel starts the tuner from opts. store may be nil, in which case the
// save key reports that saving is unavailable.
func NewModel(opts theme.Options, store LevelStore) Model {
	m := Model{
		state:     StateTuning,
		styles:    NewStyles(),
		keys:      newKeyMap(),
		help:      help.New(),
		opts:      opts,
		light:     opts.Light.Clamped(),
		harmonies: theme.HarmonyModes(),
		store:     store,
	}
	m.dark = m.light
	if opts.Dark != nil {
		m.dark = opts.Dark.Clamped()
		m.splitDark = true
	}
	if m.opts.Seed == "" {
		m.opts.Seed = uuid.NewString()
	}
	m.regenerate()
	return m
}

type savedMsg struct {
	err error
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.setStatus("save failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("levels saved", false)
		}
		return m, nil
	}

	switch m.state {
	case StateSelectHarmony:
		return m.updateSelectHarmonyState(msg)
	default:
		return m.updateTuningState(msg)
	}
}

func (m Model) View() string {
	switch m.state {
	case StateSelectHarmony:
		return m.viewSelectHarmony()
	default:
		return m.viewTuning()
	}
}

// Theme returns the current generated theme.
func (m Model) Theme() theme.DualTheme { return m.theme }

// Options returns the options the current theme was generated from.
func (m Model) Options() theme.Options { return m.options() }

func (m Model) options() theme.Options {
	opts := m.opts
	opts.Light = m.light
	opts.Dark = nil
	if m.splitDark {
		dark := m.dark
		opts.Dark = &dark
	}
	return opts
}

func (m *Model) regenerate() {
	m.theme = theme.Generate(m.options())
	log.Debugf("tuner: %s seed=%s light=%+v dark=%+v", m.theme.Mode, m.theme.Seed, m.light, m.dark)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.isErr = isErr
}

// levels returns the level set being edited.
func (m *Model) levels() *theme.Levels {
	if m.splitDark && m.editing == theme.Dark {
		return &m.dark
	}
	return &m.light
}

func (m *Model) nudge(delta int) {
	lv := m.levels()
	switch m.axis {
	case axisSaturation:
		lv.Saturation += delta
	case axisContrast:
		lv.Contrast += delta
	case axisBrightness:
		lv.Brightness += delta
	}
	*lv = lv.Clamped()
	if !m.splitDark {
		m.dark = m.light
	}
	m.regenerate()
}
