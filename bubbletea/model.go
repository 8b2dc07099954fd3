package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
	"github.com/fwojciec/convo/harmonica"
	"github.com/rs/zerolog"
)

var _ tea.Model = Model{}

const helpHeight = 1

// Config holds optional TUI settings.
type Config struct {
	// Minimal renders PlainCard instead of MessageCard.
	Minimal bool
	// Buffer is the number of off-screen cards kept materialized on each
	// side of the visible window. DefaultBuffer suits most terminals.
	Buffer int
	// Logger receives debug events. Nil discards them.
	Logger *zerolog.Logger
	// Animation configures the card transitions.
	Animation []harmonica.Option
}

// Model is the Bubble Tea model for the conversation view.
type Model struct {
	// List is the conversation list. Exported for test access.
	List List

	keys   KeyMap
	help   help.Model
	styles Styles
	log    zerolog.Logger
	ready  bool
}

// New creates a new TUI Model rendering conversation with the given theme.
func New(conversation convo.Conversation, theme convo.Theme, cfg Config) Model {
	styles := NewStyles(theme)

	newCard := func(m convo.Message) Card {
		return NewMessageCard(m, styles, cfg.Animation...)
	}
	if cfg.Minimal {
		newCard = func(m convo.Message) Card {
			return NewPlainCard(m, styles)
		}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	return Model{
		List:   NewList(conversation, newCard, styles, cfg.Buffer),
		keys:   DefaultKeyMap(),
		help:   h,
		styles: styles,
		log:    log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.List.SetSize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		m.ready = true
		m.log.Debug().Int("width", msg.Width).Int("height", msg.Height).Msg("resize")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		return m, m.List.Update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.List.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.List.MoveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.List.MoveFocus(1)
	case key.Matches(msg, m.keys.PageUp):
		m.List.Page(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.List.Page(1)
	case key.Matches(msg, m.keys.Home):
		m.List.Home()
	case key.Matches(msg, m.keys.End):
		m.List.End()
	case key.Matches(msg, m.keys.Toggle):
		cmd := m.List.ToggleFocused()
		m.logToggle(m.List.Focus())
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.List.MoveFocus(-1)
	case tea.MouseButtonWheelDown:
		m.List.MoveFocus(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		i, toggled, cmd := m.List.TapAt(msg.X, msg.Y)
		if toggled {
			m.logToggle(i)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) logToggle(i int) {
	c, ok := m.List.Card(i)
	if !ok {
		return
	}
	e, ok := c.(Expandable)
	if !ok {
		return
	}
	m.log.Debug().Int("item", i).Bool("expanded", e.Expanded()).Msg("tap")
}
