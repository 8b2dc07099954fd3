package bubbletea

import (
	_ "embed"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/fwojciec/convo/harmonica"
)

// AvatarDescription describes the avatar for assistive tooling.
const AvatarDescription = "Contact profile picture"

//go:embed profile.txt
var profile string

var _ Card = (*MessageCard)(nil)

// MessageCard renders a message as an avatar beside an author label and an
// expandable body. Collapsed bodies show one line; expanding animates the
// surface color and the body height.
type MessageCard struct {
	id  int
	tag int

	message  convo.Message
	styles   Styles
	expanded bool

	surface harmonica.Color
	content harmonica.Color
	size    harmonica.Float
}

// NewMessageCard creates a collapsed MessageCard.
func NewMessageCard(message convo.Message, styles Styles, opts ...harmonica.Option) *MessageCard {
	return &MessageCard{
		id:      nextID(),
		message: message,
		styles:  styles,
		surface: harmonica.NewColor(styles.Surface, styles.Primary, opts...),
		content: harmonica.NewColor(styles.OnSurface, styles.OnPrimary, opts...),
		size:    harmonica.NewFloat(0, opts...),
	}
}

// ID returns the identifier FrameMsg values are routed by.
func (c *MessageCard) ID() int { return c.id }

// Message returns the rendered message.
func (c *MessageCard) Message() convo.Message { return c.message }

// Expanded reports the card's expansion state.
func (c *MessageCard) Expanded() bool { return c.expanded }

// Animating reports whether a transition is still in flight.
func (c *MessageCard) Animating() bool {
	return !c.surface.Settled() || !c.content.Settled() || !c.size.Settled()
}

// SurfaceColor returns the body background as #rrggbb.
func (c *MessageCard) SurfaceColor() string { return c.surface.Hex() }

func (c *MessageCard) Update(msg tea.Msg) (Card, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		return c, c.toggle()
	case TapMsg:
		// The avatar is decorative; only the author/body column reacts.
		if msg.X < c.columnOffset() {
			return c, nil
		}
		return c, c.toggle()
	case FrameMsg:
		if msg.ID != c.id || msg.tag != c.tag {
			return c, nil
		}
		animating := c.surface.Step()
		animating = c.content.Step() || animating
		animating = c.size.Step() || animating
		if !animating {
			return c, nil
		}
		return c, c.frame()
	}
	return c, nil
}

func (c *MessageCard) View(width int) string {
	avatar := c.styles.Avatar.Render(profile)
	colWidth := max(width-lipgloss.Width(avatar)-1, 1)
	textWidth := max(colWidth-c.styles.Body.GetHorizontalFrameSize(), 1)

	lines := wrapLines(c.message.Body, textWidth)
	lines = lines[:c.visibleLines(len(lines))]

	body := c.styles.Body.
		Background(lipgloss.Color(c.surface.Hex())).
		Foreground(lipgloss.Color(c.content.Hex())).
		Width(textWidth + c.styles.Body.GetHorizontalPadding()).
		Render(strings.Join(lines, "\n"))
	author := c.styles.Author.Render(clip(c.message.Author, colWidth))

	column := lipgloss.JoinVertical(lipgloss.Left, author, body)
	return lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", column)
}

func (c *MessageCard) toggle() tea.Cmd {
	c.expanded = !c.expanded
	c.surface.SetActive(c.expanded)
	c.content.SetActive(c.expanded)
	if c.expanded {
		c.size.SetTarget(1)
	} else {
		c.size.SetTarget(0)
	}
	// Frames scheduled for the previous transition become stale.
	c.tag++
	return c.frame()
}

func (c *MessageCard) frame() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.size.Interval(), func(time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}

// visibleLines maps the animated size onto a line count in [1, total].
func (c *MessageCard) visibleLines(total int) int {
	if total <= 1 {
		return total
	}
	n := 1 + int(math.Round(c.size.Value()*float64(total-1)))
	return min(max(n, 1), total)
}

func (c *MessageCard) columnOffset() int {
	return lipgloss.Width(c.styles.Avatar.Render(profile)) + 1
}
