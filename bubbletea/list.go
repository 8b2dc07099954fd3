package bubbletea

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

// DefaultBuffer is the number of off-screen cards kept materialized on each
// side of the visible window.
const DefaultBuffer = 2

const (
	gutterWidth = 2
	focusMarker = "▎ "
)

// List renders a conversation as a vertical list of cards. Cards are
// materialized lazily: only the visible window plus a buffer on each side
// exists at any time. A card that leaves that range is discarded together
// with its state and recreated fresh when it comes back.
//
// Scrolling is per card, except that a focused card taller than the screen
// scrolls line by line before the focus moves on.
type List struct {
	messages convo.Conversation
	newCard  CardFunc
	styles   Styles
	buffer   int

	cards  map[int]Card
	offset int // index of the first visible message
	skip   int // lines of the first visible card scrolled above the top
	focus  int // index of the focused message
	width  int
	height int

	rendered string
	rows     []int // message index of every rendered line
}

// NewList creates a List. A negative buffer is treated as zero.
func NewList(messages convo.Conversation, newCard CardFunc, styles Styles, buffer int) List {
	return List{
		messages: messages,
		newCard:  newCard,
		styles:   styles,
		buffer:   max(buffer, 0),
		cards:    make(map[int]Card),
	}
}

// Len returns the number of messages.
func (l List) Len() int { return len(l.messages) }

// Focus returns the index of the focused message.
func (l List) Focus() int { return l.focus }

// Offset returns the index of the first visible message.
func (l List) Offset() int { return l.offset }

// Skip returns how many lines of the first visible card are scrolled above
// the top of the screen.
func (l List) Skip() int { return l.skip }

// Card returns the materialized card for message i, if any.
func (l List) Card(i int) (Card, bool) {
	c, ok := l.cards[i]
	return c, ok
}

// Materialized returns the indices of all materialized cards in order.
func (l List) Materialized() []int {
	out := make([]int, 0, len(l.cards))
	for i := range l.cards {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Visible returns the indices of messages with at least one rendered line.
func (l List) Visible() []int {
	var out []int
	for _, i := range l.rows {
		if len(out) == 0 || out[len(out)-1] != i {
			out = append(out, i)
		}
	}
	return out
}

// SetSize sets the list's dimensions and re-lays it out.
func (l *List) SetSize(width, height int) {
	l.width, l.height = width, height
	l.scrollToFocus()
	l.layout()
}

// SetFocus focuses message i, clamped to the list bounds, and scrolls it
// into view.
func (l *List) SetFocus(i int) {
	if len(l.messages) == 0 {
		return
	}
	i = min(max(i, 0), len(l.messages)-1)
	if i != l.focus {
		l.skip = 0
	}
	l.focus = i
	l.scrollToFocus()
	l.layout()
}

// MoveFocus moves the focus by delta messages. While the focused card is
// taller than the screen, it scrolls through that card one line per step
// first.
func (l *List) MoveFocus(delta int) {
	if l.scrollWithin(delta) {
		return
	}
	l.SetFocus(l.focus + delta)
}

// Page moves by one screen in the given direction: through the focused
// card when it is taller than the screen, otherwise by one screen of
// messages.
func (l *List) Page(direction int) {
	lines := max(l.height-1, 1)
	if direction < 0 {
		lines = -lines
	}
	if l.scrollWithin(lines) {
		return
	}
	step := max(len(l.Visible())-1, 1)
	if direction < 0 {
		step = -step
	}
	l.SetFocus(l.focus + step)
}

// Home focuses the first message and shows its top.
func (l *List) Home() {
	l.skip = 0
	l.SetFocus(0)
}

// End focuses the last message and shows its bottom.
func (l *List) End() {
	if len(l.messages) == 0 {
		return
	}
	l.SetFocus(len(l.messages) - 1)
	l.skip = l.overflow()
	l.layout()
}

// ToggleFocused sends ToggleMsg to the focused card.
func (l *List) ToggleFocused() tea.Cmd {
	if len(l.messages) == 0 {
		return nil
	}
	cmd := l.send(l.focus, ToggleMsg{})
	l.scrollToFocus()
	l.layout()
	return cmd
}

// TapAt routes a mouse press at screen position (x, y) to the card rendered
// on row y and focuses it. It returns the tapped index, or -1, and whether
// the card's expansion changed.
func (l *List) TapAt(x, y int) (int, bool, tea.Cmd) {
	if y < 0 || y >= len(l.rows) {
		return -1, false, nil
	}
	i := l.rows[y]
	if i != l.focus {
		l.skip = 0
	}
	l.focus = i
	was := expanded(l.card(i))
	cmd := l.send(i, TapMsg{X: x - gutterWidth})
	l.scrollToFocus()
	l.layout()
	return i, expanded(l.cards[i]) != was, cmd
}

// Update forwards msg to every materialized card. Cards may change height
// while animating, so the focused card is scrolled back into view.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, c := range l.cards {
		updated, cmd := c.Update(msg)
		l.cards[i] = updated
		cmds = append(cmds, cmd)
	}
	l.scrollToFocus()
	l.layout()
	return tea.Batch(cmds...)
}

// View returns the last layout.
func (l List) View() string { return l.rendered }

func (l *List) send(i int, msg tea.Msg) tea.Cmd {
	updated, cmd := l.card(i).Update(msg)
	l.cards[i] = updated
	return cmd
}

func (l *List) card(i int) Card {
	c, ok := l.cards[i]
	if !ok {
		c = l.newCard(l.messages[i])
		l.cards[i] = c
	}
	return c
}

func (l *List) cardWidth() int {
	return max(l.width-gutterWidth, 1)
}

func (l *List) cardHeight(i int) int {
	return lipgloss.Height(l.card(i).View(l.cardWidth()))
}

// scrollToFocus adjusts the offset so the focused card is visible. A card
// taller than the screen becomes the first visible card and keeps its line
// scroll, clamped to its current height.
func (l *List) scrollToFocus() {
	if len(l.messages) == 0 {
		l.offset, l.focus, l.skip = 0, 0, 0
		return
	}
	l.focus = min(l.focus, len(l.messages)-1)
	if l.offset > l.focus {
		l.offset = l.focus
		l.skip = 0
	}
	for l.offset < l.focus {
		used := 0
		for i := l.offset; i <= l.focus; i++ {
			used += l.cardHeight(i)
		}
		if used <= l.height {
			break
		}
		l.offset++
		l.skip = 0
	}
	if l.offset != l.focus {
		l.skip = 0
		return
	}
	l.skip = min(max(l.skip, 0), l.overflow())
}

// overflow returns how many lines of the focused card do not fit on the
// screen.
func (l *List) overflow() int {
	if len(l.messages) == 0 {
		return 0
	}
	return max(l.cardHeight(l.focus)-l.height, 0)
}

// scrollWithin scrolls the focused card by delta lines when it is taller
// than the screen and has lines hidden in that direction.
func (l *List) scrollWithin(delta int) bool {
	if len(l.messages) == 0 || l.offset != l.focus {
		return false
	}
	over := l.overflow()
	skip := min(max(l.skip+delta, 0), over)
	if skip == l.skip {
		return false
	}
	l.skip = skip
	l.layout()
	return true
}

func expanded(c Card) bool {
	e, ok := c.(Expandable)
	return ok && e.Expanded()
}

func (l *List) layout() {
	l.rows = nil
	if len(l.messages) == 0 || l.height <= 0 {
		l.rendered = ""
		l.evict(0, -1)
		return
	}

	var lines []string
	last := l.offset
	for i := l.offset; i < len(l.messages) && len(lines) < l.height; i++ {
		gutter := strings.Repeat(" ", gutterWidth)
		if i == l.focus {
			gutter = l.styles.Focus.Render(focusMarker)
		}
		cardLines := strings.Split(l.card(i).View(l.cardWidth()), "\n")
		if i == l.offset {
			cardLines = cardLines[min(l.skip, len(cardLines)-1):]
		}
		for _, line := range cardLines {
			lines = append(lines, gutter+line)
			l.rows = append(l.rows, i)
		}
		last = i
	}
	if len(lines) > l.height {
		lines = lines[:l.height]
		l.rows = l.rows[:l.height]
	}
	l.rendered = strings.Join(lines, "\n")

	lo := max(l.offset-l.buffer, 0)
	hi := min(last+l.buffer, len(l.messages)-1)
	l.evict(lo, hi)
	for i := lo; i <= hi; i++ {
		l.card(i)
	}
}

// evict discards materialized cards outside [lo, hi].
func (l *List) evict(lo, hi int) {
	for i := range l.cards {
		if i < lo || i > hi {
			delete(l.cards, i)
		}
	}
}
