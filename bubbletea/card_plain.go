package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
)

var _ Card = (*PlainCard)(nil)

// PlainCard renders the author label above the full body text. It has no
// avatar and ignores toggles and taps.
type PlainCard struct {
	message convo.Message
	styles  Styles
}

// NewPlainCard creates a PlainCard.
func NewPlainCard(message convo.Message, styles Styles) *PlainCard {
	return &PlainCard{message: message, styles: styles}
}

func (c *PlainCard) Update(msg tea.Msg) (Card, tea.Cmd) {
	return c, nil
}

func (c *PlainCard) View(width int) string {
	author := c.styles.Author.Render(clip(c.message.Author, width))
	return author + "\n" + strings.Join(wrapLines(c.message.Body, width), "\n")
}
