package bubbletea

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
)

// Card is a renderable element in the conversation list.
// Unlike tea.Model, View takes a width parameter so the list controls
// layout and cards are testable in isolation.
type Card interface {
	Update(tea.Msg) (Card, tea.Cmd)
	View(width int) string
}

// Expandable is implemented by cards that can be expanded and collapsed.
type Expandable interface {
	Expanded() bool
}

// CardFunc creates the card for a message. The list calls it whenever a
// message enters the materialized window.
type CardFunc func(convo.Message) Card

// ToggleMsg tells an expandable card to toggle its expansion state.
// Sent by the list when the user activates the focused card.
type ToggleMsg struct{}

// TapMsg is a mouse press on a card. X is relative to the card's left edge.
type TapMsg struct {
	X int
}

// FrameMsg advances the animations of the card with the matching ID.
type FrameMsg struct {
	ID  int
	tag int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}
