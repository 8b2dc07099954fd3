package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to lay out the list.
func initModel(t *testing.T, conv convo.Conversation, cfg bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, conv, cfg, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, conv convo.Conversation, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(conv, convo.DefaultTheme(), cfg)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// messageCard returns the materialized MessageCard for message i.
func messageCard(t *testing.T, l bt.List, i int) *bt.MessageCard {
	t.Helper()
	c, ok := l.Card(i)
	require.True(t, ok, "card %d is not materialized", i)
	mc, ok := c.(*bt.MessageCard)
	require.True(t, ok)
	return mc
}

func newStyles() bt.Styles {
	return bt.NewStyles(convo.DefaultTheme())
}

// plainCards builds cards without animation for layout tests.
func plainCards(m convo.Message) bt.Card {
	return bt.NewPlainCard(m, newStyles())
}

func messageCards(m convo.Message) bt.Card {
	return bt.NewMessageCard(m, newStyles())
}

// numbered builds n messages authored "author-a", "author-b" and so on.
func numbered(n int) convo.Conversation {
	conv := make(convo.Conversation, n)
	for i := range conv {
		conv[i] = convo.Message{Author: author(i), Body: "body"}
	}
	return conv
}

func author(i int) string {
	return "author-" + string(rune('a'+i))
}
