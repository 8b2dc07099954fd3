package bubbletea_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m := bt.New(convo.SampleConversation(), convo.DefaultTheme(), bt.Config{})

	assert.Equal(t, "Initializing...", m.View())
	assert.Equal(t, len(convo.SampleConversation()), m.List.Len())
	assert.Nil(t, m.Init())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size lays out the list", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{Buffer: bt.DefaultBuffer})
		view := m.View()
		assert.Contains(t, view, "Colleague")
		assert.Contains(t, view, "Hey, take a look at Jetpack Compose, it's great!")
		assert.Contains(t, view, "quit")
	})

	t.Run("view fits the terminal height", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		assert.LessOrEqual(t, len(strings.Split(m.View(), "\n")), 24)
	})

	t.Run("down moves focus", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 1, m.List.Focus())
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
		assert.Equal(t, 0, m.List.Focus())
	})

	t.Run("end and home jump to the edges", func(t *testing.T) {
		t.Parallel()
		conv := convo.SampleConversation()
		m := initModel(t, conv, bt.Config{})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
		assert.Equal(t, len(conv)-1, m.List.Focus())
		assert.Contains(t, m.View(), conv[len(conv)-1].Body)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyHome})
		assert.Equal(t, 0, m.List.Focus())
	})

	t.Run("enter toggles the focused card", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(bt.Model)
		assert.NotNil(t, cmd)
		assert.True(t, messageCard(t, m.List, 0).Expanded())
		assert.False(t, messageCard(t, m.List, 1).Expanded())
	})

	t.Run("space toggles twice back to collapsed", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		m = updateModel(t, m, space)
		m = updateModel(t, m, space)
		assert.False(t, messageCard(t, m.List, 0).Expanded())
	})

	t.Run("left click toggles the card under the pointer", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		m = updateModel(t, m, tea.MouseMsg{
			X:      20,
			Y:      5,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		assert.Equal(t, 1, m.List.Focus())
		assert.True(t, messageCard(t, m.List, 1).Expanded())
	})

	t.Run("mouse release is ignored", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		m = updateModel(t, m, tea.MouseMsg{
			X:      20,
			Y:      1,
			Action: tea.MouseActionRelease,
			Button: tea.MouseButtonLeft,
		})
		assert.False(t, messageCard(t, m.List, 0).Expanded())
	})

	t.Run("expanded card taller than the terminal scrolls to its end", func(t *testing.T) {
		t.Parallel()
		conv := convo.Conversation{{Author: "Colleague", Body: tallBody(30)}}
		m := initModelWithSize(t, conv, bt.Config{}, 80, 12)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		bt.Settle(messageCard(t, m.List, 0))

		m = updateModel(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
		assert.Equal(t, 1, m.List.Skip())
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
		assert.Equal(t, 11, m.List.Skip())
		assert.NotContains(t, m.View(), "TAIL")

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnd})
		assert.Contains(t, m.View(), "TAIL")
		assert.Len(t, strings.Split(m.View(), "\n"), 12)

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyHome})
		assert.Contains(t, m.View(), "line00")
		assert.NotContains(t, m.View(), "TAIL")
	})

	t.Run("wheel moves focus", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		m = updateModel(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
		assert.Equal(t, 1, m.List.Focus())
		m = updateModel(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
		assert.Equal(t, 0, m.List.Focus())
	})

	t.Run("frame messages advance animations", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		card := messageCard(t, m.List, 0)
		_, cmd := m.Update(bt.Frame(card))
		assert.NotNil(t, cmd)
		assert.NotEqual(t, convo.DefaultTheme().Surface, card.SurfaceColor())
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("q quits", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.SampleConversation(), bt.Config{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("empty conversation renders only help", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, convo.Conversation{}, bt.Config{})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyDown})
		assert.Empty(t, m.List.Visible())
		assert.True(t, strings.HasPrefix(m.View(), "\n"))
	})

	t.Run("toggles are logged at debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		m := initModel(t, convo.SampleConversation(), bt.Config{Logger: &logger})
		updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Contains(t, buf.String(), `"message":"resize"`)
		assert.Contains(t, buf.String(), `"item":0`)
		assert.Contains(t, buf.String(), `"expanded":true`)
	})

	t.Run("click on the avatar is not logged as a toggle", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		m := initModel(t, convo.SampleConversation(), bt.Config{Logger: &logger})
		m = updateModel(t, m, tea.MouseMsg{
			X:      3,
			Y:      5,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		assert.Equal(t, 1, m.List.Focus())
		assert.False(t, messageCard(t, m.List, 1).Expanded())
		assert.NotContains(t, buf.String(), `"message":"tap"`)
	})
}

func TestModel_Minimal(t *testing.T) {
	t.Parallel()

	m := initModel(t, convo.MinimalConversation(), bt.Config{Minimal: true})
	view := m.View()
	assert.Equal(t, []int{0}, m.List.Visible())
	assert.Contains(t, view, "Android")
	assert.Contains(t, view, "Jetpack Compose")
	assert.NotContains(t, view, "╭")

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	c, ok := m.List.Card(0)
	require.True(t, ok)
	_, isExpandable := c.(bt.Expandable)
	assert.False(t, isExpandable)
	assert.Equal(t, view, m.View())
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	t.Run("sample conversation renders on start", func(t *testing.T) {
		t.Parallel()

		m := bt.New(convo.SampleConversation(), convo.DefaultTheme(), bt.Config{Buffer: bt.DefaultBuffer})
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(80, 24),
		)

		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("Colleague")) &&
				bytes.Contains(out, []byte("Hey, take a look at Jetpack Compose, it's great!"))
		}, teatest.WithDuration(5*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
		tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
	})

	t.Run("expanding reveals the rest of the body", func(t *testing.T) {
		t.Parallel()

		m := bt.New(convo.SampleConversation(), convo.DefaultTheme(), bt.Config{Buffer: bt.DefaultBuffer})
		tm := teatest.NewTestModel(t, m,
			teatest.WithInitialTermSize(80, 24),
		)

		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("I think Kotlin is my favorite programming language."))
		}, teatest.WithDuration(5*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyDown})
		tm.Send(tea.KeyMsg{Type: tea.KeyDown})
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte("It's so much fun!"))
		}, teatest.WithDuration(5*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

		fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
		final, ok := fm.(bt.Model)
		require.True(t, ok)
		assert.Equal(t, 2, final.List.Focus())
		assert.True(t, messageCard(t, final.List, 2).Expanded())
		assert.False(t, messageCard(t, final.List, 0).Expanded())
	})
}
