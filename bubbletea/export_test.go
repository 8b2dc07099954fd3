package bubbletea

// WrapLines exports wrapLines for testing.
func WrapLines(text string, width int) []string {
	return wrapLines(text, width)
}

// Clip exports clip for testing.
func Clip(s string, width int) string {
	return clip(s, width)
}

// Frame returns the FrameMsg the card's current transition is waiting for.
func Frame(c *MessageCard) FrameMsg {
	return FrameMsg{ID: c.id, tag: c.tag}
}

// Settle delivers frames to c until its animations rest and returns the
// number of frames delivered.
func Settle(c *MessageCard) int {
	n := 0
	for c.Animating() {
		c.Update(Frame(c))
		n++
	}
	return n
}
