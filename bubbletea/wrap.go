package bubbletea

import (
	"strings"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// tab matches lipgloss's default tab width.
const tab = "    "

// wrapLines performs word wrapping on text to fit within the given width.
// Explicit newlines and runs of spaces are kept; whitespace at a wrap point
// is dropped and words wider than width are split. The result always has at
// least one line.
func wrapLines(text string, width int) []string {
	paragraphs := strings.Split(strings.ReplaceAll(text, "\t", tab), "\n")
	if width <= 0 {
		return paragraphs
	}
	var lines []string
	for _, p := range paragraphs {
		lines = append(lines, wrapParagraph(p, width)...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	var (
		lines     []string
		line      strings.Builder
		lineWidth int
		spaces    int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range splitRuns(text) {
		if word[0] == ' ' {
			spaces += len(word)
			continue
		}
		gap := spaces
		spaces = 0
		w := uniseg.StringWidth(word)
		if lineWidth+gap+w > width {
			if lineWidth > 0 {
				flush()
			}
			gap = 0
		}
		for w > width {
			head := rw.Truncate(word, width, "")
			if head == "" {
				// Narrower than a single wide rune; let it overflow.
				break
			}
			lines = append(lines, head)
			word = word[len(head):]
			w = uniseg.StringWidth(word)
		}
		if word == "" {
			continue
		}
		line.WriteString(strings.Repeat(" ", gap))
		line.WriteString(word)
		lineWidth += gap + w
	}
	if spaces > 0 && lineWidth+spaces <= width {
		line.WriteString(strings.Repeat(" ", spaces))
		lineWidth += spaces
	}

	if lineWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitRuns splits s into alternating runs of spaces and non-spaces.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[start] == ' ') {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	return runs
}

// clip truncates s to a single line no wider than width.
func clip(s string, width int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if width <= 0 {
		return s
	}
	return rw.Truncate(s, width, "")
}
