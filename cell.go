package ionic

import "strings"

// Cell is one normalized table cell.
type Cell struct {
	// Text has CRLF line endings converted to LF and trailing whitespace
	// removed.
	Text string
	// DesiredWidth is the length of the longest line of Text.
	DesiredWidth int
	// Lines is the number of hard lines in Text.
	Lines int
	Color Color
	Align Alignment
}

func newCell(text string, opts Options) Cell {
	text = TrimRight(NormalizeNewlines(text))
	lines, width := Measure(text)
	return Cell{
		Text:         text,
		DesiredWidth: width,
		Lines:        lines,
		Color:        opts.TextColor,
		Align:        opts.Alignment,
	}
}

// NormalizeNewlines converts "\r\n" to "\n" and drops any other carriage
// returns.
func NormalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "")
}

// TrimRight removes trailing spaces, tabs and newlines.
func TrimRight(s string) string {
	return strings.TrimRight(s, " \t\n")
}

// Measure returns the number of hard lines in s and the length of the longest
// one. An empty string has no lines.
func Measure(s string) (lines, maxWidth int) {
	for pos := 0; pos < len(s); {
		next := strings.IndexByte(s[pos:], '\n')
		if next < 0 {
			next = len(s)
		} else {
			next += pos
		}
		lines++
		maxWidth = max(maxWidth, next-pos)
		pos = next + 1
	}
	return lines, maxWidth
}

// StyleOption patches the style of a cell.
type StyleOption func(*Cell)

// WithColor sets the text color of a cell.
func WithColor(c Color) StyleOption {
	return func(cell *Cell) { cell.Color = c }
}

// WithAlignment sets the alignment of a cell.
func WithAlignment(a Alignment) StyleOption {
	return func(cell *Cell) { cell.Align = a }
}
