package ionic

import (
	"fmt"
	"strings"
)

// spaceChars are the word separators recognized by [LineBreak].
const spaceChars = " \t"

// Break describes one wrapped display line of a larger text.
//
// The half-open range [Start, End) is the text shown on the line. Next is the
// offset where scanning resumes; it skips the separator consumed by the break,
// so Next >= End always holds.
type Break struct {
	Start int
	End   int
	Next  int
}

// Len returns the number of columns the line occupies.
func (b Break) Len() int { return b.End - b.Start }

// Text returns the displayable slice of text for the break.
func (b Break) Text(text string) string { return text[b.Start:b.End] }

// LineBreak finds the best break for the single line text[start:end] at the
// given width.
//
// Words are delimited by runs of spaces and tabs and measured by their offset
// from start, so embedded runs of spaces count toward the width. The break is
// greedy: it ends after the last word that fits. A first word that is wider
// than width is returned whole rather than split. Whitespace trailing the
// returned line is excluded from End but consumed by Next.
//
// LineBreak panics if width < 1, if the range is out of bounds, or if the range
// is not terminated by a newline or the end of text. Newlines are hard breaks
// that the caller handles; see [WordWrap].
func LineBreak(text string, start, end, width int) Break {
	if width < 1 {
		panic(fmt.Sprintf("ionic: LineBreak width %d < 1", width))
	}
	if start < 0 || start > end || end > len(text) {
		panic(fmt.Sprintf("ionic: LineBreak range [%d,%d) out of bounds for length %d", start, end, len(text)))
	}
	if end < len(text) && text[end] != '\n' {
		panic(fmt.Sprintf("ionic: LineBreak range [%d,%d) not terminated by a newline", start, end))
	}
	if strings.IndexByte(text[start:end], '\n') >= 0 {
		panic(fmt.Sprintf("ionic: LineBreak range [%d,%d) contains a newline", start, end))
	}

	pos := start
	nextSpace := start
	prevSpace := start
	next := start
	prev := start

	for next < end {
		nextSpace = indexAny(text, pos, end, spaceChars)
		next = indexNotAny(text, nextSpace+1, end, spaceChars)

		if nextSpace-start > width {
			if prev == start {
				// Words wider than the column overflow instead of being split.
				return Break{Start: start, End: nextSpace, Next: next}
			}
			return Break{Start: start, End: prevSpace, Next: prev}
		}
		pos = next
		prev = next
		prevSpace = nextSpace
	}
	return Break{Start: start, End: nextSpace, Next: next}
}

// WordWrap splits text into display lines no wider than width, except where a
// single word is wider than width.
//
// Newlines are hard breaks. A newline at the start of a line produces an empty
// line of its own, so blank lines are preserved. The returned spans partition
// text: each span's Next is the following span's Start and the last span's
// Next is len(text).
//
// A width of 0 wraps at the width of the terminal (see [TerminalWidth]).
// WordWrap panics if width is negative.
func WordWrap(text string, width int) []Break {
	if width < 0 {
		panic(fmt.Sprintf("ionic: WordWrap width %d < 0", width))
	}
	if width == 0 {
		width = TerminalWidth()
	}

	var lines []Break
	start := 0
	for start < len(text) {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}

		if end == start {
			lines = append(lines, Break{Start: start, End: start, Next: start + 1})
			start = end + 1
			continue
		}

		bk := LineBreak(text, start, end, width)
		if bk.Next < len(text) && text[bk.Next] == '\n' {
			bk.Next++
		}
		lines = append(lines, bk)
		start = bk.Next
	}
	return lines
}

// Lines wraps text like [WordWrap] and returns the text of each line.
func Lines(text string, width int) []string {
	breaks := WordWrap(text, width)
	out := make([]string, len(breaks))
	for i, b := range breaks {
		out[i] = b.Text(text)
	}
	return out
}

// indexAny returns the offset of the first byte of text[from:to] found in
// chars, or to if there is none.
func indexAny(text string, from, to int, chars string) int {
	if from >= to {
		return to
	}
	if i := strings.IndexAny(text[from:to], chars); i >= 0 {
		return from + i
	}
	return to
}

// indexNotAny returns the offset of the first byte of text[from:to] not found
// in chars, or to if there is none.
func indexNotAny(text string, from, to int, chars string) int {
	for i := from; i < to; i++ {
		if strings.IndexByte(chars, text[i]) < 0 {
			return i
		}
	}
	return to
}
