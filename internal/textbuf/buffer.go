// Package textbuf implements the flat character buffer underneath an
// editor: a rune sequence with a derived line count, per-line tab
// expansion, and line arithmetic over absolute offsets.
//
// Positions are absolute rune offsets in [0, Len()]; the end-of-buffer
// position is valid and means "after the last character". Every
// position-taking operation clamps out-of-range input into that range
// instead of returning an error.
package textbuf

import "strings"

// Buffer is a mutable character sequence. Tabs are expanded to spaces
// on the way in, aligned to per-line tab stops of TabWidth columns, so
// the stored content never contains a raw tab unless the caller set
// the width to 1 and inserted spaces-only text anyway.
type Buffer struct {
	content   []rune
	lineCount int
	tabWidth  int
}

// New returns an empty buffer. A tab width below 1 is raised to 1.
func New(tabWidth int) *Buffer {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &Buffer{lineCount: 1, tabWidth: tabWidth}
}

// Len reports the number of characters in the buffer.
func (b *Buffer) Len() int { return len(b.content) }

// LineCount reports the number of lines: line terminators + 1.
func (b *Buffer) LineCount() int { return b.lineCount }

// TabWidth reports the configured tab width in columns.
func (b *Buffer) TabWidth() int { return b.tabWidth }

// SetTabWidth changes the tab width used for future insertions.
// Already-expanded content is left alone.
func (b *Buffer) SetTabWidth(w int) {
	if w < 1 {
		w = 1
	}
	b.tabWidth = w
}

// Text returns the whole buffer content as a string.
func (b *Buffer) Text() string { return string(b.content) }

// Slice returns the content of [start, end) after clamping and
// reordering the bounds.
func (b *Buffer) Slice(start, end int) string {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if end < start {
		start, end = end, start
	}
	return string(b.content[start:end])
}

// At returns the character at pos, or 0 for the end-of-buffer position.
func (b *Buffer) At(pos int) rune {
	pos = b.Clamp(pos)
	if pos == len(b.content) {
		return 0
	}
	return b.content[pos]
}

// Clamp forces pos into the valid range [0, Len()].
func (b *Buffer) Clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

// SetText replaces the whole buffer content. Embedded tabs are
// expanded against the configured tab width.
func (b *Buffer) SetText(s string) {
	b.content = expandTabs(s, 0, b.tabWidth)
	b.recount()
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.content = nil
	b.lineCount = 1
}

// Insert splices s into the buffer at pos and returns the position
// just past the inserted text. Tabs inside s expand to the next tab
// stop measured from the start of the line they end up on, so stops
// stay aligned no matter where the insertion lands.
func (b *Buffer) Insert(s string, pos int) int {
	pos = b.Clamp(pos)
	if s == "" {
		return pos
	}
	col := pos - b.LineStart(pos)
	ins := expandTabs(s, col, b.tabWidth)
	grown := make([]rune, 0, len(b.content)+len(ins))
	grown = append(grown, b.content[:pos]...)
	grown = append(grown, ins...)
	grown = append(grown, b.content[pos:]...)
	b.content = grown
	b.recount()
	return pos + len(ins)
}

// DeleteRange removes [start, end). Empty or inverted ranges are a
// no-op after reordering.
func (b *Buffer) DeleteRange(start, end int) {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if end < start {
		start, end = end, start
	}
	if start == end {
		return
	}
	b.content = append(b.content[:start], b.content[end:]...)
	b.recount()
}

// LineStart returns the offset of the first character of the line
// containing pos. A pos sitting on a terminator belongs to the line
// that terminator ends.
func (b *Buffer) LineStart(pos int) int {
	pos = b.Clamp(pos)
	for pos > 0 && b.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the offset of the terminator of the line containing
// pos, or Len() for the last line. The terminator itself, not past it.
func (b *Buffer) LineEnd(pos int) int {
	pos = b.Clamp(pos)
	for pos < len(b.content) && b.content[pos] != '\n' {
		pos++
	}
	return pos
}

// LineLength reports the character count of pos's line, excluding the
// terminator.
func (b *Buffer) LineLength(pos int) int {
	return b.LineEnd(pos) - b.LineStart(pos)
}

// NextLineLength reports the length of the line after pos's line, or 0
// when pos is on the last line.
func (b *Buffer) NextLineLength(pos int) int {
	end := b.LineEnd(pos)
	if end >= len(b.content) {
		return 0
	}
	return b.LineLength(end + 1)
}

// PreviousLineLength reports the length of the line before pos's line,
// or 0 when pos is on the first line.
func (b *Buffer) PreviousLineLength(pos int) int {
	start := b.LineStart(pos)
	if start == 0 {
		return 0
	}
	return b.LineLength(start - 1)
}

// LineNumber returns the 1-based line number of pos: terminators
// strictly before pos, plus one.
func (b *Buffer) LineNumber(pos int) int {
	pos = b.Clamp(pos)
	n := 1
	for i := 0; i < pos; i++ {
		if b.content[i] == '\n' {
			n++
		}
	}
	return n
}

// Column returns the 0-based column of pos within its line.
func (b *Buffer) Column(pos int) int {
	pos = b.Clamp(pos)
	return pos - b.LineStart(pos)
}

// OffsetAt returns the position of the given 0-based line and column.
// The line is clamped to the buffer's line range and the column to
// that line's length.
func (b *Buffer) OffsetAt(line, col int) int {
	if line < 0 {
		line = 0
	}
	start := 0
	for line > 0 && start < len(b.content) {
		if b.content[start] == '\n' {
			line--
		}
		start++
	}
	if line > 0 {
		// Ran past the last line; settle on it.
		start = b.LineStart(len(b.content))
	}
	if col < 0 {
		col = 0
	}
	if max := b.LineLength(start); col > max {
		col = max
	}
	return start + col
}

func (b *Buffer) recount() {
	b.lineCount = strings.Count(string(b.content), "\n") + 1
}

// expandTabs rewrites every tab in s into the spaces needed to reach
// the next tab stop, starting at column col. A terminator resets the
// column to zero.
func expandTabs(s string, col, tabWidth int) []rune {
	if tabWidth < 1 {
		tabWidth = 1
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\t':
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
		case '\n':
			out = append(out, r)
			col = 0
		default:
			out = append(out, r)
			col++
		}
	}
	return out
}
