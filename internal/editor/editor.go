// Package editor ties the text buffer, tokenizer, and bracket matcher
// together behind the operation surface an input handler drives: cursor
// and selection movement, insertion and deletion, and the derived
// read-only views (token stream, matching pair, viewport window) a
// renderer consumes.
//
// Everything runs synchronously on the calling goroutine. A mutation
// re-derives the line index, re-scans the whole buffer, re-evaluates
// the bracket match, and re-aims the viewport before the call returns.
package editor

import (
	"github.com/maksvp/tekst/internal/syntax"
	"github.com/maksvp/tekst/internal/textbuf"
)

// Editor is a single editing session over one buffer.
type Editor struct {
	settings *Settings
	buf      *textbuf.Buffer
	lang     *syntax.Language

	stream  syntax.Stream
	match   syntax.Match
	matched bool

	pos        int
	desiredCol int // sticky target column for vertical motion

	selecting bool
	selAnchor int
	selStart  int
	selEnd    int

	view viewport
}

// New returns an empty editor. A nil settings gets the defaults; a
// shared non-nil settings is used as-is and never copied, so several
// editors can follow one configuration object.
func New(settings *Settings) *Editor {
	if settings == nil {
		settings = DefaultSettings()
	}
	e := &Editor{
		settings: settings,
		buf:      textbuf.New(settings.TabWidth),
	}
	e.rebuild()
	return e
}

// Settings exposes the live settings object.
func (e *Editor) Settings() *Settings { return e.settings }

// SetLanguage installs the lexical descriptor used for tokenization
// and bracket matching. A nil language degrades the scan to
// whitespace/word/number classification.
func (e *Editor) SetLanguage(l *syntax.Language) {
	e.lang = l
	e.rebuild()
}

// Language returns the installed lexical descriptor, possibly nil.
func (e *Editor) Language() *syntax.Language { return e.lang }

// SetText replaces the buffer content and resets cursor, selection,
// and scroll state to the start.
func (e *Editor) SetText(s string) {
	e.buf.SetTabWidth(e.settings.TabWidth)
	e.buf.SetText(s)
	e.pos = 0
	e.desiredCol = 0
	e.dropSelection()
	e.view.topLine = 0
	e.view.leftCol = 0
	e.rebuild()
}

// Text returns the whole buffer content.
func (e *Editor) Text() string { return e.buf.Text() }

// ClearText empties the buffer and resets position state.
func (e *Editor) ClearText() { e.SetText("") }

// NumCharacters reports the buffer length.
func (e *Editor) NumCharacters() int { return e.buf.Len() }

// NumLines reports the buffer's line count.
func (e *Editor) NumLines() int { return e.buf.LineCount() }

// InsertText splices s at the cursor, replacing the selection if one
// is active, and leaves the cursor after the inserted text. Tabs in s
// expand against the tab stops of the line they land on.
func (e *Editor) InsertText(s string) {
	if e.selecting {
		e.buf.DeleteRange(e.selStart, e.selEnd)
		e.pos = e.selStart
		e.dropSelection()
	}
	e.buf.SetTabWidth(e.settings.TabWidth)
	e.pos = e.buf.Insert(s, e.pos)
	e.desiredCol = e.buf.Column(e.pos)
	e.rebuild()
}

// DeleteBackward removes the selection if active, otherwise the
// character before the cursor.
func (e *Editor) DeleteBackward() {
	if e.selecting {
		e.DeleteSelection()
		return
	}
	if e.pos == 0 {
		return
	}
	e.buf.DeleteRange(e.pos-1, e.pos)
	e.pos--
	e.desiredCol = e.buf.Column(e.pos)
	e.rebuild()
}

// DeleteForward removes the selection if active, otherwise the
// character at the cursor.
func (e *Editor) DeleteForward() {
	if e.selecting {
		e.DeleteSelection()
		return
	}
	if e.pos >= e.buf.Len() {
		return
	}
	e.buf.DeleteRange(e.pos, e.pos+1)
	e.desiredCol = e.buf.Column(e.pos)
	e.rebuild()
}

// DeleteSelection removes the selected range and collapses the cursor
// to its start. Without an active selection it is a no-op.
func (e *Editor) DeleteSelection() {
	if !e.selecting {
		return
	}
	e.buf.DeleteRange(e.selStart, e.selEnd)
	e.pos = e.selStart
	e.dropSelection()
	e.desiredCol = e.buf.Column(e.pos)
	e.rebuild()
}

// MoveLeft moves the cursor one position back, crossing line
// boundaries. With extend the selection follows the cursor.
func (e *Editor) MoveLeft(extend bool) {
	e.beginMove(extend)
	if e.pos > 0 {
		e.pos--
	}
	e.desiredCol = e.buf.Column(e.pos)
	e.endMove(extend)
}

// MoveRight moves the cursor one position forward.
func (e *Editor) MoveRight(extend bool) {
	e.beginMove(extend)
	if e.pos < e.buf.Len() {
		e.pos++
	}
	e.desiredCol = e.buf.Column(e.pos)
	e.endMove(extend)
}

// MoveUp moves to the previous line, landing on the sticky column or
// the line end, whichever is nearer. The sticky column survives a trip
// through a short line.
func (e *Editor) MoveUp(extend bool) {
	e.beginMove(extend)
	start := e.buf.LineStart(e.pos)
	if start > 0 {
		col := min(e.desiredCol, e.buf.PreviousLineLength(e.pos))
		e.pos = e.buf.LineStart(start-1) + col
	}
	e.endMove(extend)
}

// MoveDown moves to the next line under the same sticky-column rule.
func (e *Editor) MoveDown(extend bool) {
	e.beginMove(extend)
	end := e.buf.LineEnd(e.pos)
	if end < e.buf.Len() {
		col := min(e.desiredCol, e.buf.NextLineLength(e.pos))
		e.pos = end + 1 + col
	}
	e.endMove(extend)
}

// MoveLineStart jumps to the first character of the current line.
func (e *Editor) MoveLineStart(extend bool) {
	e.beginMove(extend)
	e.pos = e.buf.LineStart(e.pos)
	e.desiredCol = 0
	e.endMove(extend)
}

// MoveLineEnd jumps past the last character of the current line.
func (e *Editor) MoveLineEnd(extend bool) {
	e.beginMove(extend)
	e.pos = e.buf.LineEnd(e.pos)
	e.desiredCol = e.buf.Column(e.pos)
	e.endMove(extend)
}

// MoveWordLeft moves to the start of the previous word, treating a
// punctuation character as a one-step word of its own.
func (e *Editor) MoveWordLeft(extend bool) {
	e.beginMove(extend)
	p := e.pos
	for p > 0 && isBlank(e.buf.At(p-1)) {
		p--
	}
	if p > 0 && isWordChar(e.buf.At(p-1)) {
		for p > 0 && isWordChar(e.buf.At(p-1)) {
			p--
		}
	} else if p > 0 {
		p--
	}
	e.pos = p
	e.desiredCol = e.buf.Column(e.pos)
	e.endMove(extend)
}

// MoveWordRight moves past the end of the current word and any blanks
// after it, landing on the next word or punctuation character.
func (e *Editor) MoveWordRight(extend bool) {
	e.beginMove(extend)
	p := e.pos
	if p < e.buf.Len() && isWordChar(e.buf.At(p)) {
		for p < e.buf.Len() && isWordChar(e.buf.At(p)) {
			p++
		}
	} else if p < e.buf.Len() && !isBlank(e.buf.At(p)) {
		p++
	}
	for p < e.buf.Len() && isBlank(e.buf.At(p)) {
		p++
	}
	e.pos = p
	e.desiredCol = e.buf.Column(e.pos)
	e.endMove(extend)
}

// Position returns the cursor's absolute buffer offset.
func (e *Editor) Position() int { return e.pos }

// SetPosition jumps the cursor to a clamped absolute offset and
// collapses any selection.
func (e *Editor) SetPosition(pos int) {
	e.pos = e.buf.Clamp(pos)
	e.desiredCol = e.buf.Column(e.pos)
	e.dropSelection()
	e.afterMove()
}

// SetLineAndColumn jumps to a 0-based line and column, clamping the
// column to the target line's length.
func (e *Editor) SetLineAndColumn(line, col int) {
	e.pos = e.buf.OffsetAt(line, col)
	e.desiredCol = e.buf.Column(e.pos)
	e.dropSelection()
	e.afterMove()
}

// CurrentLine returns the 0-based line the cursor is on.
func (e *Editor) CurrentLine() int { return e.buf.LineNumber(e.pos) - 1 }

// SetCurrentLine moves the cursor to the given 0-based line, keeping
// its column where the line allows.
func (e *Editor) SetCurrentLine(line int) {
	e.SetLineAndColumn(line, e.buf.Column(e.pos))
}

// CurrentColumn returns the cursor's 0-based column within its line.
func (e *Editor) CurrentColumn() int { return e.buf.Column(e.pos) }

// CurrentLineLength returns the length of the cursor's line, excluding
// the terminator.
func (e *Editor) CurrentLineLength() int { return e.buf.LineLength(e.pos) }

// Selection returns the ordered selection bounds and whether a
// selection is active. Inactive selections report the cursor position
// as both bounds.
func (e *Editor) Selection() (start, end int, active bool) {
	if !e.selecting {
		return e.pos, e.pos, false
	}
	return e.selStart, e.selEnd, true
}

// SelectedText returns the selected buffer slice, or "" when no
// selection is active.
func (e *Editor) SelectedText() string {
	if !e.selecting {
		return ""
	}
	return e.buf.Slice(e.selStart, e.selEnd)
}

// Select marks [start, end) as selected, reordering and clamping the
// bounds, and puts the cursor at the end.
func (e *Editor) Select(start, end int) {
	start = e.buf.Clamp(start)
	end = e.buf.Clamp(end)
	if end < start {
		start, end = end, start
	}
	e.selecting = true
	e.selAnchor = start
	e.selStart = start
	e.selEnd = end
	e.pos = end
	e.desiredCol = e.buf.Column(e.pos)
	e.afterMove()
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() { e.Select(0, e.buf.Len()) }

// Reset clears the selection and returns the cursor and scroll state
// to the start of the buffer. The text stays.
func (e *Editor) Reset() {
	e.dropSelection()
	e.pos = 0
	e.desiredCol = 0
	e.view.topLine = 0
	e.view.leftCol = 0
	e.afterMove()
}

// OffsetAt returns the clamped buffer position of a 0-based line and
// column.
func (e *Editor) OffsetAt(line, col int) int { return e.buf.OffsetAt(line, col) }

// LineLengthAt returns the length of the given 0-based line,
// excluding the terminator.
func (e *Editor) LineLengthAt(line int) int {
	return e.buf.LineLength(e.buf.OffsetAt(line, 0))
}

// LineAndColumn maps a buffer position to its 0-based line and column.
func (e *Editor) LineAndColumn(pos int) (line, col int) {
	pos = e.buf.Clamp(pos)
	return e.buf.LineNumber(pos) - 1, e.buf.Column(pos)
}

// Stream exposes the current token stream. Callers must treat it as
// read-only; it is replaced wholesale on the next mutation.
func (e *Editor) Stream() syntax.Stream { return e.stream }

// MatchingPair returns the bracket pair under the cursor, if any.
func (e *Editor) MatchingPair() (syntax.Match, bool) {
	return e.match, e.matched
}

// rebuild re-derives everything downstream of a buffer mutation:
// token stream, bracket match, and viewport.
func (e *Editor) rebuild() {
	e.stream = syntax.Scan(e.buf.Text(), e.lang)
	e.clampSelection()
	e.rematch()
	e.scrollToCursor()
}

func (e *Editor) beginMove(extend bool) {
	if extend && !e.selecting {
		e.selecting = true
		e.selAnchor = e.pos
	}
	if !extend {
		e.dropSelection()
	}
}

func (e *Editor) endMove(extend bool) {
	if extend {
		e.selStart, e.selEnd = order(e.selAnchor, e.pos)
	}
	e.afterMove()
}

// afterMove re-derives cursor-dependent state: bracket match and
// scroll position. The stream is untouched.
func (e *Editor) afterMove() {
	e.rematch()
	e.scrollToCursor()
}

func (e *Editor) rematch() {
	e.match, e.matched = syntax.FindMatch(e.stream, e.pos, e.lang)
}

func (e *Editor) dropSelection() {
	e.selecting = false
	e.selAnchor = e.pos
	e.selStart = e.pos
	e.selEnd = e.pos
}

// clampSelection keeps position and selection valid after the buffer
// shrinks.
func (e *Editor) clampSelection() {
	e.pos = e.buf.Clamp(e.pos)
	if !e.selecting {
		return
	}
	e.selAnchor = e.buf.Clamp(e.selAnchor)
	e.selStart, e.selEnd = order(e.buf.Clamp(e.selStart), e.buf.Clamp(e.selEnd))
}

func order(a, b int) (int, int) {
	if b < a {
		return b, a
	}
	return a, b
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
