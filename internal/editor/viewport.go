package editor

import "strconv"

// viewport is the scroll state: which line is at the top of the text
// field and which column is at its left edge, plus the field extent in
// character cells. The extent comes from the embedding application
// (pixel geometry and glyph size are its concern, not ours).
type viewport struct {
	topLine int
	leftCol int
	rows    int
	cols    int
}

// Window is the derived, read-only description of what is currently
// displayed. BottomLine is the last buffer line at least partially
// visible; with wrapping enabled a long line occupies several display
// rows, so DisplayedRows can exceed BottomLine-TopLine+1.
type Window struct {
	TopLine        int
	BottomLine     int
	LeftColumn     int
	VisibleLines   int
	VisibleColumns int
	GutterWidth    int
	DisplayedRows  int
}

// Resize sets the visible extent in character cells and re-aims the
// window at the cursor.
func (e *Editor) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	e.view.cols = cols
	e.view.rows = rows
	e.scrollToCursor()
}

// GutterWidth returns the line-number gutter width in cells: one pad
// column plus the digit count of the last line number, or 0 with line
// numbers disabled.
func (e *Editor) GutterWidth() int {
	if !e.settings.LineNumbers {
		return 0
	}
	return 1 + len(strconv.Itoa(e.buf.LineCount()))
}

// textColumns is the extent left for buffer text once the gutter is
// taken out.
func (e *Editor) textColumns() int {
	cols := e.view.cols - e.GutterWidth()
	if cols < 0 {
		cols = 0
	}
	return cols
}

// scrollToCursor applies the minimal adjustment that keeps the cursor
// inside the visible window. Horizontal scrolling only exists when
// wrapping is off; wrapped lines fold into sub-rows instead.
func (e *Editor) scrollToCursor() {
	line := e.CurrentLine()
	if line < e.view.topLine {
		e.view.topLine = line
	}
	if e.view.rows > 0 && line >= e.view.topLine+e.view.rows {
		e.view.topLine = line - e.view.rows + 1
	}

	if e.settings.LineWrapping {
		e.view.leftCol = 0
		return
	}
	col := e.buf.Column(e.pos)
	if col < e.view.leftCol {
		e.view.leftCol = col
	}
	if tc := e.textColumns(); tc > 0 && col >= e.view.leftCol+tc {
		e.view.leftCol = col - tc + 1
	}
}

// subRows returns how many display rows the given 0-based line needs.
// Without wrapping every line is one row; with wrapping a line folds
// into ceil(length/textColumns) rows, and an empty line still takes
// one.
func (e *Editor) subRows(line int) int {
	if !e.settings.LineWrapping {
		return 1
	}
	tc := e.textColumns()
	if tc <= 0 {
		return 1
	}
	length := e.buf.LineLength(e.buf.OffsetAt(line, 0))
	rows := (length + tc - 1) / tc
	if rows < 1 {
		rows = 1
	}
	return rows
}

// IsLineWrapped reports whether the 0-based line folds into more than
// one display row under the current settings and extent.
func (e *Editor) IsLineWrapped(line int) bool {
	return e.subRows(line) > 1
}

// Window computes the currently displayed line/column range.
func (e *Editor) Window() Window {
	w := Window{
		TopLine:        e.view.topLine,
		BottomLine:     e.view.topLine,
		LeftColumn:     e.view.leftCol,
		VisibleLines:   e.view.rows,
		VisibleColumns: e.textColumns(),
		GutterWidth:    e.GutterWidth(),
	}
	last := e.buf.LineCount() - 1
	if w.TopLine > last {
		w.TopLine = last
		w.BottomLine = last
	}
	rows := 0
	line := w.TopLine
	for line <= last && rows < e.view.rows {
		need := e.subRows(line)
		if rows+need > e.view.rows {
			// Line is only partially visible; it still counts as
			// displayed and fills the remaining rows.
			w.BottomLine = line
			rows = e.view.rows
			break
		}
		rows += need
		w.BottomLine = line
		line++
	}
	w.DisplayedRows = rows
	return w
}

// CellForPos maps a buffer position to a display cell relative to the
// window origin: row within the text field and column including the
// gutter offset. The third return is false when the position is
// scrolled out of view.
func (e *Editor) CellForPos(pos int) (row, col int, visible bool) {
	pos = e.buf.Clamp(pos)
	line := e.buf.LineNumber(pos) - 1
	lineCol := e.buf.Column(pos)
	if line < e.view.topLine {
		return 0, 0, false
	}

	if !e.settings.LineWrapping {
		row = line - e.view.topLine
		col = lineCol - e.view.leftCol
		if e.view.rows > 0 && row >= e.view.rows {
			return 0, 0, false
		}
		if col < 0 || (e.textColumns() > 0 && col >= e.textColumns()) {
			return 0, 0, false
		}
		return row, col + e.GutterWidth(), true
	}

	tc := e.textColumns()
	if tc <= 0 {
		return 0, 0, false
	}
	row = 0
	for l := e.view.topLine; l < line; l++ {
		row += e.subRows(l)
	}
	row += lineCol / tc
	col = lineCol % tc
	if e.view.rows > 0 && row >= e.view.rows {
		return 0, 0, false
	}
	return row, col + e.GutterWidth(), true
}
