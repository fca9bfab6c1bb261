package editor

import (
	"strings"
	"testing"
)

func newViewEditor(text string, cols, rows int) *Editor {
	e := New(nil)
	e.SetText(text)
	e.Resize(cols, rows)
	return e
}

func TestScrollFollowsCursorDown(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	e := newViewEditor(strings.Join(lines, "\n"), 20, 3)
	for i := 0; i < 5; i++ {
		e.MoveDown(false)
	}
	w := e.Window()
	// Cursor on line 5, window 3 rows: top must be 5-3+1.
	if w.TopLine != 3 {
		t.Fatalf("top line = %d, want 3", w.TopLine)
	}
	if w.BottomLine != 5 {
		t.Fatalf("bottom line = %d, want 5", w.BottomLine)
	}
	for i := 0; i < 5; i++ {
		e.MoveUp(false)
	}
	if w := e.Window(); w.TopLine != 0 {
		t.Fatalf("top line = %d after moving back up, want 0", w.TopLine)
	}
}

func TestScrollFollowsCursorRight(t *testing.T) {
	e := newViewEditor("abcdefghijklmnop", 5, 2)
	for i := 0; i < 8; i++ {
		e.MoveRight(false)
	}
	w := e.Window()
	// Column 8, five visible columns: left must be 8-5+1.
	if w.LeftColumn != 4 {
		t.Fatalf("left column = %d, want 4", w.LeftColumn)
	}
	for i := 0; i < 8; i++ {
		e.MoveLeft(false)
	}
	if w := e.Window(); w.LeftColumn != 0 {
		t.Fatalf("left column = %d after moving back, want 0", w.LeftColumn)
	}
}

func TestWrappingDisablesHorizontalScroll(t *testing.T) {
	e := newViewEditor("abcdefghijklmnop", 5, 4)
	e.Settings().LineWrapping = true
	for i := 0; i < 12; i++ {
		e.MoveRight(false)
	}
	w := e.Window()
	if w.LeftColumn != 0 {
		t.Fatalf("left column = %d with wrapping, want 0", w.LeftColumn)
	}
	// 16 characters over 5 columns fold into 4 sub-rows.
	if w.DisplayedRows != 4 {
		t.Fatalf("displayed rows = %d, want 4", w.DisplayedRows)
	}
	if w.BottomLine != 0 {
		t.Fatalf("bottom line = %d, want 0", w.BottomLine)
	}
}

func TestWrappedSubRowsLimitWindow(t *testing.T) {
	// First line needs 3 sub-rows, so only one more line fits in 4.
	e := newViewEditor("abcdefghijkl\nshort\nthird", 5, 4)
	e.Settings().LineWrapping = true
	w := e.Window()
	if w.BottomLine != 1 {
		t.Fatalf("bottom line = %d, want 1", w.BottomLine)
	}
	if w.DisplayedRows != 4 {
		t.Fatalf("displayed rows = %d, want 4", w.DisplayedRows)
	}
}

func TestGutterWidth(t *testing.T) {
	e := newViewEditor("a\nb\nc", 10, 5)
	if got := e.GutterWidth(); got != 0 {
		t.Fatalf("gutter = %d with numbers off, want 0", got)
	}
	e.Settings().LineNumbers = true
	if got := e.GutterWidth(); got != 2 {
		t.Fatalf("gutter = %d for 3 lines, want 2", got)
	}
	e.SetText(strings.Repeat("x\n", 11))
	if got := e.GutterWidth(); got != 3 {
		t.Fatalf("gutter = %d for 12 lines, want 3", got)
	}
}

func TestGutterReducesVisibleColumns(t *testing.T) {
	e := newViewEditor("a\nb\nc", 10, 5)
	e.Settings().LineNumbers = true
	w := e.Window()
	if w.GutterWidth != 2 {
		t.Fatalf("gutter = %d, want 2", w.GutterWidth)
	}
	if w.VisibleColumns != 8 {
		t.Fatalf("visible columns = %d, want 8", w.VisibleColumns)
	}
}

func TestCellForPos(t *testing.T) {
	e := newViewEditor("ab\ncd", 10, 5)
	row, col, ok := e.CellForPos(4)
	if !ok || row != 1 || col != 1 {
		t.Fatalf("cell = (%d, %d, %v), want (1, 1, true)", row, col, ok)
	}
	e.Settings().LineNumbers = true
	row, col, ok = e.CellForPos(4)
	if !ok || row != 1 || col != 3 {
		t.Fatalf("cell with gutter = (%d, %d, %v), want (1, 3, true)", row, col, ok)
	}
}

func TestCellForPosWrapped(t *testing.T) {
	e := newViewEditor("abcdefgh\nxy", 4, 6)
	e.Settings().LineWrapping = true
	// Offset 6 is the third character of the second sub-row.
	row, col, ok := e.CellForPos(6)
	if !ok || row != 1 || col != 2 {
		t.Fatalf("cell = (%d, %d, %v), want (1, 2, true)", row, col, ok)
	}
	// The second buffer line starts below both sub-rows.
	row, col, ok = e.CellForPos(9)
	if !ok || row != 2 || col != 0 {
		t.Fatalf("cell = (%d, %d, %v), want (2, 0, true)", row, col, ok)
	}
}

func TestIsLineWrapped(t *testing.T) {
	e := newViewEditor("abcdefgh\nxy", 4, 6)
	if e.IsLineWrapped(0) {
		t.Fatal("line wrapped with wrapping disabled")
	}
	e.Settings().LineWrapping = true
	if !e.IsLineWrapped(0) {
		t.Fatal("long line not wrapped")
	}
	if e.IsLineWrapped(1) {
		t.Fatal("short line wrapped")
	}
}

func TestCellForPosScrolledOut(t *testing.T) {
	e := newViewEditor("a\nb\nc\nd\ne\nf", 10, 2)
	e.SetLineAndColumn(5, 0)
	if _, _, ok := e.CellForPos(0); ok {
		t.Fatal("position above the window reported visible")
	}
}
