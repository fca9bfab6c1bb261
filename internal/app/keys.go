package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/maksvp/tekst/internal/clipboard"
	"github.com/maksvp/tekst/internal/editor"
	"github.com/maksvp/tekst/internal/logger"
)

// handleKey maps one key event onto an engine operation. It returns
// true when the user asked to quit.
func handleKey(ev *tcell.EventKey, ed *editor.Editor) bool {
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		return true

	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			ed.MoveWordLeft(extend)
		} else {
			ed.MoveLeft(extend)
		}
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			ed.MoveWordRight(extend)
		} else {
			ed.MoveRight(extend)
		}
	case tcell.KeyUp:
		ed.MoveUp(extend)
	case tcell.KeyDown:
		ed.MoveDown(extend)
	case tcell.KeyHome:
		ed.MoveLineStart(extend)
	case tcell.KeyEnd:
		ed.MoveLineEnd(extend)
	case tcell.KeyPgUp:
		for i := 0; i < pageSize(ed); i++ {
			ed.MoveUp(extend)
		}
	case tcell.KeyPgDn:
		for i := 0; i < pageSize(ed); i++ {
			ed.MoveDown(extend)
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.DeleteBackward()
	case tcell.KeyDelete:
		ed.DeleteForward()
	case tcell.KeyEnter:
		ed.InsertText("\n")
	case tcell.KeyTab:
		ed.InsertText("\t")

	case tcell.KeyCtrlA:
		ed.SelectAll()
	case tcell.KeyCtrlC:
		if text := ed.SelectedText(); text != "" {
			clipboard.Write(text)
		}
	case tcell.KeyCtrlX:
		if text := ed.SelectedText(); text != "" {
			clipboard.Write(text)
			ed.DeleteSelection()
		}
	case tcell.KeyCtrlV:
		if text := clipboard.Read(); text != "" {
			ed.InsertText(text)
		}

	case tcell.KeyCtrlN:
		ed.Settings().LineNumbers = !ed.Settings().LineNumbers
		logger.Debug("line numbers toggled", "on", ed.Settings().LineNumbers)
	case tcell.KeyCtrlW:
		ed.Settings().LineWrapping = !ed.Settings().LineWrapping
		logger.Debug("line wrapping toggled", "on", ed.Settings().LineWrapping)

	case tcell.KeyRune:
		ed.InsertText(string(ev.Rune()))
	}
	return false
}

// pageSize is how many lines a page motion covers: the window height,
// or one line before the first resize.
func pageSize(ed *editor.Editor) int {
	if rows := ed.Window().VisibleLines; rows > 0 {
		return rows
	}
	return 1
}
