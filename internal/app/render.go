package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/maksvp/tekst/internal/config"
	"github.com/maksvp/tekst/internal/editor"
	"github.com/maksvp/tekst/internal/syntax"
)

// theme carries the resolved tcell styles for every element drawn.
type theme struct {
	main       tcell.Style
	status     tcell.Style
	lineNumber tcell.Style
	selection  tcell.Style
	match      tcell.Style

	str         tcell.Style
	comment     tcell.Style
	number      tcell.Style
	word        tcell.Style
	punctuation tcell.Style
}

func buildTheme(t config.Theme) theme {
	mainFg := parseColor(t.Foreground, tcell.ColorWhite)
	mainBg := parseColor(t.Background, tcell.ColorBlack)
	base := tcell.StyleDefault.Foreground(mainFg).Background(mainBg)
	syn := func(name string) tcell.Style {
		return base.Foreground(parseColor(name, mainFg))
	}
	return theme{
		main: base,
		status: tcell.StyleDefault.
			Foreground(parseColor(t.StatuslineForeground, mainFg)).
			Background(parseColor(t.StatuslineBackground, mainBg)),
		lineNumber: base.Foreground(parseColor(t.LineNumberForeground, tcell.ColorGray)),
		selection: tcell.StyleDefault.
			Foreground(parseColor(t.SelectionForeground, mainFg)).
			Background(parseColor(t.SelectionBackground, mainBg)),
		match: tcell.StyleDefault.
			Foreground(parseColor(t.MatchForeground, mainBg)).
			Background(parseColor(t.MatchBackground, tcell.ColorYellow)),
		str:         syn(t.SyntaxString),
		comment:     syn(t.SyntaxComment),
		number:      syn(t.SyntaxNumber),
		word:        syn(t.SyntaxWord),
		punctuation: syn(t.SyntaxPunctuation),
	}
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// styleForOffsets flattens the token stream into one style per buffer
// offset. Comment region tags switch every covered character to the
// comment style regardless of its own block type.
func styleForOffsets(stream syntax.Stream, th theme) []tcell.Style {
	styles := make([]tcell.Style, 0, stream.Len())
	comment := false
	for _, b := range stream {
		switch b.Type {
		case syntax.CommentBegin:
			comment = true
			continue
		case syntax.CommentEnd:
			comment = false
			continue
		}
		style := th.main
		switch {
		case comment:
			style = th.comment
		case b.Type == syntax.String:
			style = th.str
		case b.Type == syntax.Number:
			style = th.number
		case b.Type == syntax.Word:
			style = th.word
		case b.Type == syntax.Unknown:
			style = th.punctuation
		}
		for range b.Text {
			styles = append(styles, style)
		}
	}
	return styles
}

// render draws the visible window, gutter, selection, bracket match,
// and status line, then places the hardware cursor.
func render(s tcell.Screen, ed *editor.Editor, th theme, fileName string) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	statusY := h - 1
	viewRows := h - 1
	if viewRows < 0 {
		viewRows = 0
	}
	ed.Resize(w, viewRows)

	s.SetStyle(th.main)
	s.Clear()

	win := ed.Window()
	text := []rune(ed.Text())
	styles := styleForOffsets(ed.Stream(), th)
	selStart, selEnd, selActive := ed.Selection()
	match, matched := ed.MatchingPair()

	styleAt := func(off int) tcell.Style {
		style := th.main
		if off < len(styles) {
			style = styles[off]
		}
		if selActive && off >= selStart && off < selEnd {
			style = th.selection
		}
		if matched && (off == match.Open || off == match.Close) {
			style = th.match
		}
		return style
	}

	y := 0
	for line := win.TopLine; line <= win.BottomLine && y < viewRows; line++ {
		drawGutter(s, th, win, line, y)
		start := ed.OffsetAt(line, 0)
		length := ed.LineLengthAt(line)
		if win.VisibleColumns <= 0 {
			y++
			continue
		}
		rows := 1
		for i := 0; i < length; i++ {
			off := start + i
			var cx, cy int
			if ed.Settings().LineWrapping {
				cy = y + i/win.VisibleColumns
				cx = win.GutterWidth + i%win.VisibleColumns
				if i/win.VisibleColumns+1 > rows {
					rows = i/win.VisibleColumns + 1
				}
			} else {
				if i < win.LeftColumn || i-win.LeftColumn >= win.VisibleColumns {
					continue
				}
				cy = y
				cx = win.GutterWidth + i - win.LeftColumn
			}
			if cy >= viewRows {
				break
			}
			s.SetContent(cx, cy, text[off], nil, styleAt(off))
		}
		// An empty selected line still shows one highlighted cell so
		// multi-line selections stay visible.
		if selActive && length == 0 && start >= selStart && start < selEnd {
			s.SetContent(win.GutterWidth, y, ' ', nil, th.selection)
		}
		y += rows
	}

	drawStatus(s, th, ed, fileName, w, statusY)

	if cx, cy, ok := ed.CellForPos(ed.Position()); ok && cy < viewRows {
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func drawGutter(s tcell.Screen, th theme, win editor.Window, line, y int) {
	if win.GutterWidth <= 0 {
		return
	}
	digits := win.GutterWidth - 1
	num := fmt.Sprintf("%*d", digits, line+1)
	for i, r := range num {
		s.SetContent(i, y, r, nil, th.lineNumber)
	}
	s.SetContent(digits, y, ' ', nil, th.lineNumber)
}

func drawStatus(s tcell.Screen, th theme, ed *editor.Editor, fileName string, w, y int) {
	if y < 0 {
		return
	}
	name := fileName
	if name == "" {
		name = "[no file]"
	}
	left := name
	if lang := ed.Language(); lang != nil {
		left += "  " + lang.Name
	}
	right := fmt.Sprintf("%d:%d", ed.CurrentLine()+1, ed.CurrentColumn()+1)
	if _, ok := ed.MatchingPair(); ok {
		right = "match  " + right
	}

	x := 0
	put := func(text string) {
		for _, r := range text {
			rw := runewidth.RuneWidth(r)
			if x+rw > w {
				return
			}
			s.SetContent(x, y, r, nil, th.status)
			x += rw
		}
	}
	put(left)
	pad := w - x - runewidth.StringWidth(right)
	for i := 0; i < pad; i++ {
		if x >= w {
			break
		}
		s.SetContent(x, y, ' ', nil, th.status)
		x++
	}
	put(right)
}
