// Package app is the terminal front end around the editing engine: it
// owns the tcell screen, decodes key events into engine operations,
// and renders the engine's read-only views. The engine itself never
// touches the screen, the clipboard, or the filesystem.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"

	"github.com/maksvp/tekst/internal/config"
	"github.com/maksvp/tekst/internal/editor"
	"github.com/maksvp/tekst/internal/logger"
)

// App is the top-level runtime for tekst.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()

	if err := logger.Init(os.Getenv("TEKST_DEBUG") != ""); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return fmt.Errorf("load languages: %w", err)
	}

	settings := &editor.Settings{
		TabWidth:     cfg.Editor.TabWidth,
		LineWrapping: cfg.Editor.LineWrapping,
		LineNumbers:  cfg.Editor.LineNumbers,
	}
	ed := editor.New(settings)

	var fileName string
	if len(a.args) > 0 {
		fileName = a.args[0]
		data, err := os.ReadFile(fileName)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		ed.SetText(string(data))
		if lang := detectLanguage(langs, fileName); lang != nil {
			ed.SetLanguage(lang.Spec())
			logger.Info("language detected", "file", fileName, "language", lang.Name)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	th := buildTheme(cfg.Theme)
	s.SetStyle(th.main)

	logger.Info("editor started", "file", fileName)
	for {
		render(s, ed, th, fileName)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if quit := handleKey(ev, ed); quit {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// detectLanguage resolves the lexical rule table for a file: first the
// configured file-type tables, then chroma's filename matcher mapped
// back onto the tables by language name.
func detectLanguage(langs config.Languages, path string) *config.Language {
	if lang := langs.Match(path); lang != nil {
		return lang
	}
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return nil
	}
	lc := lexer.Config()
	if lc == nil {
		return nil
	}
	return langs.ByName(lc.Name)
}
