// Package config loads the TOML configuration feeding the editor
// engine: display options, theme colors for the renderer, and the
// per-language lexical rule tables the tokenizer and bracket matcher
// consume.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	TabWidth     int  `toml:"tab-width"`
	LineWrapping bool `toml:"line-wrapping"`
	LineNumbers  bool `toml:"line-numbers"`
}

// Theme holds color names or #rrggbb values for every screen element
// the renderer draws. Empty entries fall back to the main foreground.
type Theme struct {
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	LineNumberForeground string `toml:"line-number-foreground"`
	SelectionForeground  string `toml:"selection-foreground"`
	SelectionBackground  string `toml:"selection-background"`
	MatchForeground      string `toml:"match-foreground"`
	MatchBackground      string `toml:"match-background"`
	SyntaxString         string `toml:"syntax-string"`
	SyntaxComment        string `toml:"syntax-comment"`
	SyntaxNumber         string `toml:"syntax-number"`
	SyntaxWord           string `toml:"syntax-word"`
	SyntaxPunctuation    string `toml:"syntax-punctuation"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:    4,
			LineNumbers: true,
		},
		Theme: Theme{
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			StatuslineForeground: "#B3B1AD",
			StatuslineBackground: "#0F1419",
			LineNumberForeground: "#3E4B59",
			SelectionForeground:  "#B3B1AD",
			SelectionBackground:  "#27425A",
			MatchForeground:      "#0A0E14",
			MatchBackground:      "#E6B450",
			SyntaxString:         "#BAE67E",
			SyntaxComment:        "#5C6773",
			SyntaxNumber:         "#D4BFFF",
			SyntaxWord:           "#B3B1AD",
			SyntaxPunctuation:    "#F29668",
		},
	}
}

// Load reads config.toml from the config directory. A missing file
// yields the defaults; present keys override them field by field.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), err
	}
	if cfg.Editor.TabWidth < 1 {
		cfg.Editor.TabWidth = Default().Editor.TabWidth
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TEKST_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tekst"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tekst"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
