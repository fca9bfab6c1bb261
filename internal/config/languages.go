package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/maksvp/tekst/internal/syntax"
)

// Language is the on-disk form of a lexical rule table: which
// characters quote strings, which lexemes open and close comments, and
// which delimiter pairs are eligible for bracket matching. Brackets
// are written as two-character strings, e.g. "()".
type Language struct {
	Name              string   `toml:"name"`
	FileTypes         []string `toml:"file-types"`
	StringDelimiters  []string `toml:"string-delimiters"`
	LineComment       string   `toml:"line-comment"`
	BlockCommentBegin string   `toml:"block-comment-begin"`
	BlockCommentEnd   string   `toml:"block-comment-end"`
	Brackets          []string `toml:"brackets"`
}

// Spec converts the table into the descriptor the syntax package
// consumes. Malformed bracket entries are dropped.
func (l *Language) Spec() *syntax.Language {
	spec := &syntax.Language{
		Name:              l.Name,
		LineComment:       l.LineComment,
		BlockCommentBegin: l.BlockCommentBegin,
		BlockCommentEnd:   l.BlockCommentEnd,
	}
	for _, d := range l.StringDelimiters {
		if r := []rune(d); len(r) == 1 {
			spec.StringDelimiters = append(spec.StringDelimiters, r[0])
		}
	}
	for _, b := range l.Brackets {
		if r := []rune(b); len(r) == 2 {
			spec.Brackets = append(spec.Brackets, syntax.Pair{Open: r[0], Close: r[1]})
		}
	}
	return spec
}

type Languages struct {
	Languages []Language `toml:"language"`
}

// Match finds the language whose file-types list covers the path's
// extension or base name.
func (l Languages) Match(path string) *Language {
	base := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	for i := range l.Languages {
		lang := &l.Languages[i]
		for _, ft := range lang.FileTypes {
			ft = strings.ToLower(ft)
			if ft == ext || ft == base || strings.TrimPrefix(ft, ".") == ext {
				return lang
			}
		}
	}
	return nil
}

// ByName finds a language by its display name, case-insensitively.
func (l Languages) ByName(name string) *Language {
	for i := range l.Languages {
		if strings.EqualFold(l.Languages[i].Name, name) {
			return &l.Languages[i]
		}
	}
	return nil
}

var defaultBrackets = []string{"()", "[]", "{}"}

// DefaultLanguages covers the rule tables shipped with the editor.
// User entries from languages.toml override same-named ones.
func DefaultLanguages() Languages {
	return Languages{Languages: []Language{
		{
			Name:              "Go",
			FileTypes:         []string{"go"},
			StringDelimiters:  []string{`"`, "'", "`"},
			LineComment:       "//",
			BlockCommentBegin: "/*",
			BlockCommentEnd:   "*/",
			Brackets:          defaultBrackets,
		},
		{
			Name:              "C",
			FileTypes:         []string{"c", "h", "cpp", "hpp", "cc"},
			StringDelimiters:  []string{`"`, "'"},
			LineComment:       "//",
			BlockCommentBegin: "/*",
			BlockCommentEnd:   "*/",
			Brackets:          defaultBrackets,
		},
		{
			Name:              "GLSL",
			FileTypes:         []string{"glsl", "vert", "frag", "geom"},
			StringDelimiters:  []string{`"`},
			LineComment:       "//",
			BlockCommentBegin: "/*",
			BlockCommentEnd:   "*/",
			Brackets:          defaultBrackets,
		},
		{
			Name:             "Python",
			FileTypes:        []string{"py"},
			StringDelimiters: []string{`"`, "'"},
			LineComment:      "#",
			Brackets:         defaultBrackets,
		},
		{
			Name:              "Lua",
			FileTypes:         []string{"lua"},
			StringDelimiters:  []string{`"`, "'"},
			LineComment:       "--",
			BlockCommentBegin: "--[[",
			BlockCommentEnd:   "]]",
			Brackets:          defaultBrackets,
		},
		{
			Name:             "Scheme",
			FileTypes:        []string{"scm", "ss", "sls"},
			StringDelimiters: []string{`"`},
			LineComment:      ";",
			Brackets:         []string{"()", "[]"},
		},
		{
			Name:             "TOML",
			FileTypes:        []string{"toml"},
			StringDelimiters: []string{`"`, "'"},
			LineComment:      "#",
			Brackets:         []string{"[]", "{}"},
		},
	}}
}

// LoadLanguages returns the default tables with user entries from
// languages.toml merged in; a user entry with a known name replaces
// the shipped one, new names are appended.
func LoadLanguages() (Languages, error) {
	langs := DefaultLanguages()
	path, err := LanguagesPath()
	if err != nil {
		return langs, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return langs, nil
		}
		return langs, err
	}
	var user Languages
	if _, err := toml.Decode(string(data), &user); err != nil {
		return langs, err
	}
	for _, u := range user.Languages {
		if existing := langs.ByName(u.Name); existing != nil {
			*existing = u
			continue
		}
		langs.Languages = append(langs.Languages, u)
	}
	return langs, nil
}

func LanguagesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "languages.toml"), nil
}
