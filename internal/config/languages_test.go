package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLanguageMatchByExtension(t *testing.T) {
	langs := DefaultLanguages()
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"/tmp/x/shader.frag", "GLSL"},
		{"script.PY", "Python"},
		{"init.lua", "Lua"},
		{"none.xyz", ""},
	}
	for _, tt := range tests {
		var got string
		if lang := langs.Match(tt.path); lang != nil {
			got = lang.Name
		}
		if got != tt.want {
			t.Fatalf("Match(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLanguageByName(t *testing.T) {
	langs := DefaultLanguages()
	if got := langs.ByName("scheme"); got == nil || got.Name != "Scheme" {
		t.Fatalf("ByName(scheme) = %v", got)
	}
	if got := langs.ByName("cobol"); got != nil {
		t.Fatalf("ByName(cobol) = %v, want nil", got)
	}
}

func TestLanguageSpecConversion(t *testing.T) {
	lang := Language{
		Name:              "Go",
		StringDelimiters:  []string{`"`, "``", "'"}, // middle entry malformed
		LineComment:       "//",
		BlockCommentBegin: "/*",
		BlockCommentEnd:   "*/",
		Brackets:          []string{"()", "x", "{}"},
	}
	spec := lang.Spec()
	if len(spec.StringDelimiters) != 2 {
		t.Fatalf("string delimiters = %v, want 2 entries", spec.StringDelimiters)
	}
	if len(spec.Brackets) != 2 {
		t.Fatalf("brackets = %v, want 2 pairs", spec.Brackets)
	}
	if spec.Brackets[0].Open != '(' || spec.Brackets[0].Close != ')' {
		t.Fatalf("first pair = %+v", spec.Brackets[0])
	}
	if spec.LineComment != "//" || spec.BlockCommentEnd != "*/" {
		t.Fatalf("comment lexemes lost: %+v", spec)
	}
}

func TestLoadLanguagesMergesUserEntries(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEKST_CONFIG_HOME", dir)
	content := `
[[language]]
name = "Go"
file-types = ["go"]
line-comment = "//"
brackets = ["()"]

[[language]]
name = "Ini"
file-types = ["ini"]
line-comment = ";"
`
	if err := os.WriteFile(filepath.Join(dir, "languages.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages: %v", err)
	}
	// The user's Go entry replaced the shipped one.
	goLang := langs.ByName("go")
	if goLang == nil || len(goLang.Brackets) != 1 {
		t.Fatalf("go entry = %+v, want user override", goLang)
	}
	if langs.ByName("ini") == nil {
		t.Fatal("user language not appended")
	}
	if langs.ByName("lua") == nil {
		t.Fatal("shipped languages lost in merge")
	}
}

func TestLoadLanguagesMissingFile(t *testing.T) {
	t.Setenv("TEKST_CONFIG_HOME", t.TempDir())
	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages: %v", err)
	}
	if len(langs.Languages) != len(DefaultLanguages().Languages) {
		t.Fatalf("languages = %d entries, want defaults", len(langs.Languages))
	}
}
