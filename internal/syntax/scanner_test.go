package syntax

import (
	"reflect"
	"testing"
)

func testLang() *Language {
	return &Language{
		Name:              "test",
		StringDelimiters:  []rune{'"', '\''},
		LineComment:       "//",
		BlockCommentBegin: "/*",
		BlockCommentEnd:   "*/",
	}
}

func types(s Stream) []BlockType {
	out := make([]BlockType, len(s))
	for i, b := range s {
		out[i] = b.Type
	}
	return out
}

func TestScanClassification(t *testing.T) {
	s := Scan("foo 12.5 +bar", testLang())
	want := []Block{
		{Word, "foo"},
		{Space, " "},
		{Number, "12.5"},
		{Space, " "},
		{Unknown, "+"},
		{Word, "bar"},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

func TestScanRuns(t *testing.T) {
	s := Scan("a\t\t  b", testLang())
	want := []Block{
		{Word, "a"},
		{Tab, "\t\t"},
		{Space, "  "},
		{Word, "b"},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

func TestScanEndlineCarriesTerminator(t *testing.T) {
	s := Scan("a\nb", testLang())
	want := []Block{
		{Word, "a"},
		{Endline, "\n"},
		{Word, "b"},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

func TestScanString(t *testing.T) {
	s := Scan(`x = "a(b"`, testLang())
	want := []Block{
		{Word, "x"},
		{Space, " "},
		{Unknown, "="},
		{Space, " "},
		{String, `"a(b"`},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	s := Scan(`a "bc`, testLang())
	last := s[len(s)-1]
	if last.Type != String || last.Text != `"bc` {
		t.Fatalf("trailing block = %v, want unterminated string", last)
	}
}

func TestScanLineComment(t *testing.T) {
	s := Scan("a // b\nc", testLang())
	want := []Block{
		{Word, "a"},
		{Space, " "},
		{Type: CommentBegin},
		{Unknown, "//"},
		{Space, " "},
		{Word, "b"},
		{Type: CommentEnd},
		{Endline, "\n"},
		{Word, "c"},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

func TestScanBlockComment(t *testing.T) {
	s := Scan("a/* x\ny */b", testLang())
	want := []Block{
		{Word, "a"},
		{Type: CommentBegin},
		{Unknown, "/*"},
		{Space, " "},
		{Word, "x"},
		{Endline, "\n"},
		{Word, "y"},
		{Space, " "},
		{Unknown, "*/"},
		{Type: CommentEnd},
		{Word, "b"},
	}
	if !reflect.DeepEqual([]Block(s), want) {
		t.Fatalf("stream = %v, want %v", s, want)
	}
}

// A comment still open at end of buffer gets no closing tag.
func TestScanUnterminatedComment(t *testing.T) {
	s := Scan("a /* b", testLang())
	for _, b := range s {
		if b.Type == CommentEnd {
			t.Fatalf("unexpected comment-end tag in %v", s)
		}
	}
	s = Scan("a // b", testLang())
	for _, b := range s {
		if b.Type == CommentEnd {
			t.Fatalf("unexpected comment-end tag in %v", s)
		}
	}
}

func TestScanQuoteInsideCommentStaysPlain(t *testing.T) {
	s := Scan("// it's fine\nx = 1", testLang())
	for _, b := range s {
		if b.Type == String {
			t.Fatalf("string block inside comment: %v", s)
		}
	}
	if got := s.Text(); got != "// it's fine\nx = 1" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestScanCommentInsideStringStaysString(t *testing.T) {
	s := Scan(`"no // comment" x`, testLang())
	if s[0].Type != String || s[0].Text != `"no // comment"` {
		t.Fatalf("first block = %v, want whole string", s[0])
	}
}

func TestScanNilLanguage(t *testing.T) {
	s := Scan(`"ab" // c`, nil)
	for _, b := range s {
		if b.Type == String || b.Type.Tag() {
			t.Fatalf("lexical block %v without a language", b)
		}
	}
	if got := s.Text(); got != `"ab" // c` {
		t.Fatalf("round trip = %q", got)
	}
}

func TestScanRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain words only",
		"x = \"a(b\"\ny = 'c'\n",
		"/* multi\nline */ tail",
		"// unterminated comment",
		"\"unterminated string\n still inside",
		"nums 1.25 .5x 7\n\ttabbed\n",
		"mixed: (a[b{c}d]e) !@#$%",
	}
	for _, in := range inputs {
		s := Scan(in, testLang())
		if got := s.Text(); got != in {
			t.Fatalf("round trip of %q = %q", in, got)
		}
	}
}

func TestScanIdempotent(t *testing.T) {
	in := "a /* b */ \"c\" 1.5\n// d\n"
	first := Scan(in, testLang())
	second := Scan(in, testLang())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scans differ:\n%v\n%v", first, second)
	}
}
