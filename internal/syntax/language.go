package syntax

// Pair is one open/close delimiter pair eligible for bracket matching.
type Pair struct {
	Open  rune
	Close rune
}

// DefaultPairs are used when a language defines no bracket table.
var DefaultPairs = []Pair{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
}

// Language describes the lexical rules the scanner and matcher need:
// which characters quote strings, which lexemes open and close
// comments, and which delimiter pairs the matcher should pair up.
// A nil *Language degrades the scanner to whitespace/word/number
// classification and leaves the matcher with DefaultPairs.
type Language struct {
	Name              string
	StringDelimiters  []rune
	LineComment       string
	BlockCommentBegin string
	BlockCommentEnd   string
	Brackets          []Pair
}

func (l *Language) isStringDelimiter(r rune) bool {
	if l == nil {
		return false
	}
	for _, d := range l.StringDelimiters {
		if d == r {
			return true
		}
	}
	return false
}

// pairs returns the bracket table for the language, falling back to
// DefaultPairs.
func (l *Language) pairs() []Pair {
	if l == nil || len(l.Brackets) == 0 {
		return DefaultPairs
	}
	return l.Brackets
}
