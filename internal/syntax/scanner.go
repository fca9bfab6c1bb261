package syntax

import "unicode"

// Scan classifies text into a Stream in a single left-to-right pass.
// The scan is total: every character lands in exactly one non-tag
// block, so Stream.Text() round-trips the input. Scanning the same
// text twice yields the same stream.
//
// lang supplies the string/comment lexemes; with a nil lang only
// word/number/space/tab/endline/unknown blocks occur.
func Scan(text string, lang *Language) Stream {
	src := []rune(text)
	out := make(Stream, 0, len(src)/4+1)
	inLineComment := false
	inBlockComment := false

	i := 0
	for i < len(src) {
		r := src[i]

		if inBlockComment {
			if matchAt(src, i, lang.BlockCommentEnd) {
				out = append(out, Block{Unknown, lang.BlockCommentEnd})
				i += len([]rune(lang.BlockCommentEnd))
				out = append(out, Block{Type: CommentEnd})
				inBlockComment = false
				continue
			}
			i = scanPlain(src, i, &out)
			continue
		}
		if inLineComment {
			if r == '\n' {
				out = append(out, Block{Type: CommentEnd})
				out = append(out, Block{Endline, "\n"})
				inLineComment = false
				i++
				continue
			}
			i = scanPlain(src, i, &out)
			continue
		}

		switch {
		case r == '\n':
			out = append(out, Block{Endline, "\n"})
			i++
		case r == '\t' || isSpaceRune(r) || unicode.IsDigit(r) || isWordStart(r):
			i = scanPlain(src, i, &out)
		case lang != nil && matchAt(src, i, lang.LineComment):
			out = append(out, Block{Type: CommentBegin})
			out = append(out, Block{Unknown, lang.LineComment})
			i += len([]rune(lang.LineComment))
			inLineComment = true
		case lang != nil && matchAt(src, i, lang.BlockCommentBegin):
			out = append(out, Block{Type: CommentBegin})
			out = append(out, Block{Unknown, lang.BlockCommentBegin})
			i += len([]rune(lang.BlockCommentBegin))
			inBlockComment = true
		case lang.isStringDelimiter(r):
			j := i + 1
			for j < len(src) && src[j] != r {
				j++
			}
			if j < len(src) {
				j++ // include the closing quote
			}
			// An unterminated string runs to end of buffer.
			out = append(out, Block{String, string(src[i:j])})
			i = j
		default:
			out = append(out, Block{Unknown, string(r)})
			i++
		}
	}
	// A line or block comment open at end of buffer stays open: no
	// closing tag is emitted.
	return out
}

// scanPlain consumes one whitespace/word/number/unknown token starting
// at i and appends it to out. It never recognizes string or comment
// lexemes, which is what makes it safe to use inside comment regions.
func scanPlain(src []rune, i int, out *Stream) int {
	r := src[i]
	switch {
	case r == '\n':
		*out = append(*out, Block{Endline, "\n"})
		return i + 1
	case r == '\t':
		j := i
		for j < len(src) && src[j] == '\t' {
			j++
		}
		*out = append(*out, Block{Tab, string(src[i:j])})
		return j
	case isSpaceRune(r):
		j := i
		for j < len(src) && isSpaceRune(src[j]) {
			j++
		}
		*out = append(*out, Block{Space, string(src[i:j])})
		return j
	case unicode.IsDigit(r):
		j := i
		for j < len(src) && (unicode.IsDigit(src[j]) || src[j] == '.') {
			j++
		}
		*out = append(*out, Block{Number, string(src[i:j])})
		return j
	case isWordStart(r):
		j := i
		for j < len(src) && isWordRune(src[j]) {
			j++
		}
		*out = append(*out, Block{Word, string(src[i:j])})
		return j
	default:
		*out = append(*out, Block{Unknown, string(r)})
		return i + 1
	}
}

// matchAt reports whether the non-empty lexeme occurs at src[i:].
func matchAt(src []rune, i int, lexeme string) bool {
	if lexeme == "" {
		return false
	}
	for _, lr := range lexeme {
		if i >= len(src) || src[i] != lr {
			return false
		}
		i++
	}
	return true
}

func isSpaceRune(r rune) bool {
	return r != '\n' && r != '\t' && unicode.IsSpace(r)
}

func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
