// Package syntax classifies buffer content into a flat stream of typed
// text blocks and locates matching bracket pairs inside that stream.
// It is a lexical classifier, not a parser: no grammar, no tree, one
// left-to-right pass rebuilt in full after every buffer change.
package syntax

// BlockType identifies what kind of text a Block holds.
type BlockType int

const (
	Unknown BlockType = iota // single punctuation/operator/bracket character
	Word
	String
	Number
	Space
	Tab
	Endline
	CommentBegin // tag only, carries no text
	CommentEnd   // tag only, carries no text
)

func (t BlockType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Word:
		return "word"
	case String:
		return "string"
	case Number:
		return "number"
	case Space:
		return "space"
	case Tab:
		return "tab"
	case Endline:
		return "endline"
	case CommentBegin:
		return "comment-begin"
	case CommentEnd:
		return "comment-end"
	}
	return "invalid"
}

// Tag reports whether the type marks a lexical transition without
// consuming buffer text.
func (t BlockType) Tag() bool {
	return t == CommentBegin || t == CommentEnd
}

// Block is one classified run of buffer text, or a zero-width tag.
type Block struct {
	Type BlockType
	Text string
}

// Stream is the ordered block sequence covering a whole buffer.
// Concatenating the text of its blocks reproduces the buffer exactly;
// tag blocks contribute nothing.
type Stream []Block

// Text reassembles the buffer content the stream was scanned from.
func (s Stream) Text() string {
	n := 0
	for _, b := range s {
		n += len(b.Text)
	}
	out := make([]byte, 0, n)
	for _, b := range s {
		out = append(out, b.Text...)
	}
	return string(out)
}

// Len reports the number of characters covered by the stream.
func (s Stream) Len() int {
	n := 0
	for _, b := range s {
		n += len([]rune(b.Text))
	}
	return n
}
