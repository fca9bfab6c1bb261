package syntax

// Match holds the buffer positions of a matched delimiter pair.
type Match struct {
	Open  int
	Close int
}

// cell is the per-character view of a stream the matcher scans over:
// the character, the type of the block it came from, and whether it
// lies inside a comment region.
type cell struct {
	r       rune
	typ     BlockType
	comment bool
}

func annotate(stream Stream) []cell {
	cells := make([]cell, 0, stream.Len())
	comment := false
	for _, b := range stream {
		switch b.Type {
		case CommentBegin:
			comment = true
			continue
		case CommentEnd:
			comment = false
			continue
		}
		for _, r := range b.Text {
			cells = append(cells, cell{r: r, typ: b.Type, comment: comment})
		}
	}
	return cells
}

// FindMatch locates the counterpart of the delimiter at or just before
// pos. An open delimiter triggers a forward scan, a close delimiter a
// backward scan, both keeping a nesting depth that must return to zero.
// Delimiters inside strings or comment regions are invisible to the
// scan. The second return is false when there is nothing to match.
//
// The result depends only on the stream and pos; nothing is cached
// between calls.
func FindMatch(stream Stream, pos int, lang *Language) (Match, bool) {
	cells := annotate(stream)

	p := pos
	pair, open, ok := delimiterAt(cells, p, lang)
	if !ok && pos > 0 {
		p = pos - 1
		pair, open, ok = delimiterAt(cells, p, lang)
	}
	if !ok {
		return Match{}, false
	}

	if open {
		depth := 1
		for i := p + 1; i < len(cells); i++ {
			c := cells[i]
			if c.typ != Unknown || c.comment {
				continue
			}
			switch c.r {
			case pair.Open:
				depth++
			case pair.Close:
				depth--
				if depth == 0 {
					return Match{Open: p, Close: i}, true
				}
			}
		}
		return Match{}, false
	}

	depth := 1
	for i := p - 1; i >= 0; i-- {
		c := cells[i]
		if c.typ != Unknown || c.comment {
			continue
		}
		switch c.r {
		case pair.Close:
			depth++
		case pair.Open:
			depth--
			if depth == 0 {
				return Match{Open: i, Close: p}, true
			}
		}
	}
	return Match{}, false
}

// delimiterAt reports the pair owning the character at p and whether
// it is the pair's open side. Characters outside Unknown blocks, or
// inside comment regions, are never delimiters.
func delimiterAt(cells []cell, p int, lang *Language) (Pair, bool, bool) {
	if p < 0 || p >= len(cells) {
		return Pair{}, false, false
	}
	c := cells[p]
	if c.typ != Unknown || c.comment {
		return Pair{}, false, false
	}
	for _, pair := range lang.pairs() {
		if c.r == pair.Open {
			return pair, true, true
		}
		if c.r == pair.Close {
			return pair, false, true
		}
	}
	return Pair{}, false, false
}
