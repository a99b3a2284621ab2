package splitter

import "github.com/notionup/notionup/internal/blocks"

// IsSafeSplit reports whether cutting the sequence before position pos keeps
// labeled turns intact. Headings are natural section boundaries. A turn
// marker itself is never safe: the cut would separate it from its content.
// A paragraph immediately followed by a turn marker is a perfect cut, ending
// one turn right before the next begins. The last block is always safe.
// Everything else is conservatively unsafe.
func (c Config) IsSafeSplit(seq []blocks.Block, pos int) bool {
	if pos < 0 || pos >= len(seq) {
		return false
	}
	switch b := seq[pos].(type) {
	case blocks.Heading:
		return true
	case blocks.Paragraph:
		if c.isTurnMarker(b) {
			return false
		}
		if pos+1 < len(seq) && c.isTurnMarker(seq[pos+1]) {
			return true
		}
	}
	return pos == len(seq)-1
}

// isTurnMarker inspects a paragraph's leading span for the marker pattern.
func (c Config) isTurnMarker(b blocks.Block) bool {
	p, ok := b.(blocks.Paragraph)
	if !ok || len(p.Spans) == 0 {
		return false
	}
	return c.TurnMarker.MatchString(p.Spans[0].Text)
}
