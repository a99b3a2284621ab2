package blocks

// Style annotates a span of inline text.
type Style int

const (
	StyleNone Style = iota
	StyleBold
	StyleItalic
	StyleCode
)

// Span is a styled fragment of inline text within a block. Order within a
// block is left-to-right reading order.
type Span struct {
	Text  string
	Style Style
}

// Block is one structural unit of page content. The concrete types below are
// the full set of block kinds; consumers switch over them exhaustively.
type Block interface {
	// Type returns the service-side block type tag, e.g. "heading_2".
	Type() string
}

// Heading is a section heading. Level is 1..3.
type Heading struct {
	Level int
	Spans []Span
}

// BulletListItem is one unordered list entry. Nesting is not preserved.
type BulletListItem struct {
	Spans []Span
}

// NumberedListItem is one ordered list entry. The source numeral is
// discarded; renderers regenerate numbering.
type NumberedListItem struct {
	Spans []Span
}

// Paragraph is a run of plain prose.
type Paragraph struct {
	Spans []Span
}

// Code is a fenced code block. Language defaults to "plain text".
type Code struct {
	Text     string
	Language string
}

// DefaultCodeLanguage is used when a fence carries no language tag.
const DefaultCodeLanguage = "plain text"

func (h Heading) Type() string {
	switch h.Level {
	case 1:
		return "heading_1"
	case 3:
		return "heading_3"
	default:
		return "heading_2"
	}
}

func (BulletListItem) Type() string   { return "bulleted_list_item" }
func (NumberedListItem) Type() string { return "numbered_list_item" }
func (Paragraph) Type() string        { return "paragraph" }
func (Code) Type() string             { return "code" }

// Document is the ordered block sequence parsed from one source. It is built
// once per upload and never mutated afterwards; the splitter only slices it.
type Document []Block

// Chunk is a contiguous slice of a Document, bounded by the per-page block
// quota. Each chunk becomes one remote page.
type Chunk []Block

// PlainText concatenates the textual payload of a block's spans. For code
// blocks it is the raw text.
func PlainText(b Block) string {
	switch blk := b.(type) {
	case Heading:
		return spanText(blk.Spans)
	case BulletListItem:
		return spanText(blk.Spans)
	case NumberedListItem:
		return spanText(blk.Spans)
	case Paragraph:
		return spanText(blk.Spans)
	case Code:
		return blk.Text
	default:
		return ""
	}
}

func spanText(spans []Span) string {
	if len(spans) == 1 {
		return spans[0].Text
	}
	var out string
	for _, s := range spans {
		out += s.Text
	}
	return out
}
