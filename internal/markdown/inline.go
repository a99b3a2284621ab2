package markdown

import (
	"strings"

	"github.com/notionup/notionup/internal/blocks"
)

// Format converts a single line's inline markup into styled spans. Markers
// are checked in priority order at each position: bold (**), italic (*),
// inline code (`). A marker with no closing delimiter later in the line is
// ordinary text. Nesting is not supported; the first match wins.
func Format(line string) []blocks.Span {
	var spans []blocks.Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() == 0 {
			return
		}
		text := plain.String()
		plain.Reset()
		// Whitespace between markers carries no content.
		if strings.TrimSpace(text) == "" {
			return
		}
		spans = append(spans, blocks.Span{Text: text})
	}

	i := 0
	for i < len(line) {
		switch {
		case strings.HasPrefix(line[i:], "**"):
			if end := strings.Index(line[i+2:], "**"); end >= 0 {
				flush()
				spans = append(spans, blocks.Span{Text: line[i+2 : i+2+end], Style: blocks.StyleBold})
				i += end + 4
				continue
			}
			plain.WriteByte(line[i])
			i++
		case line[i] == '*':
			if end := strings.Index(line[i+1:], "*"); end >= 0 {
				flush()
				spans = append(spans, blocks.Span{Text: line[i+1 : i+1+end], Style: blocks.StyleItalic})
				i += end + 2
				continue
			}
			plain.WriteByte('*')
			i++
		case line[i] == '`':
			if end := strings.Index(line[i+1:], "`"); end >= 0 {
				flush()
				spans = append(spans, blocks.Span{Text: line[i+1 : i+1+end], Style: blocks.StyleCode})
				i += end + 2
				continue
			}
			plain.WriteByte('`')
			i++
		default:
			plain.WriteByte(line[i])
			i++
		}
	}
	flush()

	// Every block carries at least one span, even for an empty line.
	if len(spans) == 0 {
		return []blocks.Span{{Text: line}}
	}
	return spans
}
