package markdown

import (
	"regexp"
	"strings"

	"github.com/notionup/notionup/internal/blocks"
)

// Config controls parsing.
type Config struct {
	MaxTextChars int         // Per-block character ceiling; DefaultMaxChars when zero.
	Progress     func(n int) // Optional observer, advanced once per consumed line.
}

var numberedItemRe = regexp.MustCompile(`^\d+\.\s+`)

// Parse converts markdown text into an ordered block sequence. Lines are
// classified with a fixed precedence: blank, code fence, heading, bulleted
// item, numbered item, paragraph. Heading levels clamp to 3. List nesting is
// parsed but flattened to a single level. Paragraphs over the character
// ceiling are segmented at sentence boundaries into multiple blocks.
func Parse(text string, cfg Config) blocks.Document {
	if cfg.MaxTextChars <= 0 {
		cfg.MaxTextChars = DefaultMaxChars
	}
	advance := cfg.Progress
	if advance == nil {
		advance = func(int) {}
	}

	lines := strings.Split(text, "\n")
	var doc blocks.Document

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		i++
		advance(1)

		switch {
		case line == "":

		case strings.HasPrefix(line, "```"):
			// Consume interior lines verbatim until a closing fence or EOF.
			var body []string
			for i < len(lines) {
				next := lines[i]
				i++
				advance(1)
				if strings.HasPrefix(strings.TrimSpace(next), "```") {
					break
				}
				body = append(body, next)
			}
			doc = append(doc, blocks.Code{
				Text:     strings.Join(body, "\n"),
				Language: blocks.DefaultCodeLanguage,
			})

		case strings.HasPrefix(line, "#"):
			level := len(line) - len(strings.TrimLeft(line, "#"))
			if level > 3 {
				level = 3
			}
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			doc = append(doc, blocks.Heading{Level: level, Spans: Format(heading)})

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			item := strings.TrimSpace(line[2:])
			doc = append(doc, blocks.BulletListItem{Spans: Format(item)})

		case numberedItemRe.MatchString(line):
			item := numberedItemRe.ReplaceAllString(line, "")
			doc = append(doc, blocks.NumberedListItem{Spans: Format(item)})

		default:
			if len(line) > cfg.MaxTextChars {
				for _, part := range Segment(line, cfg.MaxTextChars) {
					doc = append(doc, blocks.Paragraph{Spans: Format(part)})
				}
			} else {
				doc = append(doc, blocks.Paragraph{Spans: Format(line)})
			}
		}
	}

	return doc
}
