package source

import (
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultTitle derives a page title for a document with no explicit title:
// the first heading in the markdown text, falling back to the file stem.
func DefaultTitle(markdown, path string) string {
	if t := firstHeading(markdown); t != "" {
		return t
	}
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return "Untitled"
}

func firstHeading(markdown string) string {
	src := []byte(markdown)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return strings.TrimSpace(string(headingText(h, src)))
		}
	}
	return ""
}

func headingText(n ast.Node, src []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf = append(buf, t.Value(src)...)
		} else {
			buf = append(buf, headingText(c, src)...)
		}
	}
	return buf
}
