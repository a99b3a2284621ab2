package markdown

import (
	"testing"

	"github.com/notionup/notionup/internal/blocks"
)

func TestFormat_PlainText(t *testing.T) {
	spans := Format("just some text")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "just some text" || spans[0].Style != blocks.StyleNone {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFormat_Bold(t *testing.T) {
	spans := Format("before **bold** after")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].Text != "before " || spans[0].Style != blocks.StyleNone {
		t.Errorf("span[0]: %+v", spans[0])
	}
	if spans[1].Text != "bold" || spans[1].Style != blocks.StyleBold {
		t.Errorf("span[1]: %+v", spans[1])
	}
	if spans[2].Text != " after" || spans[2].Style != blocks.StyleNone {
		t.Errorf("span[2]: %+v", spans[2])
	}
}

func TestFormat_ItalicAndCode(t *testing.T) {
	spans := Format("*it* and `code`")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[0].Text != "it" || spans[0].Style != blocks.StyleItalic {
		t.Errorf("span[0]: %+v", spans[0])
	}
	if spans[1].Text != " and " || spans[1].Style != blocks.StyleNone {
		t.Errorf("span[1]: %+v", spans[1])
	}
	if spans[2].Text != "code" || spans[2].Style != blocks.StyleCode {
		t.Errorf("span[2]: %+v", spans[2])
	}
}

func TestFormat_BoldBeatsItalic(t *testing.T) {
	// A doubled marker is bold, never two italics.
	spans := Format("**x**")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Style != blocks.StyleBold || spans[0].Text != "x" {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFormat_NoNesting(t *testing.T) {
	// First match wins: the bold span keeps the inner marker literally.
	spans := Format("**a *b* c**")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %+v", len(spans), spans)
	}
	if spans[0].Style != blocks.StyleBold || spans[0].Text != "a *b* c" {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFormat_UnmatchedDelimiterIsLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**unclosed bold", "**unclosed bold"},
		{"unclosed `code", "unclosed `code"},
		{"lone * star", "lone * star"},
	}
	for _, tc := range cases {
		spans := Format(tc.in)
		if len(spans) != 1 {
			t.Fatalf("%q: expected 1 span, got %d: %+v", tc.in, len(spans), spans)
		}
		if spans[0].Style != blocks.StyleNone || spans[0].Text != tc.want {
			t.Errorf("%q: unexpected span %+v", tc.in, spans[0])
		}
	}
}

func TestFormat_EmptyLineEmitsSingleEmptySpan(t *testing.T) {
	spans := Format("")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "" || spans[0].Style != blocks.StyleNone {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFormat_WhitespaceBetweenMarkersDropped(t *testing.T) {
	spans := Format("**a** **b**")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "a" || spans[1].Text != "b" {
		t.Errorf("unexpected spans: %+v", spans)
	}
}
