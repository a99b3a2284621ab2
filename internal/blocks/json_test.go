package blocks

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, b Block) map[string]any {
	t.Helper()
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	return m
}

func richTextOf(t *testing.T, m map[string]any, typ string) []any {
	t.Helper()
	payload, ok := m[typ].(map[string]any)
	if !ok {
		t.Fatalf("missing %q payload in %v", typ, m)
	}
	rt, ok := payload["rich_text"].([]any)
	if !ok {
		t.Fatalf("missing rich_text in %v", payload)
	}
	return rt
}

func TestMarshal_ParagraphEnvelope(t *testing.T) {
	m := decode(t, Paragraph{Spans: []Span{{Text: "hello"}}})

	if m["object"] != "block" {
		t.Errorf("expected object=block, got %v", m["object"])
	}
	if m["type"] != "paragraph" {
		t.Errorf("expected type=paragraph, got %v", m["type"])
	}
	rt := richTextOf(t, m, "paragraph")
	if len(rt) != 1 {
		t.Fatalf("expected 1 rich text entry, got %d", len(rt))
	}
	entry := rt[0].(map[string]any)
	if entry["type"] != "text" {
		t.Errorf("expected rich text type=text, got %v", entry["type"])
	}
	text := entry["text"].(map[string]any)
	if text["content"] != "hello" {
		t.Errorf("expected content=hello, got %v", text["content"])
	}
	if _, present := entry["annotations"]; present {
		t.Error("expected annotations omitted for an unstyled span")
	}
}

func TestMarshal_HeadingTagsFollowLevel(t *testing.T) {
	for level, want := range map[int]string{1: "heading_1", 2: "heading_2", 3: "heading_3"} {
		m := decode(t, Heading{Level: level, Spans: []Span{{Text: "t"}}})
		if m["type"] != want {
			t.Errorf("level %d: expected type %q, got %v", level, want, m["type"])
		}
		if _, ok := m[want]; !ok {
			t.Errorf("level %d: expected payload keyed %q", level, want)
		}
	}
}

func TestMarshal_StyledSpanAnnotations(t *testing.T) {
	cases := []struct {
		style Style
		key   string
	}{
		{StyleBold, "bold"},
		{StyleItalic, "italic"},
		{StyleCode, "code"},
	}
	for _, tc := range cases {
		m := decode(t, Paragraph{Spans: []Span{{Text: "x", Style: tc.style}}})
		entry := richTextOf(t, m, "paragraph")[0].(map[string]any)
		ann, ok := entry["annotations"].(map[string]any)
		if !ok {
			t.Fatalf("style %v: expected annotations present", tc.style)
		}
		if ann[tc.key] != true {
			t.Errorf("style %v: expected %s=true, got %v", tc.style, tc.key, ann[tc.key])
		}
		if len(ann) != 1 {
			t.Errorf("style %v: expected only %s set, got %v", tc.style, tc.key, ann)
		}
	}
}

func TestMarshal_ListItems(t *testing.T) {
	bullet := decode(t, BulletListItem{Spans: []Span{{Text: "a"}}})
	if bullet["type"] != "bulleted_list_item" {
		t.Errorf("expected bulleted_list_item, got %v", bullet["type"])
	}
	numbered := decode(t, NumberedListItem{Spans: []Span{{Text: "b"}}})
	if numbered["type"] != "numbered_list_item" {
		t.Errorf("expected numbered_list_item, got %v", numbered["type"])
	}
}

func TestMarshal_CodeBlock(t *testing.T) {
	m := decode(t, Code{Text: "x=1\ny=2"})
	if m["type"] != "code" {
		t.Errorf("expected type=code, got %v", m["type"])
	}
	payload := m["code"].(map[string]any)
	if payload["language"] != DefaultCodeLanguage {
		t.Errorf("expected default language, got %v", payload["language"])
	}
	rt := payload["rich_text"].([]any)
	if len(rt) != 1 {
		t.Fatalf("expected 1 rich text entry, got %d", len(rt))
	}
	text := rt[0].(map[string]any)["text"].(map[string]any)
	if text["content"] != "x=1\ny=2" {
		t.Errorf("expected raw code preserved, got %v", text["content"])
	}
}

func TestMarshal_CodeBlockCustomLanguage(t *testing.T) {
	m := decode(t, Code{Text: "fmt.Println()", Language: "go"})
	payload := m["code"].(map[string]any)
	if payload["language"] != "go" {
		t.Errorf("expected language=go, got %v", payload["language"])
	}
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		block Block
		want  string
	}{
		{Heading{Level: 1, Spans: []Span{{Text: "Title"}}}, "Title"},
		{Paragraph{Spans: []Span{{Text: "a "}, {Text: "b", Style: StyleBold}}}, "a b"},
		{Code{Text: "x=1"}, "x=1"},
		{BulletListItem{}, ""},
	}
	for i, tc := range cases {
		if got := PlainText(tc.block); got != tc.want {
			t.Errorf("case %d: expected %q, got %q", i, tc.want, got)
		}
	}
}
