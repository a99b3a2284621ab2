package blocks

import (
	"encoding/json"
	"fmt"
)

// Wire serialization for the Notion blocks API. Every block marshals to
//
//	{"object": "block", "type": "<tag>", "<tag>": {payload}}
//
// where the payload carries "rich_text" (and "language" for code blocks).

type richText struct {
	Type        string       `json:"type"`
	Text        textBody     `json:"text"`
	Annotations *annotations `json:"annotations,omitempty"`
}

type textBody struct {
	Content string `json:"content"`
}

type annotations struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
	Code   bool `json:"code,omitempty"`
}

type spannedPayload struct {
	RichText []richText `json:"rich_text"`
}

type codePayload struct {
	RichText []richText `json:"rich_text"`
	Language string     `json:"language"`
}

func toRichText(spans []Span) []richText {
	out := make([]richText, 0, len(spans))
	for _, s := range spans {
		rt := richText{Type: "text", Text: textBody{Content: s.Text}}
		switch s.Style {
		case StyleNone:
		case StyleBold:
			rt.Annotations = &annotations{Bold: true}
		case StyleItalic:
			rt.Annotations = &annotations{Italic: true}
		case StyleCode:
			rt.Annotations = &annotations{Code: true}
		}
		out = append(out, rt)
	}
	return out
}

func envelope(typ string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return json.Marshal(map[string]json.RawMessage{
		"object": json.RawMessage(`"block"`),
		"type":   json.RawMessage(`"` + typ + `"`),
		typ:      body,
	})
}

func (h Heading) MarshalJSON() ([]byte, error) {
	return envelope(h.Type(), spannedPayload{RichText: toRichText(h.Spans)})
}

func (b BulletListItem) MarshalJSON() ([]byte, error) {
	return envelope(b.Type(), spannedPayload{RichText: toRichText(b.Spans)})
}

func (n NumberedListItem) MarshalJSON() ([]byte, error) {
	return envelope(n.Type(), spannedPayload{RichText: toRichText(n.Spans)})
}

func (p Paragraph) MarshalJSON() ([]byte, error) {
	return envelope(p.Type(), spannedPayload{RichText: toRichText(p.Spans)})
}

func (c Code) MarshalJSON() ([]byte, error) {
	lang := c.Language
	if lang == "" {
		lang = DefaultCodeLanguage
	}
	payload := codePayload{
		RichText: []richText{{Type: "text", Text: textBody{Content: c.Text}}},
		Language: lang,
	}
	return envelope(c.Type(), payload)
}
