package markdown

import "strings"

// DefaultMaxChars is the per-block character ceiling. The service rejects
// rich text over 2000 characters; 1800 leaves a margin.
const DefaultMaxChars = 1800

var sentenceEndings = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// Segment splits oversized text into pieces of at most maxChars characters,
// cutting at sentence boundaries. Text within the limit passes through
// unchanged. A single sentence longer than maxChars is emitted whole; that
// overflow is accepted rather than subdivided mid-sentence.
func Segment(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if len(text) <= maxChars {
		return []string{text}
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		// No terminator anywhere: the whole text is one "sentence".
		sentences = []string{text}
	}

	// Greedily pack sentences into chunks, +1 for the joining space.
	var chunks []string
	var current string
	for _, sent := range sentences {
		if len(current)+len(sent)+1 > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
				current = sent
			} else {
				chunks = append(chunks, sent)
			}
			continue
		}
		if current == "" {
			current = sent
		} else {
			current += " " + sent
		}
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return chunks
}

// splitSentences scans left to right for sentence terminators and returns
// the trimmed fragments between them, including the trailing remainder.
func splitSentences(text string) []string {
	var sentences []string
	cur := 0
	for i := 0; i < len(text)-1; i++ {
		for _, ending := range sentenceEndings {
			if !strings.HasPrefix(text[i:], ending) {
				continue
			}
			if s := strings.TrimSpace(text[cur : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			cur = i + len(ending)
			break
		}
	}
	if cur < len(text) {
		if s := strings.TrimSpace(text[cur:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
