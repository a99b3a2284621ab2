package splitter

import (
	"regexp"

	"github.com/notionup/notionup/internal/blocks"
)

// DefaultQuota is the service's per-page block limit.
const DefaultQuota = 100

// defaultTurnMarker matches an uppercase label token followed by a colon,
// e.g. "SPEAKER 1:" in transcript-style documents.
var defaultTurnMarker = regexp.MustCompile(`\b[A-Z][A-Z0-9]+(?:\s+[A-Z0-9]+)*\s*:`)

// Config controls partitioning. The search window bounds are empirical and
// kept configurable rather than baked in.
type Config struct {
	Quota      int // Maximum blocks per chunk.
	Lookbehind int // How far before the ideal cut target to search.
	Lookahead  int // How far past the ideal cut target to search.

	// TurnMarker classifies a paragraph as the start of a labeled turn.
	TurnMarker *regexp.Regexp
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Quota:      DefaultQuota,
		Lookbehind: 50,
		Lookahead:  10,
		TurnMarker: defaultTurnMarker,
	}
}

func (c *Config) applyDefaults() {
	if c.Quota <= 0 {
		c.Quota = DefaultQuota
	}
	if c.Lookbehind <= 0 {
		c.Lookbehind = 50
	}
	if c.Lookahead <= 0 {
		c.Lookahead = 10
	}
	if c.TurnMarker == nil {
		c.TurnMarker = defaultTurnMarker
	}
}

// Partition divides a document into chunks of at most Quota blocks, choosing
// cut points that keep labeled turns attached to their content. Chunks
// concatenate back to the original sequence with no gaps or overlaps. A
// document already within the quota is one chunk.
func Partition(doc blocks.Document, cfg Config) []blocks.Chunk {
	cfg.applyDefaults()

	if len(doc) <= cfg.Quota {
		return []blocks.Chunk{blocks.Chunk(doc)}
	}

	var chunks []blocks.Chunk
	cursor := 0
	for len(doc)-cursor > cfg.Quota {
		cut := cfg.findCut(doc, cursor)
		chunks = append(chunks, blocks.Chunk(doc[cursor:cut]))
		cursor = cut
	}
	if cursor < len(doc) {
		chunks = append(chunks, blocks.Chunk(doc[cursor:]))
	}
	return chunks
}

// findCut picks the cut position for the chunk starting at cursor. It scans
// a bounded window around the ideal target (cursor+Quota) and keeps the safe
// position closest to the target, first found winning ties. When nothing in
// the window is safe, the cut falls back to the target verbatim, accepting a
// possible mid-turn split.
func (c Config) findCut(seq []blocks.Block, cursor int) int {
	target := cursor + c.Quota
	best := target

	lo := max(cursor, target-c.Lookbehind)
	hi := min(len(seq), target+c.Lookahead)
	for pos := lo; pos < hi; pos++ {
		if pos <= cursor {
			continue
		}
		if !c.IsSafeSplit(seq, pos) {
			continue
		}
		if abs(pos-target) < abs(best-target) {
			best = pos
		}
	}

	// A cut on content that directly precedes a turn marker moves back one,
	// so the marker opens the next chunk instead of closing this one.
	if best < len(seq) {
		if p, ok := seq[best].(blocks.Paragraph); ok && !c.isTurnMarker(p) &&
			best+1 < len(seq) && c.isTurnMarker(seq[best+1]) {
			best = max(cursor, best-1)
		}
	}

	// The quota is a hard service limit; a forward candidate cannot stand.
	if best > target {
		best = target
	}
	// The cursor must advance.
	if best <= cursor {
		best = target
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
