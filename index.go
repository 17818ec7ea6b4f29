package lattes

import "context"

// IndexOutcome classifies a record sighting against the fingerprint index.
type IndexOutcome string

// Index outcomes.
const (
	// IndexNew: the fingerprint has never been seen before.
	IndexNew IndexOutcome = "new"

	// IndexUnchanged: the fingerprint is known and its field hash matches,
	// so re-extraction produced the same fields.
	IndexUnchanged IndexOutcome = "unchanged"

	// IndexChanged: the fingerprint is known but the field hash moved.
	// Identical raw text now extracts to different fields, which signals
	// extractor drift worth reviewing.
	IndexChanged IndexOutcome = "changed"
)

// IndexEntry is one fingerprint's row in the index. Fingerprint is the
// identity key; FieldHash tracks the extracted fields for change detection
// and is never part of identity.
type IndexEntry struct {
	Fingerprint string
	SubjectID   string
	Category    Category
	FieldHash   string
	FirstSeen   string
	LastSeen    string
}

// FingerprintIndex tracks record fingerprints across batch runs for
// deduplication and change detection. The index is purely additive:
// extraction output never depends on what it contains.
type FingerprintIndex interface {
	// Observe records one sighting and classifies it. First/last-seen
	// timestamps come from the entry's LastSeen; on a repeat sighting the
	// stored field hash and last-seen move to the entry's values.
	Observe(ctx context.Context, entry IndexEntry) (IndexOutcome, error)

	// Find returns the stored entry for a fingerprint, or ENOTFOUND.
	Find(ctx context.Context, fingerprint string) (*IndexEntry, error)
}
