package lattes

// Status reports the completion state of a supervision record. Records
// without an explicit status marker carry StatusUnknown; the extractor
// never silently defaults to completed.
type Status string

// Supervision statuses.
const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusUnknown    Status = "unknown"
)

// Record is one extracted production item. Ordinal and Raw are always
// present; every other field is populated only when it can be recovered
// with confidence, and is omitted from JSON output otherwise. Records are
// immutable after extraction: a corrected record is produced by re-running
// extraction, never by patching in place.
type Record struct {
	Ordinal     int      `json:"ordinal"`
	Raw         string   `json:"raw"`
	Category    Category `json:"category"`
	Fingerprint string   `json:"fingerprint"`

	Title       string `json:"title,omitempty"`
	Authors     string `json:"authors,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Year        *int   `json:"year,omitempty"`
	Month       string `json:"month,omitempty"`
	Volume      string `json:"volume,omitempty"`
	Pages       string `json:"pages,omitempty"`
	DOI         string `json:"doi,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	ISSN        string `json:"issn,omitempty"`
	Book        string `json:"book,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Edition     string `json:"edition,omitempty"`
	Event       string `json:"event,omitempty"`
	Location    string `json:"location,omitempty"`
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Status      Status `json:"status,omitempty"`

	Source *Provenance `json:"source,omitempty"`
}

// Validate returns an error if the record violates required-field
// invariants.
func (r *Record) Validate() error {
	if r.Ordinal < 1 {
		return Errorf(EINVALID, "record ordinal must be a positive integer, got %d", r.Ordinal)
	}
	if r.Raw == "" {
		return Errorf(EINVALID, "record raw text required")
	}
	if r.Fingerprint != "" && len(r.Fingerprint) != FingerprintLen {
		return Errorf(EINVALID, "record fingerprint must be %d hex characters", FingerprintLen)
	}
	return nil
}

// ItemBlock is the segmenter's handoff for one production item: the 1-based
// ordinal taken from the source numbering, the normalized raw text, and any
// structurally isolated sub-fields (a DOI link, the export's own sort-year
// attribute). Ordinals are assigned before any field extraction so that
// extraction failures cannot shift them.
type ItemBlock struct {
	Ordinal  int
	Category Category
	Text     string
	DOI      string
	SortYear int // 0 when the export carries no sort-year attribute
}

// Extractor recovers typed fields from one item block. Implementations
// apply ordered heuristics and resolve ambiguity by leaving fields absent;
// Extract never fails and never panics on any input.
type Extractor interface {
	// Category returns the production category this extractor is tuned for.
	Category() Category

	// Extract builds a Record from the item block. Ordinal, raw text, and
	// fingerprint are always populated; other fields only when recovered
	// with confidence.
	Extract(block ItemBlock) *Record
}

// ExtractorRegistry routes a category signal to the registered specific
// extractor, falling back to a generic extractor when none is registered.
// Lookup is pure: unknown categories never fail.
type ExtractorRegistry interface {
	// Get returns the extractor for a category, or the generic fallback
	// when no specific extractor is registered.
	Get(category Category) Extractor

	// GetForLabel resolves a section title or filename to a category and
	// returns the extractor for it.
	GetForLabel(label string) Extractor

	// Register adds an extractor for a category, replacing any previous one.
	Register(category Category, e Extractor)

	// List returns all categories with a registered specific extractor.
	List() []Category
}
