package lattes

import "context"

// SchemaVersion is the version tag stamped on every output document and
// pinned by the canonical schema.
const SchemaVersion = "2.0.0"

// Subject identifies the researcher a document was extracted for.
type Subject struct {
	LattesID   string `json:"lattesId"`
	FullName   string `json:"fullName"`
	Slug       string `json:"slug"`
	LastUpdate string `json:"lastUpdate,omitempty"`
}

// Provenance records where, when, and from what a record was extracted.
type Provenance struct {
	File        string `json:"file"`
	SubjectID   string `json:"subjectId,omitempty"`
	Section     string `json:"section,omitempty"`
	ExtractedAt string `json:"extractedAt"`
}

// Section is a named, ordered group of records sharing one category. The
// declared count is the item count the source document itself reports for
// the section, kept for reconciliation; it may differ from len(Records)
// after year filtering. Sections with zero retained records are kept, not
// dropped.
type Section struct {
	Label         string    `json:"label"`
	Category      Category  `json:"category"`
	DeclaredCount int       `json:"declaredCount"`
	Records       []*Record `json:"records"`
}

// Filters describes the filter configuration applied to a document.
// An absent Years list means no year filter was applied.
type Filters struct {
	Years []int `json:"years,omitempty"`
}

// ParseMetadata is the per-document audit block: counts of retained items,
// extraction errors, and the two distinct filter-drop buckets.
type ParseMetadata struct {
	SourceFile       string   `json:"sourceFile"`
	ExtractedAt      string   `json:"extractedAt"`
	TotalItems       int      `json:"totalItems"`
	ParseErrors      int      `json:"parseErrors"`
	ExcludedByFilter int      `json:"excludedByFilter"`
	MissingYear      int      `json:"missingYear"`
	Warnings         []string `json:"warnings"`
	Filters          Filters  `json:"filters"`
}

// Document is the full structured output for one source profile. It owns
// its sections exclusively; sections own their records.
type Document struct {
	SchemaVersion string        `json:"schemaVersion"`
	Subject       Subject       `json:"subject"`
	Sections      []Section     `json:"sections"`
	Metadata      ParseMetadata `json:"metadata"`
}

// Validate returns an error if the document violates structural invariants:
// missing subject identity, empty raw text, or section ordinals that are
// not strictly increasing.
func (d *Document) Validate() error {
	if d.SchemaVersion == "" {
		return Errorf(EINVALID, "document schema version required")
	}
	if d.Subject.LattesID == "" {
		return Errorf(EINVALID, "document subject ID required")
	}
	for _, sec := range d.Sections {
		prev := 0
		for _, rec := range sec.Records {
			if err := rec.Validate(); err != nil {
				return err
			}
			if rec.Ordinal <= prev {
				return Errorf(EINVALID, "section %q ordinals must be strictly increasing: %d after %d",
					sec.Label, rec.Ordinal, prev)
			}
			prev = rec.Ordinal
		}
	}
	return nil
}

// TotalRecords returns the number of records across all sections.
func (d *Document) TotalRecords() int {
	n := 0
	for _, sec := range d.Sections {
		n += len(sec.Records)
	}
	return n
}

// SectionBlock is the segmenter's output for one production section: the
// source label, resolved category, the item count declared by the source,
// and the per-item blocks in source order.
type SectionBlock struct {
	Label         string
	Category      Category
	DeclaredCount int
	Items         []ItemBlock
}

// Profile is a segmented source document before extraction.
type Profile struct {
	Subject  Subject
	Sections []SectionBlock
}

// Segmenter splits a full profile export into per-category sections and
// per-item raw-text blocks, assigning ordinals before any extraction.
type Segmenter interface {
	// Segment parses raw profile markup. Structurally unrecognizable input
	// returns EUNPROCESSABLE; sections with zero items are retained.
	Segment(markup string) (*Profile, error)
}

// SchemaValidator checks an assembled document against the canonical closed
// JSON contract.
type SchemaValidator interface {
	// Validate succeeds silently or returns EUNPROCESSABLE naming the
	// offending field and constraint.
	Validate(doc *Document) error
}

// DocumentWriter persists validated documents.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}
