package extract

import "github.com/jpsouza/lattes"

var _ lattes.Extractor = (*Generic)(nil)

// Generic is the category-agnostic fallback extractor. It guarantees that
// every item yields a record with ordinal and raw text, plus a best-effort
// independent pass for the common fields: author list (text before the
// first " . " sentinel), title (next sentence after the sentinel), and year
// (rightmost plausible 4-digit token). It never fails on any input.
type Generic struct{}

// NewGeneric creates a new Generic extractor.
func NewGeneric() *Generic {
	return &Generic{}
}

// Category returns the catch-all category.
func (g *Generic) Category() lattes.Category {
	return lattes.CategoryOther
}

// Extract builds a minimal record. Steps, each with an absent-field exit:
//  1. authors: text before the " . " sentinel; absent when no sentinel.
//  2. title: the sentence following the sentinel; absent when no sentinel
//     or when the candidate is too short to be a plausible title.
//  3. year: rightmost plausible 4-digit token; absent when none.
//  4. month: Portuguese month abbreviation; absent when none.
func (g *Generic) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryOther)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
		if title := firstSentence(remainder); len(title) > 10 && title != remainder {
			rec.Title = title
		}
	}

	rec.Year = extractYear(block, block.Text)
	rec.Month = extractMonth(block.Text)

	return rec
}
