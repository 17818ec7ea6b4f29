package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*News)(nil)

// Tail shape for newspaper/magazine texts: after the title comes
// "VENUE, CITY, DD mon. YYYY." — venue ends at the first comma.
var newsDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)\.?\s*((?:19|20)\d{2})`)

// News extracts newspaper and magazine texts ("Textos em jornais de
// notícias/revistas").
type News struct{}

// NewNews creates a new News extractor.
func NewNews() *News {
	return &News{}
}

// Category returns the newspaper text category.
func (n *News) Category() lattes.Category {
	return lattes.CategoryNewsText
}

// Extract applies the news steps in order:
//  1. authors: text before the " . " sentinel. Author initials ("A. B.")
//     never trigger the split; with no sentinel the author and title fields
//     stay absent rather than risking a mis-split.
//  2. title: the sentence after the sentinel.
//  3. venue: text after the title up to the first comma or period.
//  4. date: the "DD mon. YYYY" tail gives month and year; otherwise year
//     falls back to sort-year then rightmost token, month to the bare
//     abbreviation.
func (n *News) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryNewsText)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
		title := firstSentence(remainder)
		if title != "" && title != remainder {
			rec.Title = title
			n.extractVenue(rec, remainder[min(len(title)+1, len(remainder)):])
		}
	}

	if m := newsDateRe.FindStringSubmatch(block.Text); m != nil {
		rec.Month = strings.ToLower(m[2])
		rec.Year = atoiYear(m[3])
	} else {
		rec.Year = extractYear(block, block.Text)
		rec.Month = extractMonth(block.Text)
	}

	return rec
}

// extractVenue takes the text after the title and keeps the first
// comma-or-period-delimited segment, provided it is not just the date tail.
func (n *News) extractVenue(rec *lattes.Record, rest string) {
	rest = strings.TrimLeft(rest, ". ")
	venue := rest
	if i := strings.IndexAny(rest, ",."); i >= 0 {
		venue = rest[:i]
	}
	if venue = strings.TrimSpace(venue); venue != "" && rightmostYear(venue) == nil {
		rec.Venue = venue
	}
}
