package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*Event)(nil)

// Tail shape for event papers: after the title comes
// "In: EVENT NAME, YEAR, LOCATION.".
var (
	eventTitleRe = regexp.MustCompile(`^(.+?)\.\s*In:`)
	eventTailRe  = regexp.MustCompile(`In:\s*(.+?),\s*((?:19|20)\d{2})(?:,\s*([^.]+))?`)
)

// Event extracts conference papers ("Trabalhos completos publicados em
// anais de congressos" and related event sections).
type Event struct{}

// NewEvent creates a new Event extractor.
func NewEvent() *Event {
	return &Event{}
}

// Category returns the event paper category.
func (e *Event) Category() lattes.Category {
	return lattes.CategoryEventPaper
}

// Extract applies the event steps in order:
//  1. authors: text before the " . " sentinel; absent when no sentinel.
//  2. title: remainder up to the ". In:" container marker.
//  3. event, year, location: the "In: EVENT, YEAR, LOCATION" tail. The year
//     inside the tail wins over other 4-digit tokens; when the tail does
//     not match, year falls back to sort-year then rightmost token.
//  4. pages when the anais pagination is present.
func (e *Event) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryEventPaper)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
		if m := eventTitleRe.FindStringSubmatch(remainder); m != nil {
			rec.Title = strings.TrimSpace(m[1])
		}
	}

	if m := eventTailRe.FindStringSubmatch(block.Text); m != nil {
		rec.Event = strings.TrimSpace(m[1])
		rec.Year = atoiYear(m[2])
		if loc := strings.TrimSpace(m[3]); loc != "" && rightmostYear(loc) == nil {
			rec.Location = loc
		}
	} else {
		rec.Year = extractYear(block, block.Text)
	}

	rec.Pages = extractPages(block.Text)

	return rec
}
