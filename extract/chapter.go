package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*Chapter)(nil)

// Tail shapes for book chapters: after the chapter title comes
// "In: ORGANIZERS (Org.). BOOK. Ned. CITY: PUBLISHER, YEAR, p. PAGES".
var (
	chapterTitleRe    = regexp.MustCompile(`^(.+?)\.\s*In:`)
	chapterBookOrgRe  = regexp.MustCompile(`\(Org\.?\)\.\s*([^.]+)\.`)
	chapterBookBareRe = regexp.MustCompile(`In:\s*([^.,]+)`)
	chapterEditionRe  = regexp.MustCompile(`\b(\d+)\s*ed\b`)
	publisherRe       = regexp.MustCompile(`:\s*([^,:]+),\s*(?:19|20)\d{2}`)
	chapterYearRe     = regexp.MustCompile(`,\s*((?:19|20)\d{2})[,.]`)
	isbnRe            = regexp.MustCompile(`(?i)\bISBN[:\s]*([0-9][0-9Xx-]{8,16})`)
)

// Chapter extracts book chapters ("Capítulos de livros publicados").
type Chapter struct{}

// NewChapter creates a new Chapter extractor.
func NewChapter() *Chapter {
	return &Chapter{}
}

// Category returns the book chapter category.
func (c *Chapter) Category() lattes.Category {
	return lattes.CategoryBookChapter
}

// Extract applies the chapter steps in order:
//  1. authors: text before the " . " sentinel; absent when no sentinel.
//  2. title: remainder up to the ". In:" container marker; absent when the
//     marker is missing.
//  3. book: the sentence after the "(Org.)." organizer marker, falling back
//     to the text right after "In:" when no organizer is marked.
//  4. edition, publisher, pages: category sub-patterns on the tail.
//  5. year: the ", YYYY," tail position, else sort-year, else rightmost.
//  6. identifiers: DOI from the isolated link, ISBN from the tail.
func (c *Chapter) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryBookChapter)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
	}

	if m := chapterTitleRe.FindStringSubmatch(remainder); m != nil && ok {
		rec.Title = strings.TrimSpace(m[1])
	}

	if m := chapterBookOrgRe.FindStringSubmatch(block.Text); m != nil {
		rec.Book = strings.TrimSpace(m[1])
	} else if m := chapterBookBareRe.FindStringSubmatch(block.Text); m != nil {
		if book := strings.TrimSpace(m[1]); rightmostYear(book) == nil {
			rec.Book = book
		}
	}

	if m := chapterEditionRe.FindStringSubmatch(block.Text); m != nil {
		rec.Edition = m[1]
	}
	if m := publisherRe.FindStringSubmatch(block.Text); m != nil {
		rec.Publisher = strings.TrimSpace(m[1])
	}
	rec.Pages = extractPages(block.Text)

	if m := chapterYearRe.FindStringSubmatch(block.Text); m != nil {
		rec.Year = atoiYear(m[1])
	} else {
		rec.Year = extractYear(block, block.Text)
	}

	if m := isbnRe.FindStringSubmatch(block.Text); m != nil {
		rec.ISBN = strings.ToUpper(strings.TrimRight(m[1], "-"))
	}

	return rec
}
