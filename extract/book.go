package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*Book)(nil)

// Tail shape for books: after the title comes
// "Ned. CITY: PUBLISHER, YEAR. NNNp.".
var (
	bookEditionRe   = regexp.MustCompile(`\b(\d+)\.?\s*ed\b`)
	bookLocationRe  = regexp.MustCompile(`(?:\bed\.?\s*)?([A-ZÀ-Ý][^:.,]*):\s*[^,:]+,\s*(?:19|20)\d{2}`)
	bookPageCountRe = regexp.MustCompile(`\b(\d+)\s*p\b`)
)

// Book extracts published or organized books ("Livros publicados/
// organizados ou edições").
type Book struct{}

// NewBook creates a new Book extractor.
func NewBook() *Book {
	return &Book{}
}

// Category returns the book category.
func (b *Book) Category() lattes.Category {
	return lattes.CategoryBook
}

// Extract applies the book steps in order:
//  1. authors: text before the " . " sentinel; absent when no sentinel.
//  2. title: the sentence after the sentinel; absent when no sentinel.
//  3. edition, location, publisher: the "Ned. CITY: PUBLISHER, YEAR" tail.
//  4. page count: the terminal "NNNp." token, stored as Pages.
//  5. year: sort-year attribute, else rightmost plausible token.
//  6. identifiers: DOI from the isolated link, ISBN from the tail.
func (b *Book) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryBook)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
		if title := firstSentence(remainder); title != "" && title != remainder {
			rec.Title = title
		}
	}

	if m := bookEditionRe.FindStringSubmatch(block.Text); m != nil {
		rec.Edition = m[1]
	}
	if m := bookLocationRe.FindStringSubmatch(block.Text); m != nil {
		rec.Location = strings.TrimSpace(m[1])
	}
	if m := publisherRe.FindStringSubmatch(block.Text); m != nil {
		rec.Publisher = strings.TrimSpace(m[1])
	}
	if m := bookPageCountRe.FindStringSubmatch(block.Text); m != nil {
		rec.Pages = m[1]
	}

	rec.Year = extractYear(block, block.Text)

	if m := isbnRe.FindStringSubmatch(block.Text); m != nil {
		rec.ISBN = strings.ToUpper(strings.TrimRight(m[1], "-"))
	}

	return rec
}
