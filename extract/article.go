package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*Article)(nil)

// Tail shapes for journal articles. The canonical form after the title is
// "VENUE, v. VOLUME, p. PAGES, YEAR"; older exports drop the volume or
// pagination, so progressively weaker patterns follow.
var (
	articleTailRe = regexp.MustCompile(`^(.+?)\.\s*([^,]+),\s*v\.\s*(\S+),\s*p\.\s*([0-9]+(?:\s*[-—–]\s*[0-9]+)?)`)
	articleLooseTitleRe = regexp.MustCompile(`^(.+?)(?:\.\s+[A-ZÀ-Ý]|,\s*v\.|\.\s*$)`)
	issnRe              = regexp.MustCompile(`(?i)\bISSN[:\s]*(\d{4}-?\d{3}[0-9Xx])`)
)

// Article extracts journal articles ("Artigos completos publicados em
// periódicos").
type Article struct{}

// NewArticle creates a new Article extractor.
func NewArticle() *Article {
	return &Article{}
}

// Category returns the article category.
func (a *Article) Category() lattes.Category {
	return lattes.CategoryArticle
}

// Extract applies the article steps in order:
//  1. authors: text before the " . " sentinel; absent when no sentinel.
//  2. title + venue + volume + pages: the "TITLE. VENUE, v. V, p. P" tail;
//     when it does not match, fall back to title-only (text up to the next
//     sentence boundary or ", v.") and a best-effort venue.
//  3. year: the export's sort-year attribute, else the rightmost plausible
//     4-digit token (bibliographic tails are year-terminal).
//  4. identifiers: DOI from the structurally isolated link, ISSN from the
//     tail text.
func (a *Article) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategoryArticle)

	authors, remainder, ok := splitAuthors(block.Text)
	if ok {
		rec.Authors = authors
	}

	if m := articleTailRe.FindStringSubmatch(remainder); m != nil {
		rec.Title = strings.TrimSpace(m[1])
		rec.Venue = strings.TrimSpace(m[2])
		rec.Volume = strings.TrimSpace(m[3])
		rec.Pages = strings.ReplaceAll(m[4], " ", "")
	} else if ok {
		// Weaker shape: recover at least the title, and the venue when a
		// sentence boundary delimits it. Only trusted after a successful
		// author split; otherwise the prefix could still be the author list.
		a.extractLoose(rec, remainder)
	}

	rec.Year = extractYear(block, block.Text)
	rec.Month = extractMonth(block.Text)
	if m := issnRe.FindStringSubmatch(block.Text); m != nil {
		rec.ISSN = strings.ToUpper(m[1])
	}

	return rec
}

func (a *Article) extractLoose(rec *lattes.Record, remainder string) {
	m := articleLooseTitleRe.FindStringSubmatch(remainder)
	if m == nil {
		return
	}
	title := strings.TrimSpace(strings.TrimSuffix(m[1], "."))
	if title == "" {
		return
	}
	rec.Title = title

	rest := strings.TrimSpace(remainder[len(m[1]):])
	rest = strings.TrimLeft(rest, ". ")
	if venue, _, found := strings.Cut(rest, ","); found {
		if venue = strings.TrimSpace(venue); venue != "" && rightmostYear(venue) == nil {
			rec.Venue = venue
		}
	}
}
