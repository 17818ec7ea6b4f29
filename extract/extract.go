// Package extract recovers typed fields from the semi-regular punctuation
// grammar of Lattes production items. Each category-specific extractor is an
// ordered list of named sub-extraction steps; every step has a documented
// "give up, leave absent" exit, so ambiguity always resolves to an absent
// field rather than a wrong value.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jpsouza/lattes"
)

// authorBoundaryRe matches the author/title boundary sentinel: a full
// " . " (space-period-space) followed by an uppercase letter. Abbreviated
// initials like "A. B." never contain a space before the period, so the
// sentinel cannot trigger inside an author list.
var authorBoundaryRe = regexp.MustCompile(`^(.+?)\s\.\s+([A-ZÀ-Ý].*)$`)

// yearRe matches plausible publication years.
var yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

var (
	strayYearAfterInitialRe = regexp.MustCompile(`([A-Z]\.)\s*(19\d{2}|20\d{2})`)
	authorSeparatorRe       = regexp.MustCompile(`\s*;\s*`)
	htmlTagRe               = regexp.MustCompile(`<[^>]+>`)
	pagesRe                 = regexp.MustCompile(`\bp\.\s*([0-9]+(?:\s*[-—–]\s*[0-9]+)?)`)
	monthRe                 = regexp.MustCompile(`(?i)\b(jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)\.`)
)

// newRecord builds the guaranteed part of a record from an item block:
// ordinal, raw text, category, fingerprint, and any structurally isolated
// DOI. Typed fields are filled in by the caller's extraction steps.
func newRecord(block lattes.ItemBlock, category lattes.Category) *lattes.Record {
	if block.Category.Valid() {
		category = block.Category
	}
	return &lattes.Record{
		Ordinal:     block.Ordinal,
		Raw:         block.Text,
		Category:    category,
		Fingerprint: lattes.Fingerprint(block.Text),
		DOI:         block.DOI,
	}
}

// splitAuthors splits an item's text at the author/title boundary sentinel.
// When the sentinel is absent the whole text is returned as the remainder
// with ok=false: the caller leaves the author field absent rather than
// mis-splitting on initials.
func splitAuthors(text string) (authors, remainder string, ok bool) {
	m := authorBoundaryRe.FindStringSubmatch(text)
	if m == nil {
		return "", text, false
	}
	authors = cleanAuthors(m[1])
	if authors == "" {
		return "", text, false
	}
	return authors, strings.TrimSpace(m[2]), true
}

// cleanAuthors normalizes a raw author list: tag residue and stray year
// tokens (a known export artifact where the sort year glues onto the last
// initial) are removed and semicolon spacing is regularized.
func cleanAuthors(raw string) string {
	s := htmlTagRe.ReplaceAllString(raw, "")
	s = strayYearAfterInitialRe.ReplaceAllString(s, "$1")
	s = yearRe.ReplaceAllString(s, "")

	parts := authorSeparatorRe.Split(s, -1)
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 2 {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}

// extractYear returns the publication year for an item. The export's own
// sort-year attribute wins when present; otherwise the rightmost plausible
// 4-digit token in the text is used, since bibliographic tails end with the
// year. Returns nil when no plausible year exists.
func extractYear(block lattes.ItemBlock, text string) *int {
	if block.SortYear >= 1900 && block.SortYear <= 2099 {
		y := block.SortYear
		return &y
	}
	return rightmostYear(text)
}

// rightmostYear returns the last plausible 4-digit year in text, or nil.
func rightmostYear(text string) *int {
	matches := yearRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	y, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return nil
	}
	return &y
}

// atoiYear converts an already year-shaped match to *int.
func atoiYear(s string) *int {
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

// extractMonth returns the Portuguese month abbreviation when present.
func extractMonth(text string) string {
	m := monthRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// extractPages returns a page range like "1-10" when present.
func extractPages(text string) string {
	m := pagesRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], " ", "")
}

// firstSentence returns text up to the first period that terminates a
// sentence (period followed by space or end of string), without the period.
func firstSentence(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		if i+1 == len(text) || text[i+1] == ' ' {
			return strings.TrimSpace(text[:i])
		}
	}
	return strings.TrimSpace(text)
}
