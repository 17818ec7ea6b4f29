// Package goquery implements HTML segmentation of Lattes CV exports using
// the PuerkitoBio/goquery library.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jpsouza/lattes"
)

var _ lattes.Segmenter = (*Segmenter)(nil)

var (
	lattesIDRe   = regexp.MustCompile(`lattes\.cnpq\.br/(\d{16})`)
	lastUpdateRe = regexp.MustCompile(`Última atualização do currículo em (\d{2}/\d{2}/\d{4})`)
	ordinalRe    = regexp.MustCompile(`\d+`)
	sortYearRe   = regexp.MustCompile(`\d{4}`)
	doiPrefixRe  = regexp.MustCompile(`^https?://(?:dx\.)?doi\.org/`)
)

// skipHeadings are profile headings that never contain production records.
var skipHeadings = []string{
	"Identificação",
	"Endereço",
	"Formação acadêmica",
	"Formação Complementar",
	"Pós-doutorado",
	"Atuação profissional",
	"Áreas de atuação",
	"Idiomas",
	"Prêmios e títulos",
}

// Segmenter splits a full profile export into production sections and
// per-item blocks. Ordinals come from the source's own numbering
// (layout-cell-1), captured before any field extraction so extraction
// failures cannot shift them.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment parses a full profile export. Subject identity comes from the
// lattes.cnpq.br URL, the h2.nome heading, and the last-update line.
// Production sections are the div.title-wrapper blocks minus the
// non-production headings; the aggregate "Produções" wrapper is split into
// its cita-artigos labeled subsections. Input with neither a subject
// identity nor any production section is unprocessable.
func (s *Segmenter) Segment(markup string) (*lattes.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, lattes.Errorf(lattes.EUNPROCESSABLE, "failed to parse profile HTML: %v", err)
	}

	profile := &lattes.Profile{Subject: extractSubject(doc, markup)}

	doc.Find("div.title-wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		heading := lattes.NormalizeText(wrapper.Find("h1, h2").First().Text())
		if heading == "" || skipHeading(heading) {
			return
		}

		if heading == "Produções" {
			if subs := splitSubsections(wrapper); len(subs) > 0 {
				profile.Sections = append(profile.Sections, subs...)
				return
			}
		}

		if block, ok := sectionBlock(heading, wrapper); ok {
			profile.Sections = append(profile.Sections, block)
		}
	})

	if len(profile.Sections) == 0 && profile.Subject.LattesID == "" {
		return nil, lattes.Errorf(lattes.EUNPROCESSABLE, "no subject identity or production sections found")
	}

	return profile, nil
}

// SegmentSection parses a single-section export (one category per file).
// The category is resolved from the label, typically a section title or the
// fixture filename.
func (s *Segmenter) SegmentSection(label, markup string) (*lattes.SectionBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, lattes.Errorf(lattes.EUNPROCESSABLE, "failed to parse section HTML: %v", err)
	}

	category := lattes.CategoryFromLabel(label)
	return &lattes.SectionBlock{
		Label:         label,
		Category:      category,
		DeclaredCount: declaredCount(doc.Selection),
		Items:         extractItems(doc.Selection, category),
	}, nil
}

// sectionBlock builds the block for one title-wrapper section. Wrappers
// without any numbered item are structural headings, not sections.
func sectionBlock(heading string, wrapper *goquery.Selection) (lattes.SectionBlock, bool) {
	declared := declaredCount(wrapper)
	if declared == 0 {
		return lattes.SectionBlock{}, false
	}
	category := lattes.CategoryFromLabel(heading)
	return lattes.SectionBlock{
		Label:         heading,
		Category:      category,
		DeclaredCount: declared,
		Items:         extractItems(wrapper, category),
	}, true
}

// splitSubsections splits the aggregate "Produções" wrapper into labeled
// subsections. A data-cell child that is (or contains) a cita-artigos div
// starts a new subsection; following siblings belong to it until the next
// header. Each group is re-parsed as a standalone fragment so its top-level
// cells are reachable by selector. Subsections without items are dropped.
func splitSubsections(wrapper *goquery.Selection) []lattes.SectionBlock {
	dataCell := wrapper.Find("div.data-cell").First()
	if dataCell.Length() == 0 {
		return nil
	}

	var blocks []lattes.SectionBlock
	var label string
	var fragments []string

	flush := func() {
		if label == "" || len(fragments) == 0 {
			return
		}
		frag, err := goquery.NewDocumentFromReader(strings.NewReader(strings.Join(fragments, "")))
		if err != nil {
			return
		}
		declared := declaredCount(frag.Selection)
		if declared == 0 {
			return
		}
		category := lattes.CategoryFromLabel(label)
		blocks = append(blocks, lattes.SectionBlock{
			Label:         label,
			Category:      category,
			DeclaredCount: declared,
			Items:         extractItems(frag.Selection, category),
		})
	}

	dataCell.Children().Each(func(_ int, child *goquery.Selection) {
		header := child
		if !child.Is("div.cita-artigos") {
			header = child.Find("div.cita-artigos").First()
		}
		if header.Length() > 0 {
			flush()
			label = lattes.NormalizeText(header.Text())
			fragments = nil
		}
		if label == "" {
			return
		}
		if h, err := goquery.OuterHtml(child); err == nil {
			fragments = append(fragments, h)
		}
	})
	flush()

	return blocks
}

// declaredCount is the item count the source itself reports for a section:
// the number of numbered layout-cell-1 cells. It can exceed the number of
// extractable items when individual cells are malformed.
func declaredCount(sel *goquery.Selection) int {
	return sel.Find("div.layout-cell-1").Length()
}

// extractItems walks a section's numbered items. Both export eras are
// handled: articles wrapped in div.artigo-completo, and the bare
// layout-cell-1 + layout-cell-11 sibling pattern. Malformed cells (no
// sibling, no ordinal, no text) are skipped.
func extractItems(sel *goquery.Selection, category lattes.Category) []lattes.ItemBlock {
	var items []lattes.ItemBlock

	if wrapped := sel.Find("div.artigo-completo"); wrapped.Length() > 0 {
		wrapped.Each(func(_ int, art *goquery.Selection) {
			cell1 := art.Find("div.layout-cell-1").First()
			cell11 := art.Find("div.layout-cell-11").First()
			if block, ok := itemBlock(cell1, cell11, category); ok {
				items = append(items, block)
			}
		})
		return items
	}

	sel.Find("div.layout-cell-1").Each(func(_ int, cell1 *goquery.Selection) {
		cell11 := cell1.NextAllFiltered("div.layout-cell-11").First()
		if block, ok := itemBlock(cell1, cell11, category); ok {
			items = append(items, block)
		}
	})
	return items
}

// itemBlock builds one item from its ordinal cell and content cell.
func itemBlock(cell1, cell11 *goquery.Selection, category lattes.Category) (lattes.ItemBlock, bool) {
	if cell1.Length() == 0 || cell11.Length() == 0 {
		return lattes.ItemBlock{}, false
	}

	ordinal, ok := extractOrdinal(cell1)
	if !ok {
		return lattes.ItemBlock{}, false
	}

	span := cell11.Find("span.transform").First()
	if span.Length() == 0 {
		return lattes.ItemBlock{}, false
	}
	text := lattes.NormalizeText(joinedText(span))
	if text == "" {
		return lattes.ItemBlock{}, false
	}

	return lattes.ItemBlock{
		Ordinal:  ordinal,
		Category: category,
		Text:     text,
		DOI:      extractDOI(cell11),
		SortYear: extractSortYear(cell11),
	}, true
}

// extractOrdinal reads the source numbering from a layout-cell-1 cell.
func extractOrdinal(cell1 *goquery.Selection) (int, bool) {
	b := cell1.Find("b").First()
	if b.Length() == 0 {
		return 0, false
	}
	m := ordinalRe.FindString(b.Text())
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// extractDOI reads the DOI from an icone-doi link, stripping the resolver
// prefix.
func extractDOI(sel *goquery.Selection) string {
	href, ok := sel.Find("a.icone-doi").First().Attr("href")
	if !ok {
		return ""
	}
	return strings.TrimSpace(doiPrefixRe.ReplaceAllString(href, ""))
}

// extractSortYear reads the export's own sort-year attribute, 0 when absent.
func extractSortYear(sel *goquery.Selection) int {
	span := sel.Find("span[data-tipo-ordenacao='ano']").First()
	if span.Length() == 0 {
		return 0
	}
	m := sortYearRe.FindString(span.Text())
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// extractSubject reads the researcher identity from the profile header.
// Name headings that carry a scholarship banner instead of the name are
// ignored.
func extractSubject(doc *goquery.Document, markup string) lattes.Subject {
	var subject lattes.Subject

	if m := lattesIDRe.FindStringSubmatch(markup); m != nil {
		subject.LattesID = m[1]
	}

	name := lattes.NormalizeText(doc.Find("h2.nome").First().Text())
	if name != "" && !strings.HasPrefix(name, "Bolsista") {
		subject.FullName = name
		subject.Slug = lattes.Slugify(name)
	}

	if m := lastUpdateRe.FindStringSubmatch(markup); m != nil {
		subject.LastUpdate = m[1]
	}

	return subject
}

// skipHeading reports whether a section heading is one of the profile
// sections that never contain production records.
func skipHeading(heading string) bool {
	for _, skip := range skipHeadings {
		if strings.Contains(heading, skip) {
			return true
		}
	}
	return false
}

// joinedText returns the text of a selection with a space between adjacent
// text nodes, so that markup boundaries never glue words together.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
