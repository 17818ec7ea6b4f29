package extract

import (
	"regexp"
	"strings"

	"github.com/jpsouza/lattes"
)

var _ lattes.Extractor = (*Supervision)(nil)

// Shape for supervision records:
// "ADVISEE. TITLE. YEAR. Dissertação (Mestrado em X) - INSTITUTION. ...".
var (
	supervisionDegreeRe = regexp.MustCompile(
		`(Dissertação|Tese|Monografia|Trabalho de Conclusão de Curso|Iniciação Científica|Supervisão de Pós-Doutorado)\s*\(([^)]+)\)`)
	supervisionInstitutionRe = regexp.MustCompile(`\)\s*[-–]\s*([^.,]+)`)
	supervisionYearRe        = regexp.MustCompile(`\.\s*((?:19|20)\d{2})\s*\.`)
	supervisionTitleRe       = regexp.MustCompile(`^(.+?)\.\s*(?:19|20)\d{2}\s*\.`)
	adviseeRe                = regexp.MustCompile(`^([^.;0-9]{3,80}?)\.\s+(.*)$`)
)

// Supervision extracts supervision and advising records ("Orientações e
// supervisões").
type Supervision struct{}

// NewSupervision creates a new Supervision extractor.
func NewSupervision() *Supervision {
	return &Supervision{}
}

// Category returns the supervision category.
func (s *Supervision) Category() lattes.Category {
	return lattes.CategorySupervision
}

// Extract applies the supervision steps in order:
//  1. advisee: the leading name sentence (no digits, bounded length); with
//     a " . " sentinel present the sentinel split wins. Absent when the
//     prefix does not look like a name.
//  2. title: remainder up to the terminal ". YYYY." marker.
//  3. year: the ". YYYY." marker, else sort-year, else rightmost token.
//  4. degree level: the parenthesized level after the work-type keyword.
//  5. institution: the segment after the ") - " marker.
//  6. status: explicit "Em andamento" or "Concluída" markers only; records
//     without a marker carry StatusUnknown, never a silent default.
func (s *Supervision) Extract(block lattes.ItemBlock) *lattes.Record {
	rec := newRecord(block, lattes.CategorySupervision)

	remainder := block.Text
	if authors, rest, ok := splitAuthors(block.Text); ok {
		rec.Authors = authors
		remainder = rest
	} else if m := adviseeRe.FindStringSubmatch(block.Text); m != nil {
		rec.Authors = strings.TrimSpace(m[1])
		remainder = m[2]
	}

	if m := supervisionTitleRe.FindStringSubmatch(remainder); m != nil {
		rec.Title = strings.TrimSpace(m[1])
	}

	if m := supervisionYearRe.FindStringSubmatch(block.Text); m != nil {
		rec.Year = atoiYear(m[1])
	} else {
		rec.Year = extractYear(block, block.Text)
	}

	if m := supervisionDegreeRe.FindStringSubmatch(block.Text); m != nil {
		rec.Degree = strings.TrimSpace(m[2])
	}
	if m := supervisionInstitutionRe.FindStringSubmatch(block.Text); m != nil {
		rec.Institution = strings.TrimSpace(m[1])
	}

	rec.Status = supervisionStatus(block.Text)

	return rec
}

// supervisionStatus reads an explicit status marker from the record text.
func supervisionStatus(text string) lattes.Status {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "em andamento"):
		return lattes.StatusInProgress
	case strings.Contains(lower, "concluída") || strings.Contains(lower, "concluida") ||
		strings.Contains(lower, "concluído") || strings.Contains(lower, "concluido"):
		return lattes.StatusCompleted
	default:
		return lattes.StatusUnknown
	}
}
