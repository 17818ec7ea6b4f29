package lattes

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// mojibakeMarkers are byte sequences that appear when UTF-8 text has been
// decoded as Latin-1/Windows-1252. Lattes exports mix encodings freely, so
// normalization repairs double-encoded text when doing so strictly reduces
// the marker count.
var mojibakeMarkers = []string{"Ã", "Â", "â€", "ðŸ", "ï¿½"}

// NormalizeText cleans raw extracted text before any pattern matching:
// HTML entities are decoded, non-breaking spaces become regular spaces,
// double-encoded (mojibake) text is repaired best-effort, accents are
// normalized to composed form (NFC), and whitespace is collapsed to single
// spaces with leading/trailing whitespace trimmed. It is a pure function
// and never fails; unrepairable byte sequences pass through unchanged.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = strings.NewReplacer(" ", " ", "\r\n", "\n", "\r", "\n").Replace(s)
	s = repairMojibake(s)
	s = norm.NFC.String(s)
	return collapseWhitespace(s)
}

// NormalizeLabel prepares a section title or filename for category matching:
// accents and other combining marks are stripped, the result is lowercased,
// underscores and colons become spaces, and whitespace is collapsed.
func NormalizeLabel(s string) string {
	s = stripMarks(NormalizeText(s))
	s = strings.ToLower(s)
	s = strings.NewReplacer("_", " ", ":", " ", "/", " ").Replace(s)
	return collapseWhitespace(s)
}

// Slugify converts a subject name to a URL-safe slug, e.g.
// "Leonardo Fernandes Fraceto" -> "leonardo-fernandes-fraceto".
func Slugify(s string) string {
	s = strings.ToLower(stripMarks(NormalizeText(s)))

	var b strings.Builder
	prevHyphen := true // suppress leading hyphen
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// stripMarks removes combining marks after canonical decomposition.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// collapseWhitespace folds any run of whitespace into a single space and
// trims the ends.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// repairMojibake attempts to undo UTF-8 text that was decoded as Latin-1 or
// Windows-1252. Each candidate re-encoding is accepted only when it remains
// valid UTF-8 and strictly reduces the number of mojibake markers, so clean
// text (including legitimate "Ã" characters) is left alone. Runs at most
// twice to handle doubly mangled input.
func repairMojibake(s string) string {
	for i := 0; i < 2; i++ {
		score := countMarkers(s)
		if score == 0 {
			return s
		}
		repaired, ok := reencode(s, score)
		if !ok {
			return s
		}
		s = repaired
	}
	return s
}

func reencode(s string, score int) (string, bool) {
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		b, err := cm.NewEncoder().Bytes([]byte(s))
		if err != nil || !utf8.Valid(b) {
			continue
		}
		if candidate := string(b); countMarkers(candidate) < score {
			return candidate, true
		}
	}
	return "", false
}

func countMarkers(s string) int {
	n := 0
	for _, m := range mojibakeMarkers {
		n += strings.Count(s, m)
	}
	return n
}
