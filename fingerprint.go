package lattes

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the stable content identity of a record: the SHA-1
// hex digest (160 bits, 40 hex characters) over the UTF-8 bytes of the
// whitespace-trimmed raw text. Identical raw text always yields the
// identical fingerprint across runs and machines. The digest depends only
// on raw input, never on extraction output, so improving an extractor
// cannot invalidate human-validation decisions keyed by fingerprint.
func Fingerprint(raw string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}

// FingerprintLen is the length in hex characters of a Fingerprint value.
const FingerprintLen = 2 * sha1.Size

// FieldHash computes an xxHash digest over a record's extracted fields,
// used for change detection between runs: a record whose fingerprint is
// unchanged but whose field hash moved was re-extracted differently.
// Never used as identity.
func FieldHash(rec *Record) string {
	var b strings.Builder
	for _, f := range []string{
		string(rec.Category), rec.Title, rec.Authors, rec.Venue,
		rec.Month, rec.Volume, rec.Pages, rec.DOI, rec.ISBN, rec.ISSN,
		rec.Book, rec.Publisher, rec.Edition, rec.Event, rec.Location,
		rec.Institution, rec.Degree, string(rec.Status),
	} {
		b.WriteString(f)
		b.WriteByte(0x1f) // unit separator, keeps adjacent fields distinct
	}
	if rec.Year != nil {
		b.WriteString(strconv.Itoa(*rec.Year))
	}

	h := xxhash.Sum64String(b.String())
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h)
	return hex.EncodeToString(buf[:])
}
