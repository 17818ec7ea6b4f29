package sqlite

import (
	"context"
	"database/sql"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/bloom"
)

// Compile-time interface verification.
var _ lattes.FingerprintIndex = (*Index)(nil)

// Index implements lattes.FingerprintIndex using SQLite, with an in-memory
// Bloom prefilter over known fingerprints so definitely-new records skip
// the point lookup. The filter gives exact negatives only; positives are
// always confirmed against the table.
type Index struct {
	db     *DB
	filter *bloom.Filter
}

// NewIndex creates an Index over an open DB, preloading the Bloom prefilter
// with every known fingerprint.
func NewIndex(ctx context.Context, db *DB) (*Index, error) {
	idx := &Index{db: db, filter: bloom.NewFilter(100000, 0.01)}

	rows, err := db.QueryContext(ctx, "SELECT fingerprint FROM fingerprints")
	if err != nil {
		return nil, lattes.Errorf(lattes.EINTERNAL, "failed to preload fingerprints: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, lattes.Errorf(lattes.EINTERNAL, "failed to scan fingerprint: %v", err)
		}
		idx.filter.Add(fp)
	}
	if err := rows.Err(); err != nil {
		return nil, lattes.Errorf(lattes.EINTERNAL, "failed to preload fingerprints: %v", err)
	}

	return idx, nil
}

// Observe records one sighting of a fingerprint and classifies it.
func (idx *Index) Observe(ctx context.Context, entry lattes.IndexEntry) (lattes.IndexOutcome, error) {
	if entry.Fingerprint == "" {
		return "", lattes.Errorf(lattes.EINVALID, "fingerprint required")
	}

	if !idx.filter.Test(entry.Fingerprint) {
		if err := idx.insert(ctx, entry); err != nil {
			return "", err
		}
		idx.filter.Add(entry.Fingerprint)
		return lattes.IndexNew, nil
	}

	existing, err := idx.Find(ctx, entry.Fingerprint)
	if err != nil {
		if lattes.ErrorCode(err) == lattes.ENOTFOUND {
			// Bloom false positive.
			if err := idx.insert(ctx, entry); err != nil {
				return "", err
			}
			return lattes.IndexNew, nil
		}
		return "", err
	}

	outcome := lattes.IndexUnchanged
	if existing.FieldHash != entry.FieldHash {
		outcome = lattes.IndexChanged
	}

	_, err = idx.db.ExecContext(ctx, `
		UPDATE fingerprints
		SET subject_id = ?, category = ?, field_hash = ?, last_seen = ?
		WHERE fingerprint = ?
	`, entry.SubjectID, string(entry.Category), entry.FieldHash, entry.LastSeen, entry.Fingerprint)
	if err != nil {
		return "", lattes.Errorf(lattes.EINTERNAL, "failed to update fingerprint: %v", err)
	}

	return outcome, nil
}

// Find returns the stored entry for a fingerprint.
func (idx *Index) Find(ctx context.Context, fingerprint string) (*lattes.IndexEntry, error) {
	var entry lattes.IndexEntry
	var category string

	err := idx.db.QueryRowContext(ctx, `
		SELECT fingerprint, subject_id, category, field_hash, first_seen, last_seen
		FROM fingerprints
		WHERE fingerprint = ?
	`, fingerprint).Scan(&entry.Fingerprint, &entry.SubjectID, &category,
		&entry.FieldHash, &entry.FirstSeen, &entry.LastSeen)

	if err == sql.ErrNoRows {
		return nil, lattes.Errorf(lattes.ENOTFOUND, "fingerprint not found")
	}
	if err != nil {
		return nil, lattes.Errorf(lattes.EINTERNAL, "failed to query fingerprint: %v", err)
	}

	entry.Category = lattes.Category(category)
	return &entry, nil
}

func (idx *Index) insert(ctx context.Context, entry lattes.IndexEntry) error {
	_, err := idx.db.ExecContext(ctx, `
		INSERT INTO fingerprints (fingerprint, subject_id, category, field_hash, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			subject_id = excluded.subject_id,
			category = excluded.category,
			field_hash = excluded.field_hash,
			last_seen = excluded.last_seen
	`, entry.Fingerprint, entry.SubjectID, string(entry.Category),
		entry.FieldHash, entry.LastSeen, entry.LastSeen)
	if err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to insert fingerprint: %v", err)
	}
	return nil
}
