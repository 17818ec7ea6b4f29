package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jpsouza/lattes"
)

// Ensure Store implements the domain interfaces at compile time.
var (
	_ lattes.DocumentStore = (*Store)(nil)
	_ lattes.ReportWriter  = (*Store)(nil)
)

// researchersDir is the subdirectory holding per-subject documents.
const researchersDir = "researchers"

// Store persists a batch run with atomic update semantics. Documents and
// reports are staged in a temporary directory, then moved into place
// atomically on Commit, so interrupted runs never leave partial output.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a Store. baseDir is the parent directory, name is the
// output directory name. Files are staged in baseDir/name.tmp and moved to
// baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{baseDir: baseDir, name: name}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// DocumentFilename is the output name for one subject document:
// <lattesId>__<slug>.json, or <lattesId>.json when no slug is known.
func DocumentFilename(subject lattes.Subject) string {
	if subject.Slug == "" {
		return subject.LattesID + ".json"
	}
	return subject.LattesID + "__" + subject.Slug + ".json"
}

// WriteDocument stages one validated document as indented JSON. Marshaling
// goes through the Document struct, so field order is fixed and two runs
// over identical input produce byte-identical files.
func (s *Store) WriteDocument(_ context.Context, doc *lattes.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	path := filepath.Join(s.tempDir(), researchersDir, DocumentFilename(doc.Subject))
	return writeJSON(path, doc)
}

// WriteSummary stages the run summary.
func (s *Store) WriteSummary(_ context.Context, summary *lattes.Summary) error {
	return writeJSON(filepath.Join(s.tempDir(), "summary.json"), summary)
}

// WriteErrors stages the failure report. A run without failures produces no
// errors file.
func (s *Store) WriteErrors(_ context.Context, summary *lattes.Summary) error {
	failures := summary.Failures()
	if len(failures) == 0 {
		return nil
	}
	report := struct {
		GeneratedAt string              `json:"generatedAt"`
		Errors      []lattes.FileResult `json:"errors"`
	}{
		GeneratedAt: summary.GeneratedAt,
		Errors:      failures,
	}
	return writeJSON(filepath.Join(s.tempDir(), "errors.json"), &report)
}

// Commit atomically replaces the final output directory with the staged run.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to remove previous output: %v", err)
	}
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to move staged output into place: %v", err)
	}
	return nil
}

// Abort discards the staged run.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to marshal %q: %v", filepath.Base(path), err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to create output directory: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to write %q: %v", filepath.Base(path), err)
	}
	return nil
}
