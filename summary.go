package lattes

import "context"

// Stage is a step of the batch pipeline. Stages run in a fixed order and
// never repeat or move backwards; a document either completes StageWritten
// or fails at exactly one stage.
type Stage string

// Pipeline stages, in order.
const (
	StageDiscovered Stage = "discovered"
	StageSegmented  Stage = "segmented"
	StageExtracted  Stage = "extracted"
	StageFiltered   Stage = "filtered"
	StageValidated  Stage = "validated"
	StageWritten    Stage = "written"
)

// FileResult is the per-input outcome of a batch run. On success Stage is
// StageWritten and Error is empty; on failure Stage names the stage that
// failed and Error carries the reason.
type FileResult struct {
	File             string `json:"file"`
	SubjectID        string `json:"subjectId,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	Slug             string `json:"slug,omitempty"`
	Stage            Stage  `json:"stage"`
	Error            string `json:"error,omitempty"`
	TotalItems       int    `json:"totalItems"`
	ExcludedByFilter int    `json:"excludedByFilter"`
	MissingYear      int    `json:"missingYear"`
	OutputFile       string `json:"outputFile,omitempty"`

	// Fingerprint index classification counts for this document; all zero
	// when no index is attached to the run.
	NewRecords       int `json:"newRecords,omitempty"`
	ChangedRecords   int `json:"changedRecords,omitempty"`
	UnchangedRecords int `json:"unchangedRecords,omitempty"`
	DuplicateRecords int `json:"duplicateRecords,omitempty"`
}

// Succeeded reports whether the document completed the full pipeline.
func (r *FileResult) Succeeded() bool {
	return r.Stage == StageWritten && r.Error == ""
}

// Summary aggregates one batch run. It is produced even when every document
// fails.
type Summary struct {
	GeneratedAt    string           `json:"generatedAt"`
	InputDir       string           `json:"inputDir"`
	OutputDir      string           `json:"outputDir"`
	SchemaPath     string           `json:"schemaPath,omitempty"`
	TotalFiles     int              `json:"totalFiles"`
	Succeeded      int              `json:"succeeded"`
	Failed         int              `json:"failed"`
	TotalItems     int              `json:"totalItems"`
	CategoryCounts map[Category]int `json:"categoryCounts"`
	Filters        Filters          `json:"filters"`
	Results        []FileResult     `json:"results"`
}

// Failures returns the results that stopped short of StageWritten, in input
// order.
func (s *Summary) Failures() []FileResult {
	var failed []FileResult
	for _, r := range s.Results {
		if !r.Succeeded() {
			failed = append(failed, r)
		}
	}
	return failed
}

// DocumentStore persists a batch run atomically: documents accumulate in a
// staging directory and move into place only on Commit, so a failed run
// never leaves a partial output tree behind.
type DocumentStore interface {
	DocumentWriter

	// Commit atomically replaces the final output with the staged run.
	Commit() error

	// Abort discards the staged run.
	Abort() error
}

// ReportWriter persists the aggregate reports of a batch run.
type ReportWriter interface {
	// WriteSummary writes the run summary. Always called, even for a run
	// where every document failed.
	WriteSummary(ctx context.Context, summary *Summary) error

	// WriteErrors writes the per-document failure report. A run without
	// failures produces no errors report.
	WriteErrors(ctx context.Context, summary *Summary) error
}
