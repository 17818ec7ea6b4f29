// Package batch orchestrates full-profile extraction runs. It coordinates
// input discovery, segmentation, field extraction, year filtering, schema
// validation, and atomic output storage, one document at a time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/fs"
)

// Processor runs the batch pipeline. A document moves through the stages in
// order and either completes StageWritten or fails at exactly one stage; a
// failed document never aborts the rest of the batch.
type Processor struct {
	Segmenter  lattes.Segmenter
	Extractors lattes.ExtractorRegistry
	Validator  lattes.SchemaValidator // nil skips schema validation
	Store      lattes.DocumentStore
	Reports    lattes.ReportWriter
	Index      lattes.FingerprintIndex // nil skips dedup classification
	Filter     *lattes.YearFilter      // nil keeps every year
	Progress   ProgressFunc

	// SchemaPath is recorded in the summary when an external schema file is
	// in use; empty means the embedded schema.
	SchemaPath string

	// Now is the run clock. The batch takes a single timestamp at the start
	// of the run so that every provenance stamp in one run is identical and
	// re-runs can be made byte-for-byte reproducible.
	Now func() time.Time
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	File      string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every profile export in inputDir, in sorted filename order.
// The summary is always produced, even when every document fails; the
// staged output is committed only after the reports are written.
func (p *Processor) Run(ctx context.Context, inputDir, outputDir string) (*lattes.Summary, error) {
	paths, err := fs.DiscoverProfiles(inputDir)
	if err != nil {
		return nil, err
	}

	runAt := p.runTimestamp()

	summary := &lattes.Summary{
		GeneratedAt:    runAt,
		InputDir:       inputDir,
		OutputDir:      outputDir,
		SchemaPath:     p.SchemaPath,
		CategoryCounts: make(map[lattes.Category]int),
		Filters:        lattes.Filters{Years: p.Filter.Years()},
		TotalFiles:     len(paths),
	}

	p.notify(ProgressEvent{Type: ProgressStarted, Total: len(paths)})

	for i, path := range paths {
		result := p.processFile(ctx, path, runAt, summary.CategoryCounts)
		summary.Results = append(summary.Results, result)

		if result.Succeeded() {
			summary.Succeeded++
			summary.TotalItems += result.TotalItems
			p.notify(ProgressEvent{Type: ProgressCompleted, File: result.File, Completed: i + 1, Total: len(paths)})
		} else {
			summary.Failed++
			p.notify(ProgressEvent{
				Type:      ProgressFailed,
				File:      result.File,
				Completed: i + 1,
				Total:     len(paths),
				Error:     errors.New(result.Error),
			})
		}
	}

	if err := p.Reports.WriteSummary(ctx, summary); err != nil {
		return summary, err
	}
	if err := p.Reports.WriteErrors(ctx, summary); err != nil {
		return summary, err
	}
	if err := p.Store.Commit(); err != nil {
		return summary, err
	}

	p.notify(ProgressEvent{Type: ProgressFinished, Completed: len(paths), Total: len(paths)})

	return summary, nil
}

// processFile runs one document through the pipeline. Every failure is
// contained to this document's FileResult.
func (p *Processor) processFile(ctx context.Context, path, runAt string, categoryCounts map[lattes.Category]int) lattes.FileResult {
	result := lattes.FileResult{File: filepath.Base(path)}

	markup, err := fs.ReadProfile(path)
	if err != nil {
		return failed(result, lattes.StageDiscovered, err)
	}
	result.Stage = lattes.StageDiscovered

	profile, err := p.Segmenter.Segment(markup)
	if err != nil {
		return failed(result, lattes.StageSegmented, err)
	}
	subject := resolveSubject(profile.Subject, result.File)
	result.SubjectID = subject.LattesID
	result.FullName = subject.FullName
	result.Slug = subject.Slug
	result.Stage = lattes.StageSegmented

	doc := &lattes.Document{
		SchemaVersion: lattes.SchemaVersion,
		Subject:       subject,
		Sections:      []lattes.Section{},
		Metadata: lattes.ParseMetadata{
			SourceFile:  result.File,
			ExtractedAt: runAt,
			Warnings:    []string{},
			Filters:     lattes.Filters{Years: p.Filter.Years()},
		},
	}

	p.extractSections(profile, doc, runAt, &result)
	result.Stage = lattes.StageExtracted

	p.filterSections(doc, &result)
	result.Stage = lattes.StageFiltered
	result.TotalItems = doc.TotalRecords()
	doc.Metadata.TotalItems = result.TotalItems

	if err := p.classifyRecords(ctx, doc, runAt, &result); err != nil {
		return failed(result, lattes.StageFiltered, err)
	}

	if p.Validator != nil {
		if err := p.Validator.Validate(doc); err != nil {
			return failed(result, lattes.StageValidated, err)
		}
	}
	result.Stage = lattes.StageValidated

	if err := p.Store.WriteDocument(ctx, doc); err != nil {
		return failed(result, lattes.StageWritten, err)
	}
	result.Stage = lattes.StageWritten
	result.OutputFile = fs.DocumentFilename(subject)

	for _, sec := range doc.Sections {
		categoryCounts[sec.Category] += len(sec.Records)
	}

	return result
}

// extractSections turns the segmented profile into document sections with
// fully extracted records and provenance attached. The declared-vs-extracted
// gap per section is recorded as parse errors with a warning.
func (p *Processor) extractSections(profile *lattes.Profile, doc *lattes.Document, runAt string, result *lattes.FileResult) {
	for _, block := range profile.Sections {
		section := lattes.Section{
			Label:         block.Label,
			Category:      block.Category,
			DeclaredCount: block.DeclaredCount,
			Records:       []*lattes.Record{},
		}

		extractor := p.Extractors.Get(block.Category)
		for _, item := range block.Items {
			rec := extractor.Extract(item)
			rec.Source = &lattes.Provenance{
				File:        result.File,
				SubjectID:   doc.Subject.LattesID,
				Section:     block.Label,
				ExtractedAt: runAt,
			}
			section.Records = append(section.Records, rec)
		}

		if missed := block.DeclaredCount - len(block.Items); missed > 0 {
			doc.Metadata.ParseErrors += missed
			doc.Metadata.Warnings = append(doc.Metadata.Warnings,
				fmt.Sprintf("section %q: %d of %d declared items could not be parsed",
					block.Label, missed, block.DeclaredCount))
		}

		doc.Sections = append(doc.Sections, section)
	}
}

// filterSections applies the year filter. Kept, excluded-by-filter, and
// missing-year are disjoint outcomes counted separately; sections emptied
// by the filter are retained with zero records.
func (p *Processor) filterSections(doc *lattes.Document, result *lattes.FileResult) {
	for i := range doc.Sections {
		kept := []*lattes.Record{}
		for _, rec := range doc.Sections[i].Records {
			switch p.Filter.Outcome(rec.Year) {
			case lattes.YearKept:
				kept = append(kept, rec)
			case lattes.YearExcluded:
				result.ExcludedByFilter++
			case lattes.YearMissing:
				result.MissingYear++
			}
		}
		doc.Sections[i].Records = kept
	}
	doc.Metadata.ExcludedByFilter = result.ExcludedByFilter
	doc.Metadata.MissingYear = result.MissingYear
}

// classifyRecords runs the retained records through the fingerprint index,
// counting new / changed / unchanged sightings plus within-document
// duplicates. Without an index only duplicates are counted.
func (p *Processor) classifyRecords(ctx context.Context, doc *lattes.Document, runAt string, result *lattes.FileResult) error {
	seen := make(map[string]struct{})

	for _, sec := range doc.Sections {
		for _, rec := range sec.Records {
			if _, dup := seen[rec.Fingerprint]; dup {
				result.DuplicateRecords++
				continue
			}
			seen[rec.Fingerprint] = struct{}{}

			if p.Index == nil {
				continue
			}
			outcome, err := p.Index.Observe(ctx, lattes.IndexEntry{
				Fingerprint: rec.Fingerprint,
				SubjectID:   doc.Subject.LattesID,
				Category:    rec.Category,
				FieldHash:   lattes.FieldHash(rec),
				LastSeen:    runAt,
			})
			if err != nil {
				return err
			}
			switch outcome {
			case lattes.IndexNew:
				result.NewRecords++
			case lattes.IndexChanged:
				result.ChangedRecords++
			case lattes.IndexUnchanged:
				result.UnchangedRecords++
			}
		}
	}
	return nil
}

// resolveSubject gives the filename-encoded Lattes ID priority over the one
// found inside the document.
func resolveSubject(subject lattes.Subject, filename string) lattes.Subject {
	if id := fs.SubjectIDFromFilename(filename); id != "" {
		subject.LattesID = id
	}
	return subject
}

func (p *Processor) runTimestamp() string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return now().UTC().Format(time.RFC3339)
}

func (p *Processor) notify(event ProgressEvent) {
	if p.Progress != nil {
		p.Progress(event)
	}
}

func failed(result lattes.FileResult, stage lattes.Stage, err error) lattes.FileResult {
	result.Stage = stage
	result.Error = lattes.ErrorMessage(err)
	return result
}

