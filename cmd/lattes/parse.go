package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/fs"
	"github.com/jpsouza/lattes/goquery"
)

// Run executes the parse command: one export in, one document on stdout.
func (c *ParseCmd) Run(deps *Dependencies) error {
	markup, err := fs.ReadProfile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lattes.ErrorMessage(err))
		return err
	}

	profile, err := c.segment(deps, markup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lattes.ErrorMessage(err))
		return err
	}

	filename := filepath.Base(c.File)
	subject := profile.Subject
	if id := fs.SubjectIDFromFilename(filename); id != "" {
		subject.LattesID = id
	}

	extractedAt := time.Now().UTC().Format(time.RFC3339)
	doc := &lattes.Document{
		SchemaVersion: lattes.SchemaVersion,
		Subject:       subject,
		Sections:      []lattes.Section{},
		Metadata: lattes.ParseMetadata{
			SourceFile:  filename,
			ExtractedAt: extractedAt,
			Warnings:    []string{},
		},
	}

	for _, block := range profile.Sections {
		section := lattes.Section{
			Label:         block.Label,
			Category:      block.Category,
			DeclaredCount: block.DeclaredCount,
			Records:       []*lattes.Record{},
		}
		extractor := deps.Extractors.Get(block.Category)
		for _, item := range block.Items {
			rec := extractor.Extract(item)
			rec.Source = &lattes.Provenance{
				File:        filename,
				SubjectID:   subject.LattesID,
				Section:     block.Label,
				ExtractedAt: extractedAt,
			}
			section.Records = append(section.Records, rec)
		}
		doc.Sections = append(doc.Sections, section)
	}
	doc.Metadata.TotalItems = doc.TotalRecords()

	if err := deps.Validator.Validate(doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lattes.ErrorMessage(err))
		return err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(b))

	return nil
}

// segment parses the export either as a full profile or, with --category, as
// a single-section fixture for that label.
func (c *ParseCmd) segment(deps *Dependencies, markup string) (*lattes.Profile, error) {
	if c.Category == "" {
		return deps.Segmenter.Segment(markup)
	}
	block, err := goquery.NewSegmenter().SegmentSection(c.Category, markup)
	if err != nil {
		return nil, err
	}
	return &lattes.Profile{Sections: []lattes.SectionBlock{*block}}, nil
}
