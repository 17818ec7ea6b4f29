package main

import (
	"fmt"
	"path/filepath"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/batch"
	"github.com/jpsouza/lattes/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	if c.InputDir == "" || c.OutputDir == "" {
		return lattes.Errorf(lattes.EINVALID, "input and output directories are required (arguments or config file)")
	}

	years, err := lattes.ParseYears(c.Years)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lattes.ErrorMessage(err))
		return err
	}

	outDir := filepath.Clean(c.OutputDir)
	store := fs.NewStore(filepath.Dir(outDir), filepath.Base(outDir))

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d profile exports\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.File, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	processor := &batch.Processor{
		Segmenter:  deps.Segmenter,
		Extractors: deps.Extractors,
		Validator:  deps.Validator,
		Store:      store,
		Reports:    store,
		Index:      deps.Index,
		Filter:     lattes.NewYearFilter(years),
		Progress:   progress,
		SchemaPath: c.Schema,
	}

	summary, err := processor.Run(deps.Ctx, c.InputDir, outDir)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", lattes.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d files: %d succeeded, %d failed (%d records)\n",
		summary.TotalFiles, summary.Succeeded, summary.Failed, summary.TotalItems)
	fmt.Fprintf(deps.Stdout, "Output written to %s\n", outDir)

	return nil
}
