package main

import (
	"context"
	"io"

	"github.com/jpsouza/lattes"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Segmenter  lattes.Segmenter
	Extractors lattes.ExtractorRegistry
	Validator  lattes.SchemaValidator
	Index      lattes.FingerprintIndex
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Batch      BatchCmd      `cmd:"" help:"Process a directory of profile exports into JSON documents"`
	Parse      ParseCmd      `cmd:"" help:"Parse a single profile export and print the document"`
	Categories CategoriesCmd `cmd:"" help:"List the production categories with specific extractors"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	InputDir  string `arg:"" optional:"" help:"Directory of profile HTML exports"`
	OutputDir string `arg:"" optional:"" help:"Output directory (replaced atomically)"`
	Years     string `short:"y" help:"Publication year filter: 'all', years, or ranges (e.g. 2019-2021,2024)"`
	Schema    string `help:"External JSON schema file (default: embedded schema)"`
	Index     string `help:"Fingerprint index database for change detection"`
	Config    string `short:"c" help:"YAML configuration file; explicit flags win"`
	Verbose   bool   `short:"v" help:"Log pipeline decisions"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" help:"Profile HTML export"`
	Category string `help:"Treat the file as a single-section fixture for this label"`
	Schema   string `help:"External JSON schema file (default: embedded schema)"`
	Verbose  bool   `short:"v" help:"Log pipeline decisions"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}
