package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/batch"
	"github.com/jpsouza/lattes/extract"
	"github.com/jpsouza/lattes/goquery"
	"github.com/jpsouza/lattes/jsonschema"
	latslog "github.com/jpsouza/lattes/slog"
	"github.com/jpsouza/lattes/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fingerprint index database, opened only when the batch command asks
	// for one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lattes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lattes --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Flags given explicitly on the command line win over the config file.
	if cmd == "batch" && cli.Batch.Config != "" {
		cfg, err := batch.LoadConfig(cli.Batch.Config)
		if err != nil {
			return err
		}
		applyConfig(&cli.Batch, cfg)
	}

	verbose := cli.Batch.Verbose || cli.Parse.Verbose
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Segmenter = latslog.NewLoggingSegmenter(goquery.NewSegmenter(), logger)
	deps.Extractors = latslog.NewLoggingRegistry(extract.NewDefaultRegistry(), logger)

	validator, err := newValidator(schemaPath(cli, cmd))
	if err != nil {
		return err
	}
	deps.Validator = latslog.NewLoggingValidator(validator, logger)

	if cmd == "batch" && cli.Batch.Index != "" {
		m.DB = sqlite.NewDB(cli.Batch.Index)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open index at %q: %w", cli.Batch.Index, err)
		}
		defer m.Close()

		index, err := sqlite.NewIndex(ctx, m.DB)
		if err != nil {
			return err
		}
		deps.Index = index
	}

	return kongCtx.Run(deps)
}

// applyConfig fills command fields that were not set on the command line.
func applyConfig(c *BatchCmd, cfg *batch.Config) {
	if c.InputDir == "" {
		c.InputDir = cfg.InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = cfg.OutputDir
	}
	if c.Years == "" {
		c.Years = cfg.Years
	}
	if c.Schema == "" {
		c.Schema = cfg.SchemaPath
	}
	if c.Index == "" {
		c.Index = cfg.IndexPath
	}
	if !c.Verbose {
		c.Verbose = cfg.Verbose
	}
}

func schemaPath(cli *CLI, cmd string) string {
	switch cmd {
	case "batch":
		return cli.Batch.Schema
	case "parse":
		return cli.Parse.Schema
	}
	return ""
}

func newValidator(path string) (lattes.SchemaValidator, error) {
	if path != "" {
		v, err := jsonschema.NewValidatorFromFile(path)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := jsonschema.NewValidator()
	if err != nil {
		return nil, err
	}
	return v, nil
}
