package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/KikaPereira03/feedextract/fs"
	"github.com/KikaPereira03/feedextract/sqlite"
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
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
	// SQLite dataset used by the consolidate command.
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
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		NewWriter: func(dir string) feedextract.PostWriter {
			return fs.NewWriter(dir)
		},
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("feedextract"),
		kong.Description("Extracts structured post records from saved social-feed snapshots."),
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
		return fmt.Errorf("no command specified. Run 'feedextract --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the dataset store only when the command needs it
	if cmd == "consolidate" {
		m.DB = sqlite.NewDB(cli.Consolidate.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open dataset at %q: %w", cli.Consolidate.DB, err)
		}
		defer m.Close()

		deps.Dataset = sqlite.NewDatasetService(m.DB)
	}

	return kongCtx.Run(deps)
}
