package main

import (
	"context"
	"io"

	"github.com/KikaPereira03/feedextract"
	gq "github.com/KikaPereira03/feedextract/goquery"
	feedlog "github.com/KikaPereira03/feedextract/zerolog"
	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	// Extractor, when set, replaces the per-command engine (tests).
	Extractor feedextract.Extractor

	// NewWriter constructs the post writer for an output directory.
	NewWriter func(dir string) feedextract.PostWriter

	// Dataset is wired for the consolidate command.
	Dataset feedextract.DatasetService
}

// extractor returns the injected extractor or builds the engine with the
// command's settings, wrapped in the logging decorator.
func (d *Dependencies) extractor(baseID, maxPosts int, overridesPath string) (feedextract.Extractor, error) {
	if d.Extractor != nil {
		return d.Extractor, nil
	}

	e := gq.NewExtractor()
	e.BaseID = baseID
	e.MaxPosts = maxPosts
	if overridesPath != "" {
		overrides, err := LoadOverrides(overridesPath)
		if err != nil {
			return nil, err
		}
		e.Overrides = append(e.Overrides, overrides...)
	}

	return feedlog.NewLoggingExtractor(e, d.Logger), nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run         RunCmd         `cmd:"" help:"Extract post records from one saved feed snapshot"`
	Batch       BatchCmd       `cmd:"" help:"Extract post records from every snapshot under a directory"`
	Consolidate ConsolidateCmd `cmd:"" help:"Merge extracted records into the consolidated dataset"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Input     string `arg:"" help:"Saved feed snapshot (HTML file)"`
	OutputDir string `arg:"" optional:"" help:"Output directory for Post_<id>.json records (defaults to the input's directory)"`
	BaseID    int    `default:"1" help:"Sequence id assigned to the first extracted post"`
	MaxPosts  int    `default:"10" help:"Extraction cap per document"`
	Overrides string `help:"YAML file with data-quality author overrides"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir         string `arg:"" help:"Base directory to search for snapshots"`
	Name        string `default:"LatestPosts.html" help:"Snapshot file name to look for"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent snapshot limit"`
	BaseID      int    `default:"1" help:"Sequence id assigned to the first post of each snapshot"`
	MaxPosts    int    `default:"10" help:"Extraction cap per document"`
	Overrides   string `help:"YAML file with data-quality author overrides"`
}

// ConsolidateCmd is the "consolidate" subcommand.
type ConsolidateCmd struct {
	Dir string `arg:"" help:"Directory containing Post_*.json records"`
	DB  string `default:"dataset.db" help:"SQLite dataset path"`
}
