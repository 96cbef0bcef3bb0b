package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/KikaPereira03/feedextract"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command: find every snapshot under the base
// directory and extract each one, writing records next to its snapshot.
// Per-snapshot failures are logged and skipped; the command fails only if
// the walk fails or no snapshot succeeds.
func (c *BatchCmd) Run(deps *Dependencies) error {
	var snapshots []string
	err := filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == c.Name {
			snapshots = append(snapshots, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(deps.Stdout, "No %s files found under %q.\n", c.Name, c.Dir)
		return nil
	}

	var succeeded, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(c.Concurrency)
	for _, snapshot := range snapshots {
		snapshot := snapshot
		g.Go(func() error {
			if err := c.processSnapshot(deps, snapshot); err != nil {
				deps.Logger.Warn().Str("snapshot", snapshot).Err(err).Msg("snapshot skipped")
				failed.Add(1)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Fprintf(deps.Stdout, "Processed %d snapshots: %d succeeded, %d failed.\n",
		len(snapshots), succeeded.Load(), failed.Load())

	if succeeded.Load() == 0 {
		return feedextract.Errorf(feedextract.EINTERNAL, "all %d snapshots failed", failed.Load())
	}
	return nil
}

// processSnapshot extracts one snapshot and writes its records into the
// snapshot's own directory.
func (c *BatchCmd) processSnapshot(deps *Dependencies, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// One engine per snapshot: the jitter source is not safe for
	// concurrent use.
	extractor, err := deps.extractor(c.BaseID, c.MaxPosts, c.Overrides)
	if err != nil {
		return err
	}

	posts, err := extractor.Extract(string(data))
	if err != nil {
		return err
	}

	writer := deps.NewWriter(filepath.Dir(path))
	for _, post := range posts {
		if err := writer.WritePost(deps.Ctx, post); err != nil {
			return err
		}
	}
	return nil
}
