package main

import (
	"fmt"
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/KikaPereira03/feedextract/fs"
)

// Run executes the consolidate command: load extracted records and merge
// them into the dataset, skipping duplicates.
func (c *ConsolidateCmd) Run(deps *Dependencies) error {
	posts, err := fs.ReadPosts(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedextract.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintf(deps.Stdout, "No post records found in %q.\n", c.Dir)
		return nil
	}

	run := &feedextract.Run{StartedAt: time.Now().UTC()}
	for _, post := range posts {
		inserted, err := deps.Dataset.AddPost(deps.Ctx, post)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", feedextract.ErrorMessage(err))
			return err
		}
		if inserted {
			run.Inserted++
		} else {
			run.Skipped++
		}
	}

	if err := deps.Dataset.RecordRun(deps.Ctx, run); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Consolidated %d records: %d inserted, %d duplicates skipped.\n",
		len(posts), run.Inserted, run.Skipped)
	return nil
}
