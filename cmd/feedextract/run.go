package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Run executes the run command: extract one snapshot and write one JSON
// record per post.
func (c *RunCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %s\n", c.Input, err)
		return err
	}

	outputDir := c.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(c.Input)
	}

	extractor, err := deps.extractor(c.BaseID, c.MaxPosts, c.Overrides)
	if err != nil {
		return err
	}

	posts, err := extractor.Extract(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	writer := deps.NewWriter(outputDir)
	for _, post := range posts {
		if err := writer.WritePost(deps.Ctx, post); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "DONE: %d records saved in %q\n", len(posts), outputDir)
	return nil
}
