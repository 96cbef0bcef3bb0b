// Package fs provides file-based storage for extracted post records.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KikaPereira03/feedextract"
)

// PostFileName returns the file name a post record is persisted under.
// Example: sequence id 7 → Post_7.json
func PostFileName(id int) string {
	return fmt.Sprintf("Post_%d.json", id)
}

// Ensure Writer implements feedextract.PostWriter at compile time.
var _ feedextract.PostWriter = (*Writer)(nil)

// Writer writes post records as individual JSON files named by sequence
// id to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePost writes one post record to disk as a pretty-printed JSON file.
func (w *Writer) WritePost(ctx context.Context, post *feedextract.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.baseDir, PostFileName(post.ID)), data, 0644)
}

// ReadPosts loads every Post_*.json record from a directory, ordered by
// file name. Files that do not decode as post records fail the read; the
// caller decides whether to skip the directory.
func ReadPosts(dir string) ([]*feedextract.Post, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "Post_*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var posts []*feedextract.Post
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var post feedextract.Post
		if err := json.Unmarshal(data, &post); err != nil {
			return nil, feedextract.Errorf(feedextract.EINVALID, "malformed post record %s: %v", filepath.Base(path), err)
		}
		posts = append(posts, &post)
	}
	return posts, nil
}
