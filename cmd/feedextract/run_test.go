package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KikaPereira03/feedextract"
	main "github.com/KikaPereira03/feedextract/cmd/feedextract"
	"github.com/KikaPereira03/feedextract/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDeps returns a Dependencies wired with buffers and a silent
// logger. The writer records every post passed to it.
func newTestDeps(stdout, stderr *bytes.Buffer) (*main.Dependencies, *[]*feedextract.Post, *[]string) {
	var written []*feedextract.Post
	var dirs []string

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: zerolog.Nop(),
		NewWriter: func(dir string) feedextract.PostWriter {
			dirs = append(dirs, dir)
			return &mock.PostWriter{
				WritePostFn: func(_ context.Context, post *feedextract.Post) error {
					written = append(written, post)
					return nil
				},
			}
		},
	}
	return deps, &written, &dirs
}

// writeSnapshot creates a snapshot file and returns its path.
func writeSnapshot(t *testing.T, dir, name, html string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

func TestRunCmd(t *testing.T) {
	t.Parallel()

	t.Run("extracts a snapshot and writes each record", func(t *testing.T) {
		t.Parallel()

		posts := []*feedextract.Post{
			{ID: 1, PostType: feedextract.PostTypeOriginal},
			{ID: 2, PostType: feedextract.PostTypeOriginal},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps, written, _ := newTestDeps(stdout, stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) ([]*feedextract.Post, error) {
				assert.Contains(t, html, "feed-shared-update-v2")
				return posts, nil
			},
		}

		input := writeSnapshot(t, t.TempDir(), "LatestPosts.html",
			`<div class="feed-shared-update-v2"></div>`)

		cmd := &main.RunCmd{Input: input, OutputDir: t.TempDir()}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, posts, *written)
		assert.Contains(t, stdout.String(), "DONE: 2 records saved")
		assert.Empty(t, stderr.String())
	})

	t.Run("defaults the output directory to the input's directory", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps, _, dirs := newTestDeps(stdout, stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(string) ([]*feedextract.Post, error) {
				return []*feedextract.Post{{ID: 1, PostType: feedextract.PostTypeOriginal}}, nil
			},
		}

		dir := t.TempDir()
		input := writeSnapshot(t, dir, "LatestPosts.html", "<html></html>")

		cmd := &main.RunCmd{Input: input}
		require.NoError(t, cmd.Run(deps))

		require.Len(t, *dirs, 1)
		assert.Equal(t, dir, (*dirs)[0])
	})

	t.Run("unreadable input fails", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps, _, _ := newTestDeps(stdout, stderr)

		cmd := &main.RunCmd{Input: filepath.Join(t.TempDir(), "missing.html")}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})

	t.Run("write failure aborts the command", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps, _, _ := newTestDeps(stdout, stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(string) ([]*feedextract.Post, error) {
				return []*feedextract.Post{{ID: 1, PostType: feedextract.PostTypeOriginal}}, nil
			},
		}
		deps.NewWriter = func(dir string) feedextract.PostWriter {
			return &mock.PostWriter{
				WritePostFn: func(context.Context, *feedextract.Post) error {
					return feedextract.Errorf(feedextract.EINTERNAL, "disk full")
				},
			}
		}

		input := writeSnapshot(t, t.TempDir(), "LatestPosts.html", "<html></html>")

		cmd := &main.RunCmd{Input: input}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, feedextract.EINTERNAL, feedextract.ErrorCode(err))
		assert.NotContains(t, stdout.String(), "DONE")
	})
}
