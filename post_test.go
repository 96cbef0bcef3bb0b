package feedextract_test

import (
	"testing"

	"github.com/KikaPereira03/feedextract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	t.Run("derives the slug from the name", func(t *testing.T) {
		t.Parallel()

		identity := feedextract.NewIdentity("Jane Doe")
		assert.Equal(t, "Jane Doe", identity.Name)
		assert.Equal(t, "jane-doe", identity.Slug)
	})

	t.Run("empty name yields empty slug", func(t *testing.T) {
		t.Parallel()

		identity := feedextract.NewIdentity("")
		assert.Empty(t, identity.Slug)
	})
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid original post", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{ID: 1, PostType: feedextract.PostTypeOriginal}
		assert.NoError(t, post.Validate())
	})

	t.Run("valid repost", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{
			ID:       2,
			PostType: feedextract.PostTypeRepost,
			Original: &feedextract.OriginalPost{Content: "shared"},
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("repost without nested original fails", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{ID: 3, PostType: feedextract.PostTypeRepost}
		err := post.Validate()
		require.Error(t, err)
		assert.Equal(t, feedextract.EINVALID, feedextract.ErrorCode(err))
	})

	t.Run("original post with nested original fails", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{
			ID:       4,
			PostType: feedextract.PostTypeOriginal,
			Original: &feedextract.OriginalPost{},
		}
		assert.Error(t, post.Validate())
	})

	t.Run("unknown post type fails", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{ID: 5, PostType: "story"}
		assert.Error(t, post.Validate())
	})
}

func TestPostBody(t *testing.T) {
	t.Parallel()

	t.Run("original post body is the content field", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{PostType: feedextract.PostTypeOriginal, Content: "hello"}
		assert.Equal(t, "hello", post.Body())
	})

	t.Run("repost body is the nested original content", func(t *testing.T) {
		t.Parallel()

		post := &feedextract.Post{
			PostType: feedextract.PostTypeRepost,
			Original: &feedextract.OriginalPost{Content: "shared body"},
		}
		assert.Equal(t, "shared body", post.Body())
	})
}

func TestContentFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("fixed width hex", func(t *testing.T) {
		t.Parallel()

		fp := feedextract.ContentFingerprint("some body text")
		assert.Len(t, fp, 16)
		assert.Regexp(t, "^[0-9a-f]{16}$", fp)
	})

	t.Run("fold-equal bodies share a fingerprint", func(t *testing.T) {
		t.Parallel()

		a := feedextract.ContentFingerprint("Big #Launch Day")
		b := feedextract.ContentFingerprint("big launch  day")
		assert.Equal(t, a, b)
	})

	t.Run("different bodies differ", func(t *testing.T) {
		t.Parallel()

		a := feedextract.ContentFingerprint("first post")
		b := feedextract.ContentFingerprint("second post")
		assert.NotEqual(t, a, b)
	})
}

func TestDedupeKey(t *testing.T) {
	t.Parallel()

	t.Run("deterministic composition", func(t *testing.T) {
		t.Parallel()

		a := feedextract.DedupeKey("Jane Doe", "2025-01-02 03:04:05", "abcdef0123456789")
		b := feedextract.DedupeKey("Jane Doe", "2025-01-02 03:04:05", "abcdef0123456789")
		assert.Equal(t, a, b)
	})

	t.Run("fields do not bleed into each other", func(t *testing.T) {
		t.Parallel()

		a := feedextract.DedupeKey("ab", "c", "d")
		b := feedextract.DedupeKey("a", "bc", "d")
		assert.NotEqual(t, a, b)
	})
}
