package feedextract

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Post type values.
const (
	PostTypeOriginal = "post"
	PostTypeRepost   = "repost"
)

// Identity represents an acting author at one nesting level of a post.
type Identity struct {
	Name       string `json:"name"`
	PictureURL string `json:"pic"`
	Headline   string `json:"description,omitempty"`
	Slug       string `json:"slug"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// NewIdentity creates an Identity with the slug derived from the name.
// An empty name yields an empty slug.
func NewIdentity(name string) Identity {
	return Identity{Name: name, Slug: Slugify(name, SlugMaxLen)}
}

// EngagementCounts holds the numeric interaction counts for a post.
// Counts are derived purely from text and default to zero when absent.
type EngagementCounts struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Reposts  int `json:"reposts"`
}

// OriginalPost is the shared original content nested inside a repost.
type OriginalPost struct {
	Author  Identity `json:"author"`
	Content string   `json:"content"`
	Slug    string   `json:"slug"`
	Media   Media    `json:"media,omitempty"`
}

// Post is the root entity: one record per qualifying content node, fully
// populated in a single pass and immutable once assembled.
//
// For PostTypeOriginal records the body lives in Content/Slug/Media; for
// PostTypeRepost records Author is the resharing identity and the shared
// body lives in Original. ReposterComment is present only when non-empty
// and textually distinct from the original content under FoldForComparison.
type Post struct {
	ID              int              `json:"id"`
	PostType        string           `json:"post_type"`
	Date            string           `json:"date"`
	Content         string           `json:"content,omitempty"`
	Slug            string           `json:"slug,omitempty"`
	Media           Media            `json:"media,omitempty"`
	Author          Identity         `json:"author"`
	Engagement      EngagementCounts `json:"social_engagement"`
	ReposterComment string           `json:"reposter_comment,omitempty"`
	Original        *OriginalPost    `json:"original_post,omitempty"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	switch p.PostType {
	case PostTypeOriginal:
		if p.Original != nil {
			return Errorf(EINVALID, "original post must not carry a nested post")
		}
	case PostTypeRepost:
		if p.Original == nil {
			return Errorf(EINVALID, "repost requires a nested original post")
		}
	default:
		return Errorf(EINVALID, "unknown post type %q", p.PostType)
	}
	if p.ID < 0 {
		return Errorf(EINVALID, "post ID must be non-negative")
	}
	return nil
}

// Body returns the canonical body text of the post regardless of type.
func (p *Post) Body() string {
	if p.PostType == PostTypeRepost && p.Original != nil {
		return p.Original.Content
	}
	return p.Content
}

// ContentFingerprint computes a short fixed-width fingerprint of a
// canonical body text: a 16-hex-digit xxHash64 of the fold-normalized
// content. Downstream consolidation uses it in the dedup key.
func ContentFingerprint(content string) string {
	h := xxhash.Sum64String(FoldForComparison(content))
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// DedupeKey computes the deterministic duplicate-detection key the
// downstream consolidator uses for a record.
func DedupeKey(authorName, date, fingerprint string) string {
	return strings.Join([]string{authorName, date, fingerprint}, "\x1f")
}

// Run records one consolidation invocation.
type Run struct {
	ID        string
	StartedAt time.Time
	Inserted  int
	Skipped   int
}

// Extractor extracts post records from a saved feed snapshot. The engine
// consumes the document read-only and holds no cross-post state except the
// monotonic id counter and the extraction cap. Per-field resolution
// failures degrade to zero values; only a document-level parse failure
// returns an error.
type Extractor interface {
	Extract(html string) ([]*Post, error)
}

// PostWriter persists one post record. How records are persisted (one file
// per record, a database row, ...) is caller policy, not engine contract.
type PostWriter interface {
	WritePost(ctx context.Context, post *Post) error
}

// DatasetService merges post records into the consolidated dataset. It
// never mutates a post's core fields; it only flattens and derives.
type DatasetService interface {
	// AddPost inserts the post unless its dedup key already exists.
	// It reports whether a row was inserted.
	AddPost(ctx context.Context, post *Post) (bool, error)

	// RecordRun persists the summary of one consolidation invocation.
	RecordRun(ctx context.Context, run *Run) error
}
