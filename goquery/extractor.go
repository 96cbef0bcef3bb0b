// Package goquery implements the post extraction engine over goquery
// document trees. It segments a saved feed snapshot into content nodes,
// classifies each node as post or repost, and routes it through the
// author, content, media, timestamp and engagement resolvers.
package goquery

import (
	"math/rand"
	"strings"
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
)

// Defaults for the record assembler.
const (
	DefaultBaseID   = 1
	DefaultMaxPosts = 10
)

// Ensure Extractor implements feedextract.Extractor at compile time.
var _ feedextract.Extractor = (*Extractor)(nil)

// Extractor extracts post records from a feed snapshot document.
// A zero-configured Extractor from NewExtractor processes up to
// DefaultMaxPosts nodes with ids starting at DefaultBaseID.
//
// Extractor is not safe for concurrent use: the jitter source is a plain
// rand.Rand. Callers processing documents in parallel use one Extractor
// per document.
type Extractor struct {
	// BaseID is assigned to the first extracted post; subsequent posts
	// get strictly increasing, dense ids.
	BaseID int

	// MaxPosts caps how many content nodes are extracted per document.
	MaxPosts int

	// Now supplies the current instant for timestamp resolution.
	Now func() time.Time

	// Rand supplies jitter for relative-age timestamp reconstruction.
	// Tests inject a seeded source for reproducible output.
	Rand *rand.Rand

	// Overrides is the data-quality exception table applied as the
	// last-resort original-author strategy.
	Overrides []Override
}

// NewExtractor returns an Extractor with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{
		BaseID:    DefaultBaseID,
		MaxPosts:  DefaultMaxPosts,
		Now:       time.Now,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Overrides: DefaultOverrides(),
	}
}

// Extract parses the snapshot and returns one post record per content
// node, in document order, capped at MaxPosts. Per-field resolution
// failures degrade to empty/zero values and never abort the batch; only a
// document-level parse failure returns an error.
func (e *Extractor) Extract(html string) ([]*feedextract.Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, feedextract.Errorf(feedextract.EINVALID, "failed to parse document: %v", err)
	}

	var posts []*feedextract.Post
	doc.Find(selPost).EachWithBreak(func(i int, node *goquery.Selection) bool {
		if i >= e.MaxPosts {
			return false
		}
		posts = append(posts, e.extractPost(e.BaseID+i, node))
		return true
	})

	return posts, nil
}

// extractPost assembles one post record from a single content node.
func (e *Extractor) extractPost(id int, node *goquery.Selection) *feedextract.Post {
	repost := isRepost(node)
	date := e.resolveTimestamp(node)
	engagement := extractEngagement(node)
	body, commentary := resolveContent(node)
	media := classifyMedia(node)

	if repost {
		reposter := resolveReposter(node)
		post := &feedextract.Post{
			ID:         id,
			PostType:   feedextract.PostTypeRepost,
			Date:       date,
			Author:     reposter,
			Engagement: engagement,
			Original: &feedextract.OriginalPost{
				Author:  resolveOriginalAuthor(node, body, reposter.Name, e.Overrides),
				Content: body,
				Slug:    feedextract.PostSlug(body),
				Media:   media,
			},
		}
		// The same text must not be recorded twice under two fields.
		if commentary != "" &&
			feedextract.FoldForComparison(commentary) != feedextract.FoldForComparison(body) {
			post.ReposterComment = commentary
		}
		return post
	}

	return &feedextract.Post{
		ID:         id,
		PostType:   feedextract.PostTypeOriginal,
		Date:       date,
		Content:    body,
		Slug:       feedextract.PostSlug(body),
		Media:      media,
		Author:     resolvePostAuthor(node),
		Engagement: engagement,
	}
}

// text returns the whitespace-normalized text of the first element in sel.
func text(sel *goquery.Selection) string {
	return feedextract.NormalizeWhitespace(sel.First().Text())
}
