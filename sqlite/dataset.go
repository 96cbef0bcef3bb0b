package sqlite

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/KikaPereira03/feedextract/bloom"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ feedextract.DatasetService = (*DatasetService)(nil)

var hashtagRE = regexp.MustCompile(`#(\w+)`)

// DatasetService implements feedextract.DatasetService using SQLite.
// It flattens each post record into one dataset row with derived
// features (hashtags, engagement score) and skips rows whose
// duplicate-detection key already exists. Core post fields are stored
// as extracted, never mutated.
type DatasetService struct {
	db *DB

	// seen screens dedup keys: a negative test proves the key is new
	// and skips the existence query. Primed from the table on first use.
	seen   *bloom.Filter
	primed bool
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(db *DB) *DatasetService {
	return &DatasetService{
		db:   db,
		seen: bloom.NewFilter(100_000, 0.001),
	}
}

// AddPost inserts the post into the dataset unless its dedup key already
// exists. It reports whether a row was inserted.
func (s *DatasetService) AddPost(ctx context.Context, post *feedextract.Post) (bool, error) {
	if err := post.Validate(); err != nil {
		return false, err
	}
	if err := s.prime(ctx); err != nil {
		return false, err
	}

	row := flatten(post)

	if s.seen.Test(row.dedupeKey) {
		// Possible duplicate; the table is the authority.
		var n int
		err := s.db.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM dataset_posts WHERE dedupe_key = ?
		`, row.dedupeKey).Scan(&n)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dataset_posts (
			id, dedupe_key, post_type, date, slug,
			author_name, author_headline, author_slug, author_pic,
			content, content_fingerprint, reposter_comment, hashtags,
			likes, comments, reposts, engagement_score,
			media_type, media_urls, media_duration, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), row.dedupeKey, post.PostType, post.Date, row.slug,
		row.author.Name, row.author.Headline, row.author.Slug, row.author.PictureURL,
		row.content, row.fingerprint, post.ReposterComment, row.hashtags,
		post.Engagement.Likes, post.Engagement.Comments, post.Engagement.Reposts, row.score,
		row.mediaType, row.mediaURLs, row.mediaDuration,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	s.seen.Add(row.dedupeKey)
	return true, nil
}

// RecordRun persists the summary of one consolidation invocation.
func (s *DatasetService) RecordRun(ctx context.Context, run *feedextract.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, inserted, skipped)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.StartedAt.Format(time.RFC3339), run.Inserted, run.Skipped)
	return err
}

// prime loads the existing dedup keys into the screening filter once.
func (s *DatasetService) prime(ctx context.Context) error {
	if s.primed {
		return nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT dedupe_key FROM dataset_posts`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return err
		}
		s.seen.Add(key)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	s.primed = true
	return nil
}

// datasetRow holds the flattened, derived view of one post record.
type datasetRow struct {
	dedupeKey     string
	author        feedextract.Identity
	content       string
	fingerprint   string
	slug          string
	hashtags      string
	score         int
	mediaType     string
	mediaURLs     string
	mediaDuration string
}

// flatten derives the dataset row for a post. For reposts the acting
// author is the resharing identity while the canonical body, slug and
// media come from the nested original post.
func flatten(post *feedextract.Post) datasetRow {
	row := datasetRow{
		author:  post.Author,
		content: post.Body(),
		slug:    post.Slug,
		score:   engagementScore(post.Engagement),
	}

	media := post.Media
	if post.PostType == feedextract.PostTypeRepost && post.Original != nil {
		row.slug = post.Original.Slug
		media = post.Original.Media
	}

	row.fingerprint = feedextract.ContentFingerprint(row.content)
	row.dedupeKey = feedextract.DedupeKey(row.author.Name, post.Date, row.fingerprint)
	row.hashtags = strings.Join(hashtags(row.content), ", ")
	row.mediaType, row.mediaURLs, row.mediaDuration = flattenMedia(media)
	return row
}

// engagementScore weighs reposts double: a reshare spreads the post to a
// new audience, a like does not.
func engagementScore(e feedextract.EngagementCounts) int {
	return e.Likes + e.Comments + 2*e.Reposts
}

// hashtags extracts the bare hashtag words from a body text.
func hashtags(content string) []string {
	var tags []string
	for _, m := range hashtagRE.FindAllStringSubmatch(content, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// flattenMedia reduces a media variant to the dataset columns.
func flattenMedia(media feedextract.Media) (mediaType, urls, duration string) {
	switch m := media.(type) {
	case feedextract.VideoMedia:
		return feedextract.MediaTypeVideo, m.Thumbnail, m.Duration
	case feedextract.CarouselMedia:
		return feedextract.MediaTypeCarousel, m.Title, ""
	case feedextract.ImageMedia:
		return feedextract.MediaTypeImage, strings.Join(m.URLs, ", "), ""
	default:
		return feedextract.MediaTypeNone, "", ""
	}
}
