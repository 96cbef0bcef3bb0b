package feedextract

import (
	"encoding/json"
)

// Media type tags as they appear on the wire.
const (
	MediaTypeNone     = "none"
	MediaTypeVideo    = "video"
	MediaTypeCarousel = "carousel"
	MediaTypeImage    = "image"
)

// Media is a tagged variant over the media kinds a post can carry.
// Exactly one variant is active per post. The set of implementations is
// sealed: NoMedia, VideoMedia, CarouselMedia, ImageMedia.
type Media interface {
	// MediaType returns the variant's wire tag.
	MediaType() string
}

// NoMedia marks a post with no detected media.
type NoMedia struct{}

// MediaType returns the variant's wire tag.
func (NoMedia) MediaType() string { return MediaTypeNone }

// MarshalJSON encodes the variant as a tagged object.
func (NoMedia) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{MediaTypeNone})
}

// VideoMedia describes an attached video player.
type VideoMedia struct {
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
}

// MediaType returns the variant's wire tag.
func (VideoMedia) MediaType() string { return MediaTypeVideo }

// MarshalJSON encodes the variant as a tagged object.
func (m VideoMedia) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Thumbnail string `json:"thumbnail"`
		Duration  string `json:"duration"`
	}{MediaTypeVideo, m.Thumbnail, m.Duration})
}

// CarouselMedia describes an attached document/carousel viewer.
type CarouselMedia struct {
	Title string `json:"title"`
}

// MediaType returns the variant's wire tag.
func (CarouselMedia) MediaType() string { return MediaTypeCarousel }

// MarshalJSON encodes the variant as a tagged object.
func (m CarouselMedia) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	}{MediaTypeCarousel, m.Title})
}

// ImageMedia describes one or more attached feed images.
type ImageMedia struct {
	URLs []string `json:"urls"`
}

// MediaType returns the variant's wire tag.
func (ImageMedia) MediaType() string { return MediaTypeImage }

// MarshalJSON encodes the variant as a tagged object.
func (m ImageMedia) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string   `json:"type"`
		URLs []string `json:"urls"`
	}{MediaTypeImage, m.URLs})
}

// UnmarshalMedia decodes a tagged media object back into its variant.
// Absent or null input yields nil; an empty or "none" tag yields NoMedia.
func UnmarshalMedia(data []byte) (Media, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, Errorf(EINVALID, "malformed media descriptor: %v", err)
	}
	switch probe.Type {
	case "", MediaTypeNone:
		return NoMedia{}, nil
	case MediaTypeVideo:
		var m VideoMedia
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, Errorf(EINVALID, "malformed video descriptor: %v", err)
		}
		return m, nil
	case MediaTypeCarousel:
		var m CarouselMedia
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, Errorf(EINVALID, "malformed carousel descriptor: %v", err)
		}
		return m, nil
	case MediaTypeImage:
		var m ImageMedia
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, Errorf(EINVALID, "malformed image descriptor: %v", err)
		}
		return m, nil
	}
	return nil, Errorf(EINVALID, "unknown media type %q", probe.Type)
}

// postJSON mirrors Post with raw media payloads for decoding.
type postJSON struct {
	ID              int               `json:"id"`
	PostType        string            `json:"post_type"`
	Date            string            `json:"date"`
	Content         string            `json:"content"`
	Slug            string            `json:"slug"`
	Media           json.RawMessage   `json:"media"`
	Author          Identity          `json:"author"`
	Engagement      EngagementCounts  `json:"social_engagement"`
	ReposterComment string            `json:"reposter_comment"`
	Original        *originalPostJSON `json:"original_post"`
}

type originalPostJSON struct {
	Author  Identity        `json:"author"`
	Content string          `json:"content"`
	Slug    string          `json:"slug"`
	Media   json.RawMessage `json:"media"`
}

// UnmarshalJSON decodes a post record, reconstructing the media variants
// from their tagged objects.
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw postJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	media, err := UnmarshalMedia(raw.Media)
	if err != nil {
		return err
	}

	*p = Post{
		ID:              raw.ID,
		PostType:        raw.PostType,
		Date:            raw.Date,
		Content:         raw.Content,
		Slug:            raw.Slug,
		Media:           media,
		Author:          raw.Author,
		Engagement:      raw.Engagement,
		ReposterComment: raw.ReposterComment,
	}

	if raw.Original != nil {
		origMedia, err := UnmarshalMedia(raw.Original.Media)
		if err != nil {
			return err
		}
		p.Original = &OriginalPost{
			Author:  raw.Original.Author,
			Content: raw.Original.Content,
			Slug:    raw.Original.Slug,
			Media:   origMedia,
		}
	}

	return nil
}
