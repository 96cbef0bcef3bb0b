package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
)

var (
	backgroundImageRE = regexp.MustCompile(`background-image:\s*url\(['"]?([^'")]+)['"]?\)`)
	durationClockRE   = regexp.MustCompile(`^(\d+):([0-5]\d)$`)
	durationISORE     = regexp.MustCompile(`PT(?:(\d+)M)?(?:(\d+)S)?`)
	durationMetaRE    = regexp.MustCompile(`"duration"\s*:\s*"(PT[^"]+)"`)
	bareSecondsRE     = regexp.MustCompile(`^\d+$`)
)

// classifyMedia determines the attached media kind for a content node.
// Checks are ordered and mutually exclusive; the first match wins:
// video, then carousel/document, then qualifying images, else none.
func classifyMedia(node *goquery.Selection) feedextract.Media {
	if hasAnyMarker(node, videoMarkers) {
		return feedextract.VideoMedia{
			Thumbnail: resolveVideoThumbnail(node),
			Duration:  resolveVideoDuration(node),
		}
	}

	if hasAnyMarker(node, carouselMarkers) {
		return feedextract.CarouselMedia{Title: resolveCarouselTitle(node)}
	}

	if urls := extractImageURLs(node); len(urls) > 0 {
		return feedextract.ImageMedia{URLs: urls}
	}

	return feedextract.NoMedia{}
}

func hasAnyMarker(node *goquery.Selection, markers []string) bool {
	for _, marker := range markers {
		if node.Find(marker).Length() > 0 {
			return true
		}
	}
	return false
}

// resolveVideoThumbnail checks the candidate regions for a poster
// attribute or a background-image style declaration.
func resolveVideoThumbnail(node *goquery.Selection) string {
	for _, sel := range videoThumbnailCandidates {
		candidate := node.Find(sel).First()
		if candidate.Length() == 0 {
			continue
		}
		if poster, ok := candidate.Attr("poster"); ok && poster != "" {
			return poster
		}
		if style, ok := candidate.Attr("style"); ok {
			if m := backgroundImageRE.FindStringSubmatch(style); len(m) == 2 {
				return m[1]
			}
		}
	}
	return ""
}

// resolveVideoDuration checks the candidate text regions, then the
// structured metadata block, and normalizes the result to M:SS.
func resolveVideoDuration(node *goquery.Selection) string {
	for _, sel := range videoDurationCandidates {
		if raw := text(node.Find(sel)); raw != "" {
			if d := normalizeDuration(raw); d != "" {
				return d
			}
		}
	}

	// Structured metadata block, when the snapshot preserved it.
	found := ""
	node.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := durationMetaRE.FindStringSubmatch(s.Text()); len(m) == 2 {
			found = normalizeDuration(m[1])
		}
		return found == ""
	})
	return found
}

// normalizeDuration converts a duration text to M:SS. Accepted inputs:
// an M:SS clock value, a bare seconds count, and an ISO-8601-style PTxMxS
// duration. Unrecognized input yields an empty string.
func normalizeDuration(raw string) string {
	raw = strings.TrimSpace(raw)

	if durationClockRE.MatchString(raw) {
		return raw
	}

	if bareSecondsRE.MatchString(raw) {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	}

	if m := durationISORE.FindStringSubmatch(raw); len(m) == 3 && strings.HasPrefix(raw, "PT") {
		mins, _ := strconv.Atoi(m[1])
		secs, _ := strconv.Atoi(m[2])
		if m[1] == "" && m[2] == "" {
			return ""
		}
		mins += secs / 60
		return fmt.Sprintf("%d:%02d", mins, secs%60)
	}

	return ""
}

// resolveCarouselTitle reads the viewer-frame title attribute, stripping
// the known prefix phrase, falling back to the title text region.
func resolveCarouselTitle(node *goquery.Selection) string {
	if title, ok := node.Find("iframe[title]").First().Attr("title"); ok {
		title = strings.TrimPrefix(title, carouselTitlePrefix)
		if title = feedextract.NormalizeWhitespace(title); title != "" {
			return title
		}
	}
	return text(node.Find(selCarouselTitleText))
}

// extractImageURLs collects qualifying feed image URLs, preserving
// document order and skipping non-feed images (avatars, icons).
func extractImageURLs(node *goquery.Selection) []string {
	var urls []string
	seen := make(map[string]bool)

	collect := func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || !strings.Contains(src, feedImageToken) || seen[src] {
			return
		}
		seen[src] = true
		urls = append(urls, src)
	}

	node.Find(selImageLink).Each(collect)
	node.Find(selImageAny).Each(collect)
	return urls
}
