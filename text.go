package feedextract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// SlugMaxLen is the default length bound for generated slugs.
const SlugMaxLen = 300

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	nonAlnumRE   = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeWhitespace collapses any run of whitespace into a single space
// and trims both ends. Empty input yields an empty string.
func NormalizeWhitespace(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// Slugify lowercases text, replaces every run of non-alphanumeric
// characters with a single hyphen, trims leading/trailing hyphens, and
// truncates to maxLen. The result contains only lowercase alphanumerics
// and internal hyphens.
func Slugify(text string, maxLen int) string {
	slug := nonAlnumRE.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	if maxLen >= 0 && len(slug) > maxLen {
		slug = slug[:maxLen]
		// Truncation can leave a dangling hyphen.
		slug = strings.TrimRight(slug, "-")
	}
	return slug
}

// ExtractNumber applies a capture pattern to text, strips comma grouping
// separators from the first capture group, and parses it as an integer.
// It returns 0 on no match or parse failure; it never fails the caller.
func ExtractNumber(text string, pattern *regexp.Regexp) int {
	m := pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PostSlug generates a URL-friendly slug from a post body: the first
// eight words, slugified with the default length bound.
func PostSlug(content string) string {
	if content == "" {
		return ""
	}
	words := strings.Fields(content)
	if len(words) > 8 {
		words = words[:8]
	}
	return Slugify(strings.Join(words, " "), SlugMaxLen)
}

// FoldForComparison folds text for the commentary distinctness check:
// lowercased, with all whitespace and '#' sigils removed. Two strings that
// fold equal describe the same body text.
func FoldForComparison(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '#' {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
}
