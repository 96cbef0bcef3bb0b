package feedextract_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/KikaPereira03/feedextract"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of whitespace to single spaces", func(t *testing.T) {
		t.Parallel()

		got := feedextract.NormalizeWhitespace("a\t b\n\n  c")
		assert.Equal(t, "a b c", got)
	})

	t.Run("trims ends", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", feedextract.NormalizeWhitespace("  hello \n"))
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, feedextract.NormalizeWhitespace(""))
		assert.Empty(t, feedextract.NormalizeWhitespace("   "))
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and hyphenates non-alphanumeric runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello-world-2025", feedextract.Slugify("Hello, World! 2025", 300))
	})

	t.Run("never yields leading or trailing hyphens", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", feedextract.Slugify("  ##Hello!! ", 300))
	})

	t.Run("truncates to the length bound without a dangling hyphen", func(t *testing.T) {
		t.Parallel()

		got := feedextract.Slugify("ab cd", 3)
		assert.Equal(t, "ab", got)
		assert.LessOrEqual(t, len(got), 3)
	})

	t.Run("deterministic and restricted to lowercase alphanumerics and hyphens", func(t *testing.T) {
		t.Parallel()

		inputs := []string{"Hello World", "über café", "a--b__c", "#Growth @ Work"}
		valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
		for _, input := range inputs {
			first := feedextract.Slugify(input, 300)
			assert.Equal(t, first, feedextract.Slugify(input, 300))
			if first != "" {
				assert.Regexp(t, valid, first, "input %q", input)
			}
		}
	})

	t.Run("empty input yields empty slug", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, feedextract.Slugify("", 300))
	})
}

func TestExtractNumber(t *testing.T) {
	t.Parallel()

	counterRE := regexp.MustCompile(`([\d,]+)`)

	t.Run("strips comma grouping separators", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1204, feedextract.ExtractNumber("1,204", counterRE))
	})

	t.Run("returns zero on no match", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, feedextract.ExtractNumber("no numbers here", counterRE))
		assert.Zero(t, feedextract.ExtractNumber("", counterRE))
	})

	t.Run("applies the capture pattern", func(t *testing.T) {
		t.Parallel()

		commentsRE := regexp.MustCompile(`([\d,]+)\s*comments?`)
		assert.Equal(t, 42, feedextract.ExtractNumber("42 comments on 3 shares", commentsRE))
		assert.Zero(t, feedextract.ExtractNumber("42 shares", commentsRE))
	})
}

func TestPostSlug(t *testing.T) {
	t.Parallel()

	t.Run("uses the first eight words", func(t *testing.T) {
		t.Parallel()

		content := "one two three four five six seven eight nine ten"
		assert.Equal(t, "one-two-three-four-five-six-seven-eight", feedextract.PostSlug(content))
	})

	t.Run("short content uses every word", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "big-news-today", feedextract.PostSlug("Big news today!"))
	})

	t.Run("empty content yields empty slug", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, feedextract.PostSlug(""))
	})
}

func TestFoldForComparison(t *testing.T) {
	t.Parallel()

	t.Run("ignores case, whitespace and hashtag sigils", func(t *testing.T) {
		t.Parallel()

		a := feedextract.FoldForComparison("Great #Launch  Day")
		b := feedextract.FoldForComparison("great launch day")
		assert.Equal(t, a, b)
	})

	t.Run("distinct text stays distinct", func(t *testing.T) {
		t.Parallel()

		a := feedextract.FoldForComparison("check this out")
		b := feedextract.FoldForComparison("completely different words")
		assert.NotEqual(t, a, b)
	})

	t.Run("folding is not plain lowering", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", feedextract.FoldForComparison("A b C"))
		assert.NotEqual(t, strings.ToLower("A b C"), feedextract.FoldForComparison("A b C"))
	})
}
