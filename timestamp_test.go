package feedextract_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityID(t *testing.T) {
	t.Parallel()

	t.Run("extracts the numeric id from an activity urn", func(t *testing.T) {
		t.Parallel()

		id, ok := feedextract.ParseActivityID("urn:li:activity:7123456789012345678")
		require.True(t, ok)
		assert.Equal(t, uint64(7123456789012345678), id)
	})

	t.Run("extracts from surrounding attribute text", func(t *testing.T) {
		t.Parallel()

		id, ok := feedextract.ParseActivityID("urn:li:aggregate:(urn:li:activity:7000000000000000000)")
		require.True(t, ok)
		assert.Equal(t, uint64(7000000000000000000), id)
	})

	t.Run("no id in text", func(t *testing.T) {
		t.Parallel()

		_, ok := feedextract.ParseActivityID("urn:li:member:12345")
		assert.False(t, ok)
	})
}

func TestDecodeActivityTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("decodes an id carrying a millisecond instant", func(t *testing.T) {
		t.Parallel()

		want := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
		id := uint64(want.UnixMilli()) << 22

		got, ok := feedextract.DecodeActivityTime(id, now)
		require.True(t, ok)
		assert.Equal(t, want.UnixMilli(), got.UnixMilli())
	})

	t.Run("rejects ids that decode outside the valid window", func(t *testing.T) {
		t.Parallel()

		_, ok := feedextract.DecodeActivityTime(1024, now)
		assert.False(t, ok)
	})

	t.Run("falls through to an alternate width", func(t *testing.T) {
		t.Parallel()

		// With the primary width this id decodes into the future;
		// one width further right it lands inside the window.
		want := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
		id := uint64(want.UnixMilli()) << 23

		got, ok := feedextract.DecodeActivityTime(id, now)
		require.True(t, ok)
		assert.Equal(t, want.UnixMilli(), got.UnixMilli())
	})
}

func TestResolveRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("3d lands within half a day of three days ago and never exactly now", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			got := feedextract.ResolveRelativeTime("3d", now, rng)
			anchor := now.AddDate(0, 0, -3)
			assert.False(t, got.Before(anchor.Add(-12*time.Hour)), "iteration %d: %v", i, got)
			assert.False(t, got.After(anchor.Add(12*time.Hour)), "iteration %d: %v", i, got)
			assert.NotEqual(t, now, got)
		}
	})

	t.Run("2h lands within thirty minutes of two hours ago", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(2))
		got := feedextract.ResolveRelativeTime("2h", now, rng)
		anchor := now.Add(-2 * time.Hour)
		assert.False(t, got.Before(anchor.Add(-30*time.Minute)))
		assert.False(t, got.After(anchor.Add(30*time.Minute)))
	})

	t.Run("5mo shifts the calendar back five months within fifteen days", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(3))
		got := feedextract.ResolveRelativeTime("5mo", now, rng)
		anchor := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
		diff := got.Sub(anchor)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 15*24*time.Hour)
	})

	t.Run("month borrow crosses the year boundary", func(t *testing.T) {
		t.Parallel()

		january := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
		rng := rand.New(rand.NewSource(4))
		got := feedextract.ResolveRelativeTime("3mo", january, rng)
		anchor := time.Date(2024, 10, 10, 8, 0, 0, 0, time.UTC)
		diff := got.Sub(anchor)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 15*24*time.Hour)
		assert.Equal(t, 2024, got.Year())
	})

	t.Run("1y shifts the year", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(5))
		got := feedextract.ResolveRelativeTime("1y", now, rng)
		anchor := now.AddDate(-1, 0, 0)
		diff := got.Sub(anchor)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 45*24*time.Hour)
	})

	t.Run("unknown unit yields now unmodified", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(6))
		assert.Equal(t, now, feedextract.ResolveRelativeTime("just now", now, rng))
		assert.Equal(t, now, feedextract.ResolveRelativeTime("", now, rng))
	})

	t.Run("seeded sources reproduce the same instant", func(t *testing.T) {
		t.Parallel()

		a := feedextract.ResolveRelativeTime("2w", now, rand.New(rand.NewSource(7)))
		b := feedextract.ResolveRelativeTime("2w", now, rand.New(rand.NewSource(7)))
		assert.Equal(t, a, b)
	})
}
