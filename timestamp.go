package feedextract

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the output format for all resolved timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// activityIDRE matches the opaque platform activity identifier embedded in
// attributes like data-urn="urn:li:activity:7123456789012345678".
var activityIDRE = regexp.MustCompile(`urn:li:activity:(\d+)`)

// activityShiftWidths are the candidate bit-widths tried when decoding an
// activity identifier into an instant. The primary width is tried first;
// the alternates cover observed drift across document variants. The decode
// is a reverse-engineered heuristic with no authoritative specification,
// so the relative-age fallback always remains available.
var activityShiftWidths = []uint{22, 23, 24, 21}

// ParseActivityID extracts the numeric activity identifier from text.
func ParseActivityID(text string) (uint64, bool) {
	m := activityIDRE.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DecodeActivityTime decodes an activity identifier into an absolute
// instant by right-shifting the id by each candidate bit-width and reading
// the result as milliseconds since the Unix epoch. The first candidate
// that lands strictly between the epoch and now wins.
func DecodeActivityTime(id uint64, now time.Time) (time.Time, bool) {
	epoch := time.Unix(0, 0)
	for _, width := range activityShiftWidths {
		t := time.UnixMilli(int64(id >> width))
		if t.After(epoch) && t.Before(now) {
			return t, true
		}
	}
	return time.Time{}, false
}

// relativeAgeRE matches relative-age strings like "6h", "3d", "2w", "5mo",
// "1y" (optionally with whitespace between magnitude and unit).
var relativeAgeRE = regexp.MustCompile(`(\d+)\s*(mo|h|d|w|y)`)

// Jitter bounds per relative-age unit. Many posts share the same coarse
// relative age, so identical timestamps would collide downstream.
const (
	hourJitter  = 30 * time.Minute
	dayJitter   = 12 * time.Hour
	weekJitter  = 3 * 24 * time.Hour
	monthJitter = 15 * 24 * time.Hour
	yearJitter  = 45 * 24 * time.Hour
)

// ResolveRelativeTime reconstructs an instant from a relative-age string
// ("3d", "5mo", ...) anchored at now, with bounded random jitter scaled to
// the unit. Month and year arithmetic normalizes the month index modulo 12
// with year borrow. An age string matching no known unit yields now
// unmodified.
func ResolveRelativeTime(age string, now time.Time, rng *rand.Rand) time.Time {
	m := relativeAgeRE.FindStringSubmatch(strings.ToLower(age))
	if len(m) < 3 {
		return now
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return now
	}

	switch m[2] {
	case "h":
		return now.Add(-time.Duration(n) * time.Hour).Add(jitter(rng, hourJitter))
	case "d":
		return now.AddDate(0, 0, -n).Add(jitter(rng, dayJitter))
	case "w":
		return now.AddDate(0, 0, -7*n).Add(jitter(rng, weekJitter))
	case "mo":
		month := int(now.Month()) - n
		year := now.Year()
		for month <= 0 {
			month += 12
			year--
		}
		t := time.Date(year, time.Month(month), now.Day(),
			now.Hour(), now.Minute(), now.Second(), 0, now.Location())
		return t.Add(jitter(rng, monthJitter))
	case "y":
		t := time.Date(now.Year()-n, now.Month(), now.Day(),
			now.Hour(), now.Minute(), now.Second(), 0, now.Location())
		return t.Add(jitter(rng, yearJitter))
	}
	return now
}

// jitter returns a uniformly distributed duration in (-bound, +bound).
func jitter(rng *rand.Rand, bound time.Duration) time.Duration {
	if rng == nil || bound <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(2*bound))) - bound
}
