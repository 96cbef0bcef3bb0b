// Package zerolog provides logging decorators over the domain ports.
// The engine itself is log-free; attaching a decorator is optional and
// carries no behavioral dependency.
package zerolog

import (
	"time"

	"github.com/KikaPereira03/feedextract"
	"github.com/rs/zerolog"
)

// Ensure LoggingExtractor implements feedextract.Extractor.
var _ feedextract.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of the
// extraction outcome.
type LoggingExtractor struct {
	next   feedextract.Extractor
	logger zerolog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next feedextract.Extractor, logger zerolog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) ([]*feedextract.Post, error) {
	begin := time.Now()

	posts, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error().
			Str("code", feedextract.ErrorCode(err)).
			Msg("extraction failed")
		return nil, err
	}

	reposts := 0
	for _, p := range posts {
		if p.PostType == feedextract.PostTypeRepost {
			reposts++
		}
	}

	e.logger.Info().
		Int("posts", len(posts)).
		Int("reposts", reposts).
		Dur("duration", time.Since(begin)).
		Msg("extraction complete")

	return posts, nil
}
