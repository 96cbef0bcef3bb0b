package mock

import (
	"github.com/KikaPereira03/feedextract"
)

var _ feedextract.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of feedextract.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*feedextract.Post, error)
}

func (e *Extractor) Extract(html string) ([]*feedextract.Post, error) {
	return e.ExtractFn(html)
}
