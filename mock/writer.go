package mock

import (
	"context"

	"github.com/KikaPereira03/feedextract"
)

var _ feedextract.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of feedextract.PostWriter.
type PostWriter struct {
	WritePostFn func(ctx context.Context, post *feedextract.Post) error
}

func (w *PostWriter) WritePost(ctx context.Context, post *feedextract.Post) error {
	return w.WritePostFn(ctx, post)
}
