package mock

import (
	"context"

	"github.com/KikaPereira03/feedextract"
)

var _ feedextract.DatasetService = (*DatasetService)(nil)

// DatasetService is a mock implementation of feedextract.DatasetService.
type DatasetService struct {
	AddPostFn   func(ctx context.Context, post *feedextract.Post) (bool, error)
	RecordRunFn func(ctx context.Context, run *feedextract.Run) error
}

func (s *DatasetService) AddPost(ctx context.Context, post *feedextract.Post) (bool, error) {
	return s.AddPostFn(ctx, post)
}

func (s *DatasetService) RecordRun(ctx context.Context, run *feedextract.Run) error {
	return s.RecordRunFn(ctx, run)
}
