package annotation

import (
	"context"
	"fmt"

	"github.com/annothub/annotator-backend/internal/domain"
)

// Get loads a stored annotation. The record must exist; a missing row yields
// domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, annotationID int64) (*domain.Annotation, error) {
	a, err := s.annotations.Get(ctx, annotationID)
	if err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}
	return a, nil
}
