package annotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/annothub/annotator-backend/internal/domain"
)

// UpdatePosition overwrites the structured payload of an annotation, e.g.
// after a drawing was shifted. Returns false without error when the
// annotation does not exist.
func (s *Service) UpdatePosition(ctx context.Context, annotationID int64, newData json.RawMessage) (bool, error) {
	err := s.annotations.UpdateData(ctx, annotationID, newData)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update annotation data: %w", err)
	}

	s.log.InfoContext(ctx, "annotation position updated",
		slog.Int64("annotation_id", annotationID),
	)

	return true, nil
}
