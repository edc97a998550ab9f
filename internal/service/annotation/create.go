package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/annothub/annotator-backend/internal/domain"
	"github.com/annothub/annotator-backend/pkg/ctxutil"
)

// Create inserts a new annotation attributed to the authenticated user and
// returns its ID.
func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	id, err := s.annotations.Create(ctx, &domain.Annotation{
		InstanceID: input.InstanceID,
		Page:       input.Page,
		UserID:     userID,
		TypeID:     input.TypeID,
		ItemID:     input.ItemID,
		Data:       input.Data,
	})
	if err != nil {
		return 0, fmt.Errorf("create annotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation created",
		slog.Int64("annotation_id", id),
		slog.Int64("instance_id", input.InstanceID),
		slog.Int64("user_id", userID),
		slog.Int("page", input.Page),
	)

	return id, nil
}
