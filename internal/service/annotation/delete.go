package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/annothub/annotator-backend/internal/domain"
)

// DeleteResult reports the outcome of a permission-gated Delete.
type DeleteResult struct {
	// Deleted is true when the annotation and its satellites were removed.
	Deleted bool
	// Decision is the permission decision that was applied. When Allowed is
	// false, Reason names the user-facing explanation and nothing was removed.
	Decision domain.Decision
}

// Delete removes the annotation, every comment attached to it, the votes on
// those comments and the subscriptions to the annotation — all within one
// transaction. Comments that were reported and not soft-deleted are copied to
// the archive first, preserving moderation history.
//
// A missing annotation is a no-op: Deleted is false and no denial reason is
// set. A permission denial leaves the store untouched and carries the reason.
func (s *Service) Delete(ctx context.Context, annotationID int64) (DeleteResult, error) {
	exists, err := s.annotations.Exists(ctx, annotationID)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("check annotation exists: %w", err)
	}
	if !exists {
		return DeleteResult{Deleted: false, Decision: domain.Allow()}, nil
	}

	decision, err := s.DeletionAllowed(ctx, annotationID)
	if err != nil {
		return DeleteResult{}, err
	}
	if !decision.Allowed {
		return DeleteResult{Deleted: false, Decision: decision}, nil
	}

	if err := s.deleteCascade(ctx, annotationID); err != nil {
		return DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "annotation deleted",
		slog.Int64("annotation_id", annotationID),
	)

	return DeleteResult{Deleted: true, Decision: decision}, nil
}

// EraseAnnotation is the GDPR erasure path: it bypasses the permission check
// and deletes unconditionally. Fire-and-forget — a missing annotation is not
// an error and no outcome is reported.
func (s *Service) EraseAnnotation(ctx context.Context, annotationID int64) error {
	exists, err := s.annotations.Exists(ctx, annotationID)
	if err != nil {
		return fmt.Errorf("check annotation exists: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.deleteCascade(ctx, annotationID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "annotation erased",
		slog.Int64("annotation_id", annotationID),
	)

	return nil
}

// EraseUserData removes every annotation authored by userID, with the full
// cascade and archival, bypassing permissions. Invoked for
// right-to-be-forgotten requests.
func (s *Service) EraseUserData(ctx context.Context, userID int64) error {
	ids, err := s.annotations.ListIDsByAuthor(ctx, userID)
	if err != nil {
		return fmt.Errorf("list annotations for erasure: %w", err)
	}

	for _, id := range ids {
		if err := s.EraseAnnotation(ctx, id); err != nil {
			return fmt.Errorf("erase annotation %d: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "user data erased",
		slog.Int64("user_id", userID),
		slog.Int("annotations", len(ids)),
	)

	return nil
}

// deleteCascade performs the cascading cleanup inside one transaction:
// per comment delete its votes and archive it if reported and not
// soft-deleted, then delete all comments, the subscriptions, and the
// annotation row itself.
func (s *Service) deleteCascade(ctx context.Context, annotationID int64) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		comments, err := s.comments.ListByAnnotation(txCtx, annotationID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}

		for _, c := range comments {
			if _, err := s.votes.DeleteByComment(txCtx, c.ID); err != nil {
				return fmt.Errorf("delete votes of comment %d: %w", c.ID, err)
			}

			if c.IsDeleted {
				continue
			}
			reported, err := s.reports.ExistsByComment(txCtx, c.ID)
			if err != nil {
				return fmt.Errorf("check report of comment %d: %w", c.ID, err)
			}
			if reported {
				if err := s.archive.ArchiveComment(txCtx, c); err != nil {
					return fmt.Errorf("archive comment %d: %w", c.ID, err)
				}
			}
		}

		if _, err := s.comments.DeleteByAnnotation(txCtx, annotationID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		if _, err := s.subscriptions.DeleteByAnnotation(txCtx, annotationID); err != nil {
			return fmt.Errorf("delete subscriptions: %w", err)
		}

		if err := s.annotations.Delete(txCtx, annotationID); err != nil {
			return fmt.Errorf("delete annotation: %w", err)
		}

		return nil
	})
}
