package annotation

import (
	"context"
	"fmt"

	"github.com/annothub/annotator-backend/internal/auth"
	"github.com/annothub/annotator-backend/internal/domain"
)

// DeletionAllowed decides whether the authenticated user may delete the
// annotation and all comments attached to it.
//
// Holders of the administrate-user-input capability are always allowed.
// Otherwise the requester must be the author, and nobody else may have
// commented the annotation. Denials carry a localizable reason instead of a
// bare boolean so callers can surface it to the user.
func (s *Service) DeletionAllowed(ctx context.Context, annotationID int64) (domain.Decision, error) {
	identity, ok := auth.FromContext(ctx)
	if !ok {
		return domain.Decision{}, domain.ErrUnauthorized
	}

	if identity.Can(auth.CapAdministrateUserInput) {
		return domain.Allow(), nil
	}

	author, err := s.annotations.GetAuthor(ctx, annotationID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("get annotation author: %w", err)
	}
	if identity.UserID != author {
		return domain.Deny(domain.MsgOnlyDeleteOwnAnnotations), nil
	}

	foreign, err := s.comments.OtherAuthorExists(ctx, annotationID, identity.UserID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("check foreign comments: %w", err)
	}
	if foreign {
		return domain.Deny(domain.MsgOnlyDeleteUncommentedPosts), nil
	}

	return domain.Allow(), nil
}

// ShiftAllowed reports whether the annotation may be shifted in position:
// the requester must be the author and nobody else may have commented it.
// Unlike DeletionAllowed there is no administrator bypass.
func (s *Service) ShiftAllowed(ctx context.Context, annotationID int64) (bool, error) {
	identity, ok := auth.FromContext(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	author, err := s.annotations.GetAuthor(ctx, annotationID)
	if err != nil {
		return false, fmt.Errorf("get annotation author: %w", err)
	}
	if identity.UserID != author {
		return false, nil
	}

	foreign, err := s.comments.OtherAuthorExists(ctx, annotationID, identity.UserID)
	if err != nil {
		return false, fmt.Errorf("check foreign comments: %w", err)
	}

	return !foreign, nil
}
