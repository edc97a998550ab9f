package annotation

import (
	"context"
	"fmt"
)

// Author returns the user ID of the annotation's author.
// The annotation must exist; a missing row is an error.
func (s *Service) Author(ctx context.Context, annotationID int64) (int64, error) {
	author, err := s.annotations.GetAuthor(ctx, annotationID)
	if err != nil {
		return 0, fmt.Errorf("get annotation author: %w", err)
	}
	return author, nil
}

// Page returns the page the annotation was made on, or 0 when the annotation
// does not exist.
func (s *Service) Page(ctx context.Context, annotationID int64) (int, error) {
	page, err := s.annotations.GetPage(ctx, annotationID)
	if err != nil {
		return 0, fmt.Errorf("get annotation page: %w", err)
	}
	return page, nil
}

// TypeName returns the name of the annotation's type.
func (s *Service) TypeName(ctx context.Context, annotationID int64) (string, error) {
	name, err := s.annotations.GetTypeName(ctx, annotationID)
	if err != nil {
		return "", fmt.Errorf("get annotation type: %w", err)
	}
	return name, nil
}

// QuestionText returns the content of the annotation's question comment.
// Exactly one question comment must exist: none yields domain.ErrNotFound,
// more than one yields domain.ErrConflict.
func (s *Service) QuestionText(ctx context.Context, annotationID int64) (string, error) {
	question, err := s.comments.GetQuestion(ctx, annotationID)
	if err != nil {
		return "", fmt.Errorf("get question comment: %w", err)
	}
	return question.Content, nil
}
