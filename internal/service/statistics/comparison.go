package statistics

import (
	"context"

	"github.com/annothub/annotator-backend/internal/domain"
)

// ComparisonTable puts the bound user's activity next to the course-wide
// figures: per comment kind the course total, the user's own count and the
// per-author course average. Shown to students so they can place themselves.
func (s *Service) ComparisonTable(ctx context.Context) ([]TableRow, error) {
	questions, err := s.kindRow(ctx, ScopeCourse, true, domain.MsgQuestions)
	if err != nil {
		return nil, err
	}
	answers, err := s.kindRow(ctx, ScopeCourse, false, domain.MsgAnswers)
	if err != nil {
		return nil, err
	}
	return []TableRow{questions, answers}, nil
}
