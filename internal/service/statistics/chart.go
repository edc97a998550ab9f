package statistics

import (
	"context"
	"fmt"
)

// ChartSeries holds one value per course instance, aligned by index across all
// five slices. Instances appear in listing order so series line up with axis
// labels.
type ChartSeries struct {
	Names          []string
	OtherQuestions []int
	MyQuestions    []int
	OtherAnswers   []int
	MyAnswers      []int
}

// ChartSeries builds the per-instance activity breakdown for the bound user's
// course. "Other" counts are totals minus the user's own, so stacking other on
// top of mine reproduces the instance total.
func (s *Service) ChartSeries(ctx context.Context) (*ChartSeries, error) {
	instances, err := s.instances.ListByCourse(ctx, s.binding.CourseID)
	if err != nil {
		return nil, fmt.Errorf("list course instances: %w", err)
	}

	series := &ChartSeries{
		Names:          make([]string, 0, len(instances)),
		OtherQuestions: make([]int, 0, len(instances)),
		MyQuestions:    make([]int, 0, len(instances)),
		OtherAnswers:   make([]int, 0, len(instances)),
		MyAnswers:      make([]int, 0, len(instances)),
	}

	for _, inst := range instances {
		questions, err := s.stats.CountByInstance(ctx, inst.ID, true, nil)
		if err != nil {
			return nil, fmt.Errorf("count questions of instance %d: %w", inst.ID, err)
		}
		myQuestions, err := s.stats.CountByInstance(ctx, inst.ID, true, &s.binding.UserID)
		if err != nil {
			return nil, fmt.Errorf("count my questions of instance %d: %w", inst.ID, err)
		}
		answers, err := s.stats.CountByInstance(ctx, inst.ID, false, nil)
		if err != nil {
			return nil, fmt.Errorf("count answers of instance %d: %w", inst.ID, err)
		}
		myAnswers, err := s.stats.CountByInstance(ctx, inst.ID, false, &s.binding.UserID)
		if err != nil {
			return nil, fmt.Errorf("count my answers of instance %d: %w", inst.ID, err)
		}

		series.Names = append(series.Names, inst.Name)
		series.OtherQuestions = append(series.OtherQuestions, questions-myQuestions)
		series.MyQuestions = append(series.MyQuestions, myQuestions)
		series.OtherAnswers = append(series.OtherAnswers, answers-myAnswers)
		series.MyAnswers = append(series.MyAnswers, myAnswers)
	}

	return series, nil
}
