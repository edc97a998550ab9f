package statistics

import (
	"context"
	"fmt"
	"math"

	"github.com/annothub/annotator-backend/internal/domain"
)

// TableRow is one labelled row of a statistics table. Label is a message key;
// the caller resolves it to display text.
type TableRow struct {
	Label domain.MessageKey
	Cells []float64
}

// SummaryTable builds the dashboard overview for the bound user.
//
// Teachers get absolute counts per scope:
//
//	questions | answers | myanswers | reports  ×  (instance, course)
//
// Students get, per comment kind at instance scope:
//
//	total | mine | per-user average
//
// Averages are rounded to two decimals; a scope nobody has commented in
// renders as 0.
func (s *Service) SummaryTable(ctx context.Context) ([]TableRow, error) {
	if s.binding.IsTeacher {
		return s.teacherSummary(ctx)
	}
	return s.studentSummary(ctx)
}

func (s *Service) teacherSummary(ctx context.Context) ([]TableRow, error) {
	questionsInst, err := s.CountComments(ctx, ScopeInstance, true, false)
	if err != nil {
		return nil, fmt.Errorf("count instance questions: %w", err)
	}
	questionsCourse, err := s.CountComments(ctx, ScopeCourse, true, false)
	if err != nil {
		return nil, fmt.Errorf("count course questions: %w", err)
	}

	answersInst, err := s.CountComments(ctx, ScopeInstance, false, false)
	if err != nil {
		return nil, fmt.Errorf("count instance answers: %w", err)
	}
	answersCourse, err := s.CountComments(ctx, ScopeCourse, false, false)
	if err != nil {
		return nil, fmt.Errorf("count course answers: %w", err)
	}

	myAnswersInst, err := s.CountComments(ctx, ScopeInstance, false, true)
	if err != nil {
		return nil, fmt.Errorf("count my instance answers: %w", err)
	}
	myAnswersCourse, err := s.CountComments(ctx, ScopeCourse, false, true)
	if err != nil {
		return nil, fmt.Errorf("count my course answers: %w", err)
	}

	reportsInst, err := s.CountReports(ctx, ScopeInstance)
	if err != nil {
		return nil, fmt.Errorf("count instance reports: %w", err)
	}
	reportsCourse, err := s.CountReports(ctx, ScopeCourse)
	if err != nil {
		return nil, fmt.Errorf("count course reports: %w", err)
	}

	return []TableRow{
		{Label: domain.MsgQuestions, Cells: []float64{float64(questionsInst), float64(questionsCourse)}},
		{Label: domain.MsgAnswers, Cells: []float64{float64(answersInst), float64(answersCourse)}},
		{Label: domain.MsgMyAnswers, Cells: []float64{float64(myAnswersInst), float64(myAnswersCourse)}},
		{Label: domain.MsgReports, Cells: []float64{float64(reportsInst), float64(reportsCourse)}},
	}, nil
}

func (s *Service) studentSummary(ctx context.Context) ([]TableRow, error) {
	questions, err := s.kindRow(ctx, ScopeInstance, true, domain.MsgQuestions)
	if err != nil {
		return nil, err
	}
	answers, err := s.kindRow(ctx, ScopeInstance, false, domain.MsgAnswers)
	if err != nil {
		return nil, err
	}
	return []TableRow{questions, answers}, nil
}

// kindRow assembles total | mine | average for one comment kind and scope.
func (s *Service) kindRow(ctx context.Context, scope Scope, isQuestion bool, label domain.MessageKey) (TableRow, error) {
	total, err := s.CountComments(ctx, scope, isQuestion, false)
	if err != nil {
		return TableRow{}, fmt.Errorf("count %s: %w", label, err)
	}
	mine, err := s.CountComments(ctx, scope, isQuestion, true)
	if err != nil {
		return TableRow{}, fmt.Errorf("count my %s: %w", label, err)
	}
	avg, ok, err := s.AverageCommentsPerUser(ctx, scope, isQuestion)
	if err != nil {
		return TableRow{}, fmt.Errorf("average %s per user: %w", label, err)
	}
	if !ok {
		avg = 0
	}

	return TableRow{
		Label: label,
		Cells: []float64{float64(total), float64(mine), round2(avg)},
	}, nil
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
