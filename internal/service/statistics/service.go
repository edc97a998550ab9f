// Package statistics computes the per-instance and per-course comment counts
// and averages behind the statistics dashboard. Read-only: every operation is
// a pure query.
package statistics

import (
	"context"
	"log/slog"

	"github.com/annothub/annotator-backend/internal/domain"
)

type statsRepo interface {
	CountByInstance(ctx context.Context, instanceID int64, isQuestion bool, onlyUser *int64) (int, error)
	CountByCourse(ctx context.Context, courseID int64, isQuestion bool, onlyUser *int64) (int, error)
	AvgPerUserByInstance(ctx context.Context, instanceID int64, isQuestion bool) (float64, bool, error)
	AvgPerUserByCourse(ctx context.Context, courseID int64, isQuestion bool) (float64, bool, error)
}

type reportRepo interface {
	CountByInstance(ctx context.Context, instanceID int64) (int, error)
	CountByCourse(ctx context.Context, courseID int64) (int, error)
}

type instanceRepo interface {
	ListByCourse(ctx context.Context, courseID int64) ([]domain.Instance, error)
}

// Scope selects whether a query covers one instance or the whole course.
type Scope int

const (
	ScopeInstance Scope = iota
	ScopeCourse
)

// Binding fixes the aggregator to one course, instance and user. IsTeacher
// switches which breakdown the summary table computes.
type Binding struct {
	CourseID   int64
	InstanceID int64
	UserID     int64
	IsTeacher  bool
}

// Service answers statistics queries for one binding.
type Service struct {
	binding   Binding
	stats     statsRepo
	reports   reportRepo
	instances instanceRepo
	log       *slog.Logger
}

// NewService creates a statistics service bound to one course/instance/user.
func NewService(
	log *slog.Logger,
	binding Binding,
	stats statsRepo,
	reports reportRepo,
	instances instanceRepo,
) *Service {
	return &Service{
		binding:   binding,
		stats:     stats,
		reports:   reports,
		instances: instances,
		log:       log.With("service", "statistics"),
	}
}

// CountComments returns the number of non-deleted comments matching the
// question/answer flag in the given scope, optionally restricted to the bound
// user. The unrestricted count is always ≥ the restricted one.
func (s *Service) CountComments(ctx context.Context, scope Scope, isQuestion, onlyMine bool) (int, error) {
	var onlyUser *int64
	if onlyMine {
		onlyUser = &s.binding.UserID
	}

	if scope == ScopeCourse {
		return s.stats.CountByCourse(ctx, s.binding.CourseID, isQuestion, onlyUser)
	}
	return s.stats.CountByInstance(ctx, s.binding.InstanceID, isQuestion, onlyUser)
}

// AverageCommentsPerUser returns the average number of matching comments per
// authoring user in the given scope. ok is false when nobody has written a
// matching comment.
func (s *Service) AverageCommentsPerUser(ctx context.Context, scope Scope, isQuestion bool) (avg float64, ok bool, err error) {
	if scope == ScopeCourse {
		return s.stats.AvgPerUserByCourse(ctx, s.binding.CourseID, isQuestion)
	}
	return s.stats.AvgPerUserByInstance(ctx, s.binding.InstanceID, isQuestion)
}

// CountReports returns the number of reported comments in the given scope.
func (s *Service) CountReports(ctx context.Context, scope Scope) (int, error) {
	if scope == ScopeCourse {
		return s.reports.CountByCourse(ctx, s.binding.CourseID)
	}
	return s.reports.CountByInstance(ctx, s.binding.InstanceID)
}
