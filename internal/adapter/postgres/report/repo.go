// Package report implements the report repository using PostgreSQL.
// Report rows intentionally survive the deletion of the comment they flag;
// the flagged comment is archived before removal.
package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO reports (comment_id, instance_id, course_id, user_id, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const existsByCommentSQL = `SELECT EXISTS (SELECT 1 FROM reports WHERE comment_id = $1)`

const countByInstanceSQL = `SELECT count(*) FROM reports WHERE instance_id = $1`

const countByCourseSQL = `SELECT count(*) FROM reports WHERE course_id = $1`

// Create inserts a report and returns the generated ID.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, createSQL,
		rep.CommentID, rep.InstanceID, rep.CourseID, rep.UserID, rep.Message,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "report", rep.CommentID)
	}

	return id, nil
}

// ExistsByComment reports whether the comment has been reported.
func (r *Repo) ExistsByComment(ctx context.Context, commentID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByCommentSQL, commentID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "report", commentID)
	}

	return exists, nil
}

// CountByInstance returns the number of reports within one instance.
func (r *Repo) CountByInstance(ctx context.Context, instanceID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByInstanceSQL, instanceID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "report", instanceID)
	}

	return count, nil
}

// CountByCourse returns the number of reports within an entire course.
func (r *Repo) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByCourseSQL, courseID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "report", courseID)
	}

	return count, nil
}
