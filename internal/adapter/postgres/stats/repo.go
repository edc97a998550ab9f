// Package stats implements the read-only aggregation queries behind the
// statistics dashboard. Counts exclude soft-deleted comments; averages are
// taken only over users who authored at least one matching comment.
package stats

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
)

// Repo provides comment aggregation queries backed by PostgreSQL.
// All queries are read-only, so any Querier works; there is no transaction
// routing here.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// psql builds queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const avgPerUserByInstanceSQL = `
SELECT avg(cnt)::float8
FROM (
    SELECT count(*) AS cnt
    FROM comments
    WHERE instance_id = $1 AND is_question = $2 AND NOT is_deleted
    GROUP BY user_id
) AS counts`

const avgPerUserByCourseSQL = `
SELECT avg(cnt)::float8
FROM (
    SELECT count(*) AS cnt
    FROM comments c
    JOIN annotator_instances i ON i.id = c.instance_id
    WHERE i.course_id = $1 AND c.is_question = $2 AND NOT c.is_deleted
    GROUP BY c.user_id
) AS counts`

// CountByInstance counts non-deleted comments within one instance, filtered
// by question/answer flag and optionally restricted to one author.
func (r *Repo) CountByInstance(ctx context.Context, instanceID int64, isQuestion bool, onlyUser *int64) (int, error) {
	q := psql.Select("count(*)").
		From("comments").
		Where(sq.Eq{"instance_id": instanceID, "is_question": isQuestion, "is_deleted": false})
	if onlyUser != nil {
		q = q.Where(sq.Eq{"user_id": *onlyUser})
	}

	return r.count(ctx, q)
}

// CountByCourse counts non-deleted comments across every instance of a
// course, filtered by question/answer flag and optionally by author.
func (r *Repo) CountByCourse(ctx context.Context, courseID int64, isQuestion bool, onlyUser *int64) (int, error) {
	q := psql.Select("count(*)").
		From("comments c").
		Join("annotator_instances i ON i.id = c.instance_id").
		Where(sq.Eq{"i.course_id": courseID, "c.is_question": isQuestion, "c.is_deleted": false})
	if onlyUser != nil {
		q = q.Where(sq.Eq{"c.user_id": *onlyUser})
	}

	return r.count(ctx, q)
}

// AvgPerUserByInstance returns the average number of matching comments per
// authoring user within one instance. ok is false when no user has written a
// matching comment (empty grouped set, no divide-by-zero).
func (r *Repo) AvgPerUserByInstance(ctx context.Context, instanceID int64, isQuestion bool) (avg float64, ok bool, err error) {
	return r.average(ctx, avgPerUserByInstanceSQL, instanceID, isQuestion)
}

// AvgPerUserByCourse returns the average number of matching comments per
// authoring user across a course.
func (r *Repo) AvgPerUserByCourse(ctx context.Context, courseID int64, isQuestion bool) (avg float64, ok bool, err error) {
	return r.average(ctx, avgPerUserByCourseSQL, courseID, isQuestion)
}

func (r *Repo) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

func (r *Repo) average(ctx context.Context, sqlStr string, scopeID int64, isQuestion bool) (float64, bool, error) {
	var avg *float64
	if err := r.db.QueryRow(ctx, sqlStr, scopeID, isQuestion).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("average comments per user: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}

	return *avg, true, nil
}
