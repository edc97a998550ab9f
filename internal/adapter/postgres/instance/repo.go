// Package instance implements the instance directory using PostgreSQL:
// it enumerates the annotator workspaces belonging to a course.
package instance

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides instance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new instance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO annotator_instances (course_id, name)
VALUES ($1, $2)
RETURNING id`

const getSQL = `
SELECT id, course_id, name
FROM annotator_instances
WHERE id = $1`

const listByCourseSQL = `
SELECT id, course_id, name
FROM annotator_instances
WHERE course_id = $1
ORDER BY id`

// instanceRow is the scan target for instance queries.
type instanceRow struct {
	ID       int64  `db:"id"`
	CourseID int64  `db:"course_id"`
	Name     string `db:"name"`
}

// Create inserts an instance and returns the generated ID.
func (r *Repo) Create(ctx context.Context, in *domain.Instance) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	if err := querier.QueryRow(ctx, createSQL, in.CourseID, in.Name).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "instance", in.CourseID)
	}

	return id, nil
}

// Get fetches an instance by ID.
// Returns domain.ErrNotFound if the row is absent.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Instance, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var in domain.Instance
	if err := querier.QueryRow(ctx, getSQL, id).Scan(&in.ID, &in.CourseID, &in.Name); err != nil {
		return nil, postgres.MapError(err, "instance", id)
	}

	return &in, nil
}

// ListByCourse returns every instance of a course, ordered by ID. The chart
// series follows this order.
func (r *Repo) ListByCourse(ctx context.Context, courseID int64) ([]domain.Instance, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []instanceRow
	if err := pgxscan.Select(ctx, querier, &rows, listByCourseSQL, courseID); err != nil {
		return nil, fmt.Errorf("list instances by course: %w", err)
	}

	instances := make([]domain.Instance, len(rows))
	for i, row := range rows {
		instances[i] = domain.Instance{ID: row.ID, CourseID: row.CourseID, Name: row.Name}
	}

	return instances, nil
}
