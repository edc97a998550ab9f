// Package subscription implements the subscription repository using PostgreSQL.
package subscription

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO subscriptions (annotation_id, user_id)
VALUES ($1, $2)
RETURNING id`

const deleteByAnnotationSQL = `DELETE FROM subscriptions WHERE annotation_id = $1`

// Create subscribes a user to an annotation's question and returns the
// generated ID. Duplicate subscriptions yield domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Subscription) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	if err := querier.QueryRow(ctx, createSQL, s.AnnotationID, s.UserID).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "subscription", s.AnnotationID)
	}

	return id, nil
}

// DeleteByAnnotation removes every subscription to the annotation and returns
// the number of rows removed.
func (r *Repo) DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByAnnotationSQL, annotationID)
	if err != nil {
		return 0, postgres.MapError(err, "subscription", annotationID)
	}

	return tag.RowsAffected(), nil
}
