// Package annotation implements the annotation repository using PostgreSQL.
package annotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides annotation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new annotation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT id, instance_id, page, user_id, type_id, item_id, data, created_at, modified_at
FROM annotations
WHERE id = $1`

const createSQL = `
INSERT INTO annotations (instance_id, page, user_id, type_id, item_id, data)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const updateDataSQL = `
UPDATE annotations
SET data = $2, modified_at = now()
WHERE id = $1`

const existsSQL = `SELECT EXISTS (SELECT 1 FROM annotations WHERE id = $1)`

const deleteSQL = `DELETE FROM annotations WHERE id = $1`

const getAuthorSQL = `SELECT user_id FROM annotations WHERE id = $1`

const getPageSQL = `SELECT page FROM annotations WHERE id = $1`

const getTypeNameSQL = `
SELECT t.name
FROM annotations a
JOIN annotation_types t ON t.id = a.type_id
WHERE a.id = $1`

const listIDsByAuthorSQL = `
SELECT id FROM annotations WHERE user_id = $1 ORDER BY id`

// Get fetches an annotation by ID.
// Returns domain.ErrNotFound if the row is absent (must-exist semantics).
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Annotation
	err := querier.QueryRow(ctx, getSQL, id).Scan(
		&a.ID, &a.InstanceID, &a.Page, &a.UserID, &a.TypeID, &a.ItemID, &a.Data,
		&a.TimeCreated, &a.TimeModified,
	)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", id)
	}

	return &a, nil
}

// Create inserts a new annotation and returns the generated ID.
// Timestamps are assigned by the database.
func (r *Repo) Create(ctx context.Context, a *domain.Annotation) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, createSQL,
		a.InstanceID, a.Page, a.UserID, a.TypeID, a.ItemID, a.Data,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "annotation", a.InstanceID)
	}

	return id, nil
}

// UpdateData overwrites the structured payload of an existing annotation.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) UpdateData(ctx context.Context, id int64, data json.RawMessage) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateDataSQL, id, data)
	if err != nil {
		return postgres.MapError(err, "annotation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("annotation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Exists reports whether an annotation row exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "annotation", id)
	}

	return exists, nil
}

// Delete removes the annotation row itself. Satellite rows are removed by the
// service cascade before this is called.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "annotation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("annotation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetAuthor returns the user ID of the annotation's author.
// Returns domain.ErrNotFound if the annotation is absent (must-exist semantics).
func (r *Repo) GetAuthor(ctx context.Context, id int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var userID int64
	if err := querier.QueryRow(ctx, getAuthorSQL, id).Scan(&userID); err != nil {
		return 0, postgres.MapError(err, "annotation", id)
	}

	return userID, nil
}

// GetPage returns the page the annotation was made on.
// A missing annotation yields the 0 sentinel without an error (pages are 1-based).
func (r *Repo) GetPage(ctx context.Context, id int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var page int
	err := querier.QueryRow(ctx, getPageSQL, id).Scan(&page)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "annotation", id)
	}

	return page, nil
}

// GetTypeName returns the name of the annotation's type.
func (r *Repo) GetTypeName(ctx context.Context, id int64) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var name string
	if err := querier.QueryRow(ctx, getTypeNameSQL, id).Scan(&name); err != nil {
		return "", postgres.MapError(err, "annotation", id)
	}

	return name, nil
}

// ListIDsByAuthor returns the IDs of every annotation authored by userID,
// ordered by ID. Used by the GDPR erasure path.
func (r *Repo) ListIDsByAuthor(ctx context.Context, userID int64) ([]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ids []int64
	if err := pgxscan.Select(ctx, querier, &ids, listIDsByAuthorSQL, userID); err != nil {
		return nil, fmt.Errorf("list annotation ids by author: %w", err)
	}

	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}
