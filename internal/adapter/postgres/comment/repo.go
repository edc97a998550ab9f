// Package comment implements the comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// commentRow is the scan target for comment queries. The domain struct has no
// db tags, so column mapping lives here.
type commentRow struct {
	ID           int64  `db:"id"`
	AnnotationID int64  `db:"annotation_id"`
	InstanceID   int64  `db:"instance_id"`
	UserID       int64  `db:"user_id"`
	Content      string `db:"content"`
	IsQuestion   bool   `db:"is_question"`
	IsDeleted    bool   `db:"is_deleted"`
	TimeCreated  time.Time `db:"created_at"`
	TimeModified time.Time `db:"modified_at"`
}

const columns = `id, annotation_id, instance_id, user_id, content, is_question, is_deleted, created_at, modified_at`

const createSQL = `
INSERT INTO comments (annotation_id, instance_id, user_id, content, is_question)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const listByAnnotationSQL = `
SELECT ` + columns + `
FROM comments
WHERE annotation_id = $1
ORDER BY id`

const getQuestionSQL = `
SELECT ` + columns + `
FROM comments
WHERE annotation_id = $1 AND is_question
ORDER BY id
LIMIT 2`

const otherAuthorExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM comments
    WHERE annotation_id = $1 AND user_id <> $2
)`

const deleteByAnnotationSQL = `DELETE FROM comments WHERE annotation_id = $1`

const markDeletedSQL = `
UPDATE comments
SET is_deleted = TRUE, modified_at = now()
WHERE id = $1`

// Create inserts a new comment and returns the generated ID.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, createSQL,
		c.AnnotationID, c.InstanceID, c.UserID, c.Content, c.IsQuestion,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "comment", c.AnnotationID)
	}

	return id, nil
}

// ListByAnnotation returns every comment attached to the annotation,
// ordered by ID (creation order).
func (r *Repo) ListByAnnotation(ctx context.Context, annotationID int64) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []commentRow
	if err := pgxscan.Select(ctx, querier, &rows, listByAnnotationSQL, annotationID); err != nil {
		return nil, fmt.Errorf("list comments by annotation: %w", err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}

	return comments, nil
}

// GetQuestion returns the question comment of an annotation and enforces the
// one-question invariant: domain.ErrNotFound when none exists,
// domain.ErrConflict when more than one is flagged.
func (r *Repo) GetQuestion(ctx context.Context, annotationID int64) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []commentRow
	if err := pgxscan.Select(ctx, querier, &rows, getQuestionSQL, annotationID); err != nil {
		return nil, fmt.Errorf("get question comment: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("annotation %d question: %w", annotationID, domain.ErrNotFound)
	case 1:
		c := rows[0].toDomain()
		return &c, nil
	default:
		return nil, fmt.Errorf("annotation %d: multiple question comments: %w", annotationID, domain.ErrConflict)
	}
}

// OtherAuthorExists reports whether any comment on the annotation was written
// by someone other than userID.
func (r *Repo) OtherAuthorExists(ctx context.Context, annotationID, userID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, otherAuthorExistsSQL, annotationID, userID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "comment", annotationID)
	}

	return exists, nil
}

// DeleteByAnnotation removes every comment attached to the annotation and
// returns the number of rows removed.
func (r *Repo) DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByAnnotationSQL, annotationID)
	if err != nil {
		return 0, postgres.MapError(err, "comment", annotationID)
	}

	return tag.RowsAffected(), nil
}

// MarkDeleted soft-deletes a comment: the row stays, content is preserved for
// moderation, and statistics stop counting it.
func (r *Repo) MarkDeleted(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markDeletedSQL, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (row commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:           row.ID,
		AnnotationID: row.AnnotationID,
		InstanceID:   row.InstanceID,
		UserID:       row.UserID,
		Content:      row.Content,
		IsQuestion:   row.IsQuestion,
		IsDeleted:    row.IsDeleted,
		TimeCreated:  row.TimeCreated,
		TimeModified: row.TimeModified,
	}
}
