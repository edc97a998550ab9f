// Package archive implements the comment archive repository using PostgreSQL.
// It provides append-only operations: reported comments are copied here right
// before the cascade delete removes their live rows.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides comment archive persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new archive repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const archiveSQL = `
INSERT INTO comments_archive (comment_id, annotation_id, user_id, content, is_question, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listByAnnotationSQL = `
SELECT id, comment_id, annotation_id, user_id, content, is_question, created_at, archived_at
FROM comments_archive
WHERE annotation_id = $1
ORDER BY id`

const pruneSQL = `DELETE FROM comments_archive WHERE archived_at < $1`

// ArchiveComment copies the comment into the archive. The live row keeps its
// ID in comment_id so moderation history stays traceable after deletion.
func (r *Repo) ArchiveComment(ctx context.Context, c domain.Comment) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, archiveSQL,
		c.ID, c.AnnotationID, c.UserID, c.Content, c.IsQuestion, c.TimeCreated,
	)
	if err != nil {
		return postgres.MapError(err, "archived_comment", c.ID)
	}

	return nil
}

// archivedRow is the scan target for archive queries.
type archivedRow struct {
	ID           int64     `db:"id"`
	CommentID    int64     `db:"comment_id"`
	AnnotationID int64     `db:"annotation_id"`
	UserID       int64     `db:"user_id"`
	Content      string    `db:"content"`
	IsQuestion   bool      `db:"is_question"`
	TimeCreated  time.Time `db:"created_at"`
	ArchivedAt   time.Time `db:"archived_at"`
}

// ListByAnnotation returns the archived comments of an annotation, ordered by
// archive insertion.
func (r *Repo) ListByAnnotation(ctx context.Context, annotationID int64) ([]domain.ArchivedComment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []archivedRow
	if err := pgxscan.Select(ctx, querier, &rows, listByAnnotationSQL, annotationID); err != nil {
		return nil, fmt.Errorf("list archived comments: %w", err)
	}

	archived := make([]domain.ArchivedComment, len(rows))
	for i, row := range rows {
		archived[i] = domain.ArchivedComment{
			ID:           row.ID,
			CommentID:    row.CommentID,
			AnnotationID: row.AnnotationID,
			UserID:       row.UserID,
			Content:      row.Content,
			IsQuestion:   row.IsQuestion,
			TimeCreated:  row.TimeCreated,
			ArchivedAt:   row.ArchivedAt,
		}
	}

	return archived, nil
}

// PruneOlderThan removes archive rows older than threshold and returns the
// number of rows removed. Invoked by the externally scheduled prune command.
func (r *Repo) PruneOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, pruneSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("prune comment archive: %w", err)
	}

	return tag.RowsAffected(), nil
}
