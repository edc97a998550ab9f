// Package vote implements the vote repository using PostgreSQL.
package vote

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO votes (comment_id, user_id)
VALUES ($1, $2)
RETURNING id`

const countByCommentSQL = `SELECT count(*) FROM votes WHERE comment_id = $1`

const deleteByCommentSQL = `DELETE FROM votes WHERE comment_id = $1`

// Create inserts a vote and returns the generated ID.
// A second vote by the same user on the same comment yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Vote) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	if err := querier.QueryRow(ctx, createSQL, v.CommentID, v.UserID).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "vote", v.CommentID)
	}

	return id, nil
}

// CountByComment returns the number of votes on a comment.
func (r *Repo) CountByComment(ctx context.Context, commentID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByCommentSQL, commentID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "vote", commentID)
	}

	return count, nil
}

// DeleteByComment removes every vote on a comment and returns the number of
// rows removed.
func (r *Repo) DeleteByComment(ctx context.Context, commentID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByCommentSQL, commentID)
	if err != nil {
		return 0, postgres.MapError(err, "vote", commentID)
	}

	return tag.RowsAffected(), nil
}
