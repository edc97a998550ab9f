package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annothub/annotator-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedInstance creates an annotator instance in the given course.
// Returns a filled domain.Instance.
func SeedInstance(t *testing.T, pool *pgxpool.Pool, courseID int64) domain.Instance {
	t.Helper()
	ctx := context.Background()

	inst := domain.Instance{
		CourseID: courseID,
		Name:     "Annotator " + uniqueSuffix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO annotator_instances (course_id, name) VALUES ($1, $2) RETURNING id`,
		inst.CourseID, inst.Name,
	).Scan(&inst.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInstance insert: %v", err)
	}

	return inst
}

// TypeID looks up the ID of a seeded annotation type by name.
func TypeID(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		`SELECT id FROM annotation_types WHERE name = $1`, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: TypeID %q: %v", name, err)
	}
	return id
}

// SeedAnnotation creates an annotation of type point on page 1 for the given
// instance and user. Returns a filled domain.Annotation.
func SeedAnnotation(t *testing.T, pool *pgxpool.Pool, instanceID, userID int64) domain.Annotation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Annotation{
		InstanceID:   instanceID,
		Page:         1,
		UserID:       userID,
		TypeID:       TypeID(t, pool, domain.TypePoint),
		Data:         []byte(`{"x": 10, "y": 20}`),
		TimeCreated:  now,
		TimeModified: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO annotations (instance_id, page, user_id, type_id, item_id, data, created_at, modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		a.InstanceID, a.Page, a.UserID, a.TypeID, a.ItemID, a.Data, a.TimeCreated, a.TimeModified,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAnnotation insert: %v", err)
	}

	return a
}

// SeedComment creates a comment on the annotation. isQuestion marks it as the
// question of its thread. Returns a filled domain.Comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, a domain.Annotation, userID int64, isQuestion bool) domain.Comment {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{
		AnnotationID: a.ID,
		InstanceID:   a.InstanceID,
		UserID:       userID,
		Content:      "comment " + uniqueSuffix(),
		IsQuestion:   isQuestion,
		TimeCreated:  now,
		TimeModified: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO comments (annotation_id, instance_id, user_id, content, is_question, is_deleted, created_at, modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		c.AnnotationID, c.InstanceID, c.UserID, c.Content, c.IsQuestion, c.IsDeleted, c.TimeCreated, c.TimeModified,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return c
}

// MarkCommentDeleted soft-deletes the comment, mirroring what moderation does
// when a comment is hidden but its thread stays.
func MarkCommentDeleted(t *testing.T, pool *pgxpool.Pool, commentID int64) {
	t.Helper()
	ctx := context.Background()

	tag, err := pool.Exec(ctx,
		`UPDATE comments SET is_deleted = TRUE, modified_at = now() WHERE id = $1`,
		commentID,
	)
	if err != nil {
		t.Fatalf("testhelper: MarkCommentDeleted: %v", err)
	}
	if tag.RowsAffected() == 0 {
		t.Fatalf("testhelper: MarkCommentDeleted: comment %d not found", commentID)
	}
}

// SeedVote records userID's vote on the comment.
func SeedVote(t *testing.T, pool *pgxpool.Pool, commentID, userID int64) domain.Vote {
	t.Helper()
	ctx := context.Background()

	v := domain.Vote{CommentID: commentID, UserID: userID}
	err := pool.QueryRow(ctx,
		`INSERT INTO votes (comment_id, user_id) VALUES ($1, $2) RETURNING id`,
		v.CommentID, v.UserID,
	).Scan(&v.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVote insert: %v", err)
	}
	return v
}

// SeedSubscription subscribes userID to the annotation's question thread.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, annotationID, userID int64) domain.Subscription {
	t.Helper()
	ctx := context.Background()

	s := domain.Subscription{AnnotationID: annotationID, UserID: userID}
	err := pool.QueryRow(ctx,
		`INSERT INTO subscriptions (annotation_id, user_id) VALUES ($1, $2) RETURNING id`,
		s.AnnotationID, s.UserID,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription insert: %v", err)
	}
	return s
}

// SeedReport flags the comment for moderation in the given instance/course.
func SeedReport(t *testing.T, pool *pgxpool.Pool, c domain.Comment, courseID, reporterID int64) domain.Report {
	t.Helper()
	ctx := context.Background()

	r := domain.Report{
		CommentID:  c.ID,
		InstanceID: c.InstanceID,
		CourseID:   courseID,
		UserID:     reporterID,
		Message:    "report " + uniqueSuffix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO reports (comment_id, instance_id, course_id, user_id, message)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		r.CommentID, r.InstanceID, r.CourseID, r.UserID, r.Message,
	).Scan(&r.ID, &r.TimeCreated)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert: %v", err)
	}
	return r
}

// CountRows returns the number of rows in table matching whereSQL (a fragment
// with $1 placeholder) and arg. Assertion helper for cascade tests.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, whereSQL string, arg any) int {
	t.Helper()
	ctx := context.Background()

	var n int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM `+table+` WHERE `+whereSQL, arg).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
