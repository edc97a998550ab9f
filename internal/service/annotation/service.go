// Package annotation owns the lifecycle of a single annotation: creation,
// positional update, and permission-gated deletion with cascading cleanup of
// comments, votes and subscriptions, plus archival of reported comments.
package annotation

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/annothub/annotator-backend/internal/domain"
)

type annotationRepo interface {
	Get(ctx context.Context, id int64) (*domain.Annotation, error)
	Create(ctx context.Context, a *domain.Annotation) (int64, error)
	UpdateData(ctx context.Context, id int64, data json.RawMessage) error
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	GetAuthor(ctx context.Context, id int64) (int64, error)
	GetPage(ctx context.Context, id int64) (int, error)
	GetTypeName(ctx context.Context, id int64) (string, error)
	ListIDsByAuthor(ctx context.Context, userID int64) ([]int64, error)
}

type commentRepo interface {
	ListByAnnotation(ctx context.Context, annotationID int64) ([]domain.Comment, error)
	GetQuestion(ctx context.Context, annotationID int64) (*domain.Comment, error)
	OtherAuthorExists(ctx context.Context, annotationID, userID int64) (bool, error)
	DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error)
}

type archiveRepo interface {
	ArchiveComment(ctx context.Context, c domain.Comment) error
}

type voteRepo interface {
	DeleteByComment(ctx context.Context, commentID int64) (int64, error)
}

type subscriptionRepo interface {
	DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error)
}

type reportRepo interface {
	ExistsByComment(ctx context.Context, commentID int64) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides annotation lifecycle operations.
type Service struct {
	annotations   annotationRepo
	comments      commentRepo
	archive       archiveRepo
	votes         voteRepo
	subscriptions subscriptionRepo
	reports       reportRepo
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new annotation service.
func NewService(
	log *slog.Logger,
	annotations annotationRepo,
	comments commentRepo,
	archive archiveRepo,
	votes voteRepo,
	subscriptions subscriptionRepo,
	reports reportRepo,
	tx txManager,
) *Service {
	return &Service{
		annotations:   annotations,
		comments:      comments,
		archive:       archive,
		votes:         votes,
		subscriptions: subscriptions,
		reports:       reports,
		tx:            tx,
		log:           log.With("service", "annotation"),
	}
}
