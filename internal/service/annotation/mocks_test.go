package annotation

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/annothub/annotator-backend/internal/domain"
)

var _ annotationRepo = &annotationRepoMock{}

type annotationRepoMock struct {
	GetFunc             func(ctx context.Context, id int64) (*domain.Annotation, error)
	CreateFunc          func(ctx context.Context, a *domain.Annotation) (int64, error)
	UpdateDataFunc      func(ctx context.Context, id int64, data json.RawMessage) error
	ExistsFunc          func(ctx context.Context, id int64) (bool, error)
	DeleteFunc          func(ctx context.Context, id int64) error
	GetAuthorFunc       func(ctx context.Context, id int64) (int64, error)
	GetPageFunc         func(ctx context.Context, id int64) (int, error)
	GetTypeNameFunc     func(ctx context.Context, id int64) (string, error)
	ListIDsByAuthorFunc func(ctx context.Context, userID int64) ([]int64, error)

	calls struct {
		Get             []struct{ ID int64 }
		Create          []struct{ A *domain.Annotation }
		UpdateData      []struct {
			ID   int64
			Data json.RawMessage
		}
		Exists          []struct{ ID int64 }
		Delete          []struct{ ID int64 }
		GetAuthor       []struct{ ID int64 }
		GetPage         []struct{ ID int64 }
		GetTypeName     []struct{ ID int64 }
		ListIDsByAuthor []struct{ UserID int64 }
	}
	lock sync.RWMutex
}

func (mock *annotationRepoMock) Get(ctx context.Context, id int64) (*domain.Annotation, error) {
	if mock.GetFunc == nil {
		panic("annotationRepoMock.GetFunc: method is nil but annotationRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *annotationRepoMock) Create(ctx context.Context, a *domain.Annotation) (int64, error) {
	if mock.CreateFunc == nil {
		panic("annotationRepoMock.CreateFunc: method is nil but annotationRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ A *domain.Annotation }{A: a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *annotationRepoMock) CreateCalls() []struct{ A *domain.Annotation } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *annotationRepoMock) UpdateData(ctx context.Context, id int64, data json.RawMessage) error {
	if mock.UpdateDataFunc == nil {
		panic("annotationRepoMock.UpdateDataFunc: method is nil but annotationRepo.UpdateData was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateData = append(mock.calls.UpdateData, struct {
		ID   int64
		Data json.RawMessage
	}{ID: id, Data: data})
	mock.lock.Unlock()
	return mock.UpdateDataFunc(ctx, id, data)
}

func (mock *annotationRepoMock) UpdateDataCalls() []struct {
	ID   int64
	Data json.RawMessage
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateData
}

func (mock *annotationRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("annotationRepoMock.ExistsFunc: method is nil but annotationRepo.Exists was just called")
	}
	mock.lock.Lock()
	mock.calls.Exists = append(mock.calls.Exists, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *annotationRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("annotationRepoMock.DeleteFunc: method is nil but annotationRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *annotationRepoMock) DeleteCalls() []struct{ ID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *annotationRepoMock) GetAuthor(ctx context.Context, id int64) (int64, error) {
	if mock.GetAuthorFunc == nil {
		panic("annotationRepoMock.GetAuthorFunc: method is nil but annotationRepo.GetAuthor was just called")
	}
	mock.lock.Lock()
	mock.calls.GetAuthor = append(mock.calls.GetAuthor, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.GetAuthorFunc(ctx, id)
}

func (mock *annotationRepoMock) GetPage(ctx context.Context, id int64) (int, error) {
	if mock.GetPageFunc == nil {
		panic("annotationRepoMock.GetPageFunc: method is nil but annotationRepo.GetPage was just called")
	}
	mock.lock.Lock()
	mock.calls.GetPage = append(mock.calls.GetPage, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.GetPageFunc(ctx, id)
}

func (mock *annotationRepoMock) GetTypeName(ctx context.Context, id int64) (string, error) {
	if mock.GetTypeNameFunc == nil {
		panic("annotationRepoMock.GetTypeNameFunc: method is nil but annotationRepo.GetTypeName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTypeName = append(mock.calls.GetTypeName, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.GetTypeNameFunc(ctx, id)
}

func (mock *annotationRepoMock) ListIDsByAuthor(ctx context.Context, userID int64) ([]int64, error) {
	if mock.ListIDsByAuthorFunc == nil {
		panic("annotationRepoMock.ListIDsByAuthorFunc: method is nil but annotationRepo.ListIDsByAuthor was just called")
	}
	mock.lock.Lock()
	mock.calls.ListIDsByAuthor = append(mock.calls.ListIDsByAuthor, struct{ UserID int64 }{UserID: userID})
	mock.lock.Unlock()
	return mock.ListIDsByAuthorFunc(ctx, userID)
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByAnnotationFunc   func(ctx context.Context, annotationID int64) ([]domain.Comment, error)
	GetQuestionFunc        func(ctx context.Context, annotationID int64) (*domain.Comment, error)
	OtherAuthorExistsFunc  func(ctx context.Context, annotationID, userID int64) (bool, error)
	DeleteByAnnotationFunc func(ctx context.Context, annotationID int64) (int64, error)

	calls struct {
		ListByAnnotation   []struct{ AnnotationID int64 }
		GetQuestion        []struct{ AnnotationID int64 }
		OtherAuthorExists  []struct{ AnnotationID, UserID int64 }
		DeleteByAnnotation []struct{ AnnotationID int64 }
	}
	lock sync.RWMutex
}

func (mock *commentRepoMock) ListByAnnotation(ctx context.Context, annotationID int64) ([]domain.Comment, error) {
	if mock.ListByAnnotationFunc == nil {
		panic("commentRepoMock.ListByAnnotationFunc: method is nil but commentRepo.ListByAnnotation was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByAnnotation = append(mock.calls.ListByAnnotation, struct{ AnnotationID int64 }{AnnotationID: annotationID})
	mock.lock.Unlock()
	return mock.ListByAnnotationFunc(ctx, annotationID)
}

func (mock *commentRepoMock) GetQuestion(ctx context.Context, annotationID int64) (*domain.Comment, error) {
	if mock.GetQuestionFunc == nil {
		panic("commentRepoMock.GetQuestionFunc: method is nil but commentRepo.GetQuestion was just called")
	}
	mock.lock.Lock()
	mock.calls.GetQuestion = append(mock.calls.GetQuestion, struct{ AnnotationID int64 }{AnnotationID: annotationID})
	mock.lock.Unlock()
	return mock.GetQuestionFunc(ctx, annotationID)
}

func (mock *commentRepoMock) OtherAuthorExists(ctx context.Context, annotationID, userID int64) (bool, error) {
	if mock.OtherAuthorExistsFunc == nil {
		panic("commentRepoMock.OtherAuthorExistsFunc: method is nil but commentRepo.OtherAuthorExists was just called")
	}
	mock.lock.Lock()
	mock.calls.OtherAuthorExists = append(mock.calls.OtherAuthorExists, struct{ AnnotationID, UserID int64 }{AnnotationID: annotationID, UserID: userID})
	mock.lock.Unlock()
	return mock.OtherAuthorExistsFunc(ctx, annotationID, userID)
}

func (mock *commentRepoMock) DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error) {
	if mock.DeleteByAnnotationFunc == nil {
		panic("commentRepoMock.DeleteByAnnotationFunc: method is nil but commentRepo.DeleteByAnnotation was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByAnnotation = append(mock.calls.DeleteByAnnotation, struct{ AnnotationID int64 }{AnnotationID: annotationID})
	mock.lock.Unlock()
	return mock.DeleteByAnnotationFunc(ctx, annotationID)
}

func (mock *commentRepoMock) DeleteByAnnotationCalls() []struct{ AnnotationID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByAnnotation
}

var _ archiveRepo = &archiveRepoMock{}

type archiveRepoMock struct {
	ArchiveCommentFunc func(ctx context.Context, c domain.Comment) error

	calls struct {
		ArchiveComment []struct{ C domain.Comment }
	}
	lock sync.RWMutex
}

func (mock *archiveRepoMock) ArchiveComment(ctx context.Context, c domain.Comment) error {
	if mock.ArchiveCommentFunc == nil {
		panic("archiveRepoMock.ArchiveCommentFunc: method is nil but archiveRepo.ArchiveComment was just called")
	}
	mock.lock.Lock()
	mock.calls.ArchiveComment = append(mock.calls.ArchiveComment, struct{ C domain.Comment }{C: c})
	mock.lock.Unlock()
	return mock.ArchiveCommentFunc(ctx, c)
}

func (mock *archiveRepoMock) ArchiveCommentCalls() []struct{ C domain.Comment } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ArchiveComment
}

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	DeleteByCommentFunc func(ctx context.Context, commentID int64) (int64, error)

	calls struct {
		DeleteByComment []struct{ CommentID int64 }
	}
	lock sync.RWMutex
}

func (mock *voteRepoMock) DeleteByComment(ctx context.Context, commentID int64) (int64, error) {
	if mock.DeleteByCommentFunc == nil {
		panic("voteRepoMock.DeleteByCommentFunc: method is nil but voteRepo.DeleteByComment was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByComment = append(mock.calls.DeleteByComment, struct{ CommentID int64 }{CommentID: commentID})
	mock.lock.Unlock()
	return mock.DeleteByCommentFunc(ctx, commentID)
}

func (mock *voteRepoMock) DeleteByCommentCalls() []struct{ CommentID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByComment
}

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	DeleteByAnnotationFunc func(ctx context.Context, annotationID int64) (int64, error)

	calls struct {
		DeleteByAnnotation []struct{ AnnotationID int64 }
	}
	lock sync.RWMutex
}

func (mock *subscriptionRepoMock) DeleteByAnnotation(ctx context.Context, annotationID int64) (int64, error) {
	if mock.DeleteByAnnotationFunc == nil {
		panic("subscriptionRepoMock.DeleteByAnnotationFunc: method is nil but subscriptionRepo.DeleteByAnnotation was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByAnnotation = append(mock.calls.DeleteByAnnotation, struct{ AnnotationID int64 }{AnnotationID: annotationID})
	mock.lock.Unlock()
	return mock.DeleteByAnnotationFunc(ctx, annotationID)
}

func (mock *subscriptionRepoMock) DeleteByAnnotationCalls() []struct{ AnnotationID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByAnnotation
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	ExistsByCommentFunc func(ctx context.Context, commentID int64) (bool, error)

	calls struct {
		ExistsByComment []struct{ CommentID int64 }
	}
	lock sync.RWMutex
}

func (mock *reportRepoMock) ExistsByComment(ctx context.Context, commentID int64) (bool, error) {
	if mock.ExistsByCommentFunc == nil {
		panic("reportRepoMock.ExistsByCommentFunc: method is nil but reportRepo.ExistsByComment was just called")
	}
	mock.lock.Lock()
	mock.calls.ExistsByComment = append(mock.calls.ExistsByComment, struct{ CommentID int64 }{CommentID: commentID})
	mock.lock.Unlock()
	return mock.ExistsByCommentFunc(ctx, commentID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
