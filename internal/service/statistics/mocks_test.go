package statistics

import (
	"context"
	"sync"

	"github.com/annothub/annotator-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	CountByInstanceFunc      func(ctx context.Context, instanceID int64, isQuestion bool, onlyUser *int64) (int, error)
	CountByCourseFunc        func(ctx context.Context, courseID int64, isQuestion bool, onlyUser *int64) (int, error)
	AvgPerUserByInstanceFunc func(ctx context.Context, instanceID int64, isQuestion bool) (float64, bool, error)
	AvgPerUserByCourseFunc   func(ctx context.Context, courseID int64, isQuestion bool) (float64, bool, error)

	calls struct {
		CountByInstance []struct {
			InstanceID int64
			IsQuestion bool
			OnlyUser   *int64
		}
		CountByCourse []struct {
			CourseID   int64
			IsQuestion bool
			OnlyUser   *int64
		}
		AvgPerUserByInstance []struct {
			InstanceID int64
			IsQuestion bool
		}
		AvgPerUserByCourse []struct {
			CourseID   int64
			IsQuestion bool
		}
	}
	lock sync.RWMutex
}

func (mock *statsRepoMock) CountByInstance(ctx context.Context, instanceID int64, isQuestion bool, onlyUser *int64) (int, error) {
	if mock.CountByInstanceFunc == nil {
		panic("statsRepoMock.CountByInstanceFunc: method is nil but statsRepo.CountByInstance was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByInstance = append(mock.calls.CountByInstance, struct {
		InstanceID int64
		IsQuestion bool
		OnlyUser   *int64
	}{InstanceID: instanceID, IsQuestion: isQuestion, OnlyUser: onlyUser})
	mock.lock.Unlock()
	return mock.CountByInstanceFunc(ctx, instanceID, isQuestion, onlyUser)
}

func (mock *statsRepoMock) CountByInstanceCalls() []struct {
	InstanceID int64
	IsQuestion bool
	OnlyUser   *int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByInstance
}

func (mock *statsRepoMock) CountByCourse(ctx context.Context, courseID int64, isQuestion bool, onlyUser *int64) (int, error) {
	if mock.CountByCourseFunc == nil {
		panic("statsRepoMock.CountByCourseFunc: method is nil but statsRepo.CountByCourse was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByCourse = append(mock.calls.CountByCourse, struct {
		CourseID   int64
		IsQuestion bool
		OnlyUser   *int64
	}{CourseID: courseID, IsQuestion: isQuestion, OnlyUser: onlyUser})
	mock.lock.Unlock()
	return mock.CountByCourseFunc(ctx, courseID, isQuestion, onlyUser)
}

func (mock *statsRepoMock) AvgPerUserByInstance(ctx context.Context, instanceID int64, isQuestion bool) (float64, bool, error) {
	if mock.AvgPerUserByInstanceFunc == nil {
		panic("statsRepoMock.AvgPerUserByInstanceFunc: method is nil but statsRepo.AvgPerUserByInstance was just called")
	}
	mock.lock.Lock()
	mock.calls.AvgPerUserByInstance = append(mock.calls.AvgPerUserByInstance, struct {
		InstanceID int64
		IsQuestion bool
	}{InstanceID: instanceID, IsQuestion: isQuestion})
	mock.lock.Unlock()
	return mock.AvgPerUserByInstanceFunc(ctx, instanceID, isQuestion)
}

func (mock *statsRepoMock) AvgPerUserByCourse(ctx context.Context, courseID int64, isQuestion bool) (float64, bool, error) {
	if mock.AvgPerUserByCourseFunc == nil {
		panic("statsRepoMock.AvgPerUserByCourseFunc: method is nil but statsRepo.AvgPerUserByCourse was just called")
	}
	mock.lock.Lock()
	mock.calls.AvgPerUserByCourse = append(mock.calls.AvgPerUserByCourse, struct {
		CourseID   int64
		IsQuestion bool
	}{CourseID: courseID, IsQuestion: isQuestion})
	mock.lock.Unlock()
	return mock.AvgPerUserByCourseFunc(ctx, courseID, isQuestion)
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CountByInstanceFunc func(ctx context.Context, instanceID int64) (int, error)
	CountByCourseFunc   func(ctx context.Context, courseID int64) (int, error)

	calls struct {
		CountByInstance []struct{ InstanceID int64 }
		CountByCourse   []struct{ CourseID int64 }
	}
	lock sync.RWMutex
}

func (mock *reportRepoMock) CountByInstance(ctx context.Context, instanceID int64) (int, error) {
	if mock.CountByInstanceFunc == nil {
		panic("reportRepoMock.CountByInstanceFunc: method is nil but reportRepo.CountByInstance was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByInstance = append(mock.calls.CountByInstance, struct{ InstanceID int64 }{InstanceID: instanceID})
	mock.lock.Unlock()
	return mock.CountByInstanceFunc(ctx, instanceID)
}

func (mock *reportRepoMock) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	if mock.CountByCourseFunc == nil {
		panic("reportRepoMock.CountByCourseFunc: method is nil but reportRepo.CountByCourse was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByCourse = append(mock.calls.CountByCourse, struct{ CourseID int64 }{CourseID: courseID})
	mock.lock.Unlock()
	return mock.CountByCourseFunc(ctx, courseID)
}

var _ instanceRepo = &instanceRepoMock{}

type instanceRepoMock struct {
	ListByCourseFunc func(ctx context.Context, courseID int64) ([]domain.Instance, error)

	calls struct {
		ListByCourse []struct{ CourseID int64 }
	}
	lock sync.RWMutex
}

func (mock *instanceRepoMock) ListByCourse(ctx context.Context, courseID int64) ([]domain.Instance, error) {
	if mock.ListByCourseFunc == nil {
		panic("instanceRepoMock.ListByCourseFunc: method is nil but instanceRepo.ListByCourse was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByCourse = append(mock.calls.ListByCourse, struct{ CourseID int64 }{CourseID: courseID})
	mock.lock.Unlock()
	return mock.ListByCourseFunc(ctx, courseID)
}
