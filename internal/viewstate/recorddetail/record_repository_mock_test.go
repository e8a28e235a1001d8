package recorddetail

import (
	"context"
	"sync"

	"github.com/papermill/maintenance-log/internal/domain"
)

var _ recordRepository = &recordRepositoryMock{}

type recordRepositoryMock struct {
	GetRecordByIDFunc func(ctx context.Context, id int64) (*domain.Record, error)
	InsertRecordFunc  func(ctx context.Context, rec domain.Record) (int64, error)
	UpdateRecordFunc  func(ctx context.Context, rec domain.Record) error

	calls struct {
		GetRecordByID []struct {
			Ctx context.Context
			Id  int64
		}
		InsertRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
		UpdateRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
	}
	lockGetRecordByID sync.RWMutex
	lockInsertRecord  sync.RWMutex
	lockUpdateRecord  sync.RWMutex
}

func (mock *recordRepositoryMock) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetRecordByIDFunc == nil {
		panic("recordRepositoryMock.GetRecordByIDFunc: method is nil but recordRepository.GetRecordByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetRecordByID.Lock()
	mock.calls.GetRecordByID = append(mock.calls.GetRecordByID, callInfo)
	mock.lockGetRecordByID.Unlock()
	return mock.GetRecordByIDFunc(ctx, id)
}

func (mock *recordRepositoryMock) GetRecordByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetRecordByID.RLock()
	calls := mock.calls.GetRecordByID
	mock.lockGetRecordByID.RUnlock()
	return calls
}

func (mock *recordRepositoryMock) InsertRecord(ctx context.Context, rec domain.Record) (int64, error) {
	if mock.InsertRecordFunc == nil {
		panic("recordRepositoryMock.InsertRecordFunc: method is nil but recordRepository.InsertRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockInsertRecord.Lock()
	mock.calls.InsertRecord = append(mock.calls.InsertRecord, callInfo)
	mock.lockInsertRecord.Unlock()
	return mock.InsertRecordFunc(ctx, rec)
}

func (mock *recordRepositoryMock) InsertRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockInsertRecord.RLock()
	calls := mock.calls.InsertRecord
	mock.lockInsertRecord.RUnlock()
	return calls
}

func (mock *recordRepositoryMock) UpdateRecord(ctx context.Context, rec domain.Record) error {
	if mock.UpdateRecordFunc == nil {
		panic("recordRepositoryMock.UpdateRecordFunc: method is nil but recordRepository.UpdateRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdateRecord.Lock()
	mock.calls.UpdateRecord = append(mock.calls.UpdateRecord, callInfo)
	mock.lockUpdateRecord.Unlock()
	return mock.UpdateRecordFunc(ctx, rec)
}

func (mock *recordRepositoryMock) UpdateRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockUpdateRecord.RLock()
	calls := mock.calls.UpdateRecord
	mock.lockUpdateRecord.RUnlock()
	return calls
}
