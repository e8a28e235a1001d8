package recordlist

import (
	"context"
	"sync"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

var _ recordRepository = &recordRepositoryMock{}

type recordRepositoryMock struct {
	DeleteRecordFunc         func(ctx context.Context, rec domain.Record) error
	GetAllEquipmentNamesFunc func(ctx context.Context) *live.Stream[[]string]
	GetAllRecordsFunc        func(ctx context.Context) *live.Stream[[]domain.Record]

	calls struct {
		DeleteRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
		GetAllEquipmentNames []struct{ Ctx context.Context }
		GetAllRecords        []struct{ Ctx context.Context }
	}
	lockDeleteRecord         sync.RWMutex
	lockGetAllEquipmentNames sync.RWMutex
	lockGetAllRecords        sync.RWMutex
}

func (mock *recordRepositoryMock) DeleteRecord(ctx context.Context, rec domain.Record) error {
	if mock.DeleteRecordFunc == nil {
		panic("recordRepositoryMock.DeleteRecordFunc: method is nil but recordRepository.DeleteRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockDeleteRecord.Lock()
	mock.calls.DeleteRecord = append(mock.calls.DeleteRecord, callInfo)
	mock.lockDeleteRecord.Unlock()
	return mock.DeleteRecordFunc(ctx, rec)
}

func (mock *recordRepositoryMock) DeleteRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockDeleteRecord.RLock()
	calls := mock.calls.DeleteRecord
	mock.lockDeleteRecord.RUnlock()
	return calls
}

func (mock *recordRepositoryMock) GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string] {
	if mock.GetAllEquipmentNamesFunc == nil {
		panic("recordRepositoryMock.GetAllEquipmentNamesFunc: method is nil but recordRepository.GetAllEquipmentNames was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetAllEquipmentNames.Lock()
	mock.calls.GetAllEquipmentNames = append(mock.calls.GetAllEquipmentNames, callInfo)
	mock.lockGetAllEquipmentNames.Unlock()
	return mock.GetAllEquipmentNamesFunc(ctx)
}

func (mock *recordRepositoryMock) GetAllEquipmentNamesCalls() []struct{ Ctx context.Context } {
	mock.lockGetAllEquipmentNames.RLock()
	calls := mock.calls.GetAllEquipmentNames
	mock.lockGetAllEquipmentNames.RUnlock()
	return calls
}

func (mock *recordRepositoryMock) GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record] {
	if mock.GetAllRecordsFunc == nil {
		panic("recordRepositoryMock.GetAllRecordsFunc: method is nil but recordRepository.GetAllRecords was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetAllRecords.Lock()
	mock.calls.GetAllRecords = append(mock.calls.GetAllRecords, callInfo)
	mock.lockGetAllRecords.Unlock()
	return mock.GetAllRecordsFunc(ctx)
}

func (mock *recordRepositoryMock) GetAllRecordsCalls() []struct{ Ctx context.Context } {
	mock.lockGetAllRecords.RLock()
	calls := mock.calls.GetAllRecords
	mock.lockGetAllRecords.RUnlock()
	return calls
}
