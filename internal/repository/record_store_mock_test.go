package repository

import (
	"context"
	"sync"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	DeleteRecordFunc          func(ctx context.Context, rec domain.Record) error
	DeleteRecordByIDFunc      func(ctx context.Context, id int64) error
	GetAllEquipmentNamesFunc  func(ctx context.Context) *live.Stream[[]string]
	GetAllRecordsFunc         func(ctx context.Context) *live.Stream[[]domain.Record]
	GetRecordByIDFunc         func(ctx context.Context, id int64) (*domain.Record, error)
	GetRecordsByEquipmentFunc func(ctx context.Context, name string) *live.Stream[[]domain.Record]
	InsertRecordFunc          func(ctx context.Context, rec domain.Record) (int64, error)
	SearchRecordsFunc         func(ctx context.Context, query string) *live.Stream[[]domain.Record]
	UpdateRecordFunc          func(ctx context.Context, rec domain.Record) error

	calls struct {
		DeleteRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
		DeleteRecordByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetAllEquipmentNames []struct{ Ctx context.Context }
		GetAllRecords        []struct{ Ctx context.Context }
		GetRecordByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetRecordsByEquipment []struct {
			Ctx  context.Context
			Name string
		}
		InsertRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
		SearchRecords []struct {
			Ctx   context.Context
			Query string
		}
		UpdateRecord []struct {
			Ctx context.Context
			Rec domain.Record
		}
	}
	lockDeleteRecord          sync.RWMutex
	lockDeleteRecordByID      sync.RWMutex
	lockGetAllEquipmentNames  sync.RWMutex
	lockGetAllRecords         sync.RWMutex
	lockGetRecordByID         sync.RWMutex
	lockGetRecordsByEquipment sync.RWMutex
	lockInsertRecord          sync.RWMutex
	lockSearchRecords         sync.RWMutex
	lockUpdateRecord          sync.RWMutex
}

func (mock *recordStoreMock) DeleteRecord(ctx context.Context, rec domain.Record) error {
	if mock.DeleteRecordFunc == nil {
		panic("recordStoreMock.DeleteRecordFunc: method is nil but recordStore.DeleteRecord was just called")
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

func (mock *recordStoreMock) DeleteRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockDeleteRecord.RLock()
	calls := mock.calls.DeleteRecord
	mock.lockDeleteRecord.RUnlock()
	return calls
}

func (mock *recordStoreMock) DeleteRecordByID(ctx context.Context, id int64) error {
	if mock.DeleteRecordByIDFunc == nil {
		panic("recordStoreMock.DeleteRecordByIDFunc: method is nil but recordStore.DeleteRecordByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteRecordByID.Lock()
	mock.calls.DeleteRecordByID = append(mock.calls.DeleteRecordByID, callInfo)
	mock.lockDeleteRecordByID.Unlock()
	return mock.DeleteRecordByIDFunc(ctx, id)
}

func (mock *recordStoreMock) DeleteRecordByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteRecordByID.RLock()
	calls := mock.calls.DeleteRecordByID
	mock.lockDeleteRecordByID.RUnlock()
	return calls
}

func (mock *recordStoreMock) GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string] {
	if mock.GetAllEquipmentNamesFunc == nil {
		panic("recordStoreMock.GetAllEquipmentNamesFunc: method is nil but recordStore.GetAllEquipmentNames was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetAllEquipmentNames.Lock()
	mock.calls.GetAllEquipmentNames = append(mock.calls.GetAllEquipmentNames, callInfo)
	mock.lockGetAllEquipmentNames.Unlock()
	return mock.GetAllEquipmentNamesFunc(ctx)
}

func (mock *recordStoreMock) GetAllEquipmentNamesCalls() []struct{ Ctx context.Context } {
	mock.lockGetAllEquipmentNames.RLock()
	calls := mock.calls.GetAllEquipmentNames
	mock.lockGetAllEquipmentNames.RUnlock()
	return calls
}

func (mock *recordStoreMock) GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record] {
	if mock.GetAllRecordsFunc == nil {
		panic("recordStoreMock.GetAllRecordsFunc: method is nil but recordStore.GetAllRecords was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetAllRecords.Lock()
	mock.calls.GetAllRecords = append(mock.calls.GetAllRecords, callInfo)
	mock.lockGetAllRecords.Unlock()
	return mock.GetAllRecordsFunc(ctx)
}

func (mock *recordStoreMock) GetAllRecordsCalls() []struct{ Ctx context.Context } {
	mock.lockGetAllRecords.RLock()
	calls := mock.calls.GetAllRecords
	mock.lockGetAllRecords.RUnlock()
	return calls
}

func (mock *recordStoreMock) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	if mock.GetRecordByIDFunc == nil {
		panic("recordStoreMock.GetRecordByIDFunc: method is nil but recordStore.GetRecordByID was just called")
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

func (mock *recordStoreMock) GetRecordByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetRecordByID.RLock()
	calls := mock.calls.GetRecordByID
	mock.lockGetRecordByID.RUnlock()
	return calls
}

func (mock *recordStoreMock) GetRecordsByEquipment(ctx context.Context, name string) *live.Stream[[]domain.Record] {
	if mock.GetRecordsByEquipmentFunc == nil {
		panic("recordStoreMock.GetRecordsByEquipmentFunc: method is nil but recordStore.GetRecordsByEquipment was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetRecordsByEquipment.Lock()
	mock.calls.GetRecordsByEquipment = append(mock.calls.GetRecordsByEquipment, callInfo)
	mock.lockGetRecordsByEquipment.Unlock()
	return mock.GetRecordsByEquipmentFunc(ctx, name)
}

func (mock *recordStoreMock) GetRecordsByEquipmentCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetRecordsByEquipment.RLock()
	calls := mock.calls.GetRecordsByEquipment
	mock.lockGetRecordsByEquipment.RUnlock()
	return calls
}

func (mock *recordStoreMock) InsertRecord(ctx context.Context, rec domain.Record) (int64, error) {
	if mock.InsertRecordFunc == nil {
		panic("recordStoreMock.InsertRecordFunc: method is nil but recordStore.InsertRecord was just called")
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

func (mock *recordStoreMock) InsertRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockInsertRecord.RLock()
	calls := mock.calls.InsertRecord
	mock.lockInsertRecord.RUnlock()
	return calls
}

func (mock *recordStoreMock) SearchRecords(ctx context.Context, query string) *live.Stream[[]domain.Record] {
	if mock.SearchRecordsFunc == nil {
		panic("recordStoreMock.SearchRecordsFunc: method is nil but recordStore.SearchRecords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockSearchRecords.Lock()
	mock.calls.SearchRecords = append(mock.calls.SearchRecords, callInfo)
	mock.lockSearchRecords.Unlock()
	return mock.SearchRecordsFunc(ctx, query)
}

func (mock *recordStoreMock) SearchRecordsCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearchRecords.RLock()
	calls := mock.calls.SearchRecords
	mock.lockSearchRecords.RUnlock()
	return calls
}

func (mock *recordStoreMock) UpdateRecord(ctx context.Context, rec domain.Record) error {
	if mock.UpdateRecordFunc == nil {
		panic("recordStoreMock.UpdateRecordFunc: method is nil but recordStore.UpdateRecord was just called")
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

func (mock *recordStoreMock) UpdateRecordCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockUpdateRecord.RLock()
	calls := mock.calls.UpdateRecord
	mock.lockUpdateRecord.RUnlock()
	return calls
}
