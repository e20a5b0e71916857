package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/journal"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
	"sync"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	CreateEntryFunc func(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateResult, error)
	DeleteEntryFunc func(ctx context.Context, entryID uuid.UUID) (*progress.Snapshot, error)
	GetEntryFunc    func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntriesFunc func(ctx context.Context, input journal.ListEntriesInput) ([]*domain.JournalEntry, int, error)
	SummarizeFunc   func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input journal.CreateEntryInput
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		GetEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		ListEntries []struct {
			Ctx   context.Context
			Input journal.ListEntriesInput
		}
		Summarize []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockCreateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
	lockGetEntry    sync.RWMutex
	lockListEntries sync.RWMutex
	lockSummarize   sync.RWMutex
}

func (mock *journalServiceMock) CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateResult, error) {
	if mock.CreateEntryFunc == nil {
		panic("journalServiceMock.CreateEntryFunc: method is nil but journalService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *journalServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input journal.CreateEntryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input journal.CreateEntryInput
	}
	mock.lockCreateEntry.RLock()
	calls = mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) (*progress.Snapshot, error) {
	if mock.DeleteEntryFunc == nil {
		panic("journalServiceMock.DeleteEntryFunc: method is nil but journalService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *journalServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockDeleteEntry.RLock()
	calls = mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("journalServiceMock.GetEntryFunc: method is nil but journalService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, entryID)
}

func (mock *journalServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockGetEntry.RLock()
	calls = mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListEntries(ctx context.Context, input journal.ListEntriesInput) ([]*domain.JournalEntry, int, error) {
	if mock.ListEntriesFunc == nil {
		panic("journalServiceMock.ListEntriesFunc: method is nil but journalService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.ListEntriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *journalServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input journal.ListEntriesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input journal.ListEntriesInput
	}
	mock.lockListEntries.RLock()
	calls = mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *journalServiceMock) Summarize(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.SummarizeFunc == nil {
		panic("journalServiceMock.SummarizeFunc: method is nil but journalService.Summarize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, entryID)
}

func (mock *journalServiceMock) SummarizeCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockSummarize.RLock()
	calls = mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}
