package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/audit-sampler/internal/storage"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

func newTestLedgerService(t *testing.T) (*LedgerService, *ledgerentry.MockIEntriesTable) {
	t.Helper()
	mockTable := ledgerentry.NewMockIEntriesTable(t)
	store := &storage.Storage{Entries: mockTable}
	svc := NewLedgerService(store)
	return svc, mockTable
}

func makeStorageEntries(n int, createdAt time.Time) []*ledgerentry.Entry {
	rows := make([]*ledgerentry.Entry, n)
	for i := range rows {
		rows[i] = &ledgerentry.Entry{
			ID:          uuid.Must(uuid.NewV4()),
			Voucher:     "B0001",
			Account:     6000,
			Amount:      decimal.NewNullDecimal(decimal.RequireFromString("125.50")),
			EntryDate:   createdAt,
			EntryText:   "Invoice",
			Counterpart: "Acme",
			LineNo:      i,
			CreatedAt:   createdAt,
		}
	}
	return rows
}

// -- ListEntries tests --

func TestListEntries_NoResults(t *testing.T) {
	svc, mockTable := newTestLedgerService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return(&ledgerentry.EntryListResult{}, nil)

	entries, nextCursor, err := svc.ListEntries(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, entries)
	assert.Nil(t, nextCursor)
}

func TestListEntries_SinglePage(t *testing.T) {
	svc, mockTable := newTestLedgerService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(2, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *ledgerentry.EntryFilter) bool {
		return f.Limit == defaultEntryLimit && f.Offset == 0
	})).Return(&ledgerentry.EntryListResult{Entries: rows}, nil)

	entries, nextCursor, err := svc.ListEntries(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Nil(t, nextCursor)

	entry := entries[0]
	assert.Equal(t, rows[0].ID, entry.ID)
	assert.Equal(t, rows[0].Voucher, entry.Voucher)
	assert.Equal(t, rows[0].Account, entry.Account)
	assert.True(t, rows[0].Amount.Decimal.Equal(entry.Amount.Decimal))
	assert.Equal(t, rows[0].EntryDate, entry.EntryDate)
	assert.Equal(t, rows[0].LineNo, entry.LineNo)
}

func TestListEntries_HasNextPage(t *testing.T) {
	svc, mockTable := newTestLedgerService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageEntries(5, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *ledgerentry.EntryFilter) bool {
		return f.Limit == 5 && f.Offset == 10
	})).Return(&ledgerentry.EntryListResult{
		Entries:    rows,
		NextCursor: &ledgerentry.EntryCursor{Position: 15, Limit: 5},
	}, nil)

	entries, nextCursor, err := svc.ListEntries(context.Background(), &EntryCursor{
		Position: 10,
		Limit:    5,
	})

	assert.NoError(t, err)
	assert.Len(t, entries, 5)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 15, nextCursor.Position)
	assert.Equal(t, 5, nextCursor.Limit)
}

func TestListEntries_StorageError(t *testing.T) {
	svc, mockTable := newTestLedgerService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	entries, nextCursor, err := svc.ListEntries(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, entries)
	assert.Nil(t, nextCursor)
}

// -- CountEntries tests --

func TestCountEntries(t *testing.T) {
	svc, mockTable := newTestLedgerService(t)

	mockTable.On("Count", mock.Anything).Return(int64(42), nil)

	count, err := svc.CountEntries(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
