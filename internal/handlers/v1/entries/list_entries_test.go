package entries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/audit-sampler/internal/service"
)

// mockLedgerService is a mock for entryLister.
type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) ListEntries(ctx context.Context, cursor *service.EntryCursor) ([]service.Entry, *service.EntryCursor, error) {
	args := m.Called(ctx, cursor)
	var entries []service.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]service.Entry)
	}
	var nextCursor *service.EntryCursor
	if args.Get(1) != nil {
		nextCursor = args.Get(1).(*service.EntryCursor)
	}
	return entries, nextCursor, args.Error(2)
}

func newListTestAPI(t *testing.T, svc entryLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListEntriesHandler(svc).Register(api)
	return api
}

func TestHTTP_ListEntries_Success(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("ListEntries", mock.Anything, (*service.EntryCursor)(nil)).Return([]service.Entry{
		{
			ID:        uuid.Must(uuid.NewV4()),
			Voucher:   "B0001",
			Account:   6000,
			Amount:    decimal.NewNullDecimal(decimal.RequireFromString("125.50")),
			EntryDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EntryText: "Invoice",
			LineNo:    0,
		},
		{
			ID:      uuid.Must(uuid.NewV4()),
			Voucher: "B0002",
			Account: 7210,
			LineNo:  1,
		},
	}, nil, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/entries/list", ListEntriesBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListEntriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Entries, 2)
	assert.Equal(t, "B0001", body.Entries[0].Voucher)
	assert.Equal(t, "125.5", body.Entries[0].Amount)
	assert.Equal(t, "2025-03-01", body.Entries[0].EntryDate)
	assert.Equal(t, "", body.Entries[1].Amount, "null amount renders empty")
	assert.Equal(t, "", body.Entries[1].EntryDate, "zero date renders empty")
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListEntries_WithCursor(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("ListEntries", mock.Anything, mock.MatchedBy(func(c *service.EntryCursor) bool {
		return c != nil && c.Position == 20 && c.Limit == 20
	})).Return([]service.Entry{{Voucher: "B0021"}}, &service.EntryCursor{Position: 40, Limit: 20}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/entries/list", ListEntriesBody{
		Cursor: &ListEntriesCursor{Position: 20, Limit: 20},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListEntriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 40, body.NextCursor.Position)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListEntries_ServiceError(t *testing.T) {
	mockSvc := new(mockLedgerService)
	mockSvc.On("ListEntries", mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/entries/list", ListEntriesBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
