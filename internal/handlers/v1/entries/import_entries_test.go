package entries

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/audit-sampler/internal/operator/actions"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newImportTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewImportEntriesHandler(op).Register(api)
	return api
}

// -- parseImportEntryRow unit tests --

func TestParseImportEntryRow_FullRow(t *testing.T) {
	create, err := parseImportEntryRow(&ImportEntryRow{
		Voucher:     "B0017",
		Account:     7210,
		Amount:      "-1250.75",
		EntryDate:   "2025-03-14",
		EntryText:   "Consulting",
		Counterpart: "Acme",
	}, 16)

	assert.NoError(t, err)
	assert.Equal(t, "B0017", create.Voucher)
	assert.Equal(t, 7210, create.Account)
	assert.True(t, create.Amount.Valid)
	assert.Equal(t, "-1250.75", create.Amount.Decimal.String())
	assert.Equal(t, 2025, create.EntryDate.Year())
	assert.Equal(t, 16, create.LineNo)
}

func TestParseImportEntryRow_BlankAmountKeptAsNull(t *testing.T) {
	create, err := parseImportEntryRow(&ImportEntryRow{
		Voucher: "B0001",
		Account: 6000,
	}, 0)

	assert.NoError(t, err)
	assert.False(t, create.Amount.Valid)
	assert.True(t, create.EntryDate.IsZero())
}

func TestParseImportEntryRow_InvalidAmount(t *testing.T) {
	_, err := parseImportEntryRow(&ImportEntryRow{
		Voucher: "B0001",
		Account: 6000,
		Amount:  "not-a-decimal",
	}, 0)

	assert.Error(t, err)
}

func TestParseImportEntryRow_InvalidDate(t *testing.T) {
	_, err := parseImportEntryRow(&ImportEntryRow{
		Voucher:   "B0001",
		Account:   6000,
		EntryDate: "14.03.2025",
	}, 0)

	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_ImportEntries_Success(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		imp, ok := a.(*actions.ImportEntries)
		return ok && len(imp.Entries) == 2 && imp.Replace &&
			imp.Entries[0].LineNo == 0 && imp.Entries[1].LineNo == 1
	})).Run(func(args mock.Arguments) {
		imp := args.Get(1).(*actions.ImportEntries)
		imp.InsertedIDs = []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
	}).Return(nil)

	resp := newImportTestAPI(t, mockOp).Post("/v1/entries/import", ImportEntriesBody{
		Entries: []ImportEntryRow{
			{Voucher: "B0001", Account: 6000, Amount: "100.00", EntryDate: "2025-01-15"},
			{Voucher: "B0002", Account: 7210, Amount: "-50.00"},
		},
		Replace: true,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body ImportEntriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Imported)
	mockOp.AssertExpectations(t)
}

func TestHTTP_ImportEntries_EmptyBatchRejected(t *testing.T) {
	mockOp := new(mockProcessor)

	// Huma's minItems validation rejects the request before the handler runs.
	resp := newImportTestAPI(t, mockOp).Post("/v1/entries/import", ImportEntriesBody{
		Entries: []ImportEntryRow{},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_ImportEntries_InvalidAmount(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newImportTestAPI(t, mockOp).Post("/v1/entries/import", ImportEntriesBody{
		Entries: []ImportEntryRow{
			{Voucher: "B0001", Account: 6000, Amount: "1,5"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_ImportEntries_OperatorError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(assert.AnError)

	resp := newImportTestAPI(t, mockOp).Post("/v1/entries/import", ImportEntriesBody{
		Entries: []ImportEntryRow{
			{Voucher: "B0001", Account: 6000, Amount: "100.00"},
		},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
