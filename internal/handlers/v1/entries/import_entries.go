package entries

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/audit-sampler/internal/operator/actions"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

// actionProcessor is the interface for submitting actions to the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ImportEntryRow is one ledger line in an import request.
type ImportEntryRow struct {
	Voucher     string `json:"voucher" required:"true" minLength:"1" doc:"Voucher number"`
	Account     int    `json:"account" required:"true" doc:"Account code"`
	Amount      string `json:"amount" doc:"Decimal amount, empty for a blank source cell"`
	EntryDate   string `json:"entryDate" doc:"Entry date (YYYY-MM-DD)"`
	EntryText   string `json:"entryText" doc:"Entry description"`
	Counterpart string `json:"counterpart" doc:"Counterpart name"`
}

// ImportEntriesBody is the request body for importing ledger entries.
type ImportEntriesBody struct {
	Entries []ImportEntryRow `json:"entries" required:"true" minItems:"1" doc:"Ledger lines in file order"`
	Replace bool             `json:"replace" doc:"Clear the existing ledger before importing"`
}

// ImportEntriesInput is the Huma input for importing ledger entries.
type ImportEntriesInput struct {
	Body ImportEntriesBody
}

// ImportEntriesResponseBody is the response body for importing ledger entries.
type ImportEntriesResponseBody struct {
	Imported int `json:"imported" doc:"Number of entries imported"`
}

// ImportEntriesOutput is the Huma output for importing ledger entries.
type ImportEntriesOutput struct {
	Status int
	Body   ImportEntriesResponseBody
}

// ImportEntriesHandler handles POST /v1/entries/import.
type ImportEntriesHandler struct {
	Operator actionProcessor
}

// NewImportEntriesHandler creates a new ImportEntriesHandler.
func NewImportEntriesHandler(op actionProcessor) *ImportEntriesHandler {
	return &ImportEntriesHandler{Operator: op}
}

// Register registers the import entries endpoint with the Huma API.
func (h *ImportEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-entries",
		Method:      http.MethodPost,
		Path:        "/v1/entries/import",
		Summary:     "Import ledger entries",
		Description: "Imports a batch of ledger entries, optionally replacing the existing ledger.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

// parseImportEntryRow converts one request row to a storage create. A blank
// amount is kept as a null amount rather than rejected, so ledgers with
// missing cells can still be imported and sampled.
func parseImportEntryRow(row *ImportEntryRow, lineNo int) (*ledgerentry.EntryCreate, error) {
	create := &ledgerentry.EntryCreate{
		Voucher:     row.Voucher,
		Account:     row.Account,
		EntryText:   row.EntryText,
		Counterpart: row.Counterpart,
		LineNo:      lineNo,
	}

	if row.Amount != "" {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		create.Amount = decimal.NewNullDecimal(amount)
	}

	if row.EntryDate != "" {
		entryDate, err := time.Parse(time.DateOnly, row.EntryDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid entryDate", err)
		}
		create.EntryDate = entryDate
	}

	return create, nil
}

func (h *ImportEntriesHandler) handle(ctx context.Context, input *ImportEntriesInput) (*ImportEntriesOutput, error) {
	creates := make([]*ledgerentry.EntryCreate, len(input.Body.Entries))
	for i := range input.Body.Entries {
		create, err := parseImportEntryRow(&input.Body.Entries[i], i)
		if err != nil {
			return nil, err
		}
		creates[i] = create
	}

	action := &actions.ImportEntries{
		Entries: creates,
		Replace: input.Body.Replace,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import entries", err)
	}

	return &ImportEntriesOutput{
		Status: http.StatusCreated,
		Body:   ImportEntriesResponseBody{Imported: len(action.InsertedIDs)},
	}, nil
}
