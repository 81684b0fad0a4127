package entries

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/audit-sampler/internal/logging"
	"github.com/carson-networks/audit-sampler/internal/service"
)

// ListEntriesCursor represents a pagination cursor in request and response bodies.
type ListEntriesCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListEntriesBody is the request body for listing ledger entries.
type ListEntriesBody struct {
	Cursor *ListEntriesCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListEntriesInput is the Huma input for listing ledger entries.
type ListEntriesInput struct {
	Body ListEntriesBody
}

// ListEntriesResponseBody is the response body for listing ledger entries.
type ListEntriesResponseBody struct {
	Entries    []Entry            `json:"entries" doc:"Page of ledger entries in line order"`
	NextCursor *ListEntriesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListEntriesOutput is the Huma output for listing ledger entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// entryLister is the interface for listing ledger entries.
type entryLister interface {
	ListEntries(ctx context.Context, cursor *service.EntryCursor) ([]service.Entry, *service.EntryCursor, error)
}

// ListEntriesHandler handles POST /v1/entries/list.
type ListEntriesHandler struct {
	LedgerService entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(svc entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{LedgerService: svc}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodPost,
		Path:        "/v1/entries/list",
		Summary:     "List ledger entries",
		Description: "Returns a paginated list of ledger entries using cursor-based pagination.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func parseListEntriesInput(input *ListEntriesInput) (*service.EntryCursor, error) {
	if input.Body.Cursor == nil {
		return nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	return &service.EntryCursor{
		Position: input.Body.Cursor.Position,
		Limit:    input.Body.Cursor.Limit,
	}, nil
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseListEntriesInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listEntriesMs")
	}
	serviceEntries, nextCursor, err := h.LedgerService.ListEntries(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list entries", err)
	}

	if logData != nil {
		logData.AddData("entryCount", len(serviceEntries))
	}

	resp := ListEntriesResponseBody{
		Entries: make([]Entry, len(serviceEntries)),
	}

	for i, entry := range serviceEntries {
		converted := Entry{
			ID:          entry.ID.String(),
			Voucher:     entry.Voucher,
			Account:     entry.Account,
			EntryText:   entry.EntryText,
			Counterpart: entry.Counterpart,
			LineNo:      entry.LineNo,
		}
		if entry.Amount.Valid {
			converted.Amount = entry.Amount.Decimal.String()
		}
		if !entry.EntryDate.IsZero() {
			converted.EntryDate = entry.EntryDate.Format(time.DateOnly)
		}
		resp.Entries[i] = converted
	}

	if nextCursor != nil {
		resp.NextCursor = &ListEntriesCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListEntriesOutput{Body: resp}, nil
}
