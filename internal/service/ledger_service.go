package service

import (
	"context"

	"github.com/carson-networks/audit-sampler/internal/storage"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

const defaultEntryLimit = 20

// LedgerService handles ledger entry business logic.
type LedgerService struct {
	storage *storage.Storage
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage) *LedgerService {
	return &LedgerService{storage: store}
}

// ListEntries returns a page of ledger entries using cursor-based pagination.
func (s *LedgerService) ListEntries(ctx context.Context, cursor *EntryCursor) ([]Entry, *EntryCursor, error) {
	limit := defaultEntryLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &ledgerentry.EntryFilter{
		Limit:  limit,
		Offset: offset,
	}

	page, err := s.storage.Entries.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(page.Entries) == 0 {
		return nil, nil, nil
	}

	var nextCursor *EntryCursor
	if page.NextCursor != nil {
		nextCursor = &EntryCursor{
			Position: page.NextCursor.Position,
			Limit:    page.NextCursor.Limit,
		}
	}

	convertedEntries := make([]Entry, len(page.Entries))
	for i, row := range page.Entries {
		convertedEntries[i] = Entry{
			ID:          row.ID,
			Voucher:     row.Voucher,
			Account:     row.Account,
			Amount:      row.Amount,
			EntryDate:   row.EntryDate,
			EntryText:   row.EntryText,
			Counterpart: row.Counterpart,
			LineNo:      row.LineNo,
			CreatedAt:   row.CreatedAt,
		}
	}

	return convertedEntries, nextCursor, nil
}

// CountEntries returns the total number of ledger entries.
func (s *LedgerService) CountEntries(ctx context.Context) (int64, error) {
	return s.storage.Entries.Count(ctx)
}
