package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/audit-sampler/internal/storage"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

// ImportEntries appends a batch of ledger entries, optionally replacing the
// existing ledger first. Replace and append run in the same transaction so a
// failed import never leaves the ledger half empty.
type ImportEntries struct {
	Entries []*ledgerentry.EntryCreate
	Replace bool

	InsertedIDs []uuid.UUID

	IAction
}

func (a *ImportEntries) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Replace {
		if err := writer.Entries.DeleteAll(ctx); err != nil {
			return err
		}
	}

	ids, err := writer.Entries.InsertBatch(ctx, a.Entries)
	if err != nil {
		return err
	}

	a.InsertedIDs = ids
	return nil
}
