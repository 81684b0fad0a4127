package ledgerentry

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *EntryCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("ledger_entries",
			"id", "voucher_no", "account_no", "amount",
			"entry_date", "entry_text", "counterpart", "line_no",
		),
		im.Values(psql.Arg(
			id, create.Voucher, create.Account, create.Amount,
			create.EntryDate, create.EntryText, create.Counterpart, create.LineNo,
		)),
	)
	_, err = bob.Exec(ctx, w.tx, q)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *Writer) InsertBatch(ctx context.Context, creates []*EntryCreate) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(creates))
	for _, create := range creates {
		id, err := w.Insert(ctx, create)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteAll clears the ledger ahead of a fresh import.
func (w *Writer) DeleteAll(ctx context.Context) error {
	q := psql.RawQuery("DELETE FROM ledger_entries")
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
