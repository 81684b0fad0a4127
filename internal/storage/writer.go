package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/audit-sampler/internal/storage/analysisrun"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

type Writer struct {
	tx      bob.Tx
	Entries *ledgerentry.Writer
	Runs    *analysisrun.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:      tx,
		Entries: ledgerentry.NewWriter(tx),
		Runs:    analysisrun.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
