package analysisrun

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

func (w *Writer) Insert(ctx context.Context, create *RunCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("analysis_runs",
			"id", "name", "definition", "sub_populations",
			"selected_count", "shortfall",
		),
		im.Values(psql.Arg(
			id, create.Name, create.Definition, create.SubPopulations,
			create.SelectedCount, create.Shortfall,
		)),
	)
	_, err = bob.Exec(ctx, w.tx, q)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
