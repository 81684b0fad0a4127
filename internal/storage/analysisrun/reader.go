package analysisrun

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var runColumns = []string{
	"id", "name", "definition", "sub_populations",
	"selected_count", "shortfall", "created_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Run, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(runColumns)...),
		sm.From("analysis_runs"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*runRow]())
	if err != nil {
		return nil, err
	}
	return rowToRun(row), nil
}

func (r *Reader) List(ctx context.Context, filter *RunFilter) ([]*Run, error) {
	limit := 20
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(runColumns)...),
		sm.From("analysis_runs"),
		sm.Limit(limit),
		sm.Offset(offset),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Asc(),
	}
	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*runRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Run, len(rows))
	for i, row := range rows {
		result[i] = rowToRun(row)
	}
	return result, nil
}

func toAnySlice(columns []string) []any {
	result := make([]any, len(columns))
	for i, c := range columns {
		result[i] = c
	}
	return result
}
