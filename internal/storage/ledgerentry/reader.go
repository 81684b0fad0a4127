package ledgerentry

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var entryColumns = []string{
	"id", "voucher_no", "account_no", "amount",
	"entry_date", "entry_text", "counterpart", "line_no", "created_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *EntryFilter) (*EntryListResult, error) {
	limit := 20
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(entryColumns)...),
		sm.From("ledger_entries"),
		sm.Limit(limit + 1),
		sm.Offset(offset),
		sm.OrderBy("line_no").Asc(),
	}
	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*entryRow]())
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &EntryListResult{Entries: nil, NextCursor: nil}, nil
	}

	var nextCursor *EntryCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &EntryCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	result := make([]*Entry, len(rows))
	for i, row := range rows {
		result[i] = rowToEntry(row)
	}
	return &EntryListResult{Entries: result, NextCursor: nextCursor}, nil
}

// ListAll returns every ledger entry in line order. Sampling operates on the
// full population, so this deliberately has no pagination.
func (r *Reader) ListAll(ctx context.Context) ([]*Entry, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(entryColumns)...),
		sm.From("ledger_entries"),
		sm.OrderBy("line_no").Asc(),
	}
	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*entryRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Entry, len(rows))
	for i, row := range rows {
		result[i] = rowToEntry(row)
	}
	return result, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
		sm.From("ledger_entries"),
	}
	return bob.One(ctx, r.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

func toAnySlice(columns []string) []any {
	result := make([]any, len(columns))
	for i, c := range columns {
		result[i] = c
	}
	return result
}
