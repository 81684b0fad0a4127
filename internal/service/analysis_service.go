package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/carson-networks/audit-sampler/internal/sampling"
	"github.com/carson-networks/audit-sampler/internal/storage"
	"github.com/carson-networks/audit-sampler/internal/storage/analysisrun"
	"github.com/carson-networks/audit-sampler/internal/storage/ledgerentry"
)

const defaultRunLimit = 20

// AnalysisService runs sampling plans against the stored ledger and exposes
// previously recorded runs.
type AnalysisService struct {
	storage *storage.Storage
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(store *storage.Storage) *AnalysisService {
	return &AnalysisService{storage: store}
}

// RunAnalysis loads the full ledger and executes every plan against it.
// Per-plan failures are reported inside the result; only a storage failure
// is returned as an error.
func (s *AnalysisService) RunAnalysis(ctx context.Context, name string, plans []sampling.Plan) (*AnalysisResult, error) {
	rows, err := s.storage.Entries.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ds := datasetFromEntries(rows)
	results := sampling.RunAll(ds, plans)

	result := &AnalysisResult{
		Name:           name,
		Results:        results,
		SubPopulations: len(results),
	}
	for i := range results {
		if results[i].Outputs == nil {
			continue
		}
		result.SelectedCount += results[i].Outputs.Draw.SelectedCount()
		if results[i].Outputs.Shortfall() {
			result.Shortfall = true
		}
	}

	return result, nil
}

// GetRun retrieves a recorded run by ID.
func (s *AnalysisService) GetRun(ctx context.Context, id uuid.UUID) (*AnalysisRun, error) {
	row, err := s.storage.Runs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return runFromStorage(row), nil
}

// ListRuns returns a page of recorded runs, newest first.
func (s *AnalysisService) ListRuns(ctx context.Context, cursor *AnalysisRunCursor) ([]AnalysisRun, error) {
	limit := defaultRunLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	rows, err := s.storage.Runs.List(ctx, &analysisrun.RunFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}

	converted := make([]AnalysisRun, len(rows))
	for i, row := range rows {
		converted[i] = *runFromStorage(row)
	}
	return converted, nil
}

func runFromStorage(row *analysisrun.Run) *AnalysisRun {
	return &AnalysisRun{
		ID:             row.ID,
		Name:           row.Name,
		Definition:     row.Definition,
		SubPopulations: row.SubPopulations,
		SelectedCount:  row.SelectedCount,
		Shortfall:      row.Shortfall,
		CreatedAt:      row.CreatedAt,
	}
}

// datasetFromEntries converts stored rows into the in-memory dataset the
// sampling core operates on. Record order follows line order, so record IDs
// are stable across runs over the same ledger.
func datasetFromEntries(rows []*ledgerentry.Entry) *ledger.Dataset {
	records := make([]ledger.Record, len(rows))
	for i, row := range rows {
		records[i] = ledger.Record{
			Voucher:     row.Voucher,
			Account:     row.Account,
			Amount:      row.Amount,
			Date:        row.EntryDate,
			Text:        row.EntryText,
			Counterpart: row.Counterpart,
		}
	}
	return &ledger.Dataset{
		Columns: ledger.Columns{
			Voucher:     "voucher_no",
			Account:     "account_no",
			Amount:      "amount",
			Date:        "entry_date",
			Text:        "entry_text",
			Counterpart: "counterpart",
		},
		Records: records,
	}
}
