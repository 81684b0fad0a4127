package analysisrun

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Run represents one recorded sampling run.
type Run struct {
	ID             uuid.UUID
	Name           string
	Definition     []byte
	SubPopulations int
	SelectedCount  int
	Shortfall      bool
	CreatedAt      time.Time
}

// RunCreate is the input for recording a completed sampling run.
type RunCreate struct {
	Name           string
	Definition     []byte
	SubPopulations int
	SelectedCount  int
	Shortfall      bool
}

// RunFilter specifies filters for listing runs.
type RunFilter struct {
	Limit  int
	Offset int
}

// IRunsTable defines the interface for analysis run storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IRunsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Run, error)
	List(ctx context.Context, filter *RunFilter) ([]*Run, error)
}

type runRow struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Definition     []byte    `db:"definition"`
	SubPopulations int       `db:"sub_populations"`
	SelectedCount  int       `db:"selected_count"`
	Shortfall      bool      `db:"shortfall"`
	CreatedAt      time.Time `db:"created_at"`
}

func rowToRun(row *runRow) *Run {
	return &Run{
		ID:             row.ID,
		Name:           row.Name,
		Definition:     row.Definition,
		SubPopulations: row.SubPopulations,
		SelectedCount:  row.SelectedCount,
		Shortfall:      row.Shortfall,
		CreatedAt:      row.CreatedAt,
	}
}
