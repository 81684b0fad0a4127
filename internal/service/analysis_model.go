package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/audit-sampler/internal/sampling"
)

// AnalysisResult is the outcome of running a set of sampling plans against
// the stored ledger.
type AnalysisResult struct {
	Name           string
	Results        []sampling.Result
	SubPopulations int
	SelectedCount  int
	Shortfall      bool
}

// AnalysisRun summarizes a previously recorded run.
type AnalysisRun struct {
	ID             uuid.UUID
	Name           string
	Definition     []byte
	SubPopulations int
	SelectedCount  int
	Shortfall      bool
	CreatedAt      time.Time
}

// AnalysisRunCursor identifies a position in a paginated result set.
type AnalysisRunCursor struct {
	Position int
	Limit    int
}
