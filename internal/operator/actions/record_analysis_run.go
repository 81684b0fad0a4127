package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/audit-sampler/internal/storage"
	"github.com/carson-networks/audit-sampler/internal/storage/analysisrun"
)

// RecordAnalysisRun persists the summary of a completed sampling run.
type RecordAnalysisRun struct {
	Create *analysisrun.RunCreate

	InsertedID uuid.UUID

	IAction
}

func (a *RecordAnalysisRun) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Runs.Insert(ctx, a.Create)
	if err != nil {
		return err
	}

	a.InsertedID = id
	return nil
}
