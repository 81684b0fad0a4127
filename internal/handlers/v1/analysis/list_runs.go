package analysis

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/audit-sampler/internal/service"
)

// ListRunsCursor represents a pagination cursor in request and response bodies.
type ListRunsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListRunsBody is the request body for listing recorded runs.
type ListRunsBody struct {
	Cursor *ListRunsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListRunsInput is the Huma input for listing recorded runs.
type ListRunsInput struct {
	Body ListRunsBody
}

// ListRunsResponseBody is the response body for listing recorded runs.
type ListRunsResponseBody struct {
	Runs []Run `json:"runs" doc:"Recorded runs, newest first"`
}

// ListRunsOutput is the Huma output for listing recorded runs.
type ListRunsOutput struct {
	Body ListRunsResponseBody
}

// runLister is the interface for listing recorded runs.
type runLister interface {
	ListRuns(ctx context.Context, cursor *service.AnalysisRunCursor) ([]service.AnalysisRun, error)
}

// ListRunsHandler handles POST /v1/analysis/runs/list.
type ListRunsHandler struct {
	AnalysisService runLister
}

// NewListRunsHandler creates a new ListRunsHandler.
func NewListRunsHandler(svc runLister) *ListRunsHandler {
	return &ListRunsHandler{AnalysisService: svc}
}

// Register registers the list runs endpoint with the Huma API.
func (h *ListRunsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-runs",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/runs/list",
		Summary:     "List recorded runs",
		Description: "Returns recorded sampling runs, newest first.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *ListRunsHandler) handle(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	var cursor *service.AnalysisRunCursor
	if input.Body.Cursor != nil {
		cursor = &service.AnalysisRunCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	runs, err := h.AnalysisService.ListRuns(ctx, cursor)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list runs", err)
	}

	resp := ListRunsResponseBody{Runs: make([]Run, len(runs))}
	for i, run := range runs {
		resp.Runs[i] = Run{
			ID:             run.ID.String(),
			Name:           run.Name,
			SubPopulations: run.SubPopulations,
			SelectedCount:  run.SelectedCount,
			Shortfall:      run.Shortfall,
			CreatedAt:      run.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListRunsOutput{Body: resp}, nil
}
