package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/audit-sampler/internal/service"
)

// GetRunInput is the Huma input for retrieving a recorded run.
type GetRunInput struct {
	ID string `path:"id" format:"uuid" doc:"Run UUID"`
}

// GetRunResponseBody is the response body for retrieving a recorded run.
type GetRunResponseBody struct {
	Run        Run             `json:"run" doc:"Run summary"`
	Definition json.RawMessage `json:"definition" doc:"The plans the run was executed with"`
}

// GetRunOutput is the Huma output for retrieving a recorded run.
type GetRunOutput struct {
	Body GetRunResponseBody
}

// runGetter is the interface for retrieving a recorded run.
type runGetter interface {
	GetRun(ctx context.Context, id uuid.UUID) (*service.AnalysisRun, error)
}

// GetRunHandler handles GET /v1/analysis/runs/{id}.
type GetRunHandler struct {
	AnalysisService runGetter
}

// NewGetRunHandler creates a new GetRunHandler.
func NewGetRunHandler(svc runGetter) *GetRunHandler {
	return &GetRunHandler{AnalysisService: svc}
}

// Register registers the get run endpoint with the Huma API.
func (h *GetRunHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-run",
		Method:      http.MethodGet,
		Path:        "/v1/analysis/runs/{id}",
		Summary:     "Get recorded run",
		Description: "Returns one recorded run with the plan definition it was executed with.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *GetRunHandler) handle(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid run id", err)
	}

	run, err := h.AnalysisService.GetRun(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get run", err)
	}

	return &GetRunOutput{Body: GetRunResponseBody{
		Run: Run{
			ID:             run.ID.String(),
			Name:           run.Name,
			SubPopulations: run.SubPopulations,
			SelectedCount:  run.SelectedCount,
			Shortfall:      run.Shortfall,
			CreatedAt:      run.CreatedAt.Format(time.RFC3339),
		},
		Definition: json.RawMessage(run.Definition),
	}}, nil
}
