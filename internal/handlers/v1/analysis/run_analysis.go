package analysis

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/audit-sampler/internal/logging"
	"github.com/carson-networks/audit-sampler/internal/operator/actions"
	"github.com/carson-networks/audit-sampler/internal/sampling"
	"github.com/carson-networks/audit-sampler/internal/service"
	"github.com/carson-networks/audit-sampler/internal/storage/analysisrun"
)

// RunAnalysisBody is the request body for running a sampling analysis.
type RunAnalysisBody struct {
	Name  string     `json:"name" required:"true" minLength:"1" doc:"Run name"`
	Plans []PlanBody `json:"plans" required:"true" minItems:"1" doc:"One plan per sub-population"`
	Seed  int64      `json:"seed" doc:"Default seed for plans that don't set their own"`
}

// RunAnalysisInput is the Huma input for running a sampling analysis.
type RunAnalysisInput struct {
	Body RunAnalysisBody
}

// RunAnalysisResponseBody is the response body for running a sampling analysis.
type RunAnalysisResponseBody struct {
	RunID          string                `json:"runID" doc:"UUID of the recorded run"`
	Name           string                `json:"name" doc:"Run name"`
	SubPopulations []SubPopulationResult `json:"subPopulations" doc:"Results in plan definition order"`
	SelectedCount  int                   `json:"selectedCount" doc:"Total records drawn"`
	Shortfall      bool                  `json:"shortfall" doc:"Any stratum anywhere came up short"`
}

// RunAnalysisOutput is the Huma output for running a sampling analysis.
type RunAnalysisOutput struct {
	Body RunAnalysisResponseBody
}

// analysisRunner is the interface for executing sampling runs.
type analysisRunner interface {
	RunAnalysis(ctx context.Context, name string, plans []sampling.Plan) (*service.AnalysisResult, error)
}

// actionProcessor is the interface for submitting actions to the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// RunAnalysisHandler handles POST /v1/analysis/run.
type RunAnalysisHandler struct {
	AnalysisService analysisRunner
	Operator        actionProcessor
}

// NewRunAnalysisHandler creates a new RunAnalysisHandler.
func NewRunAnalysisHandler(svc analysisRunner, op actionProcessor) *RunAnalysisHandler {
	return &RunAnalysisHandler{AnalysisService: svc, Operator: op}
}

// Register registers the run analysis endpoint with the Huma API.
func (h *RunAnalysisHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "run-analysis",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/run",
		Summary:     "Run sampling analysis",
		Description: "Filters, stratifies and samples the stored ledger, one sub-population per plan.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

// parsePlanBody converts one request plan to a sampling plan. Plans that
// don't set a seed inherit defaultSeed so a whole run can be reproduced
// from a single number.
func parsePlanBody(body *PlanBody, defaultSeed int64) (sampling.Plan, error) {
	plan := sampling.Plan{
		SubPopulation: sampling.SubPopulationSpec{
			Name:           body.SubPopulation.Name,
			Direction:      sampling.Direction(body.SubPopulation.Direction),
			AbsoluteBounds: body.SubPopulation.AbsoluteBounds,
			Accounts:       body.SubPopulation.Accounts,
		},
		Stratification: sampling.StratificationSpec{
			Basis:  sampling.Basis(body.Stratification.Basis),
			Method: sampling.Method(body.Stratification.Method),
			K:      body.Stratification.K,
		},
		Draw: sampling.DrawSpec{
			PerStratum: body.Draw.PerStratum,
			Total:      body.Draw.Total,
			Seed:       body.Draw.Seed,
		},
	}

	if body.SubPopulation.MinAmount != "" {
		minAmount, err := decimal.NewFromString(body.SubPopulation.MinAmount)
		if err != nil {
			return plan, huma.NewError(http.StatusBadRequest, "invalid minAmount", err)
		}
		plan.SubPopulation.MinAmount = &minAmount
	}
	if body.SubPopulation.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(body.SubPopulation.MaxAmount)
		if err != nil {
			return plan, huma.NewError(http.StatusBadRequest, "invalid maxAmount", err)
		}
		plan.SubPopulation.MaxAmount = &maxAmount
	}

	if plan.Draw.Seed == 0 {
		plan.Draw.Seed = defaultSeed
	}

	return plan, nil
}

func (h *RunAnalysisHandler) handle(ctx context.Context, input *RunAnalysisInput) (*RunAnalysisOutput, error) {
	logData := logging.GetLogData(ctx)

	plans := make([]sampling.Plan, len(input.Body.Plans))
	for i := range input.Body.Plans {
		plan, err := parsePlanBody(&input.Body.Plans[i], input.Body.Seed)
		if err != nil {
			return nil, err
		}
		if err := plan.Validate(); err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid plan", err)
		}
		plans[i] = plan
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("runAnalysisMs")
	}
	result, err := h.AnalysisService.RunAnalysis(ctx, input.Body.Name, plans)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to run analysis", err)
	}

	if logData != nil {
		logData.AddData("subPopulations", result.SubPopulations)
		logData.AddData("selectedCount", result.SelectedCount)
	}

	definition, err := json.Marshal(input.Body.Plans)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to encode run definition", err)
	}

	action := &actions.RecordAnalysisRun{
		Create: &analysisrun.RunCreate{
			Name:           result.Name,
			Definition:     definition,
			SubPopulations: result.SubPopulations,
			SelectedCount:  result.SelectedCount,
			Shortfall:      result.Shortfall,
		},
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record run", err)
	}

	resp := RunAnalysisResponseBody{
		RunID:          action.InsertedID.String(),
		Name:           result.Name,
		SubPopulations: make([]SubPopulationResult, len(result.Results)),
		SelectedCount:  result.SelectedCount,
		Shortfall:      result.Shortfall,
	}
	for i := range result.Results {
		resp.SubPopulations[i] = convertResult(&result.Results[i])
	}

	return &RunAnalysisOutput{Body: resp}, nil
}

// convertResult flattens one pipeline result into its response form. Failed
// sub-populations carry only their name and error.
func convertResult(result *sampling.Result) SubPopulationResult {
	converted := SubPopulationResult{Name: result.Plan.SubPopulation.Name}
	if result.Err != nil {
		converted.Error = result.Err.Error()
		return converted
	}

	outputs := result.Outputs
	converted.MemberCount = len(outputs.Members)
	converted.Unassignable = len(outputs.Strata.Unassignable)
	converted.SelectedCount = outputs.Draw.SelectedCount()
	converted.Shortfall = outputs.Shortfall()

	converted.Strata = make([]StratumRow, len(outputs.Strata.Strata))
	for i := range outputs.Strata.Strata {
		s := &outputs.Strata.Strata[i]
		converted.Strata[i] = StratumRow{
			Stratum: s.Index + 1,
			From:    s.Low.String(),
			To:      s.High.String(),
			Lines:   s.Count(),
			Sum:     s.Sum.String(),
			SumAbs:  s.SumAbs.String(),
		}
	}

	converted.Pivot = make([]PivotRow, len(outputs.Pivot))
	for i, row := range outputs.Pivot {
		converted.Pivot[i] = PivotRow{
			Account: row.Account,
			Lines:   row.Count,
			Sum:     row.Sum.String(),
			SumAbs:  row.SumAbs.String(),
		}
	}

	tables := outputs.Tables()
	drawTable := tables[3]
	converted.Selected = make([]SelectedRecord, 0, drawTable.Len())
	for i := 0; i < drawTable.Len(); i++ {
		row := drawTable.Row(i)
		record := SelectedRecord{
			Stratum:     row[0].(int),
			Voucher:     row[1].(string),
			Account:     row[2].(int),
			EntryText:   row[5].(string),
			Counterpart: row[6].(string),
			Shortfall:   row[7].(bool),
		}
		if amount, ok := row[3].(decimal.Decimal); ok {
			record.Amount = amount.String()
		}
		if date, ok := row[4].(string); ok {
			record.EntryDate = date
		}
		converted.Selected = append(converted.Selected, record)
	}

	return converted
}
