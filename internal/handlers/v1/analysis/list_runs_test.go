package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/audit-sampler/internal/service"
)

// mockRunLister is a mock for runLister.
type mockRunLister struct {
	mock.Mock
}

func (m *mockRunLister) ListRuns(ctx context.Context, cursor *service.AnalysisRunCursor) ([]service.AnalysisRun, error) {
	args := m.Called(ctx, cursor)
	var runs []service.AnalysisRun
	if args.Get(0) != nil {
		runs = args.Get(0).([]service.AnalysisRun)
	}
	return runs, args.Error(1)
}

func newListRunsTestAPI(t *testing.T, svc runLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListRunsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListRuns_Success(t *testing.T) {
	createdAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	mockSvc := new(mockRunLister)
	mockSvc.On("ListRuns", mock.Anything, (*service.AnalysisRunCursor)(nil)).Return([]service.AnalysisRun{
		{
			ID:             uuid.Must(uuid.NewV4()),
			Name:           "q1-audit",
			SubPopulations: 3,
			SelectedCount:  45,
			Shortfall:      true,
			CreatedAt:      createdAt,
		},
	}, nil)

	resp := newListRunsTestAPI(t, mockSvc).Post("/v1/analysis/runs/list", ListRunsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListRunsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Runs, 1)
	assert.Equal(t, "q1-audit", body.Runs[0].Name)
	assert.Equal(t, 3, body.Runs[0].SubPopulations)
	assert.True(t, body.Runs[0].Shortfall)
	assert.Equal(t, createdAt.Format(time.RFC3339), body.Runs[0].CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListRuns_WithCursor(t *testing.T) {
	mockSvc := new(mockRunLister)
	mockSvc.On("ListRuns", mock.Anything, mock.MatchedBy(func(c *service.AnalysisRunCursor) bool {
		return c != nil && c.Position == 20 && c.Limit == 10
	})).Return([]service.AnalysisRun{}, nil)

	resp := newListRunsTestAPI(t, mockSvc).Post("/v1/analysis/runs/list", ListRunsBody{
		Cursor: &ListRunsCursor{Position: 20, Limit: 10},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListRuns_ServiceError(t *testing.T) {
	mockSvc := new(mockRunLister)
	mockSvc.On("ListRuns", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListRunsTestAPI(t, mockSvc).Post("/v1/analysis/runs/list", ListRunsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
