package analysisrun

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockIRunsTable is a testify mock of IRunsTable for service tests.
type MockIRunsTable struct {
	mock.Mock
}

func NewMockIRunsTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIRunsTable {
	m := &MockIRunsTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIRunsTable) FindByID(ctx context.Context, id uuid.UUID) (*Run, error) {
	args := m.Called(ctx, id)
	var result *Run
	if args.Get(0) != nil {
		result = args.Get(0).(*Run)
	}
	return result, args.Error(1)
}

func (m *MockIRunsTable) List(ctx context.Context, filter *RunFilter) ([]*Run, error) {
	args := m.Called(ctx, filter)
	var result []*Run
	if args.Get(0) != nil {
		result = args.Get(0).([]*Run)
	}
	return result, args.Error(1)
}
