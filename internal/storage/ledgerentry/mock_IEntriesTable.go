package ledgerentry

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIEntriesTable is a testify mock of IEntriesTable for service tests.
type MockIEntriesTable struct {
	mock.Mock
}

func NewMockIEntriesTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIEntriesTable {
	m := &MockIEntriesTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIEntriesTable) List(ctx context.Context, filter *EntryFilter) (*EntryListResult, error) {
	args := m.Called(ctx, filter)
	var result *EntryListResult
	if args.Get(0) != nil {
		result = args.Get(0).(*EntryListResult)
	}
	return result, args.Error(1)
}

func (m *MockIEntriesTable) ListAll(ctx context.Context) ([]*Entry, error) {
	args := m.Called(ctx)
	var result []*Entry
	if args.Get(0) != nil {
		result = args.Get(0).([]*Entry)
	}
	return result, args.Error(1)
}

func (m *MockIEntriesTable) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
