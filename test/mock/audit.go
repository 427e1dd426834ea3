// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hospicore/facility/api/audit"
	"github.com/hospicore/facility/api/model"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

var _ audit.Service = &MockAuditService{}

func (m *MockAuditService) Mirror(ctx context.Context, entries []model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditService) Query(ctx context.Context, from, to time.Time, username, httpMethod string) ([]audit.Entry, error) {
	args := m.Called(ctx, from, to, username, httpMethod)
	entries, _ := args.Get(0).([]audit.Entry)
	return entries, args.Error(1)
}
