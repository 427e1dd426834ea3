// test/mock/staff_service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/service"
)

// MockStaffService is a mock implementation of service.IStaffService
type MockStaffService struct {
	mock.Mock
}

var _ service.IStaffService = &MockStaffService{}

func (m *MockStaffService) ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	args := m.Called(ctx, sess)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffService) ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	args := m.Called(ctx, sess, floorID)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffService) ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	args := m.Called(ctx, sess)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffService) ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	args := m.Called(ctx, sess, floorID)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffService) GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error) {
	args := m.Called(ctx, sess, id)
	sec, _ := args.Get(0).(*model.Staff)
	return sec, args.Error(1)
}

func (m *MockStaffService) CreateStaff(ctx context.Context, sess model.Session, role model.StaffRole, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, role, req)
	return args.Error(0)
}

func (m *MockStaffService) UpdateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, role, id, req)
	return args.Error(0)
}

func (m *MockStaffService) UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error {
	args := m.Called(ctx, sess, id, req)
	return args.Error(0)
}

func (m *MockStaffService) ReactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error {
	args := m.Called(ctx, sess, role, id)
	return args.Error(0)
}

func (m *MockStaffService) DeactivateStaff(ctx context.Context, sess model.Session, role model.StaffRole, id int) error {
	args := m.Called(ctx, sess, role, id)
	return args.Error(0)
}

func (m *MockStaffService) EligibleDelegates(ctx context.Context, sess model.Session, nurseID int) ([]model.Staff, error) {
	args := m.Called(ctx, sess, nurseID)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffService) ResolveDelegation(ctx context.Context, sess model.Session, nurseID, delegateID int) (string, error) {
	args := m.Called(ctx, sess, nurseID, delegateID)
	return args.String(0), args.Error(1)
}

func (m *MockStaffService) DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error) {
	args := m.Called(ctx, sess, fromNurseID, toNurseID)
	return args.String(0), args.Error(1)
}

func (m *MockStaffService) ReassignFloor(ctx context.Context, sess model.Session, role model.StaffRole, staffID, newFloorID int) (string, error) {
	args := m.Called(ctx, sess, role, staffID, newFloorID)
	return args.String(0), args.Error(1)
}
