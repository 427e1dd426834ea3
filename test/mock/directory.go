// test/mock/directory.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hospicore/facility/api/directory"
	"github.com/hospicore/facility/api/model"
)

// MockDirectoryAPI is a mock implementation of directory.API
type MockDirectoryAPI struct {
	mock.Mock
}

var _ directory.API = &MockDirectoryAPI{}

func (m *MockDirectoryAPI) ListFloors(ctx context.Context, sess model.Session) ([]model.Floor, error) {
	args := m.Called(ctx, sess)
	floors, _ := args.Get(0).([]model.Floor)
	return floors, args.Error(1)
}

func (m *MockDirectoryAPI) AddFloors(ctx context.Context, sess model.Session, count int) (string, error) {
	args := m.Called(ctx, sess, count)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) DeleteFloor(ctx context.Context, sess model.Session, floorID int) (string, error) {
	args := m.Called(ctx, sess, floorID)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) ListFloorBeds(ctx context.Context, sess model.Session, floorID int) ([]model.Bed, error) {
	args := m.Called(ctx, sess, floorID)
	beds, _ := args.Get(0).([]model.Bed)
	return beds, args.Error(1)
}

func (m *MockDirectoryAPI) AddBeds(ctx context.Context, sess model.Session, floorID, count int) (string, error) {
	args := m.Called(ctx, sess, floorID, count)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) DeleteBed(ctx context.Context, sess model.Session, bedID int) (string, error) {
	args := m.Called(ctx, sess, bedID)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) AdmitPatient(ctx context.Context, sess model.Session, req model.AdmitPatientRequest) error {
	args := m.Called(ctx, sess, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) DischargePatient(ctx context.Context, sess model.Session, patientID int) error {
	args := m.Called(ctx, sess, patientID)
	return args.Error(0)
}

func (m *MockDirectoryAPI) ListPatients(ctx context.Context, sess model.Session) ([]model.Patient, error) {
	args := m.Called(ctx, sess)
	patients, _ := args.Get(0).([]model.Patient)
	return patients, args.Error(1)
}

func (m *MockDirectoryAPI) ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	args := m.Called(ctx, sess)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockDirectoryAPI) ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	args := m.Called(ctx, sess, floorID)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockDirectoryAPI) CreateNurse(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) UpdateNurse(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, id, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) DeactivateNurse(ctx context.Context, sess model.Session, id int) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}

func (m *MockDirectoryAPI) ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error) {
	args := m.Called(ctx, sess)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockDirectoryAPI) ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error) {
	args := m.Called(ctx, sess, floorID)
	staff, _ := args.Get(0).([]model.Staff)
	return staff, args.Error(1)
}

func (m *MockDirectoryAPI) GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error) {
	args := m.Called(ctx, sess, id)
	sec, _ := args.Get(0).(*model.Staff)
	return sec, args.Error(1)
}

func (m *MockDirectoryAPI) CreateSecretary(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) UpdateSecretary(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error {
	args := m.Called(ctx, sess, id, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) DeactivateSecretary(ctx context.Context, sess model.Session, id int) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}

func (m *MockDirectoryAPI) ReactivateStaff(ctx context.Context, sess model.Session, id int) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}

func (m *MockDirectoryAPI) UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error {
	args := m.Called(ctx, sess, id, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error) {
	args := m.Called(ctx, sess, fromNurseID, toNurseID)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) ReassignFloor(ctx context.Context, sess model.Session, staffID, newFloorID int) (string, error) {
	args := m.Called(ctx, sess, staffID, newFloorID)
	return args.String(0), args.Error(1)
}

func (m *MockDirectoryAPI) ListAssignments(ctx context.Context, sess model.Session) ([]model.BedAssignment, error) {
	args := m.Called(ctx, sess)
	assignments, _ := args.Get(0).([]model.BedAssignment)
	return assignments, args.Error(1)
}

func (m *MockDirectoryAPI) AssignBeds(ctx context.Context, sess model.Session, req model.AssignBedsRequest) error {
	args := m.Called(ctx, sess, req)
	return args.Error(0)
}

func (m *MockDirectoryAPI) SignIn(ctx context.Context, req model.SignInRequest) (*model.Session, error) {
	args := m.Called(ctx, req)
	sess, _ := args.Get(0).(*model.Session)
	return sess, args.Error(1)
}

func (m *MockDirectoryAPI) ListLogEntries(ctx context.Context, sess model.Session) ([]model.LogEntry, error) {
	args := m.Called(ctx, sess)
	entries, _ := args.Get(0).([]model.LogEntry)
	return entries, args.Error(1)
}
