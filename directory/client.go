// api/directory/client.go

// Package directory is the gateway's client for the hospital backend. It is
// pure I/O: every call takes the caller's Session, injects the bearer token,
// and folds backend failures into the transport taxonomy. Policy decisions
// live elsewhere.
package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

// API is the full surface the services consume. *Client implements it; tests
// substitute a mock.
type API interface {
	// Floors
	ListFloors(ctx context.Context, sess model.Session) ([]model.Floor, error)
	AddFloors(ctx context.Context, sess model.Session, count int) (string, error)
	DeleteFloor(ctx context.Context, sess model.Session, floorID int) (string, error)

	// Beds
	ListFloorBeds(ctx context.Context, sess model.Session, floorID int) ([]model.Bed, error)
	AddBeds(ctx context.Context, sess model.Session, floorID, count int) (string, error)
	DeleteBed(ctx context.Context, sess model.Session, bedID int) (string, error)

	// Patients
	AdmitPatient(ctx context.Context, sess model.Session, req model.AdmitPatientRequest) error
	DischargePatient(ctx context.Context, sess model.Session, patientID int) error
	ListPatients(ctx context.Context, sess model.Session) ([]model.Patient, error)

	// Staff
	ListNurses(ctx context.Context, sess model.Session) ([]model.Staff, error)
	ListFloorNurses(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error)
	CreateNurse(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error
	UpdateNurse(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error
	DeactivateNurse(ctx context.Context, sess model.Session, id int) error
	ListSecretaries(ctx context.Context, sess model.Session) ([]model.Staff, error)
	ListFloorSecretaries(ctx context.Context, sess model.Session, floorID int) ([]model.Staff, error)
	GetSecretary(ctx context.Context, sess model.Session, id int) (*model.Staff, error)
	CreateSecretary(ctx context.Context, sess model.Session, req model.CreateStaffRequest) error
	UpdateSecretary(ctx context.Context, sess model.Session, id int, req model.CreateStaffRequest) error
	DeactivateSecretary(ctx context.Context, sess model.Session, id int) error
	ReactivateStaff(ctx context.Context, sess model.Session, id int) error
	UpdateCredentials(ctx context.Context, sess model.Session, id int, req model.UpdateCredentialsRequest) error
	DelegateBeds(ctx context.Context, sess model.Session, fromNurseID, toNurseID int) (string, error)
	ReassignFloor(ctx context.Context, sess model.Session, staffID, newFloorID int) (string, error)

	// Assignments
	ListAssignments(ctx context.Context, sess model.Session) ([]model.BedAssignment, error)
	AssignBeds(ctx context.Context, sess model.Session, req model.AssignBedsRequest) error

	// Auth & audit
	SignIn(ctx context.Context, req model.SignInRequest) (*model.Session, error)
	ListLogEntries(ctx context.Context, sess model.Session) ([]model.LogEntry, error)
}

// Client talks to the hospital backend over HTTP.
type Client struct {
	http *resty.Client
}

var _ API = &Client{}

// NewClient builds a backend client. No automatic retries: the only retry in
// the system is the single delegate-then-retry step, and it is owned by the
// workflow layer, not the transport.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// backendMessage is the error/confirmation envelope the backend uses. Some
// endpoints answer a bare string instead; both shapes are accepted.
type backendMessage struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
}

func (c *Client) request(ctx context.Context, sess model.Session) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if sess.Token != "" {
		r.SetAuthToken(sess.Token)
	}
	return r
}

// wrap folds a resty outcome into the transport taxonomy. A nil error with a
// 2xx status passes through untouched.
func wrap(resp *resty.Response, err error) error {
	if err != nil {
		logger.Error("No response from backend", zap.Error(err))
		return facility_errors.NewBackendError(facility_errors.ErrNoResponse, 0, "")
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := extractMessage(resp.Body())
	status := resp.StatusCode()
	logger.Warn("Backend rejected request",
		zap.Int("status", status),
		zap.String("message", msg),
		zap.String("url", resp.Request.URL))

	var kind error
	switch status {
	case http.StatusUnauthorized:
		kind = facility_errors.ErrSessionInvalid
	case http.StatusForbidden:
		kind = facility_errors.ErrForbidden
	case http.StatusConflict:
		kind = facility_errors.ErrConflict
	case http.StatusNotFound:
		kind = facility_errors.ErrNotFound
	case http.StatusBadRequest:
		kind = facility_errors.ErrBadRequest
	default:
		kind = facility_errors.ErrInternalServer
	}
	return facility_errors.NewBackendError(kind, status, msg)
}

// extractMessage pulls the backend's message out of a JSON envelope or a bare
// string body.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env backendMessage
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Mensaje != "" {
			return env.Mensaje
		}
	}
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}
	return string(body)
}
