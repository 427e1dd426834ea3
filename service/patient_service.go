// api/service/patient_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/directory"
	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/util"
)

// IPatientService defines the interface for patient operations
type IPatientService interface {
	AdmitPatient(ctx context.Context, sess model.Session, req model.AdmitPatientRequest, floorID int) error
	DischargePatient(ctx context.Context, sess model.Session, patientID, floorID int) error
	ListPatients(ctx context.Context, sess model.Session) ([]model.Patient, error)
}

// PatientService handles admission and discharge. Patient records themselves
// live on the backend; this side only validates the forms and keeps the bed
// snapshots honest.
type PatientService struct {
	api             directory.API
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IPatientService = &PatientService{}

// NewPatientService creates a new instance of PatientService
func NewPatientService(api directory.API, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *PatientService {
	service := &PatientService{
		api:             api,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventPatientAdmitted, service.handlePatientAdmitted)
	eventBus.Subscribe(util.EventPatientDischarged, service.handlePatientDischarged)

	return service
}

func (s *PatientService) handlePatientAdmitted(ctx context.Context, event util.Event) error {
	req, ok := event.Payload.(model.AdmitPatientRequest)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	if err := s.notificationSvc.NotifyPatientAdmitted(ctx, req); err != nil {
		logger.Warn("Failed to send admission notification", zap.Error(err))
	}
	return nil
}

func (s *PatientService) handlePatientDischarged(ctx context.Context, event util.Event) error {
	patientID, _ := event.Payload.(int)
	if err := s.notificationSvc.NotifyPatientDischarged(ctx, patientID); err != nil {
		logger.Warn("Failed to send discharge notification", zap.Error(err))
	}
	return nil
}

// AdmitPatient registers a patient into a free bed under the admitting nurse's
// care. floorID locates the bed snapshot to refresh; zero skips the refresh.
func (s *PatientService) AdmitPatient(ctx context.Context, sess model.Session, req model.AdmitPatientRequest, floorID int) error {
	if err := s.validationUtil.ValidatePatientAdmission(req); err != nil {
		return fmt.Errorf("%w: %v", facility_errors.ErrInvalidPatientData, err)
	}

	if err := s.api.AdmitPatient(ctx, sess, req); err != nil {
		return err
	}

	if floorID != 0 {
		s.eventBus.Publish(ctx, util.EventBedsChanged, floorID)
	}
	s.eventBus.Publish(ctx, util.EventPatientAdmitted, req)
	return nil
}

// DischargePatient frees the patient's bed. The nurse keeps her assignment to
// that bed; only the occupancy is cleared.
func (s *PatientService) DischargePatient(ctx context.Context, sess model.Session, patientID, floorID int) error {
	if err := s.api.DischargePatient(ctx, sess, patientID); err != nil {
		return err
	}

	if floorID != 0 {
		s.eventBus.Publish(ctx, util.EventBedsChanged, floorID)
	}
	s.eventBus.Publish(ctx, util.EventPatientDischarged, patientID)
	return nil
}

func (s *PatientService) ListPatients(ctx context.Context, sess model.Session) ([]model.Patient, error) {
	return s.api.ListPatients(ctx, sess)
}
