// api/controller/controllers.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/service"
	"github.com/hospicore/facility/api/util"
)

type Controllers struct {
	Auth      *AuthController
	Floor     *FloorController
	Bed       *BedController
	Patient   *PatientController
	Nurse     *NurseController
	Secretary *SecretaryController
	Audit     *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services.Auth, services.Staff),
		Floor:     NewFloorController(services.Floor),
		Bed:       NewBedController(services.Bed),
		Patient:   NewPatientController(services.Patient),
		Nurse:     NewNurseController(services.Staff),
		Secretary: NewSecretaryController(services.Staff),
		Audit:     NewAuditController(services.Audit),
	}
}

// respondWithServiceError translates the error taxonomy to HTTP. Backend
// messages travel verbatim; purely local denials carry their reason.
func respondWithServiceError(c *gin.Context, err error) {
	msg := err.Error()
	var be *facility_errors.BackendError
	if errors.As(err, &be) && be.Message != "" {
		msg = be.Message
	}

	switch {
	case errors.Is(err, facility_errors.ErrSessionInvalid):
		util.RespondWithError(c, http.StatusUnauthorized, "Session invalid or expired", err)
	case errors.Is(err, facility_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, facility_errors.ErrConflict),
		errors.Is(err, facility_errors.ErrStillHoldsBeds),
		errors.Is(err, facility_errors.ErrWorkflowInProgress):
		util.RespondWithError(c, http.StatusConflict, msg, err)
	case errors.Is(err, facility_errors.ErrNotFound),
		errors.Is(err, facility_errors.ErrStaffNotFound),
		errors.Is(err, facility_errors.ErrBedNotFound),
		errors.Is(err, facility_errors.ErrFloorNotFound),
		errors.Is(err, facility_errors.ErrPatientNotFound),
		errors.Is(err, facility_errors.ErrNoPendingWorkflow):
		util.RespondWithError(c, http.StatusNotFound, msg, err)
	case errors.Is(err, facility_errors.ErrBadRequest),
		errors.Is(err, facility_errors.ErrInvalidCount),
		errors.Is(err, facility_errors.ErrInvalidStaffData),
		errors.Is(err, facility_errors.ErrInvalidPatientData),
		errors.Is(err, facility_errors.ErrInvalidCredentials),
		errors.Is(err, facility_errors.ErrBedNotDeletable),
		errors.Is(err, facility_errors.ErrFloorHasBeds),
		errors.Is(err, facility_errors.ErrSameFloor),
		errors.Is(err, facility_errors.ErrLastActiveOnFloor),
		errors.Is(err, facility_errors.ErrDelegateNotEligible):
		util.RespondWithError(c, http.StatusBadRequest, msg, err)
	case errors.Is(err, facility_errors.ErrNoResponse):
		util.RespondWithError(c, http.StatusBadGateway, "No response from the hospital backend", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
