// api/controller/patient_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/service"
	"github.com/hospicore/facility/api/util"
)

type PatientController struct {
	patientService service.IPatientService
}

func NewPatientController(patientService service.IPatientService) *PatientController {
	return &PatientController{
		patientService: patientService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PatientController) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/pacientes")
	{
		patients.GET("", pc.ListPatients)
		patients.POST("", pc.AdmitPatient)
		patients.POST("/:id/alta", pc.DischargePatient)
	}
}

// ListPatients endpoint
func (pc *PatientController) ListPatients(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	patients, err := pc.patientService.ListPatients(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

// AdmitPatient endpoint. An optional pisoId query parameter locates the bed
// snapshot to refresh after the admission.
func (pc *PatientController) AdmitPatient(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.AdmitPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid patient data", facility_errors.ErrInvalidPatientData)
		return
	}
	floorID, _ := strconv.Atoi(c.Query("pisoId"))

	if err := pc.patientService.AdmitPatient(c, sess, req, floorID); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Paciente registrado"})
}

// DischargePatient endpoint
func (pc *PatientController) DischargePatient(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	patientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid patient id", err)
		return
	}
	floorID, _ := strconv.Atoi(c.Query("pisoId"))

	if err := pc.patientService.DischargePatient(c, sess, patientID, floorID); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cama desocupada"})
}
