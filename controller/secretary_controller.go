// api/controller/secretary_controller.go
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

type SecretaryController struct {
	staffService service.IStaffService
}

func NewSecretaryController(staffService service.IStaffService) *SecretaryController {
	return &SecretaryController{
		staffService: staffService,
	}
}

// RegisterWardRoutes registers the routes a signed-in secretary needs to pin
// herself to her floor.
func (sc *SecretaryController) RegisterWardRoutes(r *gin.RouterGroup) {
	r.GET("/pisos/:id/secretarias", sc.ListFloorSecretaries)
	r.GET("/secretarias/:id", sc.GetSecretary)
}

// RegisterRoutes registers the roster management routes
func (sc *SecretaryController) RegisterRoutes(r *gin.RouterGroup) {
	secretaries := r.Group("/secretarias")
	{
		secretaries.GET("", sc.ListSecretaries)
		secretaries.POST("", sc.CreateSecretary)
		secretaries.PUT("/:id", sc.UpdateSecretary)
		secretaries.DELETE("/:id", sc.DeactivateSecretary)
		secretaries.PUT("/:id/activar", sc.ReactivateSecretary)
		secretaries.PUT("/:id/piso", sc.ReassignFloor)
	}
}

// ListSecretaries endpoint
func (sc *SecretaryController) ListSecretaries(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	secretaries, err := sc.staffService.ListSecretaries(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, secretaries)
}

// GetSecretary endpoint
func (sc *SecretaryController) GetSecretary(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid secretary id", err)
		return
	}

	secretary, err := sc.staffService.GetSecretary(c, sess, id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, secretary)
}

// ListFloorSecretaries endpoint
func (sc *SecretaryController) ListFloorSecretaries(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	floorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid floor id", err)
		return
	}

	secretaries, err := sc.staffService.ListFloorSecretaries(c, sess, floorID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, secretaries)
}

// CreateSecretary endpoint
func (sc *SecretaryController) CreateSecretary(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid staff data", facility_errors.ErrInvalidStaffData)
		return
	}

	if err := sc.staffService.CreateStaff(c, sess, model.RoleSecretary, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Secretaria registrada"})
}

// UpdateSecretary endpoint
func (sc *SecretaryController) UpdateSecretary(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid secretary id", err)
		return
	}

	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid staff data", facility_errors.ErrInvalidStaffData)
		return
	}

	if err := sc.staffService.UpdateStaff(c, sess, model.RoleSecretary, id, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secretaria actualizada"})
}

// DeactivateSecretary endpoint
func (sc *SecretaryController) DeactivateSecretary(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid secretary id", err)
		return
	}

	if err := sc.staffService.DeactivateStaff(c, sess, model.RoleSecretary, id); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secretaria desactivada"})
}

// ReactivateSecretary endpoint
func (sc *SecretaryController) ReactivateSecretary(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid secretary id", err)
		return
	}

	if err := sc.staffService.ReactivateStaff(c, sess, model.RoleSecretary, id); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Secretaria reactivada"})
}

// ReassignFloor endpoint
func (sc *SecretaryController) ReassignFloor(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid secretary id", err)
		return
	}

	var req struct {
		NewFloorID int `json:"nuevoPisoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A destination floor is required", err)
		return
	}

	msg, err := sc.staffService.ReassignFloor(c, sess, model.RoleSecretary, id, req.NewFloorID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}
