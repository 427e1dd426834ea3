// api/controller/nurse_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/service"
	"github.com/hospicore/facility/api/util"
)

type NurseController struct {
	staffService service.IStaffService
}

func NewNurseController(staffService service.IStaffService) *NurseController {
	return &NurseController{
		staffService: staffService,
	}
}

// RegisterWardRoutes registers the routes the floor screens need; both the
// administrator and the floor secretary may call them.
func (nc *NurseController) RegisterWardRoutes(r *gin.RouterGroup) {
	r.GET("/pisos/:id/enfermeras", nc.ListFloorNurses)
}

// RegisterRoutes registers the roster management routes
func (nc *NurseController) RegisterRoutes(r *gin.RouterGroup) {
	nurses := r.Group("/enfermeras")
	{
		nurses.GET("", nc.ListNurses)
		nurses.POST("", nc.CreateNurse)
		nurses.PUT("/:id", nc.UpdateNurse)
		nurses.DELETE("/:id", nc.DeactivateNurse)
		nurses.PUT("/:id/activar", nc.ReactivateNurse)
		nurses.GET("/:id/delegadas", nc.EligibleDelegates)
		nurses.POST("/:id/delegar", nc.ResolveDelegation)
		nurses.PUT("/:id/camas", nc.DelegateBeds)
		nurses.PUT("/:id/piso", nc.ReassignFloor)
	}
}

// ListNurses endpoint
func (nc *NurseController) ListNurses(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	nurses, err := nc.staffService.ListNurses(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, nurses)
}

// ListFloorNurses endpoint
func (nc *NurseController) ListFloorNurses(c *gin.Context) {
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

	nurses, err := nc.staffService.ListFloorNurses(c, sess, floorID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, nurses)
}

// CreateNurse endpoint
func (nc *NurseController) CreateNurse(c *gin.Context) {
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

	if err := nc.staffService.CreateStaff(c, sess, model.RoleNurse, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enfermera registrada"})
}

// UpdateNurse endpoint
func (nc *NurseController) UpdateNurse(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid staff data", facility_errors.ErrInvalidStaffData)
		return
	}

	if err := nc.staffService.UpdateStaff(c, sess, model.RoleNurse, id, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enfermera actualizada"})
}

// DeactivateNurse endpoint. A nurse still holding beds answers 409 together
// with the colleagues eligible to take them over; the client resolves the
// conflict through the delegar endpoint.
func (nc *NurseController) DeactivateNurse(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	err = nc.staffService.DeactivateStaff(c, sess, model.RoleNurse, id)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Enfermera desactivada"})
		return
	}

	if errors.Is(err, facility_errors.ErrStillHoldsBeds) {
		delegates, dErr := nc.staffService.EligibleDelegates(c, sess, id)
		if dErr != nil {
			respondWithServiceError(c, dErr)
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":     "La enfermera tiene camas asignadas",
			"delegadas": delegates,
		})
		return
	}

	respondWithServiceError(c, err)
}

// ReactivateNurse endpoint
func (nc *NurseController) ReactivateNurse(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	if err := nc.staffService.ReactivateStaff(c, sess, model.RoleNurse, id); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enfermera reactivada"})
}

// EligibleDelegates endpoint
func (nc *NurseController) EligibleDelegates(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	delegates, err := nc.staffService.EligibleDelegates(c, sess, id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, delegates)
}

// ResolveDelegation endpoint completes a parked deactivation or floor
// reassignment with the chosen delegate.
func (nc *NurseController) ResolveDelegation(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	var req struct {
		DelegateID int `json:"nuevaEnfermeraId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A delegate nurse is required", err)
		return
	}

	msg, err := nc.staffService.ResolveDelegation(c, sess, id, req.DelegateID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// DelegateBeds endpoint moves every bed from one nurse to another outside any
// deactivation.
func (nc *NurseController) DelegateBeds(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	var req struct {
		ToNurseID int `json:"nuevaEnfermeraId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A delegate nurse is required", err)
		return
	}

	msg, err := nc.staffService.DelegateBeds(c, sess, id, req.ToNurseID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ReassignFloor endpoint. A nurse still holding beds answers 409 together
// with the colleagues eligible to take them over, exactly like a blocked
// deactivation; the client resolves it through the delegar endpoint.
func (nc *NurseController) ReassignFloor(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid nurse id", err)
		return
	}

	var req struct {
		NewFloorID int `json:"nuevoPisoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A destination floor is required", err)
		return
	}

	msg, err := nc.staffService.ReassignFloor(c, sess, model.RoleNurse, id, req.NewFloorID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": msg})
		return
	}

	if errors.Is(err, facility_errors.ErrStillHoldsBeds) {
		delegates, dErr := nc.staffService.EligibleDelegates(c, sess, id)
		if dErr != nil {
			respondWithServiceError(c, dErr)
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":     "La enfermera tiene camas asignadas",
			"delegadas": delegates,
		})
		return
	}

	respondWithServiceError(c, err)
}
