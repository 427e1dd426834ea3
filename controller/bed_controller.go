// api/controller/bed_controller.go
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

type BedController struct {
	bedService service.IBedService
}

func NewBedController(bedService service.IBedService) *BedController {
	return &BedController{
		bedService: bedService,
	}
}

// RegisterRoutes registers the API routes
func (bc *BedController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/pisos/:id/camas", bc.ListFloorBeds)
	beds := r.Group("/camas")
	{
		beds.POST("", bc.AddBeds)
		beds.DELETE("/:id", bc.DeleteBed)
	}
	assignments := r.Group("/asignaciones")
	{
		assignments.GET("", bc.ListAssignments)
		assignments.POST("", bc.AssignBeds)
	}
}

// ListFloorBeds endpoint
func (bc *BedController) ListFloorBeds(c *gin.Context) {
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

	beds, err := bc.bedService.ListFloorBeds(c, sess, floorID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, beds)
}

// AddBeds endpoint
func (bc *BedController) AddBeds(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.AddBedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Count must be at least 1", facility_errors.ErrInvalidCount)
		return
	}

	msg, err := bc.bedService.AddBeds(c, sess, req.FloorID, req.Count)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// DeleteBed endpoint. The floor is passed as a query parameter so the
// occupancy rules can be checked against the whole floor before the backend
// is asked.
func (bc *BedController) DeleteBed(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	bedID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid bed id", err)
		return
	}
	floorID, err := strconv.Atoi(c.Query("pisoId"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A pisoId query parameter is required", err)
		return
	}

	msg, err := bc.bedService.DeleteBed(c, sess, floorID, bedID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ListAssignments endpoint
func (bc *BedController) ListAssignments(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	assignments, err := bc.bedService.ListAssignments(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// AssignBeds endpoint
func (bc *BedController) AssignBeds(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.AssignBedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A nurse and at least one bed are required", err)
		return
	}

	if err := bc.bedService.AssignBeds(c, sess, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Camas asignadas correctamente"})
}
