// api/controller/floor_controller.go
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

type FloorController struct {
	floorService service.IFloorService
}

func NewFloorController(floorService service.IFloorService) *FloorController {
	return &FloorController{
		floorService: floorService,
	}
}

// RegisterRoutes registers the API routes
func (fc *FloorController) RegisterRoutes(r *gin.RouterGroup) {
	floors := r.Group("/pisos")
	{
		floors.GET("", fc.ListFloors)
		floors.POST("", fc.AddFloors)
		floors.DELETE("/:id", fc.DeleteFloor)
	}
}

// ListFloors endpoint
func (fc *FloorController) ListFloors(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	floors, err := fc.floorService.ListFloors(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, floors)
}

// AddFloors endpoint
func (fc *FloorController) AddFloors(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.AddFloorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Count must be at least 1", facility_errors.ErrInvalidCount)
		return
	}

	msg, err := fc.floorService.AddFloors(c, sess, req.Count)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// DeleteFloor endpoint
func (fc *FloorController) DeleteFloor(c *gin.Context) {
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

	msg, err := fc.floorService.DeleteFloor(c, sess, floorID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}
