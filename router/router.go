// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hospicore/facility/api/controller"
	"github.com/hospicore/facility/api/middleware"
	"github.com/hospicore/facility/api/model"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	public := router.Group("/api/v1")
	controllers.Auth.RegisterPublicRoutes(public)

	api := router.Group("/api/v1")
	api.Use(middleware.Session())

	// Any signed-in user manages their own credentials.
	controllers.Auth.RegisterRoutes(api)

	// Floor screens: the administrator and the floor secretaries.
	ward := api.Group("", middleware.RequireRoles(model.SessionRoleAdmin, model.SessionRoleSecretary))
	controllers.Bed.RegisterRoutes(ward)
	controllers.Patient.RegisterRoutes(ward)
	controllers.Nurse.RegisterWardRoutes(ward)
	controllers.Secretary.RegisterWardRoutes(ward)

	// Facility and roster management: administrator only.
	admin := api.Group("", middleware.RequireRoles(model.SessionRoleAdmin))
	controllers.Floor.RegisterRoutes(admin)
	controllers.Nurse.RegisterRoutes(admin)
	controllers.Secretary.RegisterRoutes(admin)
	controllers.Audit.RegisterRoutes(admin)

	return router
}
