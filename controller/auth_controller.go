// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	facility_errors "github.com/hospicore/facility/api/errors"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/service"
	"github.com/hospicore/facility/api/util"
)

type AuthController struct {
	authService  service.IAuthService
	staffService service.IStaffService
}

func NewAuthController(authService service.IAuthService, staffService service.IStaffService) *AuthController {
	return &AuthController{
		authService:  authService,
		staffService: staffService,
	}
}

// RegisterPublicRoutes registers the routes that need no session.
func (ac *AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/signin", ac.SignIn)
}

// RegisterRoutes registers the session-bound account routes.
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/cuenta/credenciales", ac.UpdateCredentials)
}

// SignIn endpoint
func (ac *AuthController) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	sess, err := ac.authService.SignIn(c, req)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// UpdateCredentials lets the signed-in user change their own username and
// password.
func (ac *AuthController) UpdateCredentials(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req model.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials payload", facility_errors.ErrInvalidCredentials)
		return
	}

	if err := ac.staffService.UpdateCredentials(c, sess, sess.UserID, req); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credenciales actualizadas"})
}
