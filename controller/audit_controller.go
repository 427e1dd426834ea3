// api/controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hospicore/facility/api/service"
	"github.com/hospicore/facility/api/util"
	helper_util "github.com/hospicore/facility/api/util/helper"
)

type AuditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	audit := r.Group("/bitacora")
	{
		audit.GET("", ac.Feed)
		audit.GET("/buscar", ac.Search)
	}
}

// Feed endpoint returns the movement log newest first, paginated.
func (ac *AuditController) Feed(c *gin.Context) {
	sess, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	entries, err := ac.auditService.Feed(c, sess)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	if offset >= len(entries) {
		c.JSON(http.StatusOK, gin.H{"data": []any{}, "total": len(entries)})
		return
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	c.JSON(http.StatusOK, gin.H{"data": entries[offset:end], "total": len(entries)})
}

// Search endpoint queries the mirrored movement log by time range, user and
// HTTP verb.
func (ac *AuditController) Search(c *gin.Context) {
	if _, err := util.SessionFromContext(c); err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	from := time.Now().AddDate(0, -1, 0)
	to := time.Now()
	if v := c.Query("desde"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid desde timestamp", err)
			return
		}
		from = parsed
	}
	if v := c.Query("hasta"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid hasta timestamp", err)
			return
		}
		to = parsed
	}

	entries, err := ac.auditService.Search(c, from, to, c.Query("usuario"), c.Query("movimiento"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
