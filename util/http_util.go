// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

// SessionKey is the gin context key the session middleware populates.
const SessionKey = "session"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// SessionFromContext returns the caller's session as placed by the session
// middleware.
func SessionFromContext(c *gin.Context) (model.Session, error) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return model.Session{}, facility_errors.ErrSessionInvalid
	}
	sess, ok := v.(model.Session)
	if !ok || !sess.Valid() {
		return model.Session{}, facility_errors.ErrSessionInvalid
	}
	return sess, nil
}
