// api/middleware/session_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/middleware"
	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/util"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(os.TempDir())
}

func signToken(t *testing.T, role string, userID int, username string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":            username,
		"rol":            role,
		"id":             userID,
		"nombreCompleto": "Maria Gomez Ruiz",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func sessionRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.Session()}, extra...)
	group := r.Group("/", handlers...)
	group.GET("/whoami", func(c *gin.Context) {
		sess, err := util.SessionFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, sess)
	})
	return r
}

func TestSession_PopulatesContextFromToken(t *testing.T) {
	router := sessionRouter()
	token := signToken(t, model.SessionRoleSecretary, 12, "maria.gomez")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rol":"secretaria"`)
	assert.Contains(t, w.Body.String(), `"username":"maria.gomez"`)
}

func TestSession_MissingTokenRejected(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_GarbageTokenRejected(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_GatesByRole(t *testing.T) {
	router := sessionRouter(middleware.RequireRoles(model.SessionRoleAdmin))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, model.SessionRoleNurse, 3, "eva"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, model.SessionRoleAdmin, 1, "root"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
