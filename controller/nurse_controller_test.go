// api/controller/nurse_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hospicore/facility/api/controller"
	facility_errors "github.com/hospicore/facility/api/errors"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
	test_mock "github.com/hospicore/facility/api/test/mock"
	"github.com/hospicore/facility/api/util"
)

func setupRouter(sess model.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(util.SessionKey, sess)
		c.Next()
	})
	return r
}

func TestNurseController(t *testing.T) {
	logger.InitLogger(os.TempDir())
	defer logger.Sync()

	sess := model.Session{Token: "tok", Role: model.SessionRoleAdmin, UserID: 1}

	mockStaffService := new(test_mock.MockStaffService)
	nurseController := controller.NewNurseController(mockStaffService)
	router := setupRouter(sess)
	api := router.Group("/")
	nurseController.RegisterRoutes(api)
	nurseController.RegisterWardRoutes(api)

	t.Run("DeactivateNurse_Success", func(t *testing.T) {
		mockStaffService.On("DeactivateStaff", mock.Anything, sess, model.RoleNurse, 7).Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/enfermeras/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeactivateNurse_ConflictOffersDelegates", func(t *testing.T) {
		mockStaffService.On("DeactivateStaff", mock.Anything, sess, model.RoleNurse, 7).
			Return(facility_errors.ErrStillHoldsBeds).Once()
		mockStaffService.On("EligibleDelegates", mock.Anything, sess, 7).
			Return([]model.Staff{{ID: 9, FirstName: "Eva", Active: true}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/enfermeras/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var body struct {
			Error     string        `json:"error"`
			Delegates []model.Staff `json:"delegadas"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Delegates, 1)
		assert.Equal(t, 9, body.Delegates[0].ID)
	})

	t.Run("DeactivateNurse_LastActiveOnFloor", func(t *testing.T) {
		mockStaffService.On("DeactivateStaff", mock.Anything, sess, model.RoleNurse, 7).
			Return(facility_errors.ErrLastActiveOnFloor).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/enfermeras/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ResolveDelegation_Success", func(t *testing.T) {
		mockStaffService.On("ResolveDelegation", mock.Anything, sess, 7, 9).
			Return("Camas delegadas correctamente", nil).Once()

		body := strings.NewReader(`{"nuevaEnfermeraId":9}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/enfermeras/7/delegar", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ResolveDelegation_MissingDelegate", func(t *testing.T) {
		body := strings.NewReader(`{}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/enfermeras/7/delegar", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReassignFloor_SameFloor", func(t *testing.T) {
		mockStaffService.On("ReassignFloor", mock.Anything, sess, model.RoleNurse, 7, 2).
			Return("", facility_errors.ErrSameFloor).Once()

		body := strings.NewReader(`{"nuevoPisoId":2}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/enfermeras/7/piso", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ReassignFloor_ConflictOffersDelegates", func(t *testing.T) {
		mockStaffService.On("ReassignFloor", mock.Anything, sess, model.RoleNurse, 7, 4).
			Return("", facility_errors.ErrStillHoldsBeds).Once()
		mockStaffService.On("EligibleDelegates", mock.Anything, sess, 7).
			Return([]model.Staff{{ID: 9, FirstName: "Eva", Active: true}}, nil).Once()

		body := strings.NewReader(`{"nuevoPisoId":4}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/enfermeras/7/piso", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp struct {
			Error     string        `json:"error"`
			Delegates []model.Staff `json:"delegadas"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Delegates, 1)
		assert.Equal(t, 9, resp.Delegates[0].ID)
	})

	t.Run("CreateNurse_Success", func(t *testing.T) {
		mockStaffService.On("CreateStaff", mock.Anything, sess, model.RoleNurse, mock.Anything).
			Return(nil).Once()

		body := strings.NewReader(`{
			"nombre":"Maria","paterno":"Gomez","materno":"Ruiz",
			"correo":"maria@hospital.mx","telefono":"5512345678",
			"username":"maria.gomez","pisoAsignado":{"idPiso":2}
		}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/enfermeras", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ListNurses_SessionExpired", func(t *testing.T) {
		mockStaffService.On("ListNurses", mock.Anything, sess).
			Return(nil, facility_errors.NewBackendError(facility_errors.ErrSessionInvalid, http.StatusUnauthorized, "")).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/enfermeras", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	mockStaffService.AssertExpectations(t)
}
