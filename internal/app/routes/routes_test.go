package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/controllers"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/middleware"
	"github.com/yigit/examtable/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterBindingRules())

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "routes-secret", TokenIssuer: "examtable"})
	router := gin.New()
	// Requests below never reach a handler that needs a service.
	SetupRouter(router, Controllers{
		Timetable:  controllers.NewTimetableController(nil),
		Schedule:   controllers.NewScheduleController(nil),
		Validation: controllers.NewValidationController(nil),
		Department: controllers.NewDepartmentController(nil),
	}, middleware.NewAuthMiddleware(jwtService))
	return router, jwtService
}

func TestSetupRouter_RoleGates(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token := func(role models.RoleType) string {
		signed, err := jwtService.GenerateAccessToken(auth.Claims{UserID: 1, RoleType: role}, time.Hour)
		require.NoError(t, err)
		return "Bearer " + signed
	}

	tests := []struct {
		name       string
		method     string
		path       string
		role       models.RoleType
		wantStatus int
	}{
		{name: "generate without token", method: http.MethodPost, path: "/api/v1/timetable/generate", wantStatus: http.StatusUnauthorized},
		{name: "generate as student", method: http.MethodPost, path: "/api/v1/timetable/generate", role: models.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "generate as vice-dean", method: http.MethodPost, path: "/api/v1/timetable/generate", role: models.RoleViceDean, wantStatus: http.StatusForbidden},
		{name: "kpis as department head", method: http.MethodGet, path: "/api/v1/timetable/kpis", role: models.RoleDepartmentHead, wantStatus: http.StatusForbidden},
		{name: "own timetable as professor", method: http.MethodGet, path: "/api/v1/me/timetable", role: models.RoleProfessor, wantStatus: http.StatusForbidden},
		{name: "session listing as student", method: http.MethodGet, path: "/api/v1/exam-sessions", role: models.RoleStudent, wantStatus: http.StatusForbidden},
		{name: "final validation as department head", method: http.MethodPost, path: "/api/v1/validation/final/sessions/1", role: models.RoleDepartmentHead, wantStatus: http.StatusForbidden},
		{name: "department validation as exam admin", method: http.MethodGet, path: "/api/v1/validation/department/sessions", role: models.RoleExamAdmin, wantStatus: http.StatusForbidden},
		{name: "invalid window rejected before the handler", method: http.MethodGet, path: "/api/v1/timetable/conflicts?startDate=2025-13-01", role: models.RoleExamAdmin, wantStatus: http.StatusBadRequest},
		{name: "own surveillances without professor id", method: http.MethodGet, path: "/api/v1/me/surveillances", role: models.RoleProfessor, wantStatus: http.StatusForbidden},
		{name: "health", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.role != "" {
				req.Header.Set("Authorization", token(tt.role))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestSetupSwagger(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/timetable/generate")
	assert.Contains(t, rec.Body.String(), "Exam Timetable API")
}
