package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/examtable/internal/app/controllers"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Timetable  *controllers.TimetableController
	Schedule   *controllers.ScheduleController
	Validation *controllers.ValidationController
	Department *controllers.DepartmentController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	window := middleware.ValidateQuery[dto.WindowQuery]()

	// API version group
	v1 := router.Group("/api/v1")

	// Department routes (public access)
	departments := v1.Group("/departments")
	{
		departments.GET("", ctrl.Department.GetAllDepartments)
		departments.GET("/:id", ctrl.Department.GetDepartmentByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Timetable generation and auditing
		timetable := authenticated.Group("/timetable")
		{
			timetable.POST("/generate",
				authMiddleware.RoleRequired(models.RoleExamAdmin),
				ctrl.Timetable.GenerateTimetable)
			timetable.POST("/optimize",
				authMiddleware.RoleRequired(models.RoleExamAdmin), window,
				ctrl.Timetable.OptimizeResources)
			timetable.GET("/conflicts",
				authMiddleware.RoleRequired(models.RoleExamAdmin, models.RoleViceDean, models.RoleDepartmentHead), window,
				ctrl.Timetable.DetectConflicts)
			timetable.GET("/kpis",
				authMiddleware.RoleRequired(models.RoleExamAdmin, models.RoleViceDean), window,
				ctrl.Timetable.ComputeKPIs)
		}

		// Personal views
		me := authenticated.Group("/me")
		{
			me.GET("/timetable", authMiddleware.RoleRequired(models.RoleStudent), window, ctrl.Schedule.GetMyTimetable)
			me.GET("/surveillances", authMiddleware.RoleRequired(models.RoleProfessor), window, ctrl.Schedule.GetMySurveillances)
		}

		// Administrator views
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleExamAdmin, models.RoleViceDean))
		{
			admin.GET("/exam-sessions", window, ctrl.Schedule.ListSessions)
			admin.GET("/students/:id/timetable", window, ctrl.Schedule.GetStudentTimetable)
			admin.GET("/professors/:id/surveillances", window, ctrl.Schedule.GetProfessorSurveillances)
		}

		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.GET("/:id/overview",
				authMiddleware.RoleRequired(models.RoleDepartmentHead, models.RoleViceDean, models.RoleExamAdmin), window,
				ctrl.Department.GetDepartmentOverview)
		}

		// Two-step validation workflow
		validation := authenticated.Group("/validation")
		{
			headOnly := validation.Group("/department")
			headOnly.Use(authMiddleware.RoleRequired(models.RoleDepartmentHead))
			{
				headOnly.GET("/sessions", ctrl.Validation.GetPendingDepartmentSessions)
				headOnly.POST("/sessions/:id", ctrl.Validation.ValidateSession)
			}

			deanOnly := validation.Group("/final")
			deanOnly.Use(authMiddleware.RoleRequired(models.RoleViceDean))
			{
				deanOnly.GET("/sessions", ctrl.Validation.GetAwaitingFinalValidation)
				deanOnly.POST("/sessions/:id", ctrl.Validation.FinalValidateSession)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	SetupSwagger(router)
}
