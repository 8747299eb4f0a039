package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
	"github.com/yigit/examtable/internal/pkg/helpers"
)

// ScheduleController serves the student, professor and administrator timetable views
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

// GetMyTimetable returns the caller's exam timetable
// @Summary Get my exam timetable
// @Description Sessions of every module the authenticated student is enrolled in, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Student timetable"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Token carries no student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/timetable [get]
func (c *ScheduleController) GetMyTimetable(ctx *gin.Context) {
	studentID, ok := claimedID(ctx, studentOf, "student")
	if !ok {
		return
	}
	c.studentTimetable(ctx, studentID)
}

// GetStudentTimetable returns a student's exam timetable
// @Summary Get a student's exam timetable
// @Description Sessions of every module the student is enrolled in, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Student timetable"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID or window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/timetable [get]
func (c *ScheduleController) GetStudentTimetable(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}
	c.studentTimetable(ctx, studentID)
}

func (c *ScheduleController) studentTimetable(ctx *gin.Context, studentID int64) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)

	sessions, err := c.scheduleService.StudentTimetable(ctx.Request.Context(), studentID, q.StartDate, q.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetMySurveillances returns the sessions the caller supervises
// @Summary Get my surveillances
// @Description Sessions supervised by the authenticated professor, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Supervised sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Token carries no professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/surveillances [get]
func (c *ScheduleController) GetMySurveillances(ctx *gin.Context) {
	professorID, ok := claimedID(ctx, professorOf, "professor")
	if !ok {
		return
	}
	c.surveillances(ctx, professorID)
}

// GetProfessorSurveillances returns the sessions a professor supervises
// @Summary Get a professor's surveillances
// @Description Sessions supervised by the professor, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Supervised sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID or window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id}/surveillances [get]
func (c *ScheduleController) GetProfessorSurveillances(ctx *gin.Context) {
	professorID, ok := parseIDParam(ctx, "id", "Professor")
	if !ok {
		return
	}
	c.surveillances(ctx, professorID)
}

func (c *ScheduleController) surveillances(ctx *gin.Context, professorID int64) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)

	sessions, err := c.scheduleService.ProfessorSurveillances(ctx.Request.Context(), professorID, q.StartDate, q.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// ListSessions pages through the stored sessions
// @Summary List exam sessions
// @Description Paginated listing of the sessions inside the window, earliest first
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.ExamSession}} "Exam sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam-sessions [get]
func (c *ScheduleController) ListSessions(ctx *gin.Context) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.scheduleService.ListSessions(ctx.Request.Context(), q.StartDate, q.EndDate, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      result,
		Timestamp: time.Now(),
	})
}
