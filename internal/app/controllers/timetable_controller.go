package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
)

// TimetableController exposes generation, conflict detection, KPIs and optimization
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// GenerateTimetable runs the greedy generator over a window
// @Summary Generate the exam timetable
// @Description Places one session per module inside the window, stores the result unless persist is false and returns the residual conflicts
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateTimetableRequest true "Generation window"
// @Success 200 {object} dto.APIResponse{data=dto.GenerationResult} "Generation report"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/generate [post]
func (c *TimetableController) GenerateTimetable(ctx *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.timetableService.GenerateTimetable(ctx.Request.Context(), req.StartDate, req.EndDate, req.ShouldPersist())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   result.Report.Message,
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DetectConflicts audits the stored sessions
// @Summary Detect timetable conflicts
// @Description Reports students with several exams a day, overloaded professors, rooms over capacity, the surveillance distribution and overlapping sessions per department. Without dates every session is audited.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=timetable.ConflictReport} "Conflict report"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/conflicts [get]
func (c *TimetableController) DetectConflicts(ctx *gin.Context) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)

	report, err := c.timetableService.DetectConflicts(ctx.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ComputeKPIs returns the dashboard metrics
// @Summary Compute timetable KPIs
// @Description Room utilization, professors ranked by supervised minutes and the conflict ratio. Defaults to the trailing 30 days.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=timetable.KPIs} "KPIs"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/kpis [get]
func (c *TimetableController) ComputeKPIs(ctx *gin.Context) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)

	kpis, err := c.timetableService.ComputeKPIs(ctx.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      kpis,
		Timestamp: time.Now(),
	})
}

// OptimizeResources runs the optimization placeholder
// @Summary Optimize resources (placeholder)
// @Description Returns fixed improvement estimates without changing any session, together with the current conflicts
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.OptimizationResult} "Optimization report"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable/optimize [post]
func (c *TimetableController) OptimizeResources(ctx *gin.Context) {
	q := middleware.ValidatedQuery[dto.WindowQuery](ctx)

	result, err := c.timetableService.OptimizeResources(ctx.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   result.Report.Message,
		Data:      result,
		Timestamp: time.Now(),
	})
}
