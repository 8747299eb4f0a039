package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/middleware"
)

// ValidationController handles the department and final validation of sessions
type ValidationController struct {
	validationService services.ValidationService
}

// NewValidationController creates a new ValidationController
func NewValidationController(validationService services.ValidationService) *ValidationController {
	return &ValidationController{validationService: validationService}
}

// GetPendingDepartmentSessions lists the sessions awaiting the department head
// @Summary List sessions pending department validation
// @Description Sessions of the caller's department that are not validated yet, newest first
// @Tags validation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Pending sessions"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /validation/department/sessions [get]
func (c *ValidationController) GetPendingDepartmentSessions(ctx *gin.Context) {
	departmentID, ok := claimedID(ctx, departmentOf, "department")
	if !ok {
		return
	}

	sessions, err := c.validationService.PendingDepartmentSessions(ctx.Request.Context(), departmentID)
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

// ValidateSession records the department head's validation
// @Summary Validate a session (department head)
// @Tags validation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam session ID"
// @Success 200 {object} dto.APIResponse{data=models.ExamSession} "Session validated"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Session belongs to another department"
// @Failure 404 {object} dto.ErrorResponse "Exam session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already validated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /validation/department/sessions/{id} [post]
func (c *ValidationController) ValidateSession(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id", "Exam session")
	if !ok {
		return
	}
	departmentID, ok := claimedID(ctx, departmentOf, "department")
	if !ok {
		return
	}

	session, err := c.validationService.ValidateSession(ctx.Request.Context(), sessionID, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Exam session validated",
		Data:      session,
		Timestamp: time.Now(),
	})
}

// GetAwaitingFinalValidation lists the sessions awaiting the vice-dean
// @Summary List sessions awaiting final validation
// @Description Sessions validated by their department and not yet by the vice-dean, newest first
// @Tags validation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ExamSession} "Sessions awaiting final validation"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /validation/final/sessions [get]
func (c *ValidationController) GetAwaitingFinalValidation(ctx *gin.Context) {
	sessions, err := c.validationService.AwaitingFinalValidation(ctx.Request.Context())
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

// FinalValidateSession records the vice-dean's validation
// @Summary Final validation of a session (vice-dean)
// @Tags validation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam session ID"
// @Success 200 {object} dto.APIResponse{data=models.ExamSession} "Session finally validated"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Exam session not found"
// @Failure 409 {object} dto.ErrorResponse "Session not validated by its department, or already final"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /validation/final/sessions/{id} [post]
func (c *ValidationController) FinalValidateSession(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id", "Exam session")
	if !ok {
		return
	}

	session, err := c.validationService.FinalValidateSession(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Exam session final validation recorded",
		Data:      session,
		Timestamp: time.Now(),
	})
}
