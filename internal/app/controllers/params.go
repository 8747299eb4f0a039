package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/middleware"
	"github.com/yigit/examtable/internal/pkg/auth"
)

// parseIDParam reads a positive int64 path parameter, answering 400 when it is malformed
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID")
		errorDetail = errorDetail.WithDetails(label + " ID must be a positive number").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// claimedID returns one of the optional ids carried by the caller's token, answering 403 when absent
func claimedID(ctx *gin.Context, pick func(*auth.Claims) *int64, label string) (int64, bool) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if ok {
		if id := pick(claims); id != nil {
			return *id, true
		}
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
	errorDetail = errorDetail.WithDetails("Token carries no " + label + " ID")
	ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	return 0, false
}

func departmentOf(c *auth.Claims) *int64 { return c.DepartmentID }
func studentOf(c *auth.Claims) *int64    { return c.StudentID }
func professorOf(c *auth.Claims) *int64  { return c.ProfessorID }
