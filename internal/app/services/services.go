// Package services holds the use cases behind the HTTP controllers: timetable generation and
// auditing, the timetable views, the validation workflow and the department dashboard.
package services

import (
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/app/timetable"
	"github.com/yigit/examtable/internal/pkg/helpers"
)

// windowFilter restricts a session listing to a window.
func windowFilter(w timetable.Window) repositories.SessionFilter {
	return repositories.SessionFilter{From: w.From, To: w.To}
}

func paginated(items interface{}, total int64, page, size int) *dto.PaginatedResponse {
	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
}
