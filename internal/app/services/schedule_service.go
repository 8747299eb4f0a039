package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/timetable"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/helpers"
)

// ScheduleService serves the read-only timetable views
type ScheduleService interface {
	StudentTimetable(ctx context.Context, studentID int64, startDate, endDate string) ([]models.ExamSession, error)
	ProfessorSurveillances(ctx context.Context, professorID int64, startDate, endDate string) ([]models.ExamSession, error)
	ListSessions(ctx context.Context, startDate, endDate string, page, size int) (*dto.PaginatedResponse, error)
}

type scheduleServiceImpl struct {
	stores Stores
	logger zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(stores Stores, logger zerolog.Logger) ScheduleService {
	return &scheduleServiceImpl{stores: stores, logger: logger}
}

// StudentTimetable lists the sittings of every module the student is enrolled in, earliest first
func (s *scheduleServiceImpl) StudentTimetable(ctx context.Context, studentID int64, startDate, endDate string) ([]models.ExamSession, error) {
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	filter := windowFilter(window)
	filter.StudentID = &studentID
	sessions, err := s.stores.Sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions of student %d: %w", studentID, err)
	}
	return sessions, nil
}

// ProfessorSurveillances lists the sittings supervised by the professor, earliest first
func (s *scheduleServiceImpl) ProfessorSurveillances(ctx context.Context, professorID int64, startDate, endDate string) ([]models.ExamSession, error) {
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.Professors.GetByID(ctx, professorID); err != nil {
		return nil, err
	}

	filter := windowFilter(window)
	filter.ProfessorID = &professorID
	sessions, err := s.stores.Sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing surveillances of professor %d: %w", professorID, err)
	}
	return sessions, nil
}

// ListSessions pages through every sitting inside the window
func (s *scheduleServiceImpl) ListSessions(ctx context.Context, startDate, endDate string, page, size int) (*dto.PaginatedResponse, error) {
	if page < 1 || size < 1 || size > helpers.MaxPageSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("page %d of size %d is out of range", page, size))
	}
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	filter := windowFilter(window)
	total, err := s.stores.Sessions.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error counting sessions: %w", err)
	}

	filter.Offset, filter.Limit = helpers.CalculateOffsetLimit(page, size)
	sessions, err := s.stores.Sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	return paginated(sessions, total, page, size), nil
}
