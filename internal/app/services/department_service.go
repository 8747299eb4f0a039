package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/timetable"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	stores Stores
	logger zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(stores Stores, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{stores: stores, logger: logger}
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.stores.Departments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.stores.Departments.GetByID(ctx, id)
}

// Overview counts modules and sessions per program of the department and estimates the
// overlapping pairs each program is responsible for.
func (s *DepartmentService) Overview(ctx context.Context, departmentID int64, startDate, endDate string) (*dto.DepartmentOverview, error) {
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	department, err := s.stores.Departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	programs, err := s.stores.Programs.GetByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs of department %d: %w", departmentID, err)
	}
	modules, err := s.stores.Modules.GetByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving modules of department %d: %w", departmentID, err)
	}

	filter := windowFilter(window)
	filter.DepartmentID = &departmentID
	sessions, err := s.stores.Sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions of department %d: %w", departmentID, err)
	}

	programOf := make(map[int64]int64, len(modules))
	moduleCount := make(map[int64]int)
	for _, m := range modules {
		programOf[m.ID] = m.ProgramID
		moduleCount[m.ProgramID]++
	}
	sessionCount := make(map[int64]int)
	for _, sess := range sessions {
		sessionCount[programOf[sess.ModuleID]]++
	}

	overview := &dto.DepartmentOverview{
		Department: *department,
		Window:     window,
		Programs:   make([]dto.ProgramOverview, 0, len(programs)),
	}
	for _, p := range programs {
		overview.Programs = append(overview.Programs, dto.ProgramOverview{
			ProgramID:    p.ID,
			ProgramName:  p.Name,
			ModuleCount:  moduleCount[p.ID],
			SessionCount: sessionCount[p.ID],
		})
	}

	conflicts, err := s.programConflicts(ctx, departmentID, window)
	if err != nil {
		s.logger.Warn().Err(err).Int64("departmentId", departmentID).Msg("Program conflict estimate unavailable")
		conflicts = []timetable.ProgramConflict{}
	}
	overview.ProgramConflicts = conflicts

	return overview, nil
}

// programConflicts pairs the department's sessions against every session of the window,
// so collisions with other departments count too.
func (s *DepartmentService) programConflicts(ctx context.Context, departmentID int64, window timetable.Window) ([]timetable.ProgramConflict, error) {
	sessions, err := s.stores.Sessions.List(ctx, windowFilter(window))
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}
	modules, err := s.stores.Modules.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving modules: %w", err)
	}
	programs, err := s.stores.Programs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return timetable.ProgramConflicts(departmentID, sessions, modules, programs)
}
