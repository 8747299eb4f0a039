package services

import (
	"context"
	"time"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
)

// DepartmentStore reads departments
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// ProgramStore reads programs
type ProgramStore interface {
	GetAll(ctx context.Context) ([]models.Program, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]models.Program, error)
}

// ModuleStore reads modules
type ModuleStore interface {
	GetAll(ctx context.Context) ([]models.Module, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]models.Module, error)
}

// EnrollmentStore reads enrollments
type EnrollmentStore interface {
	GetAll(ctx context.Context) ([]models.Enrollment, error)
}

// RoomStore reads rooms
type RoomStore interface {
	GetAll(ctx context.Context) ([]models.Room, error)
}

// ProfessorStore reads professors
type ProfessorStore interface {
	GetAll(ctx context.Context) ([]models.Professor, error)
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
}

// SessionStore reads and writes exam sessions
type SessionStore interface {
	List(ctx context.Context, f repositories.SessionFilter) ([]models.ExamSession, error)
	Count(ctx context.Context, f repositories.SessionFilter) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ExamSession, int64, error)
	InsertBatch(ctx context.Context, sessions []models.ExamSession) ([]models.ExamSession, error)
	SetValidated(ctx context.Context, id int64) error
	SetFinalValidated(ctx context.Context, id int64) error
}

// Stores groups the data access the services need
type Stores struct {
	Departments DepartmentStore
	Programs    ProgramStore
	Modules     ModuleStore
	Enrollments EnrollmentStore
	Rooms       RoomStore
	Professors  ProfessorStore
	Sessions    SessionStore
}

// NewStores exposes the Postgres repositories as service stores
func NewStores(repos *repositories.Repositories) Stores {
	return Stores{
		Departments: repos.DepartmentRepository,
		Programs:    repos.ProgramRepository,
		Modules:     repos.ModuleRepository,
		Enrollments: repos.EnrollmentRepository,
		Rooms:       repos.RoomRepository,
		Professors:  repos.ProfessorRepository,
		Sessions:    repos.ExamSessionRepository,
	}
}

// InLocation returns stores whose sessions start in loc and whose filter days are
// calendar days of loc. Postgres hands TIMESTAMPTZ values back in the host zone, which
// would otherwise decide what day a late sitting falls on.
func (s Stores) InLocation(loc *time.Location) Stores {
	if loc == nil || s.Sessions == nil {
		return s
	}
	s.Sessions = zonedSessions{SessionStore: s.Sessions, loc: loc}
	return s
}

type zonedSessions struct {
	SessionStore
	loc *time.Location
}

func (z zonedSessions) day(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, z.loc)
	return &d
}

func (z zonedSessions) filter(f repositories.SessionFilter) repositories.SessionFilter {
	f.From = z.day(f.From)
	f.To = z.day(f.To)
	return f
}

func (z zonedSessions) List(ctx context.Context, f repositories.SessionFilter) ([]models.ExamSession, error) {
	items, err := z.SessionStore.List(ctx, z.filter(f))
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].StartAt = items[i].StartAt.In(z.loc)
	}
	return items, nil
}

func (z zonedSessions) Count(ctx context.Context, f repositories.SessionFilter) (int64, error) {
	return z.SessionStore.Count(ctx, z.filter(f))
}

func (z zonedSessions) GetByID(ctx context.Context, id int64) (*models.ExamSession, int64, error) {
	s, departmentID, err := z.SessionStore.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	s.StartAt = s.StartAt.In(z.loc)
	return s, departmentID, nil
}
