package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// world is an in-memory institution behind every fake store. failures maps a collection
// name (or "insert", "update") to the error its store returns.
type world struct {
	departments []models.Department
	programs    []models.Program
	modules     []models.Module
	enrollments []models.Enrollment
	rooms       []models.Room
	professors  []models.Professor
	sessions    []models.ExamSession
	nextID      int64
	failures    map[string]error
}

func newWorld() *world {
	return &world{nextID: 1, failures: map[string]error{}}
}

func (w *world) stores() Stores {
	return Stores{
		Departments: departmentFake{w},
		Programs:    programFake{w},
		Modules:     moduleFake{w},
		Enrollments: enrollmentFake{w},
		Rooms:       roomFake{w},
		Professors:  professorFake{w},
		Sessions:    sessionFake{w},
	}
}

func (w *world) departmentOf(moduleID int64) int64 {
	for _, m := range w.modules {
		if m.ID != moduleID {
			continue
		}
		for _, p := range w.programs {
			if p.ID == m.ProgramID {
				return p.DepartmentID
			}
		}
	}
	return 0
}

type departmentFake struct{ w *world }

func (f departmentFake) GetAll(ctx context.Context) ([]models.Department, error) {
	if err := f.w.failures["departments"]; err != nil {
		return nil, err
	}
	return append([]models.Department{}, f.w.departments...), nil
}

func (f departmentFake) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	for _, d := range f.w.departments {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", apperrors.ErrDepartmentNotFound, id)
}

type programFake struct{ w *world }

func (f programFake) GetAll(ctx context.Context) ([]models.Program, error) {
	if err := f.w.failures["programs"]; err != nil {
		return nil, err
	}
	return append([]models.Program{}, f.w.programs...), nil
}

func (f programFake) GetByDepartment(ctx context.Context, departmentID int64) ([]models.Program, error) {
	out := []models.Program{}
	for _, p := range f.w.programs {
		if p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

type moduleFake struct{ w *world }

func (f moduleFake) GetAll(ctx context.Context) ([]models.Module, error) {
	if err := f.w.failures["modules"]; err != nil {
		return nil, err
	}
	return append([]models.Module{}, f.w.modules...), nil
}

func (f moduleFake) GetByDepartment(ctx context.Context, departmentID int64) ([]models.Module, error) {
	out := []models.Module{}
	for _, m := range f.w.modules {
		if f.w.departmentOf(m.ID) == departmentID {
			out = append(out, m)
		}
	}
	return out, nil
}

type enrollmentFake struct{ w *world }

func (f enrollmentFake) GetAll(ctx context.Context) ([]models.Enrollment, error) {
	if err := f.w.failures["enrollments"]; err != nil {
		return nil, err
	}
	return append([]models.Enrollment{}, f.w.enrollments...), nil
}

type roomFake struct{ w *world }

func (f roomFake) GetAll(ctx context.Context) ([]models.Room, error) {
	if err := f.w.failures["rooms"]; err != nil {
		return nil, err
	}
	return append([]models.Room{}, f.w.rooms...), nil
}

type professorFake struct{ w *world }

func (f professorFake) GetAll(ctx context.Context) ([]models.Professor, error) {
	if err := f.w.failures["professors"]; err != nil {
		return nil, err
	}
	return append([]models.Professor{}, f.w.professors...), nil
}

func (f professorFake) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	for _, p := range f.w.professors {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", apperrors.ErrProfessorNotFound, id)
}

type sessionFake struct{ w *world }

func (f sessionFake) matches(flt repositories.SessionFilter, s models.ExamSession) bool {
	if flt.From != nil && s.StartAt.Before(*flt.From) {
		return false
	}
	if flt.To != nil && !s.StartAt.Before(flt.To.AddDate(0, 0, 1)) {
		return false
	}
	if flt.ProfessorID != nil && s.ProfessorID != *flt.ProfessorID {
		return false
	}
	if flt.DepartmentID != nil && f.w.departmentOf(s.ModuleID) != *flt.DepartmentID {
		return false
	}
	if flt.Validated != nil && s.Validated != *flt.Validated {
		return false
	}
	if flt.FinalValidated != nil && s.FinalValidated != *flt.FinalValidated {
		return false
	}
	if flt.StudentID != nil {
		enrolled := false
		for _, e := range f.w.enrollments {
			if e.StudentID == *flt.StudentID && e.ModuleID == s.ModuleID {
				enrolled = true
				break
			}
		}
		if !enrolled {
			return false
		}
	}
	return true
}

func (f sessionFake) List(ctx context.Context, flt repositories.SessionFilter) ([]models.ExamSession, error) {
	if err := f.w.failures["exam_sessions"]; err != nil {
		return nil, err
	}
	out := []models.ExamSession{}
	for _, s := range f.w.sessions {
		if f.matches(flt, s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if flt.NewestFirst {
			return out[i].StartAt.After(out[j].StartAt)
		}
		return out[i].StartAt.Before(out[j].StartAt)
	})
	if flt.Offset > 0 {
		if flt.Offset >= uint64(len(out)) {
			return []models.ExamSession{}, nil
		}
		out = out[flt.Offset:]
	}
	if flt.Limit > 0 && flt.Limit < uint64(len(out)) {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f sessionFake) Count(ctx context.Context, flt repositories.SessionFilter) (int64, error) {
	flt.Limit, flt.Offset = 0, 0
	items, err := f.List(ctx, flt)
	return int64(len(items)), err
}

func (f sessionFake) GetByID(ctx context.Context, id int64) (*models.ExamSession, int64, error) {
	for _, s := range f.w.sessions {
		if s.ID == id {
			s := s
			return &s, f.w.departmentOf(s.ModuleID), nil
		}
	}
	return nil, 0, fmt.Errorf("%w: id %d", apperrors.ErrExamSessionNotFound, id)
}

func (f sessionFake) InsertBatch(ctx context.Context, sessions []models.ExamSession) ([]models.ExamSession, error) {
	if err := f.w.failures["insert"]; err != nil {
		return nil, err
	}
	out := make([]models.ExamSession, len(sessions))
	for i, s := range sessions {
		s.ID = f.w.nextID
		f.w.nextID++
		out[i] = s
	}
	f.w.sessions = append(f.w.sessions, out...)
	return out, nil
}

func (f sessionFake) set(id int64, apply func(*models.ExamSession)) error {
	if err := f.w.failures["update"]; err != nil {
		return err
	}
	for i := range f.w.sessions {
		if f.w.sessions[i].ID == id {
			apply(&f.w.sessions[i])
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", apperrors.ErrExamSessionNotFound, id)
}

func (f sessionFake) SetValidated(ctx context.Context, id int64) error {
	return f.set(id, func(s *models.ExamSession) { s.Validated = true })
}

func (f sessionFake) SetFinalValidated(ctx context.Context, id int64) error {
	return f.set(id, func(s *models.ExamSession) { s.FinalValidated = true })
}
