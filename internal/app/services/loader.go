package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/app/timetable"
)

// loader reads collections for the engine. A failed read yields an empty collection and
// is recorded so that only the analyses depending on it degrade.
type loader struct {
	stores Stores
	logger zerolog.Logger
	errs   map[timetable.Collection]error
}

func newLoader(stores Stores, logger zerolog.Logger) *loader {
	return &loader{stores: stores, logger: logger, errs: make(map[timetable.Collection]error)}
}

func load[T any](l *loader, c timetable.Collection, fn func() ([]T, error)) []T {
	items, err := fn()
	if err != nil {
		l.logger.Warn().Err(err).Str("collection", string(c)).Msg("Collection unavailable, continuing with an empty list")
		l.errs[c] = err
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// warnings lists the collections that could not be read.
func (l *loader) warnings() []string {
	var out []string
	for _, c := range []timetable.Collection{
		timetable.CollectionSessions, timetable.CollectionEnrollments, timetable.CollectionRooms,
		timetable.CollectionProfessors, timetable.CollectionDepartments, collectionModules, collectionPrograms,
	} {
		if err, ok := l.errs[c]; ok {
			out = append(out, string(c)+" unavailable: "+err.Error())
		}
	}
	return out
}

const (
	collectionModules  timetable.Collection = "modules"
	collectionPrograms timetable.Collection = "programs"
)

func (l *loader) sessions(ctx context.Context) []models.ExamSession {
	return load(l, timetable.CollectionSessions, func() ([]models.ExamSession, error) {
		return l.stores.Sessions.List(ctx, repositories.SessionFilter{})
	})
}

func (l *loader) enrollments(ctx context.Context) []models.Enrollment {
	return load(l, timetable.CollectionEnrollments, func() ([]models.Enrollment, error) {
		return l.stores.Enrollments.GetAll(ctx)
	})
}

func (l *loader) rooms(ctx context.Context) []models.Room {
	return load(l, timetable.CollectionRooms, func() ([]models.Room, error) {
		return l.stores.Rooms.GetAll(ctx)
	})
}

func (l *loader) professors(ctx context.Context) []models.Professor {
	return load(l, timetable.CollectionProfessors, func() ([]models.Professor, error) {
		return l.stores.Professors.GetAll(ctx)
	})
}

func (l *loader) departments(ctx context.Context) []models.Department {
	return load(l, timetable.CollectionDepartments, func() ([]models.Department, error) {
		return l.stores.Departments.GetAll(ctx)
	})
}

func (l *loader) modules(ctx context.Context) []models.Module {
	return load(l, collectionModules, func() ([]models.Module, error) {
		return l.stores.Modules.GetAll(ctx)
	})
}

func (l *loader) programs(ctx context.Context) []models.Program {
	return load(l, collectionPrograms, func() ([]models.Program, error) {
		return l.stores.Programs.GetAll(ctx)
	})
}

// dataset reads everything a detection run needs.
func (l *loader) dataset(ctx context.Context) timetable.Dataset {
	return timetable.Dataset{
		Sessions:    l.sessions(ctx),
		Enrollments: l.enrollments(ctx),
		Rooms:       l.rooms(ctx),
		Professors:  l.professors(ctx),
		Departments: l.departments(ctx),
		LoadErrors:  l.errs,
	}
}

// catalogue reads everything a generation run needs.
func (l *loader) catalogue(ctx context.Context) timetable.Catalogue {
	return timetable.Catalogue{
		Modules:     l.modules(ctx),
		Enrollments: l.enrollments(ctx),
		Rooms:       l.rooms(ctx),
		Professors:  l.professors(ctx),
		Programs:    l.programs(ctx),
		Sessions:    l.sessions(ctx),
	}
}
