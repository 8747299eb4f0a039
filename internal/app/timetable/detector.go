package timetable

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
)

// Category names, as they appear in reports and metrics.
const (
	CategoryStudentsMultipleExams = "studentsMultipleExamsPerDay"
	CategoryProfessorsOverLimit   = "professorsOverDailyLimit"
	CategoryRoomsOverCapacity     = "roomsOverCapacity"
	CategorySurveillance          = "surveillanceByProfessor"
	CategoryDepartmentConflicts   = "conflictsByDepartment"
	CategoryUnscheduledModules    = "unscheduledModules"
)

// Collection names a record set a Dataset is built from.
type Collection string

const (
	CollectionSessions    Collection = "exam_sessions"
	CollectionEnrollments Collection = "enrollments"
	CollectionRooms       Collection = "rooms"
	CollectionProfessors  Collection = "professors"
	CollectionDepartments Collection = "departments"
)

// Dataset is the state a detection runs over. Sessions holds every known session;
// window filtering happens inside the detector. LoadErrors records collections that
// could not be read: categories depending on them degrade to empty lists.
type Dataset struct {
	Sessions    []models.ExamSession
	Enrollments []models.Enrollment
	Rooms       []models.Room
	Professors  []models.Professor
	Departments []models.Department
	LoadErrors  map[Collection]error
}

func (d Dataset) loadError(deps ...Collection) error {
	for _, c := range deps {
		if err, ok := d.LoadErrors[c]; ok && err != nil {
			return fmt.Errorf("loading %s: %w", c, err)
		}
	}
	return nil
}

// UnscheduledModule is a module the generator could not place inside the window.
type UnscheduledModule struct {
	ModuleID   int64  `json:"moduleId"`
	ModuleName string `json:"moduleName"`
	Enrolled   int    `json:"enrolled"`
}

// ConflictReport holds the categorized findings of a detection run. Every list is non-nil.
type ConflictReport struct {
	Window                      Window               `json:"window"`
	StudentsMultipleExamsPerDay []StudentDayLoad     `json:"studentsMultipleExamsPerDay"`
	ProfessorsOverDailyLimit    []ProfessorDayLoad   `json:"professorsOverDailyLimit"`
	RoomsOverCapacity           []CapacityViolation  `json:"roomsOverCapacity"`
	SurveillanceByProfessor     []SurveillanceLoad   `json:"surveillanceByProfessor"`
	ConflictsByDepartment       []DepartmentConflict `json:"conflictsByDepartment"`
	UnscheduledModules          []UnscheduledModule  `json:"unscheduledModules"`
	InsertError                 string               `json:"insertError,omitempty"`
	Degraded                    []string             `json:"degraded,omitempty"`
}

// Counts returns the number of records per category.
func (r ConflictReport) Counts() map[string]int {
	return map[string]int{
		CategoryStudentsMultipleExams: len(r.StudentsMultipleExamsPerDay),
		CategoryProfessorsOverLimit:   len(r.ProfessorsOverDailyLimit),
		CategoryRoomsOverCapacity:     len(r.RoomsOverCapacity),
		CategorySurveillance:          len(r.SurveillanceByProfessor),
		CategoryDepartmentConflicts:   len(r.ConflictsByDepartment),
		CategoryUnscheduledModules:    len(r.UnscheduledModules),
	}
}

// Detector audits a set of exam sessions against the scheduling constraints.
type Detector struct {
	logger     zerolog.Logger
	dailyLimit int
	onDegraded func(category string)
}

// NewDetector creates a detector flagging professors above dailyLimit sessions per day.
func NewDetector(logger zerolog.Logger, dailyLimit int) *Detector {
	if dailyLimit <= 0 {
		dailyLimit = DefaultMaxSessionsPerProfessorPerDay
	}
	return &Detector{logger: logger, dailyLimit: dailyLimit}
}

// OnDegraded registers a hook called once per failed category.
func (d *Detector) OnDegraded(fn func(category string)) {
	d.onDegraded = fn
}

// Detect runs the five analyses. All of them read the sessions inside window, except the
// surveillance distribution which always covers every session. Detect never fails: a failing
// analysis leaves its category empty and is listed in Degraded.
func (d *Detector) Detect(data Dataset, window Window) ConflictReport {
	windowed := FilterSessions(data.Sessions, window)
	enrollmentCounts := EnrollmentCounts(data.Enrollments)

	students := runCategory(CategoryStudentsMultipleExams, func() ([]StudentDayLoad, error) {
		if err := data.loadError(CollectionSessions, CollectionEnrollments); err != nil {
			return nil, err
		}
		return StudentsOverDailyLimit(windowed, data.Enrollments), nil
	})
	professors := runCategory(CategoryProfessorsOverLimit, func() ([]ProfessorDayLoad, error) {
		if err := data.loadError(CollectionSessions, CollectionProfessors); err != nil {
			return nil, err
		}
		return ProfessorsOverDailyLimit(windowed, data.Professors, d.dailyLimit)
	})
	rooms := runCategory(CategoryRoomsOverCapacity, func() ([]CapacityViolation, error) {
		if err := data.loadError(CollectionSessions, CollectionEnrollments, CollectionRooms); err != nil {
			return nil, err
		}
		return RoomCapacityViolations(windowed, enrollmentCounts, data.Rooms)
	})
	surveillance := runCategory(CategorySurveillance, func() ([]SurveillanceLoad, error) {
		if err := data.loadError(CollectionSessions, CollectionProfessors); err != nil {
			return nil, err
		}
		return SurveillanceDistribution(data.Sessions, data.Professors), nil
	})
	departments := runCategory(CategoryDepartmentConflicts, func() ([]DepartmentConflict, error) {
		if err := data.loadError(CollectionSessions, CollectionProfessors, CollectionDepartments); err != nil {
			return nil, err
		}
		return DepartmentConflicts(windowed, data.Professors, data.Departments)
	})

	report := ConflictReport{
		Window:                      window,
		StudentsMultipleExamsPerDay: students.Items,
		ProfessorsOverDailyLimit:    professors.Items,
		RoomsOverCapacity:           rooms.Items,
		SurveillanceByProfessor:     surveillance.Items,
		ConflictsByDepartment:       departments.Items,
		UnscheduledModules:          []UnscheduledModule{},
	}

	for _, failed := range []struct {
		name string
		err  error
	}{
		{students.Name, students.Err},
		{professors.Name, professors.Err},
		{rooms.Name, rooms.Err},
		{surveillance.Name, surveillance.Err},
		{departments.Name, departments.Err},
	} {
		if failed.err == nil {
			continue
		}
		d.logger.Warn().Err(failed.err).Str("category", failed.name).Msg("Conflict category degraded to empty list")
		report.Degraded = append(report.Degraded, failed.name)
		if d.onDegraded != nil {
			d.onDegraded(failed.name)
		}
	}

	d.logger.Debug().
		Str("window", window.String()).
		Int("sessions", len(windowed)).
		Interface("counts", report.Counts()).
		Msg("Conflict detection finished")

	return report
}
