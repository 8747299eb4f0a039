package timetable

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// Generation defaults
const (
	DefaultStartHour                     = 9
	DefaultDurationMinutes               = 120
	DefaultMaxSessionsPerProfessorPerDay = 3
)

// Catalogue is everything the generator reads. Sessions are pre-existing sittings, only used to
// learn a module's usual professor and duration.
type Catalogue struct {
	Modules     []models.Module
	Enrollments []models.Enrollment
	Rooms       []models.Room
	Professors  []models.Professor
	Programs    []models.Program
	Sessions    []models.ExamSession
}

// Options tunes the generator.
type Options struct {
	StartHour                     int
	StartMinute                   int
	Location                      *time.Location
	DefaultDurationMinutes        int
	MaxSessionsPerProfessorPerDay int
}

// DefaultOptions returns the 09:00 / 120 minutes / 3 per day settings in UTC.
func DefaultOptions() Options {
	return Options{
		StartHour:                     DefaultStartHour,
		Location:                      time.UTC,
		DefaultDurationMinutes:        DefaultDurationMinutes,
		MaxSessionsPerProfessorPerDay: DefaultMaxSessionsPerProfessorPerDay,
	}
}

// ProposedSession is a session chosen by the generator, with the enrollment it was sized for.
type ProposedSession struct {
	models.ExamSession
	Enrolled int `json:"enrolled"`
}

// Plan is the in-memory outcome of one generation pass.
type Plan struct {
	Window      Window
	Sessions    []ProposedSession
	Unscheduled []UnscheduledModule
	Attempts    int
}

// ExamSessions returns the proposed sessions without generator metadata.
func (p Plan) ExamSessions() []models.ExamSession {
	out := make([]models.ExamSession, len(p.Sessions))
	for i, s := range p.Sessions {
		out[i] = s.ExamSession
	}
	return out
}

// Generator is the greedy exam scheduler. It holds no state between calls.
type Generator struct {
	opts   Options
	logger zerolog.Logger
}

// NewGenerator creates a generator, filling a missing location, duration or daily limit
// with defaults. The start clock is used as given, so a zero value means midnight.
func NewGenerator(opts Options, logger zerolog.Logger) *Generator {
	def := DefaultOptions()
	if opts.Location == nil {
		opts.Location = def.Location
	}
	if opts.DefaultDurationMinutes <= 0 {
		opts.DefaultDurationMinutes = def.DefaultDurationMinutes
	}
	if opts.MaxSessionsPerProfessorPerDay <= 0 {
		opts.MaxSessionsPerProfessorPerDay = def.MaxSessionsPerProfessorPerDay
	}
	return &Generator{opts: opts, logger: logger}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// schedulingContext is the mutable state of one generation call.
type schedulingContext struct {
	studentBusy map[int64]map[string]struct{} // student -> days with an exam
	roomUsed    map[string]map[int64]struct{} // day -> rooms taken
	profDaily   map[int64]map[string]int      // professor -> day -> sessions
	profTotal   map[int64]int                 // professor -> sessions this run
}

func newSchedulingContext() *schedulingContext {
	return &schedulingContext{
		studentBusy: make(map[int64]map[string]struct{}),
		roomUsed:    make(map[string]map[int64]struct{}),
		profDaily:   make(map[int64]map[string]int),
		profTotal:   make(map[int64]int),
	}
}

func (sc *schedulingContext) studentsFree(students []int64, day string) bool {
	for _, id := range students {
		if _, busy := sc.studentBusy[id][day]; busy {
			return false
		}
	}
	return true
}

func (sc *schedulingContext) roomFree(roomID int64, day string) bool {
	_, used := sc.roomUsed[day][roomID]
	return !used
}

func (sc *schedulingContext) dailyCount(professorID int64, day string) int {
	return sc.profDaily[professorID][day]
}

func (sc *schedulingContext) place(students []int64, professorID, roomID int64, day string) {
	for _, id := range students {
		if sc.studentBusy[id] == nil {
			sc.studentBusy[id] = make(map[string]struct{})
		}
		sc.studentBusy[id][day] = struct{}{}
	}
	if sc.profDaily[professorID] == nil {
		sc.profDaily[professorID] = make(map[string]int)
	}
	sc.profDaily[professorID][day]++
	sc.profTotal[professorID]++
	if sc.roomUsed[day] == nil {
		sc.roomUsed[day] = make(map[int64]struct{})
	}
	sc.roomUsed[day][roomID] = struct{}{}
}

// leastLoaded picks the candidate with the fewest sessions this run, lowest id first on ties.
func (sc *schedulingContext) leastLoaded(candidates []models.Professor) (models.Professor, bool) {
	var best models.Professor
	found := false
	for _, p := range candidates {
		if !found || sc.profTotal[p.ID] < sc.profTotal[best.ID] ||
			(sc.profTotal[p.ID] == sc.profTotal[best.ID] && p.ID < best.ID) {
			best = p
			found = true
		}
	}
	return best, found
}

// history is what earlier sessions say about a module.
type history struct {
	professorID int64
	duration    int
}

// catalogueIndex is the read-only lookup structure built once per call.
type catalogueIndex struct {
	students    map[int64][]int64
	professors  []models.Professor
	profByID    map[int64]models.Professor
	profsByDept map[int64][]models.Professor
	programDept map[int64]int64
	history     map[int64]history
	roomsAsc    []models.Room
	roomsDesc   []models.Room
}

func buildIndex(cat Catalogue) catalogueIndex {
	idx := catalogueIndex{
		students:    StudentsByModule(cat.Enrollments),
		profByID:    make(map[int64]models.Professor, len(cat.Professors)),
		profsByDept: make(map[int64][]models.Professor),
		programDept: make(map[int64]int64, len(cat.Programs)),
		history:     make(map[int64]history),
	}

	idx.professors = append([]models.Professor(nil), cat.Professors...)
	sort.Slice(idx.professors, func(i, j int) bool { return idx.professors[i].ID < idx.professors[j].ID })
	for _, p := range idx.professors {
		idx.profByID[p.ID] = p
		idx.profsByDept[p.DepartmentID] = append(idx.profsByDept[p.DepartmentID], p)
	}

	for _, p := range cat.Programs {
		idx.programDept[p.ID] = p.DepartmentID
	}

	// The earliest sitting of a module defines its usual professor and duration.
	past := append([]models.ExamSession(nil), cat.Sessions...)
	sort.SliceStable(past, func(i, j int) bool {
		if !past[i].StartAt.Equal(past[j].StartAt) {
			return past[i].StartAt.Before(past[j].StartAt)
		}
		return past[i].ID < past[j].ID
	})
	for _, s := range past {
		if _, seen := idx.history[s.ModuleID]; !seen {
			idx.history[s.ModuleID] = history{professorID: s.ProfessorID, duration: s.DurationMinutes}
		}
	}

	idx.roomsAsc = append([]models.Room(nil), cat.Rooms...)
	sort.SliceStable(idx.roomsAsc, func(i, j int) bool {
		if idx.roomsAsc[i].Capacity != idx.roomsAsc[j].Capacity {
			return idx.roomsAsc[i].Capacity < idx.roomsAsc[j].Capacity
		}
		return idx.roomsAsc[i].ID < idx.roomsAsc[j].ID
	})
	idx.roomsDesc = append([]models.Room(nil), cat.Rooms...)
	sort.SliceStable(idx.roomsDesc, func(i, j int) bool {
		if idx.roomsDesc[i].Capacity != idx.roomsDesc[j].Capacity {
			return idx.roomsDesc[i].Capacity > idx.roomsDesc[j].Capacity
		}
		return idx.roomsDesc[i].ID < idx.roomsDesc[j].ID
	})

	return idx
}

// candidateRooms returns the rooms able to hold enrolled students, tightest first. When none
// is large enough every room is returned, largest first.
func (idx catalogueIndex) candidateRooms(enrolled int) []models.Room {
	var fit []models.Room
	for _, r := range idx.roomsAsc {
		if r.Capacity >= enrolled {
			fit = append(fit, r)
		}
	}
	if len(fit) > 0 {
		return fit
	}
	return idx.roomsDesc
}

// preferredProfessor follows the module's history, then its department, then the whole institution.
func (idx catalogueIndex) preferredProfessor(sc *schedulingContext, m models.Module) (models.Professor, bool) {
	if h, ok := idx.history[m.ID]; ok {
		if p, ok := idx.profByID[h.professorID]; ok {
			return p, true
		}
	}
	if deptID, ok := idx.programDept[m.ProgramID]; ok {
		if p, ok := sc.leastLoaded(idx.profsByDept[deptID]); ok {
			return p, true
		}
	}
	return sc.leastLoaded(idx.professors)
}

// Plan assigns every module of the catalogue to one (day, room, professor) inside window.
// It is a single greedy pass without backtracking; modules that fit nowhere are reported
// as unscheduled.
func (g *Generator) Plan(cat Catalogue, window Window) (Plan, error) {
	if !window.Bounded() {
		return Plan{}, apperrors.NewInputError(apperrors.ErrUnboundedWindow.Error())
	}
	if window.From.After(*window.To) {
		return Plan{}, apperrors.NewInputError("start date is after end date")
	}

	idx := buildIndex(cat)
	sc := newSchedulingContext()
	days := window.Days()

	modules := append([]models.Module(nil), cat.Modules...)
	sort.SliceStable(modules, func(i, j int) bool {
		ni, nj := len(idx.students[modules[i].ID]), len(idx.students[modules[j].ID])
		if ni != nj {
			return ni > nj
		}
		return modules[i].ID < modules[j].ID
	})

	plan := Plan{Window: window, Sessions: []ProposedSession{}, Unscheduled: []UnscheduledModule{}}
	for _, m := range modules {
		plan.Attempts++
		students := idx.students[m.ID]
		proposal, ok := g.placeModule(sc, idx, m, students, days)
		if !ok {
			plan.Unscheduled = append(plan.Unscheduled, UnscheduledModule{ModuleID: m.ID, ModuleName: m.Name, Enrolled: len(students)})
			g.logger.Debug().Int64("moduleId", m.ID).Int("enrolled", len(students)).Msg("Module could not be placed in window")
			continue
		}
		plan.Sessions = append(plan.Sessions, proposal)
	}

	return plan, nil
}

func (g *Generator) placeModule(sc *schedulingContext, idx catalogueIndex, m models.Module, students []int64, days []time.Time) (ProposedSession, bool) {
	rooms := idx.candidateRooms(len(students))
	duration := g.opts.DefaultDurationMinutes
	if h, ok := idx.history[m.ID]; ok && h.duration > 0 {
		duration = h.duration
	}

	for _, d := range days {
		day := d.Format(DateLayout)
		if !sc.studentsFree(students, day) {
			continue
		}

		var room models.Room
		roomFound := false
		for _, r := range rooms {
			if sc.roomFree(r.ID, day) {
				room, roomFound = r, true
				break
			}
		}
		if !roomFound {
			continue
		}

		prof, ok := idx.preferredProfessor(sc, m)
		if !ok {
			continue
		}
		if sc.dailyCount(prof.ID, day) >= g.opts.MaxSessionsPerProfessorPerDay {
			var available []models.Professor
			for _, p := range idx.professors {
				if sc.dailyCount(p.ID, day) < g.opts.MaxSessionsPerProfessorPerDay {
					available = append(available, p)
				}
			}
			prof, ok = sc.leastLoaded(available)
			if !ok {
				continue
			}
		}

		sc.place(students, prof.ID, room.ID, day)
		start := time.Date(d.Year(), d.Month(), d.Day(), g.opts.StartHour, g.opts.StartMinute, 0, 0, g.opts.Location)
		return ProposedSession{
			ExamSession: models.ExamSession{
				ModuleID:        m.ID,
				ProfessorID:     prof.ID,
				RoomID:          room.ID,
				StartAt:         start,
				DurationMinutes: duration,
				ModuleName:      m.Name,
				RoomName:        room.Name,
				ProfessorName:   prof.Name,
			},
			Enrolled: len(students),
		}, true
	}
	return ProposedSession{}, false
}
