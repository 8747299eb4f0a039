package timetable

import (
	"fmt"
	"sort"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// DayKey identifies one entity on one calendar day.
type DayKey struct {
	ID  int64
	Day string
}

// StudentDayLoad is a student sitting more than one exam on the same day.
type StudentDayLoad struct {
	StudentID int64  `json:"studentId"`
	Day       string `json:"day"`
	ExamCount int    `json:"examCount"`
}

// ProfessorDayLoad is a professor supervising more sessions than allowed on one day.
type ProfessorDayLoad struct {
	ProfessorID   int64  `json:"professorId"`
	ProfessorName string `json:"professorName"`
	Day           string `json:"day"`
	SessionCount  int    `json:"sessionCount"`
}

// CapacityViolation is a session whose module enrollment exceeds the room capacity.
type CapacityViolation struct {
	ExamSessionID int64  `json:"examSessionId"`
	ModuleID      int64  `json:"moduleId"`
	RoomID        int64  `json:"roomId"`
	RoomName      string `json:"roomName"`
	Capacity      int    `json:"capacity"`
	Enrolled      int    `json:"enrolled"`
}

// SurveillanceLoad is the number of sessions a professor supervises.
type SurveillanceLoad struct {
	ProfessorID   int64  `json:"professorId"`
	ProfessorName string `json:"professorName"`
	Email         string `json:"email"`
	SessionCount  int    `json:"sessionCount"`
}

// DepartmentConflict counts overlapping session pairs attributed to a department.
type DepartmentConflict struct {
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	Conflicts      int    `json:"conflicts"`
}

// ProgramConflict counts overlapping session pairs attributed to a program.
type ProgramConflict struct {
	ProgramID   int64  `json:"programId"`
	ProgramName string `json:"programName"`
	Conflicts   int    `json:"conflicts"`
}

// EnrollmentCounts returns the number of distinct students per module.
func EnrollmentCounts(enrollments []models.Enrollment) map[int64]int {
	counts := make(map[int64]int)
	for moduleID, students := range StudentsByModule(enrollments) {
		counts[moduleID] = len(students)
	}
	return counts
}

// StudentsByModule returns the distinct enrolled students of every module, ascending by id.
func StudentsByModule(enrollments []models.Enrollment) map[int64][]int64 {
	seen := make(map[models.Enrollment]struct{}, len(enrollments))
	out := make(map[int64][]int64)
	for _, e := range enrollments {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out[e.ModuleID] = append(out[e.ModuleID], e.StudentID)
	}
	for _, students := range out {
		sort.Slice(students, func(i, j int) bool { return students[i] < students[j] })
	}
	return out
}

// StudentDailyLoad counts, for every student and day, the sessions of the modules they are enrolled in.
func StudentDailyLoad(sessions []models.ExamSession, enrollments []models.Enrollment) map[DayKey]int {
	students := StudentsByModule(enrollments)
	load := make(map[DayKey]int)
	for _, s := range sessions {
		day := s.Day()
		for _, studentID := range students[s.ModuleID] {
			load[DayKey{ID: studentID, Day: day}]++
		}
	}
	return load
}

// StudentsOverDailyLimit lists the (student, day) pairs with more than one exam.
func StudentsOverDailyLimit(sessions []models.ExamSession, enrollments []models.Enrollment) []StudentDayLoad {
	out := []StudentDayLoad{}
	for key, count := range StudentDailyLoad(sessions, enrollments) {
		if count > 1 {
			out = append(out, StudentDayLoad{StudentID: key.ID, Day: key.Day, ExamCount: count})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// ProfessorDailyLoad counts the sessions every professor supervises per day.
func ProfessorDailyLoad(sessions []models.ExamSession) map[DayKey]int {
	load := make(map[DayKey]int)
	for _, s := range sessions {
		load[DayKey{ID: s.ProfessorID, Day: s.Day()}]++
	}
	return load
}

// ProfessorsOverDailyLimit lists the (professor, day) pairs with more than limit sessions.
func ProfessorsOverDailyLimit(sessions []models.ExamSession, professors []models.Professor, limit int) ([]ProfessorDayLoad, error) {
	byID := indexProfessors(professors)
	out := []ProfessorDayLoad{}
	for key, count := range ProfessorDailyLoad(sessions) {
		if count <= limit {
			continue
		}
		p, ok := byID[key.ID]
		if !ok {
			return nil, fmt.Errorf("%w: professor %d", apperrors.ErrMissingReference, key.ID)
		}
		out = append(out, ProfessorDayLoad{ProfessorID: p.ID, ProfessorName: p.Name, Day: key.Day, SessionCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProfessorID != out[j].ProfessorID {
			return out[i].ProfessorID < out[j].ProfessorID
		}
		return out[i].Day < out[j].Day
	})
	return out, nil
}

// RoomCapacityViolations compares each session's module enrollment against its room capacity.
// A count equal to the capacity is not a violation.
func RoomCapacityViolations(sessions []models.ExamSession, enrollmentCounts map[int64]int, rooms []models.Room) ([]CapacityViolation, error) {
	byID := make(map[int64]models.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	out := []CapacityViolation{}
	for _, s := range sessions {
		room, ok := byID[s.RoomID]
		if !ok {
			return nil, fmt.Errorf("%w: room %d of session %d", apperrors.ErrMissingReference, s.RoomID, s.ID)
		}
		enrolled := enrollmentCounts[s.ModuleID]
		if enrolled > room.Capacity {
			out = append(out, CapacityViolation{
				ExamSessionID: s.ID,
				ModuleID:      s.ModuleID,
				RoomID:        room.ID,
				RoomName:      room.Name,
				Capacity:      room.Capacity,
				Enrolled:      enrolled,
			})
		}
	}
	return out, nil
}

// Overlaps reports whether two sessions share a calendar day and their
// half-open [start, start+duration) intervals intersect.
func Overlaps(a, b models.ExamSession) bool {
	if a.Day() != b.Day() {
		return false
	}
	return a.StartAt.Before(b.EndAt()) && b.StartAt.Before(a.EndAt())
}

// conflicting reports whether two sessions overlap and share a room or a professor.
func conflicting(a, b models.ExamSession) bool {
	return (a.RoomID == b.RoomID || a.ProfessorID == b.ProfessorID) && Overlaps(a, b)
}

// forEachConflict calls fn(first, second) for every unordered conflicting pair, enumerating
// sessions in ascending id order (stable for unsaved sessions).
func forEachConflict(sessions []models.ExamSession, fn func(first, second models.ExamSession) error) error {
	ordered := make([]models.ExamSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if !conflicting(ordered[i], ordered[j]) {
				continue
			}
			if err := fn(ordered[i], ordered[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DepartmentConflicts attributes each conflicting pair to the department of the first
// session's professor.
func DepartmentConflicts(sessions []models.ExamSession, professors []models.Professor, departments []models.Department) ([]DepartmentConflict, error) {
	profs := indexProfessors(professors)
	depts := make(map[int64]models.Department, len(departments))
	for _, d := range departments {
		depts[d.ID] = d
	}

	counts := make(map[int64]int)
	err := forEachConflict(sessions, func(first, _ models.ExamSession) error {
		p, ok := profs[first.ProfessorID]
		if !ok {
			return fmt.Errorf("%w: professor %d of session %d", apperrors.ErrMissingReference, first.ProfessorID, first.ID)
		}
		if _, ok := depts[p.DepartmentID]; !ok {
			return fmt.Errorf("%w: department %d", apperrors.ErrMissingReference, p.DepartmentID)
		}
		counts[p.DepartmentID]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]DepartmentConflict, 0, len(counts))
	for id, n := range counts {
		out = append(out, DepartmentConflict{DepartmentID: id, DepartmentName: depts[id].Name, Conflicts: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartmentName < out[j].DepartmentName })
	return out, nil
}

// ProgramConflicts counts the conflicting pairs that involve a session of the department.
// A pair goes to the program of its first session when that program belongs to the
// department, otherwise to the program of its second session. Pairs with no session in
// the department are ignored, so sessions of other departments must be passed in for
// cross-department collisions to show up.
func ProgramConflicts(departmentID int64, sessions []models.ExamSession, modules []models.Module, programs []models.Program) ([]ProgramConflict, error) {
	mods := make(map[int64]models.Module, len(modules))
	for _, m := range modules {
		mods[m.ID] = m
	}
	progs := make(map[int64]models.Program, len(programs))
	for _, p := range programs {
		progs[p.ID] = p
	}
	programOf := func(s models.ExamSession) (models.Program, error) {
		m, ok := mods[s.ModuleID]
		if !ok {
			return models.Program{}, fmt.Errorf("%w: module %d", apperrors.ErrMissingReference, s.ModuleID)
		}
		p, ok := progs[m.ProgramID]
		if !ok {
			return models.Program{}, fmt.Errorf("%w: program %d", apperrors.ErrMissingReference, m.ProgramID)
		}
		return p, nil
	}

	counts := make(map[int64]int)
	err := forEachConflict(sessions, func(first, second models.ExamSession) error {
		for _, s := range []models.ExamSession{first, second} {
			p, err := programOf(s)
			if err != nil {
				return err
			}
			if p.DepartmentID == departmentID {
				counts[p.ID]++
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]ProgramConflict, 0, len(counts))
	for id, n := range counts {
		out = append(out, ProgramConflict{ProgramID: id, ProgramName: progs[id].Name, Conflicts: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Conflicts != out[j].Conflicts {
			return out[i].Conflicts > out[j].Conflicts
		}
		return out[i].ProgramID < out[j].ProgramID
	})
	return out, nil
}

// SurveillanceDistribution counts supervised sessions for every professor, including those with none.
func SurveillanceDistribution(sessions []models.ExamSession, professors []models.Professor) []SurveillanceLoad {
	counts := make(map[int64]int)
	for _, s := range sessions {
		counts[s.ProfessorID]++
	}

	out := make([]SurveillanceLoad, 0, len(professors))
	for _, p := range professors {
		out = append(out, SurveillanceLoad{
			ProfessorID:   p.ID,
			ProfessorName: p.Name,
			Email:         p.Email,
			SessionCount:  counts[p.ID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProfessorID < out[j].ProfessorID })
	return out
}

// FilterSessions keeps the sessions whose start day falls inside the window.
func FilterSessions(sessions []models.ExamSession, window Window) []models.ExamSession {
	out := make([]models.ExamSession, 0, len(sessions))
	for _, s := range sessions {
		if window.Contains(s.StartAt) {
			out = append(out, s)
		}
	}
	return out
}

func indexProfessors(professors []models.Professor) map[int64]models.Professor {
	byID := make(map[int64]models.Professor, len(professors))
	for _, p := range professors {
		byID[p.ID] = p
	}
	return byID
}
