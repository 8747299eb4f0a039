package timetable

import (
	"math"
	"sort"

	"github.com/yigit/examtable/internal/app/models"
)

// KPI defaults
const (
	DefaultKPITrailingDays  = 30
	DefaultKPITopProfessors = 10
)

// ProfessorMinutes is the cumulative supervised time of a professor inside a window.
type ProfessorMinutes struct {
	ProfessorID   int64  `json:"professorId"`
	ProfessorName string `json:"professorName"`
	Email         string `json:"email"`
	Minutes       int    `json:"minutes"`
}

// KPIs are the derived utilization metrics shown on the vice-dean dashboard.
type KPIs struct {
	Window             Window             `json:"window"`
	WindowDays         int                `json:"windowDays"`
	TotalRooms         int                `json:"totalRooms"`
	SessionCount       int                `json:"sessionCount"`
	RoomUtilizationPct float64            `json:"roomUtilizationPct"`
	TopProfessors      []ProfessorMinutes `json:"topProfessorsByMinutes"`
	TotalSessions      int                `json:"totalSessions"`
	ConflictRatioPct   float64            `json:"conflictRatioPct"`
	ConflictsSummary   map[string]int     `json:"conflictsSummary"`
}

// KPIInput carries the raw data and the detection report the metrics are derived from.
type KPIInput struct {
	Rooms      []models.Room
	Sessions   []models.ExamSession // every known session
	Professors []models.Professor
	Conflicts  ConflictReport
}

// ComputeKPIs derives the metrics over a bounded window.
func ComputeKPIs(in KPIInput, window Window, topN int) KPIs {
	if topN <= 0 {
		topN = DefaultKPITopProfessors
	}
	windowed := FilterSessions(in.Sessions, window)
	days := window.DayCount()

	k := KPIs{
		Window:        window,
		WindowDays:    days,
		TotalRooms:    len(in.Rooms),
		SessionCount:  len(windowed),
		TotalSessions: len(in.Sessions),
		TopProfessors: TopProfessorsByMinutes(windowed, in.Professors, topN),
		ConflictsSummary: map[string]int{
			CategoryStudentsMultipleExams: len(in.Conflicts.StudentsMultipleExamsPerDay),
			CategoryProfessorsOverLimit:   len(in.Conflicts.ProfessorsOverDailyLimit),
			CategoryRoomsOverCapacity:     len(in.Conflicts.RoomsOverCapacity),
		},
	}

	if slots := k.TotalRooms * days; slots > 0 {
		k.RoomUtilizationPct = round1(float64(k.SessionCount) / float64(slots) * 100)
	}
	if k.TotalSessions > 0 {
		k.ConflictRatioPct = round1(float64(len(in.Conflicts.RoomsOverCapacity)) / float64(k.TotalSessions) * 100)
	}
	return k
}

// TopProfessorsByMinutes ranks professors by supervised minutes, descending. Professors
// without sessions take part in the ranking with zero minutes.
func TopProfessorsByMinutes(sessions []models.ExamSession, professors []models.Professor, limit int) []ProfessorMinutes {
	minutes := make(map[int64]int)
	for _, s := range sessions {
		minutes[s.ProfessorID] += s.DurationMinutes
	}

	out := make([]ProfessorMinutes, 0, len(professors))
	for _, p := range professors {
		out = append(out, ProfessorMinutes{ProfessorID: p.ID, ProfessorName: p.Name, Email: p.Email, Minutes: minutes[p.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].ProfessorID < out[j].ProfessorID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
