package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/timetable"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func at(t *testing.T, day string, hour int) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, day)
	require.NoError(t, err)
	return d.Add(time.Duration(hour) * time.Hour)
}

// institution has two departments, three modules with disjoint students and a single room,
// so a three-day window holds exactly one sitting per day.
func institution() *world {
	w := newWorld()
	w.departments = []models.Department{{ID: 1, Name: "Informatique"}, {ID: 2, Name: "Mathématiques"}}
	w.programs = []models.Program{
		{ID: 1, Name: "L3 Informatique", DepartmentID: 1},
		{ID: 2, Name: "L3 Mathématiques", DepartmentID: 2},
	}
	w.modules = []models.Module{
		{ID: 1, Name: "Algorithmique", ProgramID: 1},
		{ID: 2, Name: "Réseaux", ProgramID: 1},
		{ID: 3, Name: "Topologie", ProgramID: 2},
	}
	for _, e := range [][2]int64{{1, 1}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 3}} {
		w.enrollments = append(w.enrollments, models.Enrollment{StudentID: e[0], ModuleID: e[1]})
	}
	w.rooms = []models.Room{{ID: 1, Name: "A101", Capacity: 30}}
	w.professors = []models.Professor{
		{ID: 1, Name: "Ada", Email: "ada@univ.test", DepartmentID: 1},
		{ID: 2, Name: "Emmy", Email: "emmy@univ.test", DepartmentID: 2},
	}
	return w
}

func newTestTimetableService(w *world, mutate ...func(*TimetableSettings)) TimetableService {
	settings := DefaultTimetableSettings()
	settings.OptimizeDelay = 0
	for _, m := range mutate {
		m(&settings)
	}
	return NewTimetableService(w.stores(), settings, zerolog.Nop())
}

func assertNoViolations(t *testing.T, counts map[string]int) {
	t.Helper()
	for _, c := range []string{
		timetable.CategoryStudentsMultipleExams,
		timetable.CategoryProfessorsOverLimit,
		timetable.CategoryRoomsOverCapacity,
		timetable.CategoryDepartmentConflicts,
		timetable.CategoryUnscheduledModules,
	} {
		assert.Zero(t, counts[c], c)
	}
}

func TestGenerateTimetable_PersistsAndAudits(t *testing.T) {
	w := institution()
	svc := newTestTimetableService(w)

	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-08", true)

	require.NoError(t, err)
	report := result.Report
	assert.True(t, report.Persisted)
	assert.Equal(t, 3, report.ModulesAttempted)
	assert.Equal(t, 3, report.CreatedSlots)
	assert.Equal(t, 3, report.InsertedCount)
	assert.Empty(t, report.InsertError)
	assert.Empty(t, report.Warnings)
	assert.NotEmpty(t, report.RunID.String())
	assertNoViolations(t, report.ConflictsPost)

	require.Len(t, w.sessions, 3)
	require.Len(t, report.Preview, 3)
	for _, p := range report.Preview {
		assert.NotZero(t, p.ID)
		assert.Equal(t, 9, p.StartAt.Hour())
	}
	assert.Equal(t, int64(1), report.Preview[0].ModuleID)
	assert.Equal(t, "2025-01-06", report.Preview[0].Day())
	assert.Equal(t, int64(2), report.Preview[2].ProfessorID)
	assert.Len(t, result.Conflicts.SurveillanceByProfessor, 2)
}

func TestGenerateTimetable_PreviewIsTruncated(t *testing.T) {
	w := institution()
	svc := newTestTimetableService(w, func(s *TimetableSettings) { s.PreviewSize = 2 })

	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-08", false)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Report.CreatedSlots)
	assert.Len(t, result.Report.Preview, 2)
	assert.False(t, result.Report.Persisted)
	assert.Zero(t, result.Report.InsertedCount)
	assert.Empty(t, w.sessions)
}

func TestGenerateTimetable_InsertFailureKeepsProposals(t *testing.T) {
	w := institution()
	w.failures["insert"] = errors.New("connection reset by peer")
	svc := newTestTimetableService(w)

	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-08", true)

	require.NoError(t, err)
	assert.False(t, result.Report.Persisted)
	assert.Equal(t, "connection reset by peer", result.Report.InsertError)
	assert.Equal(t, "connection reset by peer", result.Conflicts.InsertError)
	assert.Equal(t, 3, result.Report.CreatedSlots)
	assert.Len(t, result.Report.Preview, 3)
	assertNoViolations(t, result.Report.ConflictsPost)
	assert.Empty(t, w.sessions)
}

func TestGenerateTimetable_InsertForeignKeyViolationWarns(t *testing.T) {
	w := institution()
	w.failures["insert"] = fmt.Errorf("failed to insert exam sessions: %w",
		&pgconn.PgError{Code: "23503", ConstraintName: "exam_sessions_room_id_fkey"})
	svc := newTestTimetableService(w)

	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-08", true)

	require.NoError(t, err)
	assert.False(t, result.Report.Persisted)
	assert.Equal(t, []string{"a referenced module, room or professor no longer exists"}, result.Report.Warnings)
}

func TestGenerateTimetable_UnplaceableModulesAreReported(t *testing.T) {
	w := institution()
	svc := newTestTimetableService(w)

	// One day, one room: only the largest module fits.
	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-06", true)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.CreatedSlots)
	assert.Equal(t, 2, result.Report.ConflictsPost[timetable.CategoryUnscheduledModules])
	require.Len(t, result.Conflicts.UnscheduledModules, 2)
	assert.Equal(t, int64(2), result.Conflicts.UnscheduledModules[0].ModuleID)
}

func TestGenerateTimetable_MissingRoomsDegrades(t *testing.T) {
	w := institution()
	w.failures["rooms"] = errors.New("relation \"rooms\" does not exist")
	svc := newTestTimetableService(w)

	result, err := svc.GenerateTimetable(context.Background(), "2025-01-06", "2025-01-08", true)

	require.NoError(t, err)
	assert.Zero(t, result.Report.CreatedSlots)
	assert.Len(t, result.Conflicts.UnscheduledModules, 3)
	require.Len(t, result.Report.Warnings, 1)
	assert.Contains(t, result.Report.Warnings[0], "rooms unavailable")
	assert.Contains(t, result.Conflicts.Degraded, timetable.CategoryRoomsOverCapacity)
}

func TestGenerateTimetable_InvalidWindow(t *testing.T) {
	svc := newTestTimetableService(institution())

	tests := []struct {
		name       string
		start, end string
	}{
		{"start after end", "2025-01-10", "2025-01-09"},
		{"missing end", "2025-01-10", ""},
		{"malformed start", "10/01/2025", "2025-01-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GenerateTimetable(context.Background(), tt.start, tt.end, true)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
		})
	}
}

func seededSessions(t *testing.T, w *world) {
	w.sessions = []models.ExamSession{
		{ID: 1, ModuleID: 1, ProfessorID: 1, RoomID: 1, StartAt: at(t, "2025-01-06", 9), DurationMinutes: 120},
		{ID: 2, ModuleID: 2, ProfessorID: 1, RoomID: 1, StartAt: at(t, "2025-01-06", 10), DurationMinutes: 60},
		{ID: 3, ModuleID: 3, ProfessorID: 2, RoomID: 1, StartAt: at(t, "2025-01-08", 9), DurationMinutes: 90},
		{ID: 4, ModuleID: 3, ProfessorID: 2, RoomID: 1, StartAt: at(t, "2024-12-20", 9), DurationMinutes: 90},
	}
	w.nextID = 5
}

func TestDetectConflicts_WindowAndFullSet(t *testing.T) {
	w := institution()
	seededSessions(t, w)
	svc := newTestTimetableService(w)

	windowed, err := svc.DetectConflicts(context.Background(), "2025-01-06", "2025-01-06")
	require.NoError(t, err)
	require.Len(t, windowed.ConflictsByDepartment, 1)
	assert.Equal(t, timetable.DepartmentConflict{DepartmentID: 1, DepartmentName: "Informatique", Conflicts: 1}, windowed.ConflictsByDepartment[0])
	assert.Empty(t, windowed.Degraded)

	all, err := svc.DetectConflicts(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all.ConflictsByDepartment, 1)
	var emmy int
	for _, s := range all.SurveillanceByProfessor {
		if s.ProfessorID == 2 {
			emmy = s.SessionCount
		}
	}
	assert.Equal(t, 2, emmy)
}

func TestDetectConflicts_SessionsUnavailable(t *testing.T) {
	w := institution()
	seededSessions(t, w)
	w.failures["exam_sessions"] = errors.New("timeout")
	svc := newTestTimetableService(w)

	report, err := svc.DetectConflicts(context.Background(), "", "")

	require.NoError(t, err)
	assert.Len(t, report.Degraded, 5)
	assert.Empty(t, report.ConflictsByDepartment)
	assert.NotNil(t, report.SurveillanceByProfessor)
}

func TestDetectConflicts_RejectsReversedWindow(t *testing.T) {
	svc := newTestTimetableService(institution())

	_, err := svc.DetectConflicts(context.Background(), "2025-02-01", "2025-01-01")

	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestComputeKPIs_Windows(t *testing.T) {
	w := institution()
	seededSessions(t, w)
	now := func() time.Time { return time.Date(2025, 1, 31, 15, 0, 0, 0, time.UTC) }
	svc := newTestTimetableService(w, func(s *TimetableSettings) { s.Now = now })

	t.Run("trailing default", func(t *testing.T) {
		kpis, err := svc.ComputeKPIs(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, "[2025-01-02, 2025-01-31]", kpis.Window.String())
		assert.Equal(t, 30, kpis.WindowDays)
		assert.Equal(t, 3, kpis.SessionCount)
		assert.Equal(t, 4, kpis.TotalSessions)
		assert.Equal(t, 10.0, kpis.RoomUtilizationPct)
		assert.Zero(t, kpis.ConflictRatioPct)
		require.Len(t, kpis.TopProfessors, 2)
		assert.Equal(t, timetable.ProfessorMinutes{ProfessorID: 1, ProfessorName: "Ada", Email: "ada@univ.test", Minutes: 180}, kpis.TopProfessors[0])
	})

	t.Run("explicit window", func(t *testing.T) {
		kpis, err := svc.ComputeKPIs(context.Background(), "2025-01-06", "2025-01-06")
		require.NoError(t, err)
		assert.Equal(t, 1, kpis.WindowDays)
		assert.Equal(t, 2, kpis.SessionCount)
		assert.Equal(t, 200.0, kpis.RoomUtilizationPct)
	})

	t.Run("end only", func(t *testing.T) {
		kpis, err := svc.ComputeKPIs(context.Background(), "", "2024-12-31")
		require.NoError(t, err)
		assert.Equal(t, "[2024-12-02, 2024-12-31]", kpis.Window.String())
		assert.Equal(t, 1, kpis.SessionCount)
	})

	t.Run("start only", func(t *testing.T) {
		kpis, err := svc.ComputeKPIs(context.Background(), "2025-01-07", "")
		require.NoError(t, err)
		assert.Equal(t, "[2025-01-07, 2025-01-31]", kpis.Window.String())
		assert.Equal(t, 1, kpis.SessionCount)
	})

	t.Run("start in the future", func(t *testing.T) {
		_, err := svc.ComputeKPIs(context.Background(), "2025-03-01", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	})
}

func TestComputeKPIs_ConflictRatio(t *testing.T) {
	w := institution()
	seededSessions(t, w)
	w.rooms[0].Capacity = 2 // module 1 has three students
	svc := newTestTimetableService(w)

	kpis, err := svc.ComputeKPIs(context.Background(), "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, 25.0, kpis.ConflictRatioPct)
	assert.Equal(t, 1, kpis.ConflictsSummary[timetable.CategoryRoomsOverCapacity])
}

func TestOptimizeResources_Placeholder(t *testing.T) {
	w := institution()
	seededSessions(t, w)
	svc := newTestTimetableService(w)

	result, err := svc.OptimizeResources(context.Background(), "", "")

	require.NoError(t, err)
	assert.True(t, result.Report.Placeholder)
	assert.Equal(t, 12, result.Report.Improvements.EstimatedConflictReduction)
	assert.Equal(t, 5, result.Report.Improvements.RoomReassignments)
	assert.NotEmpty(t, result.Report.Notes)
	assert.Len(t, result.Conflicts.ConflictsByDepartment, 1)
	assert.Len(t, w.sessions, 4)
}

func TestOptimizeResources_Cancelled(t *testing.T) {
	svc := newTestTimetableService(institution(), func(s *TimetableSettings) { s.OptimizeDelay = time.Hour })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.OptimizeResources(ctx, "", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
