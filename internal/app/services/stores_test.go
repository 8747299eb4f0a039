package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
)

// lateSittings enrolls student 7 in two modules sat at 10:00 and 00:30 the next day, Paris time.
func lateSittings(w *world) {
	w.enrollments = append(w.enrollments,
		models.Enrollment{StudentID: 7, ModuleID: 1},
		models.Enrollment{StudentID: 7, ModuleID: 2},
	)
	w.sessions = []models.ExamSession{
		{ID: 1, ModuleID: 1, ProfessorID: 1, RoomID: 1, StartAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), DurationMinutes: 60},
		{ID: 2, ModuleID: 2, ProfessorID: 2, RoomID: 1, StartAt: time.Date(2025, 1, 10, 23, 30, 0, 0, time.UTC), DurationMinutes: 60},
	}
	w.nextID = 3
}

func TestStoresInLocation_StudentDays(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	w := institution()
	lateSittings(w)
	settings := DefaultTimetableSettings()
	settings.Generator.Location = paris
	svc := NewTimetableService(w.stores().InLocation(paris), settings, zerolog.Nop())

	report, err := svc.DetectConflicts(context.Background(), "", "")

	require.NoError(t, err)
	assert.Empty(t, report.StudentsMultipleExamsPerDay)
}

func TestStoresInLocation_Sessions(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	w := institution()
	lateSittings(w)
	stores := w.stores().InLocation(paris)

	t.Run("start times in the location", func(t *testing.T) {
		sessions, err := stores.Sessions.List(context.Background(), repositories.SessionFilter{})

		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "2025-01-10", sessions[0].Day())
		assert.Equal(t, "2025-01-11", sessions[1].Day())
		assert.Equal(t, paris, sessions[1].StartAt.Location())
	})

	t.Run("filter days are local days", func(t *testing.T) {
		day := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
		sessions, err := stores.Sessions.List(context.Background(), repositories.SessionFilter{From: &day, To: &day})

		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, int64(2), sessions[0].ID)

		n, err := stores.Sessions.Count(context.Background(), repositories.SessionFilter{From: &day, To: &day})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("single session", func(t *testing.T) {
		s, _, err := stores.Sessions.GetByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, 0, s.StartAt.Hour())
		assert.Equal(t, 30, s.StartAt.Minute())
	})

	t.Run("nil location keeps stores", func(t *testing.T) {
		plain := w.stores().InLocation(nil)

		sessions, err := plain.Sessions.List(context.Background(), repositories.SessionFilter{})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-10", sessions[1].Day())
	})
}
