package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/models"
)

func at(t *testing.T, day string, hour, minute int) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, day)
	require.NoError(t, err)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func sitting(id, moduleID, professorID, roomID int64, start time.Time, minutes int) models.ExamSession {
	return models.ExamSession{
		ID:              id,
		ModuleID:        moduleID,
		ProfessorID:     professorID,
		RoomID:          roomID,
		StartAt:         start,
		DurationMinutes: minutes,
	}
}

func enroll(moduleID int64, students ...int64) []models.Enrollment {
	out := make([]models.Enrollment, 0, len(students))
	for _, s := range students {
		out = append(out, models.Enrollment{StudentID: s, ModuleID: moduleID})
	}
	return out
}

func studentRange(from, to int64) []int64 {
	var out []int64
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()
	w, err := ParseWindow(start, end)
	require.NoError(t, err)
	return w
}
