package timetable

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/models"
)

func detectorFixture(t *testing.T) Dataset {
	t.Helper()
	var enrollments []models.Enrollment
	enrollments = append(enrollments, enroll(10, studentRange(1, 12)...)...)
	enrollments = append(enrollments, enroll(20, 1, 2)...)
	enrollments = append(enrollments, enroll(30, 3)...)

	return Dataset{
		Sessions: []models.ExamSession{
			sitting(1, 10, 1, 1, at(t, "2025-01-10", 9, 0), 120),
			sitting(2, 20, 1, 1, at(t, "2025-01-10", 10, 0), 120),
			sitting(3, 30, 2, 2, at(t, "2025-03-01", 9, 0), 120),
		},
		Enrollments: enrollments,
		Rooms:       []models.Room{{ID: 1, Name: "A101", Capacity: 10}, {ID: 2, Name: "B201", Capacity: 30}},
		Professors: []models.Professor{
			{ID: 1, Name: "Ada", DepartmentID: 1},
			{ID: 2, Name: "Blaise", DepartmentID: 1},
			{ID: 3, Name: "Carl", DepartmentID: 1},
		},
		Departments: []models.Department{{ID: 1, Name: "Informatique"}},
	}
}

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(zerolog.Nop(), 3)
	data := detectorFixture(t)

	report := d.Detect(data, mustWindow(t, "2025-01-01", "2025-01-31"))

	assert.Equal(t, []StudentDayLoad{
		{StudentID: 1, Day: "2025-01-10", ExamCount: 2},
		{StudentID: 2, Day: "2025-01-10", ExamCount: 2},
	}, report.StudentsMultipleExamsPerDay)
	assert.Empty(t, report.ProfessorsOverDailyLimit)
	require.Len(t, report.RoomsOverCapacity, 1)
	assert.Equal(t, int64(1), report.RoomsOverCapacity[0].ExamSessionID)
	assert.Equal(t, 12, report.RoomsOverCapacity[0].Enrolled)
	assert.Equal(t, []DepartmentConflict{{DepartmentID: 1, DepartmentName: "Informatique", Conflicts: 1}}, report.ConflictsByDepartment)
	assert.Empty(t, report.Degraded)

	t.Run("surveillance ignores the window", func(t *testing.T) {
		assert.Equal(t, []SurveillanceLoad{
			{ProfessorID: 1, ProfessorName: "Ada", SessionCount: 2},
			{ProfessorID: 2, ProfessorName: "Blaise", SessionCount: 1},
			{ProfessorID: 3, ProfessorName: "Carl", SessionCount: 0},
		}, report.SurveillanceByProfessor)
	})

	t.Run("no window covers every session", func(t *testing.T) {
		all := d.Detect(data, Window{})
		assert.Len(t, all.StudentsMultipleExamsPerDay, 2)
		assert.Len(t, all.RoomsOverCapacity, 1)
	})

	t.Run("repeated runs give the same report", func(t *testing.T) {
		again := d.Detect(data, mustWindow(t, "2025-01-01", "2025-01-31"))
		assert.Equal(t, report, again)
	})
}

func TestDetector_EmptyDataset(t *testing.T) {
	report := NewDetector(zerolog.Nop(), 3).Detect(Dataset{}, mustWindow(t, "2025-01-01", "2025-01-31"))

	assert.NotNil(t, report.StudentsMultipleExamsPerDay)
	assert.NotNil(t, report.ProfessorsOverDailyLimit)
	assert.NotNil(t, report.RoomsOverCapacity)
	assert.NotNil(t, report.SurveillanceByProfessor)
	assert.NotNil(t, report.ConflictsByDepartment)
	assert.NotNil(t, report.UnscheduledModules)
	assert.Empty(t, report.Degraded)
}

func TestDetector_Degradation(t *testing.T) {
	window := mustWindow(t, "2025-01-01", "2025-01-31")

	t.Run("missing room only empties the capacity category", func(t *testing.T) {
		data := detectorFixture(t)
		data.Rooms = data.Rooms[1:]

		var degraded []string
		d := NewDetector(zerolog.Nop(), 3)
		d.OnDegraded(func(category string) { degraded = append(degraded, category) })

		report := d.Detect(data, window)

		assert.Equal(t, []string{CategoryRoomsOverCapacity}, report.Degraded)
		assert.Equal(t, []string{CategoryRoomsOverCapacity}, degraded)
		assert.NotNil(t, report.RoomsOverCapacity)
		assert.Empty(t, report.RoomsOverCapacity)
		assert.Len(t, report.StudentsMultipleExamsPerDay, 2)
		assert.Len(t, report.ConflictsByDepartment, 1)
	})

	t.Run("unreadable professors degrade dependent categories", func(t *testing.T) {
		data := detectorFixture(t)
		data.LoadErrors = map[Collection]error{CollectionProfessors: errors.New("connection reset")}

		report := NewDetector(zerolog.Nop(), 3).Detect(data, window)

		assert.ElementsMatch(t, []string{
			CategoryProfessorsOverLimit,
			CategorySurveillance,
			CategoryDepartmentConflicts,
		}, report.Degraded)
		assert.Empty(t, report.SurveillanceByProfessor)
		assert.Len(t, report.StudentsMultipleExamsPerDay, 2)
		assert.Len(t, report.RoomsOverCapacity, 1)
	})
}

func TestRunCategory_RecoversPanic(t *testing.T) {
	c := runCategory("boom", func() ([]int, error) {
		var m map[string]int
		m["x"] = 1
		return nil, nil
	})

	assert.True(t, c.Degraded())
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestConflictReport_Counts(t *testing.T) {
	r := ConflictReport{
		StudentsMultipleExamsPerDay: []StudentDayLoad{{}, {}},
		RoomsOverCapacity:           []CapacityViolation{{}},
	}

	counts := r.Counts()

	assert.Equal(t, 2, counts[CategoryStudentsMultipleExams])
	assert.Equal(t, 1, counts[CategoryRoomsOverCapacity])
	assert.Equal(t, 0, counts[CategoryUnscheduledModules])
}
