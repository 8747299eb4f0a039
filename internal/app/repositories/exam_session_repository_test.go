package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

var sessionRowColumns = []string{
	"id", "module_id", "professor_id", "room_id", "start_at", "duration_minutes",
	"validated", "final_validated", "module_name", "room_name", "professor_name",
}

func TestExamSessionRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewExamSessionRepository(mock)
	from := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)
	student := int64(42)

	mock.ExpectQuery(`SELECT (.+) FROM exam_sessions es JOIN modules m (.+) WHERE \(es.start_at >= \$1 AND es.start_at < \$2 AND es.module_id IN \(SELECT module_id FROM enrollments WHERE student_id = \$3\)\) ORDER BY es.start_at ASC, es.id ASC`).
		WithArgs(from, to.AddDate(0, 0, 1), student).
		WillReturnRows(pgxmock.NewRows(sessionRowColumns).
			AddRow(int64(1), int64(10), int64(3), int64(2), start, 120, false, false, "Algorithmique", "A101", "Ada"))

	sessions, err := repo.List(context.Background(), SessionFilter{From: &from, To: &to, StudentID: &student})

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Algorithmique", sessions[0].ModuleName)
	assert.Equal(t, start, sessions[0].StartAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamSessionRepository_ListEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewExamSessionRepository(mock)
	validated := false

	mock.ExpectQuery(`SELECT (.+) FROM exam_sessions es (.+) WHERE \(es.validated = \$1\) ORDER BY es.start_at DESC, es.id DESC LIMIT 20 OFFSET 40`).
		WithArgs(false).
		WillReturnRows(pgxmock.NewRows(sessionRowColumns))

	sessions, err := repo.List(context.Background(), SessionFilter{Validated: &validated, NewestFirst: true, Limit: 20, Offset: 40})

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamSessionRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewExamSessionRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM exam_sessions es`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(73)))

	total, err := repo.Count(context.Background(), SessionFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(73), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamSessionRepository_InsertBatch(t *testing.T) {
	start := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)
	batch := []models.ExamSession{
		{ModuleID: 10, ProfessorID: 3, RoomID: 2, StartAt: start, DurationMinutes: 120},
		{ModuleID: 11, ProfessorID: 4, RoomID: 1, StartAt: start, DurationMinutes: 90},
	}

	insertSQL := `INSERT INTO exam_sessions \(module_id,professor_id,room_id,start_at,duration_minutes,validated,final_validated\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\),\(\$8,\$9,\$10,\$11,\$12,\$13,\$14\) RETURNING id, module_id, room_id, start_at`
	returned := []string{"id", "module_id", "room_id", "start_at"}

	t.Run("assigns the returned ids", func(t *testing.T) {
		mock := newMock(t)
		repo := NewExamSessionRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WithArgs(int64(10), int64(3), int64(2), start, 120, false, false, int64(11), int64(4), int64(1), start, 90, false, false).
			WillReturnRows(pgxmock.NewRows(returned).AddRow(int64(501), int64(10), int64(2), start).AddRow(int64(502), int64(11), int64(1), start))
		mock.ExpectCommit()

		stored, err := repo.InsertBatch(context.Background(), batch)

		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, int64(501), stored[0].ID)
		assert.Equal(t, int64(502), stored[1].ID)
		assert.Equal(t, int64(11), stored[1].ModuleID)
		assert.Zero(t, batch[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches ids on the returned row", func(t *testing.T) {
		mock := newMock(t)
		repo := NewExamSessionRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnRows(pgxmock.NewRows(returned).
				AddRow(int64(502), int64(11), int64(1), start.In(time.FixedZone("CET", 3600))).
				AddRow(int64(501), int64(10), int64(2), start))
		mock.ExpectCommit()

		stored, err := repo.InsertBatch(context.Background(), batch)

		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, int64(10), stored[0].ModuleID)
		assert.Equal(t, int64(501), stored[0].ID)
		assert.Equal(t, int64(11), stored[1].ModuleID)
		assert.Equal(t, int64(502), stored[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unexpected row rolls back", func(t *testing.T) {
		mock := newMock(t)
		repo := NewExamSessionRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnRows(pgxmock.NewRows(returned).
				AddRow(int64(501), int64(10), int64(2), start).
				AddRow(int64(502), int64(99), int64(1), start))
		mock.ExpectRollback()

		stored, err := repo.InsertBatch(context.Background(), batch)

		assert.Nil(t, stored)
		assert.ErrorContains(t, err, "module 99")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on constraint failure", func(t *testing.T) {
		mock := newMock(t)
		repo := NewExamSessionRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO exam_sessions`).
			WillReturnError(&pgconn.PgError{Code: dberrors.ForeignKeyViolation, Message: "violates foreign key constraint"})
		mock.ExpectRollback()

		stored, err := repo.InsertBatch(context.Background(), batch)

		assert.Nil(t, stored)
		assert.True(t, dberrors.IsForeignKeyViolation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch does not touch the database", func(t *testing.T) {
		mock := newMock(t)
		repo := NewExamSessionRepository(mock)

		stored, err := repo.InsertBatch(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, stored)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExamSessionRepository_SetValidated(t *testing.T) {
	mock := newMock(t)
	repo := NewExamSessionRepository(mock)

	mock.ExpectExec(`UPDATE exam_sessions SET validated = \$1 WHERE id = \$2`).
		WithArgs(true, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE exam_sessions SET final_validated = \$1 WHERE id = \$2`).
		WithArgs(true, int64(8)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.SetValidated(context.Background(), 7))
	err := repo.SetFinalValidated(context.Background(), 8)

	assert.True(t, errors.Is(err, apperrors.ErrExamSessionNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamSessionRepository_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewExamSessionRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM exam_sessions es (.+) WHERE es.id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(append(append([]string(nil), sessionRowColumns...), "department_id")))

	_, _, err := repo.GetByID(context.Background(), 99)

	assert.True(t, errors.Is(err, apperrors.ErrExamSessionNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
