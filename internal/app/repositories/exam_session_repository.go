package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
	"github.com/yigit/examtable/internal/pkg/logger"
)

// SessionFilter narrows session listings. Nil fields do not filter.
// From and To are inclusive calendar days.
type SessionFilter struct {
	From           *time.Time
	To             *time.Time
	ProfessorID    *int64
	StudentID      *int64
	DepartmentID   *int64
	Validated      *bool
	FinalValidated *bool
	NewestFirst    bool
	Limit          uint64
	Offset         uint64
}

// ExamSessionRepository handles database operations for exam sessions
type ExamSessionRepository struct {
	db DBTX
}

// NewExamSessionRepository creates a new exam session repository
func NewExamSessionRepository(db DBTX) *ExamSessionRepository {
	return &ExamSessionRepository{db: db}
}

var sessionColumns = []string{
	"es.id", "es.module_id", "es.professor_id", "es.room_id", "es.start_at", "es.duration_minutes",
	"es.validated", "es.final_validated",
	"m.name AS module_name", "r.name AS room_name", "p.name AS professor_name",
}

func scanSession(row pgx.Row) (models.ExamSession, error) {
	var s models.ExamSession
	err := row.Scan(
		&s.ID, &s.ModuleID, &s.ProfessorID, &s.RoomID, &s.StartAt, &s.DurationMinutes,
		&s.Validated, &s.FinalValidated,
		&s.ModuleName, &s.RoomName, &s.ProfessorName,
	)
	return s, err
}

func (f SessionFilter) where() squirrel.And {
	cond := squirrel.And{}
	if f.From != nil {
		cond = append(cond, squirrel.GtOrEq{"es.start_at": *f.From})
	}
	if f.To != nil {
		cond = append(cond, squirrel.Lt{"es.start_at": f.To.AddDate(0, 0, 1)})
	}
	if f.ProfessorID != nil {
		cond = append(cond, squirrel.Eq{"es.professor_id": *f.ProfessorID})
	}
	if f.StudentID != nil {
		cond = append(cond, squirrel.Expr("es.module_id IN (SELECT module_id FROM enrollments WHERE student_id = ?)", *f.StudentID))
	}
	if f.DepartmentID != nil {
		cond = append(cond, squirrel.Eq{"pr.department_id": *f.DepartmentID})
	}
	if f.Validated != nil {
		cond = append(cond, squirrel.Eq{"es.validated": *f.Validated})
	}
	if f.FinalValidated != nil {
		cond = append(cond, squirrel.Eq{"es.final_validated": *f.FinalValidated})
	}
	return cond
}

func sessionSelect(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...).
		From("exam_sessions es").
		Join("modules m ON m.id = es.module_id").
		Join("programs pr ON pr.id = m.program_id").
		Join("rooms r ON r.id = es.room_id").
		Join("professors p ON p.id = es.professor_id")
}

// List retrieves the sessions matching the filter ordered by start time.
func (r *ExamSessionRepository) List(ctx context.Context, f SessionFilter) ([]models.ExamSession, error) {
	order := "es.start_at ASC, es.id ASC"
	if f.NewestFirst {
		order = "es.start_at DESC, es.id DESC"
	}

	q := sessionSelect(sessionColumns...).Where(f.where()).OrderBy(order)
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	return selectAll(ctx, r.db, "exam_sessions", q, scanSession)
}

// Count returns the number of sessions matching the filter, ignoring paging.
func (r *ExamSessionRepository) Count(ctx context.Context, f SessionFilter) (int64, error) {
	query, args, err := sessionSelect("COUNT(*)").Where(f.where()).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count sessions query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count exam sessions: %w", err)
	}
	return total, nil
}

// GetByID retrieves one session with its module department.
func (r *ExamSessionRepository) GetByID(ctx context.Context, id int64) (*models.ExamSession, int64, error) {
	columns := append(append([]string(nil), sessionColumns...), "pr.department_id")
	query, args, err := sessionSelect(columns...).Where(squirrel.Eq{"es.id": id}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get session query: %w", err)
	}

	var s models.ExamSession
	var departmentID int64
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ModuleID, &s.ProfessorID, &s.RoomID, &s.StartAt, &s.DurationMinutes,
		&s.Validated, &s.FinalValidated,
		&s.ModuleName, &s.RoomName, &s.ProfessorName,
		&departmentID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, 0, apperrors.ErrExamSessionNotFound
		}
		return nil, 0, fmt.Errorf("error retrieving exam session: %w", err)
	}
	return &s, departmentID, nil
}

// insertedKey matches a returned row to the session it was inserted from.
type insertedKey struct {
	moduleID int64
	roomID   int64
	start    int64
}

func keyOf(moduleID, roomID int64, start time.Time) insertedKey {
	return insertedKey{moduleID: moduleID, roomID: roomID, start: start.UnixMicro()}
}

// InsertBatch writes all sessions in one multi-row statement inside a transaction.
// Either every session is stored, with its new id set on the returned copies, or none is.
// The copies keep the order of sessions; ids are matched on the returned row, not on
// the order Postgres returns them in.
func (r *ExamSessionRepository) InsertBatch(ctx context.Context, sessions []models.ExamSession) (out []models.ExamSession, err error) {
	if len(sessions) == 0 {
		return []models.ExamSession{}, nil
	}

	pending := make(map[insertedKey][]int, len(sessions))
	q := psql.Insert("exam_sessions").
		Columns("module_id", "professor_id", "room_id", "start_at", "duration_minutes", "validated", "final_validated")
	for i, s := range sessions {
		q = q.Values(s.ModuleID, s.ProfessorID, s.RoomID, s.StartAt, s.DurationMinutes, s.Validated, s.FinalValidated)
		k := keyOf(s.ModuleID, s.RoomID, s.StartAt)
		pending[k] = append(pending[k], i)
	}
	query, args, err := q.Suffix("RETURNING id, module_id, room_id, start_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert sessions query: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error().Err(rbErr).Msg("Failed to rollback session batch")
			}
		}
	}()

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert exam sessions: %w", err)
	}
	out = make([]models.ExamSession, len(sessions))
	stored := 0
	for rows.Next() {
		var (
			id, moduleID, roomID int64
			start                time.Time
		)
		if err = rows.Scan(&id, &moduleID, &roomID, &start); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan inserted session: %w", err)
		}
		k := keyOf(moduleID, roomID, start)
		idx := pending[k]
		if len(idx) == 0 {
			rows.Close()
			err = fmt.Errorf("insert returned an unexpected session for module %d in room %d", moduleID, roomID)
			return nil, err
		}
		pending[k] = idx[1:]
		out[idx[0]] = sessions[idx[0]]
		out[idx[0]].ID = id
		stored++
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to insert exam sessions: %w", err)
	}
	if stored != len(sessions) {
		err = fmt.Errorf("inserted %d of %d exam sessions", stored, len(sessions))
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit exam sessions: %w", err)
	}
	return out, nil
}

// SetValidated marks a session as validated by its department head.
func (r *ExamSessionRepository) SetValidated(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "validated")
}

// SetFinalValidated marks a session as validated by the vice-dean.
func (r *ExamSessionRepository) SetFinalValidated(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "final_validated")
}

func (r *ExamSessionRepository) setFlag(ctx context.Context, id int64, column string) error {
	query, args, err := psql.Update("exam_sessions").Set(column, true).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update session query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update exam session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamSessionNotFound
	}
	return nil
}
