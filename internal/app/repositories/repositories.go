package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/examtable/internal/pkg/logger"
)

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// psql builds Postgres flavoured statements
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository  *DepartmentRepository
	ProgramRepository     *ProgramRepository
	ModuleRepository      *ModuleRepository
	EnrollmentRepository  *EnrollmentRepository
	RoomRepository        *RoomRepository
	ProfessorRepository   *ProfessorRepository
	ExamSessionRepository *ExamSessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		DepartmentRepository:  NewDepartmentRepository(db),
		ProgramRepository:     NewProgramRepository(db),
		ModuleRepository:      NewModuleRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		RoomRepository:        NewRoomRepository(db),
		ProfessorRepository:   NewProfessorRepository(db),
		ExamSessionRepository: NewExamSessionRepository(db),
	}
}

// selectAll runs a built query and scans every row with scan. The result is never nil.
func selectAll[T any](ctx context.Context, db DBTX, what string, q squirrel.Sqlizer, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("collection", what).Msg("Select failed")
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}
	return out, nil
}
