package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db DBTX
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db DBTX) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

var professorColumns = []string{"id", "name", "email", "department_id"}

func scanProfessor(row pgx.Row) (models.Professor, error) {
	var p models.Professor
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.DepartmentID)
	return p, err
}

// GetAll retrieves every professor
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]models.Professor, error) {
	q := psql.Select(professorColumns...).From("professors").OrderBy("id")
	return selectAll(ctx, r.db, "professors", q, scanProfessor)
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	query, args, err := psql.Select(professorColumns...).From("professors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build professor query: %w", err)
	}

	p, err := scanProfessor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return &p, nil
}
