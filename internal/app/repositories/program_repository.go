package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
)

// ProgramRepository handles database operations for programs (formations)
type ProgramRepository struct {
	db DBTX
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func scanProgram(row pgx.Row) (models.Program, error) {
	var p models.Program
	err := row.Scan(&p.ID, &p.Name, &p.DepartmentID)
	return p, err
}

// GetAll retrieves every program
func (r *ProgramRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	q := psql.Select("id", "name", "department_id").From("programs").OrderBy("id")
	return selectAll(ctx, r.db, "programs", q, scanProgram)
}

// GetByDepartment retrieves the programs of one department ordered by name
func (r *ProgramRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]models.Program, error) {
	q := psql.Select("id", "name", "department_id").
		From("programs").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("name")
	return selectAll(ctx, r.db, "programs", q, scanProgram)
}
