package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db DBTX
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db DBTX) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func scanModule(row pgx.Row) (models.Module, error) {
	var m models.Module
	err := row.Scan(&m.ID, &m.Name, &m.ProgramID, &m.Credits)
	return m, err
}

// GetAll retrieves every module
func (r *ModuleRepository) GetAll(ctx context.Context) ([]models.Module, error) {
	q := psql.Select("id", "name", "program_id", "credits").From("modules").OrderBy("id")
	return selectAll(ctx, r.db, "modules", q, scanModule)
}

// GetByDepartment retrieves the modules of every program of a department
func (r *ModuleRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]models.Module, error) {
	q := psql.Select("m.id", "m.name", "m.program_id", "m.credits").
		From("modules m").
		Join("programs pr ON pr.id = m.program_id").
		Where(squirrel.Eq{"pr.department_id": departmentID}).
		OrderBy("m.id")
	return selectAll(ctx, r.db, "modules", q, scanModule)
}
