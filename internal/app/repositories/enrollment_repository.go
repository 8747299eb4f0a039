package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
)

// EnrollmentRepository reads student registrations (inscriptions)
type EnrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// GetAll retrieves every enrollment
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]models.Enrollment, error) {
	q := psql.Select("student_id", "module_id").From("enrollments").OrderBy("module_id", "student_id")
	return selectAll(ctx, r.db, "enrollments", q, func(row pgx.Row) (models.Enrollment, error) {
		var e models.Enrollment
		err := row.Scan(&e.StudentID, &e.ModuleID)
		return e, err
	})
}
