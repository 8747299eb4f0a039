// Package seed loads a small demo institution into an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/db"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

// departmentNameKey is hit when another instance seeds the same empty database first.
const departmentNameKey = "departments_name_key"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DB is what the seed needs from the pool
type DB interface {
	db.Beginner
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type demoProgram struct {
	name       string
	department int // index into demoDepartments
	modules    []string
}

var (
	demoDepartments = []string{"Informatique", "Mathématiques"}

	demoPrograms = []demoProgram{
		{"L3 Informatique", 0, []string{"Algorithmique avancée", "Réseaux", "Bases de données"}},
		{"M1 Informatique", 0, []string{"Compilation", "Systèmes distribués"}},
		{"L3 Mathématiques", 1, []string{"Topologie", "Probabilités", "Analyse numérique"}},
	}

	demoRooms = []struct {
		name     string
		capacity int
		kind     string
		building string
	}{
		{"Amphi A", 200, "amphitheatre", "Bâtiment A"},
		{"B101", 40, "classroom", "Bâtiment B"},
		{"B102", 40, "classroom", "Bâtiment B"},
		{"C201", 25, "lab", "Bâtiment C"},
	}

	demoProfessors = []struct {
		name       string
		email      string
		department int
	}{
		{"Ada Lovelace", "ada.lovelace@univ.example", 0},
		{"Alan Turing", "alan.turing@univ.example", 0},
		{"Grace Hopper", "grace.hopper@univ.example", 0},
		{"Emmy Noether", "emmy.noether@univ.example", 1},
		{"Henri Poincaré", "henri.poincare@univ.example", 1},
	}
)

// studentsPerModule is the enrollment size of the n-th seeded module
func studentsPerModule(n int) int {
	return 20 + (n*17)%60
}

// CreateDemoData inserts the demo catalogue when no department exists yet.
func CreateDemoData(ctx context.Context, conn DB, lgr zerolog.Logger) error {
	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		return fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("departments", count).Msg("Catalogue already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo catalogue...")
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		departmentIDs := make([]int64, len(demoDepartments))
		for i, name := range demoDepartments {
			id, err := insertReturningID(ctx, tx, psql.Insert("departments").Columns("name").Values(name))
			if err != nil {
				return fmt.Errorf("failed to insert department %q: %w", name, err)
			}
			departmentIDs[i] = id
		}

		for _, r := range demoRooms {
			q := psql.Insert("rooms").Columns("name", "capacity", "type", "building").Values(r.name, r.capacity, r.kind, r.building)
			if _, err := insertReturningID(ctx, tx, q); err != nil {
				return fmt.Errorf("failed to insert room %q: %w", r.name, err)
			}
		}

		for _, p := range demoProfessors {
			q := psql.Insert("professors").Columns("name", "email", "department_id").Values(p.name, p.email, departmentIDs[p.department])
			if _, err := insertReturningID(ctx, tx, q); err != nil {
				return fmt.Errorf("failed to insert professor %q: %w", p.name, err)
			}
		}

		moduleN := 0
		nextStudent := int64(1000)
		for _, p := range demoPrograms {
			programID, err := insertReturningID(ctx, tx,
				psql.Insert("programs").Columns("name", "department_id").Values(p.name, departmentIDs[p.department]))
			if err != nil {
				return fmt.Errorf("failed to insert program %q: %w", p.name, err)
			}

			// Students of a program take every module of it
			cohort := studentsPerModule(moduleN)
			firstStudent := nextStudent
			nextStudent += int64(cohort)

			for _, name := range p.modules {
				moduleID, err := insertReturningID(ctx, tx,
					psql.Insert("modules").Columns("name", "program_id", "credits").Values(name, programID, 6))
				if err != nil {
					return fmt.Errorf("failed to insert module %q: %w", name, err)
				}

				enroll := psql.Insert("enrollments").Columns("student_id", "module_id")
				for s := firstStudent; s < firstStudent+int64(cohort); s++ {
					enroll = enroll.Values(s, moduleID)
				}
				query, args, err := enroll.ToSql()
				if err != nil {
					return fmt.Errorf("failed to build enrollments query: %w", err)
				}
				if _, err := tx.Exec(ctx, query, args...); err != nil {
					return fmt.Errorf("failed to enroll students in %q: %w", name, err)
				}
				moduleN++
			}
		}

		lgr.Info().
			Int("departments", len(demoDepartments)).
			Int("programs", len(demoPrograms)).
			Int("modules", moduleN).
			Int("rooms", len(demoRooms)).
			Int("professors", len(demoProfessors)).
			Msg("Demo catalogue created")
		return nil
	})
	if dberrors.IsDuplicateConstraintError(err, departmentNameKey) {
		lgr.Info().Msg("Demo catalogue created concurrently, skipping")
		return nil
	}
	return err
}

func insertReturningID(ctx context.Context, tx pgx.Tx, q squirrel.InsertBuilder) (int64, error) {
	query, args, err := q.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", apperrors.ErrResourceAlreadyExists, err)
		}
		return 0, err
	}
	return id, nil
}
