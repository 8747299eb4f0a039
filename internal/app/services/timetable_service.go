package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/timetable"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
	"github.com/yigit/examtable/internal/pkg/helpers"
	"github.com/yigit/examtable/internal/pkg/metrics"
)

// TimetableService generates timetables and audits them
type TimetableService interface {
	GenerateTimetable(ctx context.Context, startDate, endDate string, persist bool) (*dto.GenerationResult, error)
	DetectConflicts(ctx context.Context, startDate, endDate string) (*timetable.ConflictReport, error)
	ComputeKPIs(ctx context.Context, startDate, endDate string) (*timetable.KPIs, error)
	OptimizeResources(ctx context.Context, startDate, endDate string) (*dto.OptimizationResult, error)
}

// TimetableSettings tunes the timetable service
type TimetableSettings struct {
	Generator        timetable.Options
	PreviewSize      int
	KPITrailingDays  int
	KPITopProfessors int
	OptimizeDelay    time.Duration
	// Now defaults to time.Now; the KPI default window ends on its calendar day
	Now func() time.Time
}

// DefaultTimetableSettings mirrors the configuration defaults
func DefaultTimetableSettings() TimetableSettings {
	return TimetableSettings{
		Generator:        timetable.DefaultOptions(),
		PreviewSize:      50,
		KPITrailingDays:  timetable.DefaultKPITrailingDays,
		KPITopProfessors: timetable.DefaultKPITopProfessors,
		OptimizeDelay:    time.Second,
		Now:              time.Now,
	}
}

type timetableServiceImpl struct {
	stores    Stores
	settings  TimetableSettings
	generator *timetable.Generator
	detector  *timetable.Detector
	logger    zerolog.Logger
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(stores Stores, settings TimetableSettings, logger zerolog.Logger) TimetableService {
	if settings.Now == nil {
		settings.Now = time.Now
	}
	if settings.KPITrailingDays <= 0 {
		settings.KPITrailingDays = timetable.DefaultKPITrailingDays
	}

	generator := timetable.NewGenerator(settings.Generator, logger)
	settings.Generator = generator.Options()

	detector := timetable.NewDetector(logger, settings.Generator.MaxSessionsPerProfessorPerDay)
	detector.OnDegraded(metrics.CategoryDegraded)

	return &timetableServiceImpl{
		stores:    stores,
		settings:  settings,
		generator: generator,
		detector:  detector,
		logger:    logger,
	}
}

// GenerateTimetable places every module inside the window, optionally stores the proposal
// and audits the outcome. Only an invalid window is returned as an error; storage failures
// are reported inside the result.
func (s *timetableServiceImpl) GenerateTimetable(ctx context.Context, startDate, endDate string, persist bool) (*dto.GenerationResult, error) {
	window, err := timetable.RequireWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	runID := uuid.New()
	lg := s.logger.With().Str("runId", runID.String()).Str("window", window.String()).Logger()

	ld := newLoader(s.stores, lg)
	cat := ld.catalogue(ctx)

	plan, err := s.generator.Plan(cat, window)
	if err != nil {
		return nil, err
	}

	report := dto.GenerationReport{
		RunID:            runID,
		Message:          "Timetable generation completed",
		Window:           window,
		ModulesAttempted: plan.Attempts,
		CreatedSlots:     len(plan.Sessions),
	}

	if persist {
		stored, err := s.stores.Sessions.InsertBatch(ctx, plan.ExamSessions())
		if err != nil {
			lg.Error().Err(err).Int("sessions", len(plan.Sessions)).Msg("Failed to store generated sessions")
			report.InsertError = err.Error()
			report.Message = "Timetable generated but not stored"
			if dberrors.IsForeignKeyViolation(err) {
				report.Warnings = append(report.Warnings, "a referenced module, room or professor no longer exists")
			}
		} else {
			report.Persisted = true
			report.InsertedCount = len(stored)
			// stored follows the order of the batch it was given
			for i := range stored {
				plan.Sessions[i].ID = stored[i].ID
			}
		}
	}

	// Self-check over the stored state, or over the proposal alone when nothing was stored.
	var data timetable.Dataset
	if report.Persisted {
		data = newLoader(s.stores, lg).dataset(ctx)
	} else {
		departments := ld.departments(ctx)
		loadErrors := make(map[timetable.Collection]error, len(ld.errs))
		for c, err := range ld.errs {
			if c != timetable.CollectionSessions {
				loadErrors[c] = err
			}
		}
		data = timetable.Dataset{
			Sessions:    plan.ExamSessions(),
			Enrollments: cat.Enrollments,
			Rooms:       cat.Rooms,
			Professors:  cat.Professors,
			Departments: departments,
			LoadErrors:  loadErrors,
		}
	}

	conflicts := s.detector.Detect(data, window)
	conflicts.UnscheduledModules = plan.Unscheduled
	conflicts.InsertError = report.InsertError

	report.ConflictsPost = conflicts.Counts()
	report.Preview = preview(plan.Sessions, s.settings.PreviewSize)
	report.Warnings = append(ld.warnings(), report.Warnings...)
	elapsed := time.Since(started)
	report.DurationSeconds = helpers.Elapsed(started)

	metrics.ObserveGeneration(report.Persisted, report.CreatedSlots, len(plan.Unscheduled), elapsed)
	lg.Info().
		Bool("persist", persist).
		Bool("persisted", report.Persisted).
		Int("attempts", report.ModulesAttempted).
		Int("created", report.CreatedSlots).
		Int("unscheduled", len(plan.Unscheduled)).
		Dur("elapsed", elapsed).
		Msg("Timetable generation finished")

	return &dto.GenerationResult{Report: report, Conflicts: conflicts}, nil
}

func preview(sessions []timetable.ProposedSession, size int) []timetable.ProposedSession {
	if size >= 0 && len(sessions) > size {
		sessions = sessions[:size]
	}
	out := make([]timetable.ProposedSession, len(sessions))
	copy(out, sessions)
	return out
}

// DetectConflicts audits the stored sessions. Without dates every session is considered.
func (s *timetableServiceImpl) DetectConflicts(ctx context.Context, startDate, endDate string) (*timetable.ConflictReport, error) {
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	data := newLoader(s.stores, s.logger).dataset(ctx)
	report := s.detector.Detect(data, window)

	metrics.DetectionRuns.Inc()
	s.logger.Info().
		Str("window", window.String()).
		Interface("counts", report.Counts()).
		Strs("degraded", report.Degraded).
		Dur("elapsed", time.Since(started)).
		Msg("Conflict detection finished")

	return &report, nil
}

// ComputeKPIs derives the dashboard metrics. Missing bounds fall back to the trailing
// window ending today.
func (s *timetableServiceImpl) ComputeKPIs(ctx context.Context, startDate, endDate string) (*timetable.KPIs, error) {
	requested, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	window, err := s.kpiWindow(requested)
	if err != nil {
		return nil, err
	}

	data := newLoader(s.stores, s.logger).dataset(ctx)
	conflicts := s.detector.Detect(data, requested)
	metrics.DetectionRuns.Inc()

	kpis := timetable.ComputeKPIs(timetable.KPIInput{
		Rooms:      data.Rooms,
		Sessions:   data.Sessions,
		Professors: data.Professors,
		Conflicts:  conflicts,
	}, window, s.settings.KPITopProfessors)

	s.logger.Info().
		Str("window", window.String()).
		Float64("roomUtilizationPct", kpis.RoomUtilizationPct).
		Float64("conflictRatioPct", kpis.ConflictRatioPct).
		Msg("KPIs computed")

	return &kpis, nil
}

func (s *timetableServiceImpl) kpiWindow(requested timetable.Window) (timetable.Window, error) {
	if requested.Bounded() {
		return requested, nil
	}

	days := s.settings.KPITrailingDays
	trailing := timetable.TrailingWindow(s.settings.Now().In(s.settings.Generator.Location), days)
	switch {
	case requested.From == nil && requested.To == nil:
		return trailing, nil
	case requested.From == nil:
		return timetable.NewWindow(requested.To.AddDate(0, 0, -(days-1)), *requested.To), nil
	default:
		if requested.From.After(*trailing.To) {
			return timetable.Window{}, apperrors.NewInputError("start date is after today")
		}
		return timetable.NewWindow(*requested.From, *trailing.To), nil
	}
}

// OptimizeResources is a placeholder: it waits for the configured delay and returns a fixed
// estimate. No session is modified; the conflict report shows the unchanged state.
func (s *timetableServiceImpl) OptimizeResources(ctx context.Context, startDate, endDate string) (*dto.OptimizationResult, error) {
	window, err := timetable.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	runID := uuid.New()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.settings.OptimizeDelay):
	}

	report := dto.OptimizationReport{
		RunID:           runID,
		Message:         "Optimization finished",
		Placeholder:     true,
		DurationSeconds: helpers.Elapsed(started),
		Notes: []string{
			"Prototype optimization, no session was changed.",
			"Figures are fixed estimates, not computed from the timetable.",
		},
		Improvements: dto.OptimizationImprovements{
			EstimatedConflictReduction: 12,
			RoomReassignments:          5,
		},
	}

	data := newLoader(s.stores, s.logger).dataset(ctx)
	conflicts := s.detector.Detect(data, window)
	metrics.DetectionRuns.Inc()

	s.logger.Info().Str("runId", runID.String()).Str("window", window.String()).Msg("Resource optimization placeholder finished")
	return &dto.OptimizationResult{Report: report, Conflicts: conflicts}, nil
}
