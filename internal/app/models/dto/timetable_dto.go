package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/timetable"
)

// GenerateTimetableRequest starts a generation run over an inclusive window
type GenerateTimetableRequest struct {
	StartDate string `json:"startDate" binding:"required,isodate" example:"2025-01-06"`
	EndDate   string `json:"endDate" binding:"required,isodate" example:"2025-01-17"`
	// Persist defaults to true; false only previews the proposal
	Persist *bool `json:"persist,omitempty" example:"true"`
}

// ShouldPersist resolves the optional persist flag
func (r GenerateTimetableRequest) ShouldPersist() bool {
	return r.Persist == nil || *r.Persist
}

// WindowQuery is the optional date range of detection, KPI and listing endpoints
type WindowQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,isodate" example:"2025-01-06"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate" example:"2025-01-17"`
}

// GenerationReport summarizes one generation run
type GenerationReport struct {
	RunID            uuid.UUID                   `json:"runId"`
	Message          string                      `json:"message" example:"Timetable generation completed"`
	Window           timetable.Window            `json:"window"`
	DurationSeconds  float64                     `json:"durationSeconds" example:"0.42"`
	ModulesAttempted int                         `json:"modulesAttempted" example:"120"`
	CreatedSlots     int                         `json:"createdSlots" example:"117"`
	Persisted        bool                        `json:"persisted"`
	InsertedCount    int                         `json:"insertedCount" example:"117"`
	InsertError      string                      `json:"insertError,omitempty"`
	Preview          []timetable.ProposedSession `json:"preview"`
	ConflictsPost    map[string]int              `json:"conflictsPost"`
	Warnings         []string                    `json:"warnings,omitempty"`
}

// GenerationResult pairs the run summary with the residual conflicts
type GenerationResult struct {
	Report    GenerationReport         `json:"report"`
	Conflicts timetable.ConflictReport `json:"conflicts"`
}

// OptimizationImprovements is a fixed estimate, nothing is computed
type OptimizationImprovements struct {
	EstimatedConflictReduction int `json:"estimatedConflictReduction" example:"12"`
	RoomReassignments          int `json:"roomReassignments" example:"5"`
}

// OptimizationReport is the outcome of the resource optimization placeholder
type OptimizationReport struct {
	RunID           uuid.UUID                `json:"runId"`
	Message         string                   `json:"message"`
	Placeholder     bool                     `json:"placeholder" example:"true"`
	DurationSeconds float64                  `json:"durationSeconds"`
	Notes           []string                 `json:"notes"`
	Improvements    OptimizationImprovements `json:"improvements"`
}

// OptimizationResult pairs the placeholder report with the residual conflicts
type OptimizationResult struct {
	Report    OptimizationReport       `json:"report"`
	Conflicts timetable.ConflictReport `json:"conflicts"`
}

// ProgramOverview counts the modules and sessions of one program
type ProgramOverview struct {
	ProgramID    int64  `json:"programId"`
	ProgramName  string `json:"programName"`
	ModuleCount  int    `json:"moduleCount"`
	SessionCount int    `json:"sessionCount"`
}

// DepartmentOverview is the department head dashboard
type DepartmentOverview struct {
	Department       models.Department           `json:"department"`
	Window           timetable.Window            `json:"window"`
	Programs         []ProgramOverview           `json:"programs"`
	ProgramConflicts []timetable.ProgramConflict `json:"programConflicts"`
}
