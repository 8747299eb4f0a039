package models

import "time"

// ExamSession is one scheduled sitting of a module: time, room and supervising professor.
type ExamSession struct {
	ID              int64     `json:"id" db:"id"`
	ModuleID        int64     `json:"moduleId" db:"module_id"`
	ProfessorID     int64     `json:"professorId" db:"professor_id"`
	RoomID          int64     `json:"roomId" db:"room_id"`
	StartAt         time.Time `json:"startAt" db:"start_at"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	Validated       bool      `json:"validated" db:"validated"`            // set by the department head
	FinalValidated  bool      `json:"finalValidated" db:"final_validated"` // set by the vice-dean

	// Joined columns, only filled by listing queries
	ModuleName    string `json:"moduleName,omitempty" db:"module_name"`
	RoomName      string `json:"roomName,omitempty" db:"room_name"`
	ProfessorName string `json:"professorName,omitempty" db:"professor_name"`
}

// EndAt returns the exclusive end of the sitting.
func (s ExamSession) EndAt() time.Time {
	return s.StartAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Day returns the calendar day of the start timestamp in its own location.
func (s ExamSession) Day() string {
	return s.StartAt.Format(time.DateOnly)
}
