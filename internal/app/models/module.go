package models

// Module is a course unit requiring one exam sitting per offering.
type Module struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	ProgramID int64  `json:"programId" db:"program_id"`
	Credits   int    `json:"credits" db:"credits"`
}
