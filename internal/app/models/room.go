package models

// Room is an exam location
type Room struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Capacity int     `json:"capacity" db:"capacity"`
	Type     *string `json:"type,omitempty" db:"type"`         // Nullable
	Building *string `json:"building,omitempty" db:"building"` // Nullable
}
