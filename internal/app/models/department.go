package models

// Department is the top of the organizational hierarchy (programs and professors belong to one)
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
