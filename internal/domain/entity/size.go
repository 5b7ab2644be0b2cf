package entity

import "time"

// Size dato de referencia para variantes (tallas).
type Size struct {
	ID        string
	Name      string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
