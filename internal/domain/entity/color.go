package entity

import "time"

// Color dato de referencia para variantes.
type Color struct {
	ID        string
	Name      string
	HexCode   string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
