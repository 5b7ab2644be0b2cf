package entity

import "time"

// ReasonCategory clasifica por qué ocurrió una transacción. Direction fija la
// dirección de la transacción (IN o OUT, nunca ambas) y los flags de requisito
// son precondiciones que el motor de inventario hace cumplir: la razón manda,
// no los campos de la transacción.
type ReasonCategory struct {
	ID               string
	Name             string
	Direction        string // IN | OUT
	RequiresPlatform bool
	RequiresSupplier bool
	IsActive         bool
	SortOrder        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
