package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU es la variante rastreada del inventario. SKUCode es único entre todos los
// SKUs con comparación case-insensitive.
//
// Stock solo lo muta el motor de transacciones de inventario: el formulario de
// edición no lo toca después del valor inicial fijado al crear el SKU. Cost se
// actualiza automáticamente con cada entrada (last-cost-wins); Price solo cambia
// por la edición de catálogo.
type SKU struct {
	ID           string
	ProductID    string
	SKUCode      string
	SizeID       string // opcional
	ColorID      string // opcional
	Price        decimal.Decimal // precio de venta
	Cost         decimal.Decimal // último costo de entrada
	Stock        int
	ReorderPoint int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
