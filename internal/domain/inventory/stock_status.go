// Package inventory contiene servicios de dominio puros del inventario:
// clasificación de stock y aritmética de comisiones de plataforma.
package inventory

import "github.com/shopspring/decimal"

// StockStatus clasificación derivada del par (stock, punto de reorden).
type StockStatus string

const (
	StatusCritical   StockStatus = "CRITICAL"     // stock < 0
	StatusOutOfStock StockStatus = "OUT_OF_STOCK" // stock == 0
	StatusLowStock   StockStatus = "LOW_STOCK"    // 0 < stock <= reorderPoint
	StatusInStock    StockStatus = "IN_STOCK"     // stock > reorderPoint
)

// Classify es una función total y determinista: las cuatro categorías
// particionan todos los enteros sin huecos ni solapes.
func Classify(stock, reorderPoint int) StockStatus {
	switch {
	case stock < 0:
		return StatusCritical
	case stock == 0:
		return StatusOutOfStock
	case stock <= reorderPoint:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// PlatformFee calcula la comisión sobre el ingreso bruto. El porcentaje se
// guarda como número entero: feePercentage=5 significa 5%.
func PlatformFee(gross, feePercentage decimal.Decimal) decimal.Decimal {
	if feePercentage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return gross.Mul(feePercentage).Div(decimal.NewFromInt(100))
}
