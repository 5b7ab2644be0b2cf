package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Platform canal de venta externo asociable a salidas de stock.
// FeePercentage se guarda como número entero de porcentaje: 5 significa 5%.
type Platform struct {
	ID            string
	Name          string
	FeePercentage decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
