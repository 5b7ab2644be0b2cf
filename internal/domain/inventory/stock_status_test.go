package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify: la partición debe ser total, todo entero cae en exactamente una
// categoría.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Particion(t *testing.T) {
	cases := []struct {
		name         string
		stock        int
		reorderPoint int
		want         inventory.StockStatus
	}{
		{"stock negativo es crítico", -3, 5, inventory.StatusCritical},
		{"stock negativo es crítico aunque el reorden sea cero", -1, 0, inventory.StatusCritical},
		{"stock cero es agotado", 0, 5, inventory.StatusOutOfStock},
		{"stock cero es agotado con reorden cero", 0, 0, inventory.StatusOutOfStock},
		{"stock bajo el punto de reorden", 3, 5, inventory.StatusLowStock},
		{"stock igual al punto de reorden", 5, 5, inventory.StatusLowStock},
		{"stock sobre el punto de reorden", 6, 5, inventory.StatusInStock},
		{"reorden cero: cualquier positivo está en stock", 1, 0, inventory.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.stock, tc.reorderPoint))
		})
	}
}

// Una salida de 15 sobre stock 20 con reorden 5 deja el SKU en LOW_STOCK.
func TestClassify_DespuesDeSalida(t *testing.T) {
	stock := 20 - 15
	assert.Equal(t, inventory.StatusLowStock, inventory.Classify(stock, 5))
}

// ──────────────────────────────────────────────────────────────────────────────
// PlatformFee: porcentaje entero sobre el bruto.
// ──────────────────────────────────────────────────────────────────────────────

func TestPlatformFee(t *testing.T) {
	gross := decimal.NewFromInt(1500)
	fee := inventory.PlatformFee(gross, decimal.NewFromInt(5))
	assert.True(t, fee.Equal(decimal.NewFromInt(75)), "5%% de 1500 debe ser 75, fue %s", fee)

	net := gross.Sub(fee)
	assert.True(t, net.Equal(decimal.NewFromInt(1425)))
}

func TestPlatformFee_VentaDeMil(t *testing.T) {
	gross := decimal.NewFromInt(1000)
	fee := inventory.PlatformFee(gross, decimal.NewFromInt(5))
	assert.True(t, fee.Equal(decimal.NewFromInt(50)))
	assert.True(t, gross.Sub(fee).Equal(decimal.NewFromInt(950)))
}

func TestPlatformFee_PorcentajeCero(t *testing.T) {
	fee := inventory.PlatformFee(decimal.NewFromInt(1000), decimal.Zero)
	assert.True(t, fee.IsZero())
}

func TestPlatformFee_ConDecimales(t *testing.T) {
	// 5% de 999.99 = 49.9995; sin redondeo en el dominio, redondea la presentación.
	fee := inventory.PlatformFee(decimal.RequireFromString("999.99"), decimal.NewFromInt(5))
	assert.True(t, fee.Equal(decimal.RequireFromString("49.9995")), "fue %s", fee)
}
