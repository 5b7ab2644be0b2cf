package entity

import "time"

// SystemSettings configuración única del negocio. Se carga al iniciar sesión y
// solo el rol SUPERADMIN puede modificarla. El motor de inventario lee
// EnableNegativeStock en cada registro; los reportes leen los umbrales.
type SystemSettings struct {
	BusinessName        string
	Currency            string // código ISO, ej. "PHP"
	CurrencySymbol      string
	DefaultReorderPoint int
	LowStockThreshold   int
	EnableLowStockAlert bool
	EnableNegativeStock bool
	UpdatedAt           time.Time
}
