package dto

import "github.com/shopspring/decimal"

// SalesPointDTO punto de la serie semanal de ventas (etiqueta = día de semana).
type SalesPointDTO struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// DashboardStatsDTO consolidado del tablero.
type DashboardStatsDTO struct {
	TotalProducts     int             `json:"total_products"`
	TotalSKUs         int             `json:"total_skus"`
	TotalOnHand       int             `json:"total_on_hand"`
	TotalValue        decimal.Decimal `json:"total_value"` // valorizado al costo
	LowStockCount     int             `json:"low_stock_count"`
	OutOfStockCount   int             `json:"out_of_stock_count"`
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	TodayTransactions int             `json:"today_transactions"`
	WeeklySales       []SalesPointDTO `json:"weekly_sales"`
}

// LowStockAlertDTO SKU en o bajo el punto de reorden.
type LowStockAlertDTO struct {
	SKUID        string `json:"sku_id"`
	SKUCode      string `json:"sku_code"`
	ProductName  string `json:"product_name"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
	Status       string `json:"status"`
}

// PlatformMovementDTO celda de la matriz por plataforma.
type PlatformMovementDTO struct {
	StockIn  int `json:"stock_in"`
	StockOut int `json:"stock_out"`
}

// BreakdownRowDTO fila resumen por SKU del reporte por categoría.
// PlatformBreakdown usa el id de plataforma como clave; "none" agrupa las
// transacciones sin plataforma.
type BreakdownRowDTO struct {
	SKUID             string                         `json:"sku_id"`
	SKUCode           string                         `json:"sku_code"`
	ProductName       string                         `json:"product_name"`
	SizeName          string                         `json:"size_name,omitempty"`
	ColorName         string                         `json:"color_name,omitempty"`
	CurrentStock      int                            `json:"current_stock"`
	TotalStockIn      int                            `json:"total_stock_in"`
	TotalStockOut     int                            `json:"total_stock_out"`
	PlatformBreakdown map[string]PlatformMovementDTO `json:"platform_breakdown"`
}

// CategoryBreakdownDTO grupo de filas por categoría del producto.
type CategoryBreakdownDTO struct {
	CategoryID   string            `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Rows         []BreakdownRowDTO `json:"rows"`
}
