package dto

import "github.com/shopspring/decimal"

// Requests de datos de referencia: formularios uniformes de alta/edición.

// CategoryRequest categoría de productos.
type CategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// ColorRequest color de variantes.
type ColorRequest struct {
	Name      string `json:"name" validate:"required"`
	HexCode   string `json:"hex_code"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// SizeRequest talla de variantes.
type SizeRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// SupplierRequest proveedor.
type SupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	IsActive    bool   `json:"is_active"`
}

// PlatformRequest plataforma de venta; fee_percentage como entero de
// porcentaje (5 = 5%).
type PlatformRequest struct {
	Name          string          `json:"name" validate:"required"`
	FeePercentage decimal.Decimal `json:"fee_percentage"`
	IsActive      bool            `json:"is_active"`
}

// ReasonCategoryRequest categoría de razón con su dirección y requisitos.
type ReasonCategoryRequest struct {
	Name             string `json:"name" validate:"required"`
	Direction        string `json:"direction" validate:"required,oneof=IN OUT"`
	RequiresPlatform bool   `json:"requires_platform"`
	RequiresSupplier bool   `json:"requires_supplier"`
	SortOrder        int    `json:"sort_order"`
	IsActive         bool   `json:"is_active"`
}
