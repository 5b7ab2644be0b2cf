package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductRequest alta/edición de producto.
type ProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" validate:"required"`
	ColorID     string `json:"color_id"`
	SizeID      string `json:"size_id"`
	IsActive    bool   `json:"is_active"`
}

// ProductDTO producto para respuestas.
type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"category_id"`
	ColorID     string    `json:"color_id,omitempty"`
	SizeID      string    `json:"size_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// FromProduct mapea la entidad al DTO.
func FromProduct(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		ColorID:     p.ColorID,
		SizeID:      p.SizeID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// SKURequest alta/edición de SKU. initial_stock solo se aplica al crear; la
// edición lo ignora (las mutaciones de stock van por Stock In/Out).
type SKURequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	SKUCode      string          `json:"sku_code" validate:"required"`
	SizeID       string          `json:"size_id"`
	ColorID      string          `json:"color_id"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	InitialStock int             `json:"initial_stock" validate:"min=0"`
	ReorderPoint int             `json:"reorder_point" validate:"min=0"`
	IsActive     bool            `json:"is_active"`
}

// SKUDTO variante para respuestas, con el estado de stock derivado.
type SKUDTO struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	SKUCode      string          `json:"sku_code"`
	SizeID       string          `json:"size_id,omitempty"`
	ColorID      string          `json:"color_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Stock        int             `json:"stock"`
	ReorderPoint int             `json:"reorder_point"`
	Status       string          `json:"status"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
