package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SKURepository define el puerto de persistencia para SKUs.
//
// UpdateStock y UpdateCost son de uso exclusivo del motor de transacciones,
// dentro de una transacción de BD con la fila bloqueada vía GetForUpdate.
// Update (edición de catálogo) nunca toca stock ni costo.
type SKURepository interface {
	Create(sku *entity.SKU) error
	GetByID(id string) (*entity.SKU, error)
	// GetByCode busca por código con comparación case-insensitive.
	GetByCode(code string) (*entity.SKU, error)
	ListByProduct(productID string) ([]*entity.SKU, error)
	List(onlyActive bool) ([]*entity.SKU, error)
	CountByProduct(productID string) (int, error)
	Update(sku *entity.SKU) error
	Delete(id string) error

	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para el chequeo de
	// sobreventa en el momento del commit.
	GetForUpdate(id string) (*entity.SKU, error)
	UpdateStock(id string, stock int) error
	UpdateCost(id string, cost decimal.Decimal) error
}
