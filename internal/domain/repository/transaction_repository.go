package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// TransactionRepository es el puerto del libro de transacciones de inventario.
// Append-only: el puerto no expone Update ni Delete. Create solo lo invoca el
// motor de transacciones dentro de su transacción atómica.
type TransactionRepository interface {
	Create(txn *entity.InventoryTransaction) error
	GetByID(id string) (*entity.InventoryTransaction, error)
	// ListByDateRange devuelve transacciones con fecha de negocio en [from, to],
	// orden descendente. direction vacío = todas.
	ListByDateRange(from, to time.Time, direction string) ([]*entity.InventoryTransaction, error)
	// ListRecent devuelve las n más recientes por fecha de negocio descendente.
	ListRecent(n int) ([]*entity.InventoryTransaction, error)
}
