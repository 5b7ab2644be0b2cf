package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la garantía de atomicidad del motor:
// asiento del libro + ajustes de stock se aplican todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledger repository.TransactionRepository,
		skuRepo repository.SKURepository,
	) error) error
}

// AuditNotifier recibe la notificación post-commit de un movimiento confirmado.
// Best-effort: la implementación nunca devuelve error ni bloquea al motor.
type AuditNotifier interface {
	StockMovementCommitted(action, transactionID, summary, actorID, actorName string)
}

// SnapshotNotifier publica eventos de cambio de snapshot para los clientes
// suscritos (colección modificada + acción).
type SnapshotNotifier interface {
	SnapshotChanged(collection, action string)
}
