package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LedgerQueryUseCase consultas de solo lectura sobre el libro de transacciones
// para la pantalla de historial. El libro es append-only: aquí no hay escritura.
type LedgerQueryUseCase struct {
	txnRepo repository.TransactionRepository
}

// NewLedgerQueryUseCase construye el caso de uso.
func NewLedgerQueryUseCase(txnRepo repository.TransactionRepository) *LedgerQueryUseCase {
	return &LedgerQueryUseCase{txnRepo: txnRepo}
}

// Get devuelve un asiento por id.
func (uc *LedgerQueryUseCase) Get(ctx context.Context, id string) (*dto.TransactionDTO, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	result := dto.FromTransaction(txn)
	return &result, nil
}

// ListByDateRange devuelve los asientos con fecha de negocio en [from, to],
// descendente; direction vacío = todas.
func (uc *LedgerQueryUseCase) ListByDateRange(ctx context.Context, from, to time.Time, direction string) ([]dto.TransactionDTO, error) {
	switch direction {
	case "", entity.DirectionIN, entity.DirectionOUT, entity.DirectionADJUSTMENT:
	default:
		return nil, domain.Validationf("dirección inválida: %q", direction)
	}
	txns, err := uc.txnRepo.ListByDateRange(from, to, direction)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDTO, 0, len(txns))
	for _, t := range txns {
		out = append(out, dto.FromTransaction(t))
	}
	return out, nil
}
