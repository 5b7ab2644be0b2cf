package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const txnColumns = `id, direction, source_type, reason_category_id, supplier_id, platform_id, line_items,
		total_quantity, total_amount, platform_fee, net_amount, reference_number, customer_name, notes,
		transaction_date, created_at, created_by, created_by_name`

// TransactionRepo implementación del libro de transacciones sobre PostgreSQL.
// Las líneas van embebidas como JSONB en la misma fila: el asiento es una
// unidad, no tiene hijos con ciclo de vida propio. No hay UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento nuevo con sus líneas serializadas a JSONB.
func (r *TransactionRepo) Create(txn *entity.InventoryTransaction) error {
	lines, err := json.Marshal(txn.LineItems)
	if err != nil {
		return fmt.Errorf("marshal line items: %w", err)
	}
	query := `
		INSERT INTO inventory_transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(context.Background(), query,
		txn.ID, txn.Direction, txn.SourceType, txn.ReasonCategoryID, txn.SupplierID, txn.PlatformID,
		lines, txn.TotalQuantity, txn.TotalAmount, txn.PlatformFee, txn.NetAmount,
		txn.ReferenceNumber, txn.CustomerName, txn.Notes,
		txn.TransactionDate, txn.CreatedAt, txn.CreatedBy, txn.CreatedByName,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.InventoryTransaction, error) {
	var t entity.InventoryTransaction
	var lines []byte
	err := row.Scan(
		&t.ID, &t.Direction, &t.SourceType, &t.ReasonCategoryID, &t.SupplierID, &t.PlatformID,
		&lines, &t.TotalQuantity, &t.TotalAmount, &t.PlatformFee, &t.NetAmount,
		&t.ReferenceNumber, &t.CustomerName, &t.Notes,
		&t.TransactionDate, &t.CreatedAt, &t.CreatedBy, &t.CreatedByName,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &t.LineItems); err != nil {
		return nil, fmt.Errorf("unmarshal line items: %w", err)
	}
	return &t, nil
}

// GetByID obtiene un asiento por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.InventoryTransaction, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+txnColumns+` FROM inventory_transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByDateRange devuelve asientos con fecha de negocio en [from, to],
// descendente. direction vacío = todas.
func (r *TransactionRepo) ListByDateRange(from, to time.Time, direction string) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM inventory_transactions
		WHERE transaction_date >= $1 AND transaction_date <= $2`
	args := []any{from, to}
	if direction != "" {
		query += ` AND direction = $3`
		args = append(args, direction)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListRecent devuelve los n asientos más recientes por fecha de negocio descendente.
func (r *TransactionRepo) ListRecent(n int) ([]*entity.InventoryTransaction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+txnColumns+` FROM inventory_transactions
		ORDER BY transaction_date DESC, created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*entity.InventoryTransaction, error) {
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
