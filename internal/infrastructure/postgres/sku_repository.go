package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

const skuColumns = `id, product_id, sku_code, size_id, color_id, price, cost, stock, reorder_point, is_active, created_at, updated_at`

// SKURepo implementación del puerto SKURepository sobre PostgreSQL (usable con pool o tx).
// La unicidad case-insensitive de sku_code la respalda un índice único sobre LOWER(sku_code).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador de persistencia para SKUs. Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

func scanSKU(row pgx.Row) (*entity.SKU, error) {
	var s entity.SKU
	err := row.Scan(
		&s.ID, &s.ProductID, &s.SKUCode, &s.SizeID, &s.ColorID, &s.Price, &s.Cost,
		&s.Stock, &s.ReorderPoint, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo SKU con su stock inicial.
func (r *SKURepo) Create(sku *entity.SKU) error {
	query := `
		INSERT INTO skus (` + skuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.ProductID, sku.SKUCode, sku.SizeID, sku.ColorID, sku.Price, sku.Cost,
		sku.Stock, sku.ReorderPoint, sku.IsActive, sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *SKURepo) GetByID(id string) (*entity.SKU, error) {
	row := r.q.QueryRow(context.Background(), `SELECT `+skuColumns+` FROM skus WHERE id = $1`, id)
	s, err := scanSKU(row)
	if err != nil {
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

// GetByCode busca por código con comparación case-insensitive.
func (r *SKURepo) GetByCode(code string) (*entity.SKU, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+skuColumns+` FROM skus WHERE LOWER(sku_code) = LOWER($1)`, code)
	s, err := scanSKU(row)
	if err != nil {
		return nil, fmt.Errorf("get sku by code: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la fila del SKU hasta el fin de la transacción actual.
// Solo tiene sentido llamarlo con un Querier que sea una tx.
func (r *SKURepo) GetForUpdate(id string) (*entity.SKU, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+skuColumns+` FROM skus WHERE id = $1 FOR UPDATE`, id)
	s, err := scanSKU(row)
	if err != nil {
		return nil, fmt.Errorf("get sku for update: %w", err)
	}
	return s, nil
}

// ListByProduct lista los SKUs de un producto.
func (r *SKURepo) ListByProduct(productID string) ([]*entity.SKU, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+skuColumns+` FROM skus WHERE product_id = $1 ORDER BY sku_code`, productID)
	if err != nil {
		return nil, fmt.Errorf("list skus by product: %w", err)
	}
	return collectSKUs(rows)
}

// List lista SKUs; onlyActive filtra por IsActive.
func (r *SKURepo) List(onlyActive bool) ([]*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sku_code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	return collectSKUs(rows)
}

func collectSKUs(rows pgx.Rows) ([]*entity.SKU, error) {
	defer rows.Close()
	var list []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SKUCode, &s.SizeID, &s.ColorID, &s.Price, &s.Cost,
			&s.Stock, &s.ReorderPoint, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByProduct cuenta los SKUs asociados a un producto.
func (r *SKURepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM skus WHERE product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

// Update actualiza los campos de catálogo de un SKU. No toca stock ni costo:
// esos solo los muta el motor de transacciones vía UpdateStock/UpdateCost.
func (r *SKURepo) Update(sku *entity.SKU) error {
	query := `
		UPDATE skus SET product_id = $2, sku_code = $3, size_id = $4, color_id = $5, price = $6, reorder_point = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.ProductID, sku.SKUCode, sku.SizeID, sku.ColorID, sku.Price,
		sku.ReorderPoint, sku.IsActive, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// Delete elimina un SKU por ID. El histórico conserva sus snapshots.
func (r *SKURepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del SKU (usado por el motor dentro de una tx con la fila bloqueada).
func (r *SKURepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE skus SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update sku stock: %w", err)
	}
	return nil
}

// UpdateCost fija el costo del SKU (last-cost-wins en entradas).
func (r *SKURepo) UpdateCost(id string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE skus SET cost = $2, updated_at = now() WHERE id = $1`, id, cost)
	if err != nil {
		return fmt.Errorf("update sku cost: %w", err)
	}
	return nil
}
