// Package postgres contiene los adaptadores pgx de los puertos de persistencia
// del almacén: catálogo, libro de transacciones, datos de referencia,
// configuración, usuarios y bitácora.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae la fuente de ejecución de SQL: fuera de una transacción es el
// pool; dentro del TxRunner es la pgx.Tx, para que el motor de inventario opere
// con los mismos adaptadores sobre filas bloqueadas.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
