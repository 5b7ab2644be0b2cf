package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, clase 23 de PostgreSQL.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque con un índice único para que los
// adaptadores lo traduzcan a un error de dominio en vez de un 500.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
