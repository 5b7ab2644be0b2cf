package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateSKU      = errors.New("código SKU duplicado")
	ErrProductHasSKUs    = errors.New("el producto tiene SKUs asociados")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
)

// ValidationError error de validación con mensaje específico para el usuario.
// errors.Is(err, ErrInvalidInput) devuelve true para que los handlers lo mapeen a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is permite tratar cualquier ValidationError como ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Validationf construye un ValidationError con formato.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
