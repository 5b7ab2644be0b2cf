package entity

import "time"

// Product representa una familia de artículos vendibles. El stock no vive aquí:
// se rastrea por variante (SKU). No se puede eliminar mientras tenga SKUs asociados.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	ColorID     string // opcional: color por defecto
	SizeID      string // opcional: talla por defecto
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
}
