package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Puertos de datos de referencia: CRUD uniforme sin lógica especial.
// La "eliminación" es desactivación vía IsActive; los listados activos se
// ordenan por SortOrder donde el dato lo tiene.

// CategoryRepository puerto de categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(c *entity.Category) error
	List(onlyActive bool) ([]*entity.Category, error)
}

// ColorRepository puerto de colores.
type ColorRepository interface {
	Create(c *entity.Color) error
	GetByID(id string) (*entity.Color, error)
	Update(c *entity.Color) error
	List(onlyActive bool) ([]*entity.Color, error)
}

// SizeRepository puerto de tallas.
type SizeRepository interface {
	Create(s *entity.Size) error
	GetByID(id string) (*entity.Size, error)
	Update(s *entity.Size) error
	List(onlyActive bool) ([]*entity.Size, error)
}

// SupplierRepository puerto de proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(onlyActive bool) ([]*entity.Supplier, error)
}

// PlatformRepository puerto de plataformas de venta.
type PlatformRepository interface {
	Create(p *entity.Platform) error
	GetByID(id string) (*entity.Platform, error)
	Update(p *entity.Platform) error
	List(onlyActive bool) ([]*entity.Platform, error)
}

// ReasonCategoryRepository puerto de categorías de razón.
type ReasonCategoryRepository interface {
	Create(r *entity.ReasonCategory) error
	GetByID(id string) (*entity.ReasonCategory, error)
	Update(r *entity.ReasonCategory) error
	List(onlyActive bool) ([]*entity.ReasonCategory, error)
	// ListByDirection filtra razones activas de una dirección para selección.
	ListByDirection(direction string) ([]*entity.ReasonCategory, error)
}
