package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Adaptadores de datos de referencia. Todos siguen el mismo patrón:
// tablas chicas, CRUD directo, listado ordenado por sort_order y nombre.

var (
	_ repository.CategoryRepository       = (*CategoryRepo)(nil)
	_ repository.ColorRepository          = (*ColorRepo)(nil)
	_ repository.SizeRepository           = (*SizeRepo)(nil)
	_ repository.SupplierRepository       = (*SupplierRepo)(nil)
	_ repository.PlatformRepository       = (*PlatformRepo)(nil)
	_ repository.ReasonCategoryRepository = (*ReasonCategoryRepo)(nil)
)

// ── Categorías ──────────────────────────────────────────────────────────────

// CategoryRepo adaptador de categorías.
type CategoryRepo struct{ q Querier }

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo { return &CategoryRepo{q: q} }

func (r *CategoryRepo) Create(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, name, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, sort_order, is_active, created_at, updated_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Update(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, sort_order = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Name, c.SortOrder, c.IsActive, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List(onlyActive bool) ([]*entity.Category, error) {
	query := `SELECT id, name, sort_order, is_active, created_at, updated_at FROM categories`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ── Colores ─────────────────────────────────────────────────────────────────

// ColorRepo adaptador de colores.
type ColorRepo struct{ q Querier }

// NewColorRepository construye el adaptador.
func NewColorRepository(q Querier) *ColorRepo { return &ColorRepo{q: q} }

func (r *ColorRepo) Create(c *entity.Color) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO colors (id, name, hex_code, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.HexCode, c.SortOrder, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert color: %w", err)
	}
	return nil
}

func (r *ColorRepo) GetByID(id string) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, hex_code, sort_order, is_active, created_at, updated_at FROM colors WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.HexCode, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return &c, nil
}

func (r *ColorRepo) Update(c *entity.Color) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE colors SET name = $2, hex_code = $3, sort_order = $4, is_active = $5, updated_at = $6 WHERE id = $1`,
		c.ID, c.Name, c.HexCode, c.SortOrder, c.IsActive, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update color: %w", err)
	}
	return nil
}

func (r *ColorRepo) List(onlyActive bool) ([]*entity.Color, error) {
	query := `SELECT id, name, hex_code, sort_order, is_active, created_at, updated_at FROM colors`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.HexCode, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ── Tallas ──────────────────────────────────────────────────────────────────

// SizeRepo adaptador de tallas.
type SizeRepo struct{ q Querier }

// NewSizeRepository construye el adaptador.
func NewSizeRepository(q Querier) *SizeRepo { return &SizeRepo{q: q} }

func (r *SizeRepo) Create(s *entity.Size) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sizes (id, name, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.SortOrder, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert size: %w", err)
	}
	return nil
}

func (r *SizeRepo) GetByID(id string) (*entity.Size, error) {
	var s entity.Size
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, sort_order, is_active, created_at, updated_at FROM sizes WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

func (r *SizeRepo) Update(s *entity.Size) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sizes SET name = $2, sort_order = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		s.ID, s.Name, s.SortOrder, s.IsActive, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update size: %w", err)
	}
	return nil
}

func (r *SizeRepo) List(onlyActive bool) ([]*entity.Size, error) {
	query := `SELECT id, name, sort_order, is_active, created_at, updated_at FROM sizes`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Name, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ── Proveedores ─────────────────────────────────────────────────────────────

// SupplierRepo adaptador de proveedores.
type SupplierRepo struct{ q Querier }

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo { return &SupplierRepo{q: q} }

const supplierColumns = `id, name, contact_name, email, phone, address, notes, is_active, created_at, updated_at`

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.Notes, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.Notes,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact_name = $3, email = $4, phone = $5, address = $6, notes = $7, is_active = $8, updated_at = $9
		WHERE id = $1`,
		s.ID, s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.Notes, s.IsActive, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) List(onlyActive bool) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.Notes,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ── Plataformas ─────────────────────────────────────────────────────────────

// PlatformRepo adaptador de plataformas de venta.
type PlatformRepo struct{ q Querier }

// NewPlatformRepository construye el adaptador.
func NewPlatformRepository(q Querier) *PlatformRepo { return &PlatformRepo{q: q} }

func (r *PlatformRepo) Create(p *entity.Platform) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO platforms (id, name, fee_percentage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.FeePercentage, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert platform: %w", err)
	}
	return nil
}

func (r *PlatformRepo) GetByID(id string) (*entity.Platform, error) {
	var p entity.Platform
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, fee_percentage, is_active, created_at, updated_at FROM platforms WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.FeePercentage, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform: %w", err)
	}
	return &p, nil
}

func (r *PlatformRepo) Update(p *entity.Platform) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE platforms SET name = $2, fee_percentage = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		p.ID, p.Name, p.FeePercentage, p.IsActive, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	return nil
}

func (r *PlatformRepo) List(onlyActive bool) ([]*entity.Platform, error) {
	query := `SELECT id, name, fee_percentage, is_active, created_at, updated_at FROM platforms`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Platform
	for rows.Next() {
		var p entity.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.FeePercentage, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ── Razones ─────────────────────────────────────────────────────────────────

// ReasonCategoryRepo adaptador de categorías de razón.
type ReasonCategoryRepo struct{ q Querier }

// NewReasonCategoryRepository construye el adaptador.
func NewReasonCategoryRepository(q Querier) *ReasonCategoryRepo { return &ReasonCategoryRepo{q: q} }

const reasonColumns = `id, name, direction, requires_platform, requires_supplier, is_active, sort_order, created_at, updated_at`

func (r *ReasonCategoryRepo) Create(rc *entity.ReasonCategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO reason_categories (`+reasonColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rc.ID, rc.Name, rc.Direction, rc.RequiresPlatform, rc.RequiresSupplier,
		rc.IsActive, rc.SortOrder, rc.CreatedAt, rc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert reason category: %w", err)
	}
	return nil
}

func (r *ReasonCategoryRepo) GetByID(id string) (*entity.ReasonCategory, error) {
	var rc entity.ReasonCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT `+reasonColumns+` FROM reason_categories WHERE id = $1`, id).
		Scan(&rc.ID, &rc.Name, &rc.Direction, &rc.RequiresPlatform, &rc.RequiresSupplier,
			&rc.IsActive, &rc.SortOrder, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reason category: %w", err)
	}
	return &rc, nil
}

func (r *ReasonCategoryRepo) Update(rc *entity.ReasonCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE reason_categories SET name = $2, direction = $3, requires_platform = $4, requires_supplier = $5, is_active = $6, sort_order = $7, updated_at = $8
		WHERE id = $1`,
		rc.ID, rc.Name, rc.Direction, rc.RequiresPlatform, rc.RequiresSupplier,
		rc.IsActive, rc.SortOrder, rc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reason category: %w", err)
	}
	return nil
}

func (r *ReasonCategoryRepo) List(onlyActive bool) ([]*entity.ReasonCategory, error) {
	query := `SELECT ` + reasonColumns + ` FROM reason_categories`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reason categories: %w", err)
	}
	return collectReasons(rows)
}

func (r *ReasonCategoryRepo) ListByDirection(direction string) ([]*entity.ReasonCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+reasonColumns+` FROM reason_categories
		WHERE is_active AND direction = $1 ORDER BY sort_order, name`, direction)
	if err != nil {
		return nil, fmt.Errorf("list reason categories by direction: %w", err)
	}
	return collectReasons(rows)
}

func collectReasons(rows pgx.Rows) ([]*entity.ReasonCategory, error) {
	defer rows.Close()
	var list []*entity.ReasonCategory
	for rows.Next() {
		var rc entity.ReasonCategory
		if err := rows.Scan(&rc.ID, &rc.Name, &rc.Direction, &rc.RequiresPlatform, &rc.RequiresSupplier,
			&rc.IsActive, &rc.SortOrder, &rc.CreatedAt, &rc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reason category: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}
