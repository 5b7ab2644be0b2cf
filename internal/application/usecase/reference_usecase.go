// Package usecase contiene los casos de uso de datos de referencia y
// configuración: CRUD uniforme sin lógica especial, consumido por los
// formularios de administración.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SnapshotNotifier publica cambios de colección a los clientes suscritos.
type SnapshotNotifier interface {
	SnapshotChanged(collection, action string)
}

// ReferenceUseCase agrupa el CRUD de las seis colecciones de referencia.
// Todas siguen el mismo patrón: crear, editar, listar (con filtro de activos);
// la baja es desactivación vía IsActive.
type ReferenceUseCase struct {
	categoryRepo repository.CategoryRepository
	colorRepo    repository.ColorRepository
	sizeRepo     repository.SizeRepository
	supplierRepo repository.SupplierRepository
	platformRepo repository.PlatformRepository
	reasonRepo   repository.ReasonCategoryRepository
	events       SnapshotNotifier // opcional
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(
	categoryRepo repository.CategoryRepository,
	colorRepo repository.ColorRepository,
	sizeRepo repository.SizeRepository,
	supplierRepo repository.SupplierRepository,
	platformRepo repository.PlatformRepository,
	reasonRepo repository.ReasonCategoryRepository,
	events SnapshotNotifier,
) *ReferenceUseCase {
	return &ReferenceUseCase{
		categoryRepo: categoryRepo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
		supplierRepo: supplierRepo,
		platformRepo: platformRepo,
		reasonRepo:   reasonRepo,
		events:       events,
	}
}

func (uc *ReferenceUseCase) changed(collection, action string) {
	if uc.events != nil {
		uc.events.SnapshotChanged(collection, action)
	}
}

// ── Categorías ──────────────────────────────────────────────────────────────

// CreateCategory da de alta una categoría.
func (uc *ReferenceUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*entity.Category, error) {
	now := time.Now()
	c := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	uc.changed("categories", "created")
	return c, nil
}

// UpdateCategory edita una categoría existente.
func (uc *ReferenceUseCase) UpdateCategory(ctx context.Context, id string, in dto.CategoryRequest) (*entity.Category, error) {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.SortOrder = in.SortOrder
	c.IsActive = in.IsActive
	c.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(c); err != nil {
		return nil, err
	}
	uc.changed("categories", "updated")
	return c, nil
}

// ListCategories lista categorías ordenadas por SortOrder.
func (uc *ReferenceUseCase) ListCategories(ctx context.Context, onlyActive bool) ([]*entity.Category, error) {
	return uc.categoryRepo.List(onlyActive)
}

// ── Colores ─────────────────────────────────────────────────────────────────

// CreateColor da de alta un color.
func (uc *ReferenceUseCase) CreateColor(ctx context.Context, in dto.ColorRequest) (*entity.Color, error) {
	now := time.Now()
	c := &entity.Color{
		ID:        uuid.New().String(),
		Name:      in.Name,
		HexCode:   in.HexCode,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.colorRepo.Create(c); err != nil {
		return nil, err
	}
	uc.changed("colors", "created")
	return c, nil
}

// UpdateColor edita un color existente.
func (uc *ReferenceUseCase) UpdateColor(ctx context.Context, id string, in dto.ColorRequest) (*entity.Color, error) {
	c, err := uc.colorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.HexCode = in.HexCode
	c.SortOrder = in.SortOrder
	c.IsActive = in.IsActive
	c.UpdatedAt = time.Now()
	if err := uc.colorRepo.Update(c); err != nil {
		return nil, err
	}
	uc.changed("colors", "updated")
	return c, nil
}

// ListColors lista colores ordenados por SortOrder.
func (uc *ReferenceUseCase) ListColors(ctx context.Context, onlyActive bool) ([]*entity.Color, error) {
	return uc.colorRepo.List(onlyActive)
}

// ── Tallas ──────────────────────────────────────────────────────────────────

// CreateSize da de alta una talla.
func (uc *ReferenceUseCase) CreateSize(ctx context.Context, in dto.SizeRequest) (*entity.Size, error) {
	now := time.Now()
	s := &entity.Size{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sizeRepo.Create(s); err != nil {
		return nil, err
	}
	uc.changed("sizes", "created")
	return s, nil
}

// UpdateSize edita una talla existente.
func (uc *ReferenceUseCase) UpdateSize(ctx context.Context, id string, in dto.SizeRequest) (*entity.Size, error) {
	s, err := uc.sizeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.SortOrder = in.SortOrder
	s.IsActive = in.IsActive
	s.UpdatedAt = time.Now()
	if err := uc.sizeRepo.Update(s); err != nil {
		return nil, err
	}
	uc.changed("sizes", "updated")
	return s, nil
}

// ListSizes lista tallas ordenadas por SortOrder.
func (uc *ReferenceUseCase) ListSizes(ctx context.Context, onlyActive bool) ([]*entity.Size, error) {
	return uc.sizeRepo.List(onlyActive)
}

// ── Proveedores ─────────────────────────────────────────────────────────────

// CreateSupplier da de alta un proveedor.
func (uc *ReferenceUseCase) CreateSupplier(ctx context.Context, in dto.SupplierRequest) (*entity.Supplier, error) {
	now := time.Now()
	s := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Notes:       in.Notes,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	uc.changed("suppliers", "created")
	return s, nil
}

// UpdateSupplier edita un proveedor existente.
func (uc *ReferenceUseCase) UpdateSupplier(ctx context.Context, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.ContactName = in.ContactName
	s.Email = in.Email
	s.Phone = in.Phone
	s.Address = in.Address
	s.Notes = in.Notes
	s.IsActive = in.IsActive
	s.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	uc.changed("suppliers", "updated")
	return s, nil
}

// ListSuppliers lista proveedores.
func (uc *ReferenceUseCase) ListSuppliers(ctx context.Context, onlyActive bool) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(onlyActive)
}

// ── Plataformas ─────────────────────────────────────────────────────────────

// CreatePlatform da de alta una plataforma de venta.
func (uc *ReferenceUseCase) CreatePlatform(ctx context.Context, in dto.PlatformRequest) (*entity.Platform, error) {
	if in.FeePercentage.IsNegative() {
		return nil, domain.Validationf("la comisión debe ser no negativa")
	}
	now := time.Now()
	p := &entity.Platform{
		ID:            uuid.New().String(),
		Name:          in.Name,
		FeePercentage: in.FeePercentage,
		IsActive:      in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.platformRepo.Create(p); err != nil {
		return nil, err
	}
	uc.changed("platforms", "created")
	return p, nil
}

// UpdatePlatform edita una plataforma existente.
func (uc *ReferenceUseCase) UpdatePlatform(ctx context.Context, id string, in dto.PlatformRequest) (*entity.Platform, error) {
	p, err := uc.platformRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.FeePercentage.IsNegative() {
		return nil, domain.Validationf("la comisión debe ser no negativa")
	}
	p.Name = in.Name
	p.FeePercentage = in.FeePercentage
	p.IsActive = in.IsActive
	p.UpdatedAt = time.Now()
	if err := uc.platformRepo.Update(p); err != nil {
		return nil, err
	}
	uc.changed("platforms", "updated")
	return p, nil
}

// ListPlatforms lista plataformas.
func (uc *ReferenceUseCase) ListPlatforms(ctx context.Context, onlyActive bool) ([]*entity.Platform, error) {
	return uc.platformRepo.List(onlyActive)
}

// ── Razones ─────────────────────────────────────────────────────────────────

// CreateReason da de alta una categoría de razón. Direction es IN o OUT, nunca
// ambas; los flags de requisito los hace cumplir el motor de transacciones.
func (uc *ReferenceUseCase) CreateReason(ctx context.Context, in dto.ReasonCategoryRequest) (*entity.ReasonCategory, error) {
	now := time.Now()
	r := &entity.ReasonCategory{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Direction:        in.Direction,
		RequiresPlatform: in.RequiresPlatform,
		RequiresSupplier: in.RequiresSupplier,
		SortOrder:        in.SortOrder,
		IsActive:         in.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.reasonRepo.Create(r); err != nil {
		return nil, err
	}
	uc.changed("reason_categories", "created")
	return r, nil
}

// UpdateReason edita una categoría de razón existente.
func (uc *ReferenceUseCase) UpdateReason(ctx context.Context, id string, in dto.ReasonCategoryRequest) (*entity.ReasonCategory, error) {
	r, err := uc.reasonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.Name = in.Name
	r.Direction = in.Direction
	r.RequiresPlatform = in.RequiresPlatform
	r.RequiresSupplier = in.RequiresSupplier
	r.SortOrder = in.SortOrder
	r.IsActive = in.IsActive
	r.UpdatedAt = time.Now()
	if err := uc.reasonRepo.Update(r); err != nil {
		return nil, err
	}
	uc.changed("reason_categories", "updated")
	return r, nil
}

// ListReasons lista categorías de razón; direction no vacío filtra activas de
// esa dirección para los formularios de Stock In/Out.
func (uc *ReferenceUseCase) ListReasons(ctx context.Context, direction string, onlyActive bool) ([]*entity.ReasonCategory, error) {
	if direction != "" {
		return uc.reasonRepo.ListByDirection(direction)
	}
	return uc.reasonRepo.List(onlyActive)
}
