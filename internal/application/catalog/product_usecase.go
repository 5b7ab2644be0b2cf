// Package catalog contiene los casos de uso del catálogo: productos y sus
// variantes (SKUs). El stock de los SKUs no se edita aquí; eso es del motor
// de transacciones.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SnapshotNotifier publica cambios de colección a los clientes suscritos.
type SnapshotNotifier interface {
	SnapshotChanged(collection, action string)
}

// ProductUseCase administra productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	skuRepo     repository.SKURepository
	events      SnapshotNotifier // opcional
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, skuRepo repository.SKURepository, events SnapshotNotifier) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, skuRepo: skuRepo, events: events}
}

// ProductInput datos de creación/edición de un producto.
type ProductInput struct {
	Name        string
	Description string
	CategoryID  string
	ColorID     string
	SizeID      string
	IsActive    bool
}

// Create da de alta un producto.
func (uc *ProductUseCase) Create(ctx context.Context, createdBy string, in ProductInput) (*entity.Product, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.Validationf("nombre y categoría son obligatorios")
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ColorID:     in.ColorID,
		SizeID:      in.SizeID,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   createdBy,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.changed("created")
	return product, nil
}

// Update modifica un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.Validationf("nombre y categoría son obligatorios")
	}
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.ColorID = in.ColorID
	product.SizeID = in.SizeID
	product.IsActive = in.IsActive
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.changed("updated")
	return product, nil
}

// Delete elimina un producto. Invariante referencial: prohibido mientras algún
// SKU lo referencie.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.skuRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProductHasSKUs
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.changed("deleted")
	return nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos; onlyActive filtra para listas de selección.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	return uc.productRepo.List(onlyActive)
}

func (uc *ProductUseCase) changed(action string) {
	if uc.events != nil {
		uc.events.SnapshotChanged("products", action)
	}
}
