package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SKUUseCase administra las variantes. El stock inicial solo se fija al crear;
// después de eso toda mutación de stock pasa por el motor de transacciones.
type SKUUseCase struct {
	skuRepo     repository.SKURepository
	productRepo repository.ProductRepository
	events      SnapshotNotifier // opcional
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(skuRepo repository.SKURepository, productRepo repository.ProductRepository, events SnapshotNotifier) *SKUUseCase {
	return &SKUUseCase{skuRepo: skuRepo, productRepo: productRepo, events: events}
}

// SKUInput datos de creación/edición. InitialStock solo se aplica en Create.
type SKUInput struct {
	ProductID    string
	SKUCode      string
	SizeID       string
	ColorID      string
	Price        decimal.Decimal
	Cost         decimal.Decimal
	InitialStock int
	ReorderPoint int
	IsActive     bool
}

// Create da de alta un SKU. El código debe ser único entre todos los SKUs con
// comparación case-insensitive.
func (uc *SKUUseCase) Create(ctx context.Context, in SKUInput) (*entity.SKU, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.Validationf("producto no encontrado")
	}
	if err := uc.checkCodeUnique(in.SKUCode, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	sku := &entity.SKU{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		SKUCode:      in.SKUCode,
		SizeID:       in.SizeID,
		ColorID:      in.ColorID,
		Price:        in.Price,
		Cost:         in.Cost,
		Stock:        in.InitialStock,
		ReorderPoint: in.ReorderPoint,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.skuRepo.Create(sku); err != nil {
		return nil, err
	}
	uc.changed("created")
	return sku, nil
}

// Update edita un SKU. Stock y costo quedan intactos: el valor inicial es
// inmutable por esta vía y los cambios posteriores van por Stock In/Out.
func (uc *SKUUseCase) Update(ctx context.Context, id string, in SKUInput) (*entity.SKU, error) {
	sku, err := uc.skuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	// La reasignación de producto persiste igual que en el alta; el destino
	// debe existir.
	if in.ProductID != sku.ProductID {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.Validationf("producto no encontrado")
		}
	}
	if err := uc.checkCodeUnique(in.SKUCode, id); err != nil {
		return nil, err
	}
	sku.ProductID = in.ProductID
	sku.SKUCode = in.SKUCode
	sku.SizeID = in.SizeID
	sku.ColorID = in.ColorID
	sku.Price = in.Price
	sku.ReorderPoint = in.ReorderPoint
	sku.IsActive = in.IsActive
	sku.UpdatedAt = time.Now()
	if err := uc.skuRepo.Update(sku); err != nil {
		return nil, err
	}
	uc.changed("updated")
	return sku, nil
}

// Delete elimina un SKU del catálogo. El histórico de transacciones conserva
// sus snapshots congelados, por eso no hay guardia referencial hacia el libro.
func (uc *SKUUseCase) Delete(ctx context.Context, id string) error {
	sku, err := uc.skuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sku == nil {
		return domain.ErrNotFound
	}
	if err := uc.skuRepo.Delete(id); err != nil {
		return err
	}
	uc.changed("deleted")
	return nil
}

// Get devuelve un SKU por id.
func (uc *SKUUseCase) Get(ctx context.Context, id string) (*entity.SKU, error) {
	sku, err := uc.skuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	return sku, nil
}

// List lista SKUs; onlyActive filtra para selección.
func (uc *SKUUseCase) List(ctx context.Context, onlyActive bool) ([]*entity.SKU, error) {
	return uc.skuRepo.List(onlyActive)
}

// ListByProduct lista las variantes de un producto ordenadas por código.
func (uc *SKUUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.SKU, error) {
	return uc.skuRepo.ListByProduct(productID)
}

func (uc *SKUUseCase) validate(in SKUInput) error {
	if in.ProductID == "" || in.SKUCode == "" {
		return domain.Validationf("producto y código SKU son obligatorios")
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return domain.Validationf("precio y costo deben ser no negativos")
	}
	if in.ReorderPoint < 0 {
		return domain.Validationf("el punto de reorden debe ser no negativo")
	}
	return nil
}

// checkCodeUnique rechaza el código si otro SKU (id distinto) ya lo usa,
// sin distinguir mayúsculas de minúsculas.
func (uc *SKUUseCase) checkCodeUnique(code, selfID string) error {
	existing, err := uc.skuRepo.GetByCode(code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicateSKU
	}
	return nil
}

func (uc *SKUUseCase) changed(action string) {
	if uc.events != nil {
		uc.events.SnapshotChanged("skus", action)
	}
}
