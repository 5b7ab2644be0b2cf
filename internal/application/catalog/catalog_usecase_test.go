package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct{ products map[string]*entity.Product }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id string) error         { delete(r.products, id); return nil }
func (r *memProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type memSKURepo struct{ skus map[string]*entity.SKU }

var _ repository.SKURepository = (*memSKURepo)(nil)

func (r *memSKURepo) Create(sku *entity.SKU) error { r.skus[sku.ID] = sku; return nil }
func (r *memSKURepo) GetByID(id string) (*entity.SKU, error) {
	sku, ok := r.skus[id]
	if !ok {
		return nil, nil
	}
	copied := *sku
	return &copied, nil
}
func (r *memSKURepo) GetByCode(code string) (*entity.SKU, error) {
	for _, sku := range r.skus {
		if strings.EqualFold(sku.SKUCode, code) {
			copied := *sku
			return &copied, nil
		}
	}
	return nil, nil
}
func (r *memSKURepo) ListByProduct(productID string) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for _, sku := range r.skus {
		if sku.ProductID == productID {
			out = append(out, sku)
		}
	}
	return out, nil
}
func (r *memSKURepo) List(onlyActive bool) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for _, sku := range r.skus {
		if onlyActive && !sku.IsActive {
			continue
		}
		out = append(out, sku)
	}
	return out, nil
}
func (r *memSKURepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, sku := range r.skus {
		if sku.ProductID == productID {
			n++
		}
	}
	return n, nil
}
func (r *memSKURepo) Update(sku *entity.SKU) error { r.skus[sku.ID] = sku; return nil }
func (r *memSKURepo) Delete(id string) error       { delete(r.skus, id); return nil }
func (r *memSKURepo) GetForUpdate(id string) (*entity.SKU, error) {
	return r.GetByID(id)
}
func (r *memSKURepo) UpdateStock(id string, stock int) error {
	r.skus[id].Stock = stock
	return nil
}
func (r *memSKURepo) UpdateCost(id string, cost decimal.Decimal) error {
	r.skus[id].Cost = cost
	return nil
}

func setup() (*catalog.ProductUseCase, *catalog.SKUUseCase, *memProductRepo, *memSKURepo) {
	products := &memProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Camisa", CategoryID: "cat-1", IsActive: true},
	}}
	skus := &memSKURepo{skus: map[string]*entity.SKU{}}
	return catalog.NewProductUseCase(products, skus, nil),
		catalog.NewSKUUseCase(skus, products, nil),
		products, skus
}

func validSKUInput() catalog.SKUInput {
	return catalog.SKUInput{
		ProductID:    "prod-1",
		SKUCode:      "ABC-1",
		Price:        decimal.NewFromInt(100),
		Cost:         decimal.NewFromInt(60),
		InitialStock: 10,
		ReorderPoint: 5,
		IsActive:     true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad de código SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestSKUCreate_CodigoDuplicadoSinDistinguirMayusculas(t *testing.T) {
	_, skuUC, _, _ := setup()
	ctx := context.Background()

	_, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)

	// Mismo código con otra capitalización: debe rechazarse.
	dup := validSKUInput()
	dup.SKUCode = "abc-1"
	_, err = skuUC.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestSKUUpdate_ConservarSuPropioCodigoEsValido(t *testing.T) {
	_, skuUC, _, _ := setup()
	ctx := context.Background()

	created, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)

	// Reenviar el mismo código (incluso recapitalizado) en la edición del
	// propio SKU no es un duplicado.
	in := validSKUInput()
	in.SKUCode = "abc-1"
	updated, err := skuUC.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "abc-1", updated.SKUCode)
}

func TestSKUUpdate_TomarCodigoAjenoEsDuplicado(t *testing.T) {
	_, skuUC, _, _ := setup()
	ctx := context.Background()

	_, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)
	second := validSKUInput()
	second.SKUCode = "XYZ-9"
	otro, err := skuUC.Create(ctx, second)
	require.NoError(t, err)

	in := validSKUInput()
	in.SKUCode = "ABC-1"
	_, err = skuUC.Update(ctx, otro.ID, in)
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock y costo inmutables por la vía de catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSKUUpdate_NoTocaStockNiCosto(t *testing.T) {
	_, skuUC, _, skus := setup()
	ctx := context.Background()

	created, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)
	assert.Equal(t, 10, created.Stock, "el stock inicial solo se fija al crear")

	// Simular movimientos posteriores del motor.
	skus.skus[created.ID].Stock = 42
	skus.skus[created.ID].Cost = decimal.NewFromInt(75)

	in := validSKUInput()
	in.Price = decimal.NewFromInt(120)
	in.InitialStock = 999 // debe ignorarse
	in.Cost = decimal.NewFromInt(1)
	updated, err := skuUC.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 42, updated.Stock)
	assert.True(t, updated.Cost.Equal(decimal.NewFromInt(75)))
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(120)), "el precio sí es editable")
}

func TestSKUUpdate_ReasignaProducto(t *testing.T) {
	_, skuUC, products, skus := setup()
	ctx := context.Background()
	products.products["prod-2"] = &entity.Product{ID: "prod-2", Name: "Pantalón", CategoryID: "cat-1", IsActive: true}

	created, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)

	in := validSKUInput()
	in.ProductID = "prod-2"
	updated, err := skuUC.Update(ctx, created.ID, in)
	require.NoError(t, err)

	// Lo que responde la API y lo que quedó guardado deben coincidir.
	assert.Equal(t, "prod-2", updated.ProductID)
	assert.Equal(t, "prod-2", skus.skus[created.ID].ProductID)
}

func TestSKUUpdate_ReasignarAProductoInexistente(t *testing.T) {
	_, skuUC, _, skus := setup()
	ctx := context.Background()

	created, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)

	in := validSKUInput()
	in.ProductID = "prod-fantasma"
	_, err = skuUC.Update(ctx, created.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "prod-1", skus.skus[created.ID].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestSKUCreate_ProductoInexistente(t *testing.T) {
	_, skuUC, _, _ := setup()

	in := validSKUInput()
	in.ProductID = "prod-fantasma"
	_, err := skuUC.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSKUCreate_CamposObligatorios(t *testing.T) {
	_, skuUC, _, _ := setup()
	ctx := context.Background()

	sinCodigo := validSKUInput()
	sinCodigo.SKUCode = ""
	_, err := skuUC.Create(ctx, sinCodigo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	precioNegativo := validSKUInput()
	precioNegativo.Price = decimal.NewFromInt(-1)
	_, err = skuUC.Create(ctx, precioNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_ConSKUsRechazado(t *testing.T) {
	productUC, skuUC, products, _ := setup()
	ctx := context.Background()

	_, err := skuUC.Create(ctx, validSKUInput())
	require.NoError(t, err)

	err = productUC.Delete(ctx, "prod-1")
	assert.ErrorIs(t, err, domain.ErrProductHasSKUs)
	assert.NotNil(t, products.products["prod-1"], "el producto debe seguir existiendo")
}

func TestProductDelete_SinSKUs(t *testing.T) {
	productUC, _, products, _ := setup()

	err := productUC.Delete(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Nil(t, products.products["prod-1"])
}

func TestProductCreate_RequiereNombreYCategoria(t *testing.T) {
	productUC, _, _, _ := setup()
	ctx := context.Background()

	_, err := productUC.Create(ctx, "user-1", catalog.ProductInput{Name: "", CategoryID: "cat-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = productUC.Create(ctx, "user-1", catalog.ProductInput{Name: "Pantalón", CategoryID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	productUC, _, _, _ := setup()

	_, err := productUC.Update(context.Background(), "no-existe", catalog.ProductInput{Name: "X", CategoryID: "cat-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
