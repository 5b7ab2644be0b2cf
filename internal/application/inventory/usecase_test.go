package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El runner clona el estado y solo lo confirma si el callback
// termina sin error, igual que una transacción real: así los tests de
// atomicidad observan el rollback de verdad.
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	skus map[string]*entity.SKU
	txns []*entity.InventoryTransaction
}

func newStore() *store {
	return &store{skus: make(map[string]*entity.SKU)}
}

func (s *store) clone() *store {
	c := newStore()
	for id, sku := range s.skus {
		copied := *sku
		c.skus[id] = &copied
	}
	c.txns = append(c.txns, s.txns...)
	return c
}

type fakeSKURepo struct {
	s *store

	// Inyección de fallos por paso para los tests de atomicidad.
	stockErrAt int // falla la n-ésima llamada a UpdateStock (1-based); 0 = nunca
	stockCalls int
	costErr    error
}

var _ repository.SKURepository = (*fakeSKURepo)(nil)

func (r *fakeSKURepo) Create(sku *entity.SKU) error {
	r.s.skus[sku.ID] = sku
	return nil
}

func (r *fakeSKURepo) GetByID(id string) (*entity.SKU, error) {
	sku, ok := r.s.skus[id]
	if !ok {
		return nil, nil
	}
	copied := *sku
	return &copied, nil
}

func (r *fakeSKURepo) GetByCode(code string) (*entity.SKU, error) {
	for _, sku := range r.s.skus {
		if strings.EqualFold(sku.SKUCode, code) {
			copied := *sku
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSKURepo) ListByProduct(productID string) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for _, sku := range r.s.skus {
		if sku.ProductID == productID {
			copied := *sku
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSKURepo) List(onlyActive bool) ([]*entity.SKU, error) {
	var out []*entity.SKU
	for _, sku := range r.s.skus {
		if onlyActive && !sku.IsActive {
			continue
		}
		copied := *sku
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSKURepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, sku := range r.s.skus {
		if sku.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSKURepo) Update(sku *entity.SKU) error {
	r.s.skus[sku.ID] = sku
	return nil
}

func (r *fakeSKURepo) Delete(id string) error {
	delete(r.s.skus, id)
	return nil
}

func (r *fakeSKURepo) GetForUpdate(id string) (*entity.SKU, error) {
	return r.GetByID(id)
}

func (r *fakeSKURepo) UpdateStock(id string, stock int) error {
	r.stockCalls++
	if r.stockErrAt > 0 && r.stockCalls == r.stockErrAt {
		return errors.New("conexión perdida")
	}
	sku, ok := r.s.skus[id]
	if !ok {
		return errors.New("sku no existe")
	}
	sku.Stock = stock
	return nil
}

func (r *fakeSKURepo) UpdateCost(id string, cost decimal.Decimal) error {
	if r.costErr != nil {
		return r.costErr
	}
	sku, ok := r.s.skus[id]
	if !ok {
		return errors.New("sku no existe")
	}
	sku.Cost = cost
	return nil
}

type fakeLedger struct {
	s         *store
	createErr error
}

var _ repository.TransactionRepository = (*fakeLedger)(nil)

func (r *fakeLedger) Create(txn *entity.InventoryTransaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.s.txns = append(r.s.txns, txn)
	return nil
}

func (r *fakeLedger) GetByID(id string) (*entity.InventoryTransaction, error) {
	for _, t := range r.s.txns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeLedger) ListByDateRange(from, to time.Time, direction string) ([]*entity.InventoryTransaction, error) {
	var out []*entity.InventoryTransaction
	for _, t := range r.s.txns {
		if t.TransactionDate.Before(from) || t.TransactionDate.After(to) {
			continue
		}
		if direction != "" && t.Direction != direction {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeLedger) ListRecent(n int) ([]*entity.InventoryTransaction, error) {
	if len(r.s.txns) <= n {
		return r.s.txns, nil
	}
	return r.s.txns[len(r.s.txns)-n:], nil
}

type fakeRunner struct {
	s *store

	// Fallos inyectables en cada paso del lote: asiento del libro, ajuste de
	// stock y actualización de costo.
	ledgerErr  error
	stockErrAt int
	costErr    error
}

func (r *fakeRunner) Run(ctx context.Context, fn func(
	ledger repository.TransactionRepository,
	skuRepo repository.SKURepository,
) error) error {
	working := r.s.clone()
	err := fn(
		&fakeLedger{s: working, createErr: r.ledgerErr},
		&fakeSKURepo{s: working, stockErrAt: r.stockErrAt, costErr: r.costErr},
	)
	if err != nil {
		return err
	}
	r.s.skus = working.skus
	r.s.txns = working.txns
	return nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.products, id); return nil }
func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeReasonRepo struct{ reasons map[string]*entity.ReasonCategory }

var _ repository.ReasonCategoryRepository = (*fakeReasonRepo)(nil)

func (r *fakeReasonRepo) Create(rc *entity.ReasonCategory) error { r.reasons[rc.ID] = rc; return nil }
func (r *fakeReasonRepo) GetByID(id string) (*entity.ReasonCategory, error) {
	return r.reasons[id], nil
}
func (r *fakeReasonRepo) Update(rc *entity.ReasonCategory) error { r.reasons[rc.ID] = rc; return nil }
func (r *fakeReasonRepo) List(onlyActive bool) ([]*entity.ReasonCategory, error) {
	var out []*entity.ReasonCategory
	for _, rc := range r.reasons {
		out = append(out, rc)
	}
	return out, nil
}
func (r *fakeReasonRepo) ListByDirection(direction string) ([]*entity.ReasonCategory, error) {
	var out []*entity.ReasonCategory
	for _, rc := range r.reasons {
		if rc.IsActive && rc.Direction == direction {
			out = append(out, rc)
		}
	}
	return out, nil
}

type fakePlatformRepo struct{ platforms map[string]*entity.Platform }

var _ repository.PlatformRepository = (*fakePlatformRepo)(nil)

func (r *fakePlatformRepo) Create(p *entity.Platform) error { r.platforms[p.ID] = p; return nil }
func (r *fakePlatformRepo) GetByID(id string) (*entity.Platform, error) {
	return r.platforms[id], nil
}
func (r *fakePlatformRepo) Update(p *entity.Platform) error { r.platforms[p.ID] = p; return nil }
func (r *fakePlatformRepo) List(onlyActive bool) ([]*entity.Platform, error) {
	var out []*entity.Platform
	for _, p := range r.platforms {
		out = append(out, p)
	}
	return out, nil
}

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) List(onlyActive bool) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

type fakeSettingsRepo struct{ settings entity.SystemSettings }

var _ repository.SettingsRepository = (*fakeSettingsRepo)(nil)

func (r *fakeSettingsRepo) Get() (*entity.SystemSettings, error) {
	copied := r.settings
	return &copied, nil
}
func (r *fakeSettingsRepo) Save(s *entity.SystemSettings) error {
	r.settings = *s
	return nil
}

type recordedAudit struct {
	action, transactionID, summary string
}

type fakeAuditNotifier struct{ entries []recordedAudit }

func (a *fakeAuditNotifier) StockMovementCommitted(action, transactionID, summary, actorID, actorName string) {
	a.entries = append(a.entries, recordedAudit{action: action, transactionID: transactionID, summary: summary})
}

type fakeSnapshotNotifier struct{ events []string }

func (n *fakeSnapshotNotifier) SnapshotChanged(collection, action string) {
	n.events = append(n.events, collection+":"+action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *inventory.RegisterTransactionUseCase
	store    *store
	runner   *fakeRunner
	settings *fakeSettingsRepo
	audit    *fakeAuditNotifier
	events   *fakeSnapshotNotifier
}

const (
	skuShirtM     = "sku-shirt-m"
	reasonSale    = "reason-sale"
	reasonRestock = "reason-restock"
	reasonDamage  = "reason-damage"
	reasonFound   = "reason-found"
	platformShopA = "platform-a"
	supplierAcme  = "supplier-acme"
)

var actor = inventory.Identity{ID: "user-1", DisplayName: "Ana", Email: "ana@negocio.ph", Role: entity.RoleAdmin}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newStore()
	st.skus[skuShirtM] = &entity.SKU{
		ID:           skuShirtM,
		ProductID:    "prod-shirt",
		SKUCode:      "SHIRT-M",
		Price:        decimal.NewFromInt(100),
		Cost:         decimal.NewFromInt(60),
		Stock:        20,
		ReorderPoint: 5,
		IsActive:     true,
	}

	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-shirt": {ID: "prod-shirt", Name: "Camisa básica", CategoryID: "cat-tops", IsActive: true},
	}}
	reasons := &fakeReasonRepo{reasons: map[string]*entity.ReasonCategory{
		reasonSale:    {ID: reasonSale, Name: "Venta", Direction: entity.DirectionOUT, RequiresPlatform: true, IsActive: true},
		reasonRestock: {ID: reasonRestock, Name: "Compra", Direction: entity.DirectionIN, RequiresSupplier: true, IsActive: true},
		reasonDamage:  {ID: reasonDamage, Name: "Dañado", Direction: entity.DirectionOUT, IsActive: true},
		reasonFound:   {ID: reasonFound, Name: "Encontrado", Direction: entity.DirectionIN, IsActive: true},
	}}
	platforms := &fakePlatformRepo{platforms: map[string]*entity.Platform{
		platformShopA: {ID: platformShopA, Name: "Shopee", FeePercentage: decimal.NewFromInt(5), IsActive: true},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		supplierAcme: {ID: supplierAcme, Name: "Acme Textiles", IsActive: true},
	}}
	settings := &fakeSettingsRepo{settings: entity.SystemSettings{
		BusinessName:        "Tienda Test",
		Currency:            "PHP",
		CurrencySymbol:      "₱",
		EnableLowStockAlert: true,
		EnableNegativeStock: false,
	}}

	runner := &fakeRunner{s: st}
	auditN := &fakeAuditNotifier{}
	eventsN := &fakeSnapshotNotifier{}

	uc := inventory.NewRegisterTransactionUseCase(
		runner, &fakeSKURepo{s: st}, products, reasons, platforms, suppliers,
		settings, auditN, eventsN,
	)
	return &fixture{uc: uc, store: st, runner: runner, settings: settings, audit: auditN, events: eventsN}
}

func saleInput(qty int) inventory.TransactionInput {
	return inventory.TransactionInput{
		Direction:        entity.DirectionOUT,
		ReasonCategoryID: reasonSale,
		PlatformID:       platformShopA,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: qty, UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SalidaFeliz(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.Register(context.Background(), actor, saleInput(15))
	require.NoError(t, err)

	// Resumen: 15×100 = 1500 bruto, 5% = 75 comisión, 1425 neto.
	assert.Equal(t, 15, result.TotalQuantity)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(1500)), "bruto fue %s", result.TotalAmount)
	assert.True(t, result.PlatformFee.Equal(decimal.NewFromInt(75)), "comisión fue %s", result.PlatformFee)
	assert.True(t, result.NetAmount.Equal(decimal.NewFromInt(1425)), "neto fue %s", result.NetAmount)

	// Efectos: stock 20-15=5 y un asiento en el libro.
	assert.Equal(t, 5, f.store.skus[skuShirtM].Stock)
	require.Len(t, f.store.txns, 1)
	txn := f.store.txns[0]
	assert.Equal(t, entity.DirectionOUT, txn.Direction)
	assert.Equal(t, actor.ID, txn.CreatedBy)
	assert.Equal(t, actor.DisplayName, txn.CreatedByName)

	// Snapshot congelado en la línea.
	require.Len(t, txn.LineItems, 1)
	assert.Equal(t, "SHIRT-M", txn.LineItems[0].SKUCode)
	assert.Equal(t, "Camisa básica", txn.LineItems[0].ProductName)

	// Notificaciones post-commit.
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, entity.AuditStockOut, f.audit.entries[0].action)
	assert.Contains(t, f.events.events, "skus:stock_update")
	assert.Contains(t, f.events.events, "transactions:created")
}

func TestRegister_EntradaActualizaCosto(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		SourceType:       entity.SourceSupplier,
		ReasonCategoryID: reasonRestock,
		SupplierID:       supplierAcme,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: 10, UnitCost: decimal.NewFromInt(80)},
		},
	})
	require.NoError(t, err)

	// Stock sube y el costo guardado pasa a ser el último costo de entrada.
	assert.Equal(t, 30, f.store.skus[skuShirtM].Stock)
	assert.True(t, f.store.skus[skuShirtM].Cost.Equal(decimal.NewFromInt(80)),
		"last-cost-wins: el costo debe ser 80, fue %s", f.store.skus[skuShirtM].Cost)

	// El total de una entrada se valoriza al costo: 10×80 = 800.
	require.Len(t, f.store.txns, 1)
	assert.True(t, f.store.txns[0].TotalAmount.Equal(decimal.NewFromInt(800)))
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, entity.AuditStockIn, f.audit.entries[0].action)
}

func TestRegister_EntradaSinCostoUsaElGuardado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		ReasonCategoryID: reasonFound,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// Sin costo en la línea, hereda el costo guardado (60) y no lo cambia.
	assert.True(t, f.store.skus[skuShirtM].Cost.Equal(decimal.NewFromInt(60)))
	assert.True(t, f.store.txns[0].LineItems[0].UnitCost.Equal(decimal.NewFromInt(60)))
}

func TestRegister_SalidaNuncaTocaPrecio(t *testing.T) {
	f := newFixture(t)

	// Venta a un precio distinto del de catálogo.
	input := saleInput(1)
	input.Lines[0].UnitPrice = decimal.NewFromInt(150)
	_, err := f.uc.Register(context.Background(), actor, input)
	require.NoError(t, err)

	// El precio de catálogo queda intacto; la asimetría con el costo es deliberada.
	assert.True(t, f.store.skus[skuShirtM].Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, f.store.skus[skuShirtM].Cost.Equal(decimal.NewFromInt(60)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobreventa y stock negativo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SobreventaRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, saleInput(25))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "SHIRT-M", "el error debe nombrar el SKU")

	// Nada cambió: ni stock ni libro.
	assert.Equal(t, 20, f.store.skus[skuShirtM].Stock)
	assert.Empty(t, f.store.txns)
	assert.Empty(t, f.audit.entries)
}

func TestRegister_SobreventaAgregadaEntreLineas(t *testing.T) {
	f := newFixture(t)

	// Dos líneas del mismo SKU: 12+12=24 > 20 aunque cada una quepa sola.
	input := inventory.TransactionInput{
		Direction:        entity.DirectionOUT,
		ReasonCategoryID: reasonSale,
		PlatformID:       platformShopA,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: 12, UnitPrice: decimal.NewFromInt(100)},
			{SKUID: skuShirtM, Quantity: 12, UnitPrice: decimal.NewFromInt(100)},
		},
	}
	_, err := f.uc.Register(context.Background(), actor, input)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 20, f.store.skus[skuShirtM].Stock)
}

func TestRegister_StockNegativoPermitido(t *testing.T) {
	f := newFixture(t)
	f.settings.settings.EnableNegativeStock = true

	result, err := f.uc.Register(context.Background(), actor, saleInput(25))
	require.NoError(t, err)
	assert.Equal(t, 25, result.TotalQuantity)
	assert.Equal(t, -5, f.store.skus[skuShirtM].Stock)
}

func TestRegister_SegundaSalidaConcurrenteRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, saleInput(15))
	require.NoError(t, err)
	assert.Equal(t, 5, f.store.skus[skuShirtM].Stock)

	// La segunda salida de 10 ya no cabe en el stock restante de 5.
	_, err = f.uc.Register(context.Background(), actor, saleInput(10))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.store.skus[skuShirtM].Stock)
	assert.Len(t, f.store.txns, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Razones, direcciones y requisitos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DireccionDeRazonDebeCoincidir(t *testing.T) {
	f := newFixture(t)

	// Razón de salida usada en una entrada.
	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		ReasonCategoryID: reasonSale,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_AjusteHeredaDireccionDeLaRazon(t *testing.T) {
	f := newFixture(t)

	// ADJUSTMENT con razón de entrada: suma stock.
	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionADJUSTMENT,
		ReasonCategoryID: reasonFound,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 23, f.store.skus[skuShirtM].Stock)

	// ADJUSTMENT con razón de salida: resta y respeta la regla de sobreventa.
	_, err = f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionADJUSTMENT,
		ReasonCategoryID: reasonDamage,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 30}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 23, f.store.skus[skuShirtM].Stock)
}

func TestRegister_AjusteDeSalidaAuditaComoStockOut(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionADJUSTMENT,
		ReasonCategoryID: reasonDamage,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, entity.AuditStockOut, f.audit.entries[0].action)
	assert.Equal(t, 18, f.store.skus[skuShirtM].Stock)
}

func TestRegister_PlataformaExigidaPorLaRazon(t *testing.T) {
	f := newFixture(t)

	input := saleInput(1)
	input.PlatformID = ""
	_, err := f.uc.Register(context.Background(), actor, input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProveedorExigidoPorLaRazon(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		ReasonCategoryID: reasonRestock,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 1, UnitCost: decimal.NewFromInt(60)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_SourceTypeSoloEnEntradas(t *testing.T) {
	f := newFixture(t)

	input := saleInput(1)
	input.SourceType = entity.SourceManual
	_, err := f.uc.Register(context.Background(), actor, input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RazonInactivaRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionOUT,
		ReasonCategoryID: "reason-que-no-existe",
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SinLineasRechazada(t *testing.T) {
	f := newFixture(t)

	input := saleInput(1)
	input.Lines = nil
	_, err := f.uc.Register(context.Background(), actor, input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CantidadNoPositivaRechazada(t *testing.T) {
	f := newFixture(t)

	for _, qty := range []int{0, -5} {
		input := saleInput(qty)
		_, err := f.uc.Register(context.Background(), actor, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestRegister_SKUInactivoRechazado(t *testing.T) {
	f := newFixture(t)
	f.store.skus[skuShirtM].IsActive = false

	_, err := f.uc.Register(context.Background(), actor, saleInput(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_FalloDelLibroRevierteStock(t *testing.T) {
	f := newFixture(t)
	f.runner.ledgerErr = errors.New("disco lleno")

	_, err := f.uc.Register(context.Background(), actor, saleInput(15))
	require.Error(t, err)

	// El ajuste de stock no puede sobrevivir sin su asiento.
	assert.Equal(t, 20, f.store.skus[skuShirtM].Stock)
	assert.Empty(t, f.store.txns)
	assert.Empty(t, f.audit.entries, "sin commit no hay bitácora")
	assert.Empty(t, f.events.events, "sin commit no hay eventos")
}

// Fallo a mitad del lote: la primera línea ya ajustó su SKU cuando la segunda
// falla; nada de eso puede sobrevivir al rollback.
func TestRegister_FalloAMitadDelLoteNoDejaAjustesParciales(t *testing.T) {
	f := newFixture(t)
	f.store.skus["sku-shirt-l"] = &entity.SKU{
		ID:           "sku-shirt-l",
		ProductID:    "prod-shirt",
		SKUCode:      "SHIRT-L",
		Price:        decimal.NewFromInt(120),
		Cost:         decimal.NewFromInt(70),
		Stock:        8,
		ReorderPoint: 5,
		IsActive:     true,
	}
	f.runner.stockErrAt = 2

	input := inventory.TransactionInput{
		Direction:        entity.DirectionOUT,
		ReasonCategoryID: reasonSale,
		PlatformID:       platformShopA,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
			{SKUID: "sku-shirt-l", Quantity: 3, UnitPrice: decimal.NewFromInt(120)},
		},
	}
	_, err := f.uc.Register(context.Background(), actor, input)
	require.Error(t, err)

	assert.Equal(t, 20, f.store.skus[skuShirtM].Stock, "el ajuste de la primera línea debe revertirse")
	assert.Equal(t, 8, f.store.skus["sku-shirt-l"].Stock)
	assert.Empty(t, f.store.txns)
	assert.Empty(t, f.audit.entries)
}

// Fallo en la actualización de costo de una entrada: el stock ya ajustado de
// esa misma línea se revierte con el resto.
func TestRegister_FalloDeCostoRevierteStock(t *testing.T) {
	f := newFixture(t)
	f.runner.costErr = errors.New("conexión perdida")

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		SourceType:       entity.SourceSupplier,
		ReasonCategoryID: reasonRestock,
		SupplierID:       supplierAcme,
		Lines: []inventory.LineInput{
			{SKUID: skuShirtM, Quantity: 10, UnitCost: decimal.NewFromInt(80)},
		},
	})
	require.Error(t, err)

	assert.Equal(t, 20, f.store.skus[skuShirtM].Stock)
	assert.True(t, f.store.skus[skuShirtM].Cost.Equal(decimal.NewFromInt(60)))
	assert.Empty(t, f.store.txns)
}

// Conservación: tras una serie de movimientos, el stock final es el inicial
// más las entradas menos las salidas del libro.
func TestRegister_ConservacionDeStock(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), actor, inventory.TransactionInput{
		Direction:        entity.DirectionIN,
		ReasonCategoryID: reasonFound,
		Lines:            []inventory.LineInput{{SKUID: skuShirtM, Quantity: 7}},
	})
	require.NoError(t, err)
	_, err = f.uc.Register(context.Background(), actor, saleInput(12))
	require.NoError(t, err)
	_, err = f.uc.Register(context.Background(), actor, saleInput(100)) // rechazada
	require.Error(t, err)

	in, out := 0, 0
	for _, txn := range f.store.txns {
		for _, line := range txn.LineItems {
			if txn.Direction == entity.DirectionIN {
				in += line.Quantity
			} else {
				out += line.Quantity
			}
		}
	}
	assert.Equal(t, 20+in-out, f.store.skus[skuShirtM].Stock)
}
