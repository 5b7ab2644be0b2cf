package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/money"
)

// RegisterTransactionUseCase es el motor de mutación de stock: valida una
// transacción propuesta y la aplica de forma atómica: un asiento en el libro
// más el ajuste de stock de cada SKU referenciado, como unidad todo-o-nada.
// Ningún otro camino de código puede cambiar SKU.Stock.
type RegisterTransactionUseCase struct {
	txRunner     TxRunner
	skuRepo      repository.SKURepository
	productRepo  repository.ProductRepository
	reasonRepo   repository.ReasonCategoryRepository
	platformRepo repository.PlatformRepository
	supplierRepo repository.SupplierRepository
	settingsRepo repository.SettingsRepository
	audit        AuditNotifier    // opcional
	events       SnapshotNotifier // opcional
}

// NewRegisterTransactionUseCase construye el caso de uso. audit y events pueden
// ser nil (sin bitácora / sin suscriptores).
func NewRegisterTransactionUseCase(
	txRunner TxRunner,
	skuRepo repository.SKURepository,
	productRepo repository.ProductRepository,
	reasonRepo repository.ReasonCategoryRepository,
	platformRepo repository.PlatformRepository,
	supplierRepo repository.SupplierRepository,
	settingsRepo repository.SettingsRepository,
	audit AuditNotifier,
	events SnapshotNotifier,
) *RegisterTransactionUseCase {
	return &RegisterTransactionUseCase{
		txRunner:     txRunner,
		skuRepo:      skuRepo,
		productRepo:  productRepo,
		reasonRepo:   reasonRepo,
		platformRepo: platformRepo,
		supplierRepo: supplierRepo,
		settingsRepo: settingsRepo,
		audit:        audit,
		events:       events,
	}
}

// Identity identidad del usuario que registra (la provee el colaborador de
// identidad; el motor la estampa en el asiento).
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	Role        string
}

// LineInput línea propuesta: SKU + cantidad + precio (OUT) o costo (IN).
type LineInput struct {
	SKUID     string
	Quantity  int
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// TransactionInput transacción propuesta.
type TransactionInput struct {
	Direction        string
	SourceType       string // solo IN
	ReasonCategoryID string
	SupplierID       string
	PlatformID       string
	Lines            []LineInput
	ReferenceNumber  string
	CustomerName     string
	Notes            string
	TransactionDate  time.Time
}

// Result resumen del movimiento confirmado.
type Result struct {
	TransactionID string
	TotalQuantity int
	TotalAmount   decimal.Decimal
	PlatformFee   decimal.Decimal
	NetAmount     decimal.Decimal
}

// Register valida la transacción (fail-fast, antes de cualquier escritura) y la
// aplica. El chequeo de sobreventa se reevalúa dentro de la transacción de BD
// sobre la fila bloqueada: dos salidas concurrentes sobre el mismo SKU no pueden
// pasar ambas si su suma sobrevende, salvo que el stock negativo esté permitido.
func (uc *RegisterTransactionUseCase) Register(ctx context.Context, actor Identity, input TransactionInput) (*Result, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	reason, err := uc.validateReason(input)
	if err != nil {
		return nil, err
	}

	// Dirección aritmética efectiva: ADJUSTMENT hereda la de su razón.
	effectiveDir := input.Direction
	if input.Direction == entity.DirectionADJUSTMENT {
		effectiveDir = reason.Direction
	}

	platform, err := uc.validateRequirements(input, reason)
	if err != nil {
		return nil, err
	}

	skus, products, err := uc.validateLines(input, effectiveDir, settings)
	if err != nil {
		return nil, err
	}

	txn := uc.buildTransaction(actor, input, effectiveDir, platform, skus, products)

	// Aplicación atómica: bloquear cada fila de SKU, reverificar sobreventa
	// sobre el stock actual, ajustar stock (y costo en IN) y escribir el asiento.
	// Cualquier error revierte todo; no hay reintentos automáticos.
	err = uc.txRunner.Run(ctx, func(ledger repository.TransactionRepository, skuRepo repository.SKURepository) error {
		for _, line := range txn.LineItems {
			row, err := skuRepo.GetForUpdate(line.SKUID)
			if err != nil {
				return err
			}
			if row == nil {
				return domain.Validationf("SKU %s ya no existe", line.SKUCode)
			}
			newStock := row.Stock + line.Quantity
			if effectiveDir == entity.DirectionOUT {
				newStock = row.Stock - line.Quantity
				if newStock < 0 && !settings.EnableNegativeStock {
					return fmt.Errorf("SKU %s: solicitado %d, disponible %d: %w",
						line.SKUCode, line.Quantity, row.Stock, domain.ErrInsufficientStock)
				}
			}
			if err := skuRepo.UpdateStock(line.SKUID, newStock); err != nil {
				return err
			}
			// Política last-cost-wins: cada entrada actualiza el costo guardado.
			// La salida nunca actualiza el precio guardado; eso es deliberado.
			if input.Direction == entity.DirectionIN && !line.UnitCost.Equal(row.Cost) {
				if err := skuRepo.UpdateCost(line.SKUID, line.UnitCost); err != nil {
					return err
				}
			}
		}
		return ledger.Create(txn)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyCommitted(settings, txn, effectiveDir, actor)

	return &Result{
		TransactionID: txn.ID,
		TotalQuantity: txn.TotalQuantity,
		TotalAmount:   txn.TotalAmount,
		PlatformFee:   txn.PlatformFee,
		NetAmount:     txn.NetAmount,
	}, nil
}

// validateReason: la razón debe existir, estar activa y su dirección coincidir
// con la de la transacción (para ADJUSTMENT la razón aporta la dirección).
func (uc *RegisterTransactionUseCase) validateReason(input TransactionInput) (*entity.ReasonCategory, error) {
	switch input.Direction {
	case entity.DirectionIN, entity.DirectionOUT, entity.DirectionADJUSTMENT:
	default:
		return nil, domain.Validationf("dirección inválida: %q", input.Direction)
	}
	if input.ReasonCategoryID == "" {
		return nil, domain.Validationf("debe seleccionar una razón")
	}
	reason, err := uc.reasonRepo.GetByID(input.ReasonCategoryID)
	if err != nil {
		return nil, err
	}
	if reason == nil || !reason.IsActive {
		return nil, domain.Validationf("razón no encontrada o inactiva")
	}
	if input.Direction != entity.DirectionADJUSTMENT && reason.Direction != input.Direction {
		return nil, domain.Validationf("la razón %q es de dirección %s, no %s", reason.Name, reason.Direction, input.Direction)
	}
	if input.SourceType != "" {
		if input.Direction != entity.DirectionIN {
			return nil, domain.Validationf("sourceType solo aplica a entradas")
		}
		switch input.SourceType {
		case entity.SourceSupplier, entity.SourceRTS, entity.SourceManual:
		default:
			return nil, domain.Validationf("sourceType inválido: %q", input.SourceType)
		}
	}
	return reason, nil
}

// validateRequirements: los flags de la razón seleccionada son los
// autoritativos, no los campos de la transacción.
func (uc *RegisterTransactionUseCase) validateRequirements(input TransactionInput, reason *entity.ReasonCategory) (*entity.Platform, error) {
	if reason.RequiresPlatform && input.PlatformID == "" {
		return nil, domain.Validationf("la razón %q exige plataforma", reason.Name)
	}
	if reason.RequiresSupplier && input.SupplierID == "" {
		return nil, domain.Validationf("la razón %q exige proveedor", reason.Name)
	}
	if input.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || !supplier.IsActive {
			return nil, domain.Validationf("proveedor no encontrado o inactivo")
		}
	}
	if input.PlatformID == "" {
		return nil, nil
	}
	platform, err := uc.platformRepo.GetByID(input.PlatformID)
	if err != nil {
		return nil, err
	}
	if platform == nil || !platform.IsActive {
		return nil, domain.Validationf("plataforma no encontrada o inactiva")
	}
	return platform, nil
}

// validateLines: al menos una línea; cada SKU existente y activo; cantidades
// positivas; montos no negativos. La sobreventa se prechequea aquí con el stock
// actual y se reverifica con la fila bloqueada dentro de la transacción.
func (uc *RegisterTransactionUseCase) validateLines(
	input TransactionInput,
	effectiveDir string,
	settings *entity.SystemSettings,
) (map[string]*entity.SKU, map[string]*entity.Product, error) {
	if len(input.Lines) == 0 {
		return nil, nil, domain.Validationf("la transacción no tiene líneas")
	}

	skus := make(map[string]*entity.SKU, len(input.Lines))
	products := make(map[string]*entity.Product)
	requested := make(map[string]int, len(input.Lines))

	for i, line := range input.Lines {
		if line.SKUID == "" {
			return nil, nil, domain.Validationf("línea %d: falta el SKU", i+1)
		}
		if line.Quantity <= 0 {
			return nil, nil, domain.Validationf("línea %d: la cantidad debe ser mayor a cero", i+1)
		}
		if line.UnitPrice.IsNegative() || line.UnitCost.IsNegative() {
			return nil, nil, domain.Validationf("línea %d: precio y costo deben ser no negativos", i+1)
		}
		sku, ok := skus[line.SKUID]
		if !ok {
			var err error
			sku, err = uc.skuRepo.GetByID(line.SKUID)
			if err != nil {
				return nil, nil, err
			}
			if sku == nil || !sku.IsActive {
				return nil, nil, domain.Validationf("línea %d: SKU no encontrado o inactivo", i+1)
			}
			skus[line.SKUID] = sku
			if _, ok := products[sku.ProductID]; !ok {
				product, err := uc.productRepo.GetByID(sku.ProductID)
				if err != nil {
					return nil, nil, err
				}
				products[sku.ProductID] = product // puede ser nil: snapshot vacío
			}
		}
		requested[line.SKUID] += line.Quantity
	}

	if effectiveDir == entity.DirectionOUT && !settings.EnableNegativeStock {
		for skuID, qty := range requested {
			if skus[skuID].Stock-qty < 0 {
				return nil, nil, fmt.Errorf("SKU %s: solicitado %d, disponible %d: %w",
					skus[skuID].SKUCode, qty, skus[skuID].Stock, domain.ErrInsufficientStock)
			}
		}
	}
	return skus, products, nil
}

// buildTransaction arma el asiento inmutable con los snapshots de línea
// congelados (código SKU y nombre de producto al momento de la transacción).
func (uc *RegisterTransactionUseCase) buildTransaction(
	actor Identity,
	input TransactionInput,
	effectiveDir string,
	platform *entity.Platform,
	skus map[string]*entity.SKU,
	products map[string]*entity.Product,
) *entity.InventoryTransaction {
	now := time.Now()
	txnDate := input.TransactionDate
	if txnDate.IsZero() {
		txnDate = now
	}

	lineItems := make([]entity.TransactionLineItem, 0, len(input.Lines))
	totalQty := 0
	totalAmount := decimal.Zero
	for _, line := range input.Lines {
		sku := skus[line.SKUID]
		productName := ""
		if p := products[sku.ProductID]; p != nil {
			productName = p.Name
		}
		unitPrice := line.UnitPrice
		unitCost := line.UnitCost
		if unitCost.IsZero() {
			unitCost = sku.Cost
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		lineTotal := qty.Mul(unitPrice)
		if effectiveDir == entity.DirectionIN {
			lineTotal = qty.Mul(unitCost)
		}
		lineItems = append(lineItems, entity.TransactionLineItem{
			SKUID:       line.SKUID,
			SKUCode:     sku.SKUCode,
			ProductName: productName,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			UnitCost:    unitCost,
			TotalPrice:  lineTotal,
		})
		totalQty += line.Quantity
		totalAmount = totalAmount.Add(lineTotal)
	}

	fee := decimal.Zero
	net := decimal.Zero
	if effectiveDir == entity.DirectionOUT {
		if platform != nil {
			fee = domaininv.PlatformFee(totalAmount, platform.FeePercentage)
		}
		net = totalAmount.Sub(fee)
	}

	return &entity.InventoryTransaction{
		ID:               uuid.New().String(),
		Direction:        input.Direction,
		SourceType:       input.SourceType,
		ReasonCategoryID: input.ReasonCategoryID,
		SupplierID:       input.SupplierID,
		PlatformID:       input.PlatformID,
		LineItems:        lineItems,
		TotalQuantity:    totalQty,
		TotalAmount:      totalAmount,
		PlatformFee:      fee,
		NetAmount:        net,
		ReferenceNumber:  input.ReferenceNumber,
		CustomerName:     input.CustomerName,
		Notes:            input.Notes,
		TransactionDate:  txnDate,
		CreatedAt:        now,
		CreatedBy:        actor.ID,
		CreatedByName:    actor.DisplayName,
	}
}

// notifyCommitted emite bitácora y evento de snapshot después del commit.
// Ningún fallo aquí puede revertir ni fallar la transacción ya confirmada.
func (uc *RegisterTransactionUseCase) notifyCommitted(settings *entity.SystemSettings, txn *entity.InventoryTransaction, effectiveDir string, actor Identity) {
	if uc.events != nil {
		uc.events.SnapshotChanged("skus", "stock_update")
		uc.events.SnapshotChanged("transactions", "created")
	}
	if uc.audit == nil {
		return
	}
	action := entity.AuditStockIn
	summary := fmt.Sprintf("Stock In: %d artículos, costo %s",
		txn.TotalQuantity, money.Format(settings.CurrencySymbol, txn.TotalAmount))
	if effectiveDir == entity.DirectionOUT {
		action = entity.AuditStockOut
		summary = fmt.Sprintf("Stock Out: %d artículos, ingreso %s",
			txn.TotalQuantity, money.Format(settings.CurrencySymbol, txn.NetAmount))
	}
	uc.audit.StockMovementCommitted(action, txn.ID, summary, actor.ID, actor.DisplayName)
}
