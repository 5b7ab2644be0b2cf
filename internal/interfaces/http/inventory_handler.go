package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// InventoryHandler maneja el registro de transacciones y el historial (protegido).
type InventoryHandler struct {
	register *inventory.RegisterTransactionUseCase
	ledger   *inventory.LedgerQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterTransactionUseCase, ledger *inventory.LedgerQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, ledger: ledger}
}

// RegisterTransaction godoc
// @Summary      Registrar transacción de inventario (Stock In/Out/Ajuste)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "direction, reason_category_id, lines"
// @Success      201   {object}  dto.RegisterTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) RegisterTransaction(c *fiber.Ctx) error {
	actor := GetIdentity(c)
	if actor.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return validationFailed(c, validator.Summary(errs))
	}

	var txnDate time.Time
	if in.TransactionDate != "" {
		var err error
		txnDate, err = time.ParseInLocation("2006-01-02", in.TransactionDate, time.Local)
		if err != nil {
			return validationFailed(c, "transaction_date debe ser yyyy-mm-dd")
		}
	}

	lines := make([]inventory.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, inventory.LineInput{
			SKUID:     l.SKUID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			UnitCost:  l.UnitCost,
		})
	}

	result, err := h.register.Register(c.Context(), actor, inventory.TransactionInput{
		Direction:        in.Direction,
		SourceType:       in.SourceType,
		ReasonCategoryID: in.ReasonCategoryID,
		SupplierID:       in.SupplierID,
		PlatformID:       in.PlatformID,
		Lines:            lines,
		ReferenceNumber:  in.ReferenceNumber,
		CustomerName:     in.CustomerName,
		Notes:            in.Notes,
		TransactionDate:  txnDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterTransactionResponse{
		TransactionID: result.TransactionID,
		TotalQuantity: result.TotalQuantity,
		TotalAmount:   result.TotalAmount,
		PlatformFee:   result.PlatformFee,
		NetAmount:     result.NetAmount,
	})
}

// GetTransaction godoc
// @Summary      Obtener un asiento del libro por id
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions/{id} [get]
func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	txn, err := h.ledger.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(txn)
}

// ListTransactions godoc
// @Summary      Historial de transacciones por rango de fechas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  true   "yyyy-mm-dd"
// @Param        to         query  string  true   "yyyy-mm-dd"
// @Param        direction  query  string  false  "IN | OUT | ADJUSTMENT"
// @Success      200  {array}  dto.TransactionDTO
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return validationFailed(c, err.Error())
	}
	list, err := h.ledger.ListByDateRange(c.Context(), from, to, c.Query("direction"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "transactions": list})
}

// parseDateRange lee from/to (yyyy-mm-dd) y devuelve el rango cubriendo los
// días completos. Sin parámetros: los últimos 30 días.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if s := c.Query("from"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from debe ser yyyy-mm-dd")
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to debe ser yyyy-mm-dd")
		}
		to = d.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
