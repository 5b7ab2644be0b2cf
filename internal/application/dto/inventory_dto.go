package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// TransactionLineRequest línea propuesta de una transacción.
type TransactionLineRequest struct {
	SKUID     string          `json:"sku_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// RegisterTransactionRequest cuerpo de POST /api/inventory/transactions.
// transaction_date es la fecha de negocio (yyyy-mm-dd); vacía = hoy.
type RegisterTransactionRequest struct {
	Direction        string                   `json:"direction" validate:"required,oneof=IN OUT ADJUSTMENT"`
	SourceType       string                   `json:"source_type" validate:"omitempty,oneof=SUPPLIER RTS MANUAL"`
	ReasonCategoryID string                   `json:"reason_category_id" validate:"required"`
	SupplierID       string                   `json:"supplier_id"`
	PlatformID       string                   `json:"platform_id"`
	Lines            []TransactionLineRequest `json:"lines" validate:"required,min=1,dive"`
	ReferenceNumber  string                   `json:"reference_number"`
	CustomerName     string                   `json:"customer_name"`
	Notes            string                   `json:"notes"`
	TransactionDate  string                   `json:"transaction_date"`
}

// RegisterTransactionResponse resumen del movimiento confirmado.
type RegisterTransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// TransactionLineDTO línea congelada de un asiento.
type TransactionLineDTO struct {
	SKUID       string          `json:"sku_id"`
	SKUCode     string          `json:"sku_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// TransactionDTO asiento del libro para respuestas.
type TransactionDTO struct {
	ID               string               `json:"id"`
	Direction        string               `json:"direction"`
	SourceType       string               `json:"source_type,omitempty"`
	ReasonCategoryID string               `json:"reason_category_id"`
	SupplierID       string               `json:"supplier_id,omitempty"`
	PlatformID       string               `json:"platform_id,omitempty"`
	Lines            []TransactionLineDTO `json:"lines"`
	TotalQuantity    int                  `json:"total_quantity"`
	TotalAmount      decimal.Decimal      `json:"total_amount"`
	PlatformFee      decimal.Decimal      `json:"platform_fee"`
	NetAmount        decimal.Decimal      `json:"net_amount"`
	ReferenceNumber  string               `json:"reference_number,omitempty"`
	CustomerName     string               `json:"customer_name,omitempty"`
	Notes            string               `json:"notes,omitempty"`
	TransactionDate  time.Time            `json:"transaction_date"`
	CreatedAt        time.Time            `json:"created_at"`
	CreatedBy        string               `json:"created_by"`
	CreatedByName    string               `json:"created_by_name"`
}

// FromTransaction mapea la entidad al DTO.
func FromTransaction(t *entity.InventoryTransaction) TransactionDTO {
	lines := make([]TransactionLineDTO, 0, len(t.LineItems))
	for _, li := range t.LineItems {
		lines = append(lines, TransactionLineDTO{
			SKUID:       li.SKUID,
			SKUCode:     li.SKUCode,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			UnitCost:    li.UnitCost,
			TotalPrice:  li.TotalPrice,
		})
	}
	return TransactionDTO{
		ID:               t.ID,
		Direction:        t.Direction,
		SourceType:       t.SourceType,
		ReasonCategoryID: t.ReasonCategoryID,
		SupplierID:       t.SupplierID,
		PlatformID:       t.PlatformID,
		Lines:            lines,
		TotalQuantity:    t.TotalQuantity,
		TotalAmount:      t.TotalAmount,
		PlatformFee:      t.PlatformFee,
		NetAmount:        t.NetAmount,
		ReferenceNumber:  t.ReferenceNumber,
		CustomerName:     t.CustomerName,
		Notes:            t.Notes,
		TransactionDate:  t.TransactionDate,
		CreatedAt:        t.CreatedAt,
		CreatedBy:        t.CreatedBy,
		CreatedByName:    t.CreatedByName,
	}
}
