package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de transacción de inventario.
const (
	DirectionIN         = "IN"
	DirectionOUT        = "OUT"
	DirectionADJUSTMENT = "ADJUSTMENT" // dirección aritmética implícita en la razón
)

// Origen de una entrada (solo IN).
const (
	SourceSupplier = "SUPPLIER"
	SourceRTS      = "RTS" // return to sender / devolución
	SourceManual   = "MANUAL"
)

// TransactionLineItem es una línea embebida de la transacción. SKUCode y
// ProductName quedan congelados al momento de la transacción para que el
// histórico siga siendo legible aunque el SKU se renombre o elimine después.
// Se serializa a JSONB dentro del registro de la transacción.
type TransactionLineItem struct {
	SKUID       string          `json:"skuId"`
	SKUCode     string          `json:"skuCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TotalPrice  decimal.Decimal `json:"totalPrice"` // qty×precio en OUT, qty×costo en IN
}

// InventoryTransaction es un asiento inmutable del libro de inventario:
// se crea junto con sus efectos de stock en una sola transacción de BD y
// nunca se actualiza ni elimina (append-only, pista de auditoría).
type InventoryTransaction struct {
	ID               string
	Direction        string
	SourceType       string // solo IN: SUPPLIER | RTS | MANUAL
	ReasonCategoryID string
	SupplierID       string // opcional (IN)
	PlatformID       string // opcional (OUT)
	LineItems        []TransactionLineItem
	TotalQuantity    int
	TotalAmount      decimal.Decimal
	PlatformFee      decimal.Decimal // solo OUT con plataforma
	NetAmount        decimal.Decimal // solo OUT
	ReferenceNumber  string
	CustomerName     string
	Notes            string
	TransactionDate  time.Time // fecha de negocio, la da el usuario
	CreatedAt        time.Time // fecha de escritura
	CreatedBy        string
	CreatedByName    string
}
