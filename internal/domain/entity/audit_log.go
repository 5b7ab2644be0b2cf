package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditStockIn  = "STOCK_IN"
	AuditStockOut = "STOCK_OUT"
)

// AuditLog entrada de bitácora best-effort: se escribe después del commit y su
// fallo nunca revierte la transacción primaria.
type AuditLog struct {
	ID        string
	Action    string
	EntityID  string // id de la transacción de inventario
	Summary   string
	ActorID   string
	ActorName string
	CreatedAt time.Time
}
