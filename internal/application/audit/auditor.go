// Package audit implementa la bitácora best-effort: canal lateral que nunca
// falla ni revierte la transacción primaria ya confirmada.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Auditor escribe entradas de bitácora fuera del camino crítico. Un fallo de
// escritura solo se registra en el log.
type Auditor struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// New construye el auditor.
func New(repo repository.AuditRepository, log *logger.Logger) *Auditor {
	return &Auditor{repo: repo, log: log}
}

// StockMovementCommitted registra un movimiento confirmado (fire-and-forget).
func (a *Auditor) StockMovementCommitted(action, transactionID, summary, actorID, actorName string) {
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		EntityID:  transactionID,
		Summary:   summary,
		ActorID:   actorID,
		ActorName: actorName,
		CreatedAt: time.Now(),
	}
	go func() {
		if err := a.repo.Create(entry); err != nil {
			a.log.Warn().Err(err).Str("action", action).Str("transaction_id", transactionID).
				Msg("entrada de bitácora no registrada")
		}
	}()
}

// Recent devuelve las últimas n entradas para la pantalla de auditoría.
func (a *Auditor) Recent(n int) ([]*entity.AuditLog, error) {
	return a.repo.ListRecent(n)
}
