package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// AuditRepository puerto de la bitácora. La escritura es best-effort: el caller
// registra el error y sigue; nunca propaga.
type AuditRepository interface {
	Create(log *entity.AuditLog) error
	ListRecent(n int) ([]*entity.AuditLog, error)
}
