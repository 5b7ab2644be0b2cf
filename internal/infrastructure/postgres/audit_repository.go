package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo adaptador de la bitácora sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func (r *AuditRepo) Create(log *entity.AuditLog) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO audit_logs (id, action, entity_id, summary, actor_id, actor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.Action, log.EntityID, log.Summary, log.ActorID, log.ActorName, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditRepo) ListRecent(n int) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, action, entity_id, summary, actor_id, actor_name, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Action, &l.EntityID, &l.Summary, &l.ActorID, &l.ActorName, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
