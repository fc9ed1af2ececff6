package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
)

// AuditLogRepo implements port.AuditLogRepository. The trail is append-only.
type AuditLogRepo struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepo creates a new repository backed by PostgreSQL.
func NewAuditLogRepo(pool *pgxpool.Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Record appends an audit entry.
func (r *AuditLogRepo) Record(ctx context.Context, entry model.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, user_id, action, entity, entity_id, detail, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Action,
		entry.Entity, entry.EntityID, entry.Detail, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
