package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// Audit logs are append-only; there is no update or delete.

func (r *Repos) AppendAuditLog(ctx context.Context, l *domain.AuditLog) error {
	id, err := r.insert(ctx, `INSERT INTO audit_logs(user_id, action, details, timestamp) VALUES (?,?,?,?)`,
		l.UserID, l.Action, l.Details, l.Timestamp)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *Repos) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	out := []domain.AuditLog{}
	err := r.selectAll(ctx, &out,
		`SELECT id, user_id, action, details, timestamp FROM audit_logs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	return out, err
}
