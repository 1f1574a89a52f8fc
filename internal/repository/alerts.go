package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func (r *Repos) CreateAlert(ctx context.Context, a *domain.Alert) error {
	id, err := r.insert(ctx,
		`INSERT INTO alerts(device_id, severity, message, is_resolved, timestamp) VALUES (?,?,?,?,?)`,
		a.DeviceID, a.Severity, a.Message, a.IsResolved, a.Timestamp)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *Repos) ListAlertsByDevice(ctx context.Context, deviceID int64) ([]domain.Alert, error) {
	out := []domain.Alert{}
	err := r.selectAll(ctx, &out,
		`SELECT id, device_id, severity, message, is_resolved, timestamp FROM alerts WHERE device_id = ? ORDER BY timestamp DESC, id DESC`,
		deviceID)
	return out, err
}

func (r *Repos) ResolveAlert(ctx context.Context, id int64) error {
	res, err := r.exec(ctx, `UPDATE alerts SET is_resolved = ? WHERE id = ?`, true, id)
	return mustAffect(res, err, "alert", id)
}

func (r *Repos) GetAlert(ctx context.Context, id int64) (domain.Alert, error) {
	var a domain.Alert
	err := r.get(ctx, &a, `SELECT id, device_id, severity, message, is_resolved, timestamp FROM alerts WHERE id = ?`, id)
	return a, notFound(err, "alert", id)
}

// CountActiveAlertsByHome counts unresolved alerts of devices in the home's rooms.
func (r *Repos) CountActiveAlertsByHome(ctx context.Context, homeID int64) (int64, error) {
	var n int64
	err := r.get(ctx, &n,
		`SELECT COUNT(*) FROM alerts a
		 JOIN devices d ON d.id = a.device_id
		 JOIN rooms rm ON rm.id = d.room_id
		 WHERE rm.home_id = ? AND a.is_resolved = ?`, homeID, false)
	return n, err
}
