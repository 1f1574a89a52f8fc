package repository

import (
	"context"
	"time"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const deviceColumns = `id, name, device_type, mac_address, is_online, last_seen, room_id`

func (r *Repos) CreateDevice(ctx context.Context, d *domain.Device) error {
	id, err := r.insert(ctx,
		`INSERT INTO devices(name, device_type, mac_address, is_online, last_seen, room_id) VALUES (?,?,?,?,?,?)`,
		d.Name, d.DeviceType, d.MACAddress, d.IsOnline, d.LastSeen, d.RoomID)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (r *Repos) GetDevice(ctx context.Context, id int64) (domain.Device, error) {
	var d domain.Device
	err := r.get(ctx, &d, `SELECT `+deviceColumns+` FROM devices WHERE id = ?`, id)
	return d, notFound(err, "device", id)
}

// MarkDeviceSeen flags the device online and stamps last_seen. It reports
// false when no such device exists.
func (r *Repos) MarkDeviceSeen(ctx context.Context, id int64, at time.Time) (bool, error) {
	res, err := r.exec(ctx, `UPDATE devices SET is_online = ?, last_seen = ? WHERE id = ?`, true, at, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repos) CountDevicesByHome(ctx context.Context, homeID int64) (int64, error) {
	var n int64
	err := r.get(ctx, &n,
		`SELECT COUNT(*) FROM devices d JOIN rooms rm ON rm.id = d.room_id WHERE rm.home_id = ?`, homeID)
	return n, err
}
