package repository

import (
	"context"
	"database/sql"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func (r *Repos) InsertMeasurement(ctx context.Context, m *domain.Measurement) error {
	id, err := r.insert(ctx,
		`INSERT INTO measurements(device_id, temperature, humidity, co2_level, power_usage, timestamp) VALUES (?,?,?,?,?,?)`,
		m.DeviceID, m.Temperature, m.Humidity, m.CO2Level, m.PowerUsage, m.Timestamp)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *Repos) ListMeasurementsByDevice(ctx context.Context, deviceID int64, limit int) ([]domain.Measurement, error) {
	out := []domain.Measurement{}
	err := r.selectAll(ctx, &out,
		`SELECT id, device_id, temperature, humidity, co2_level, power_usage, timestamp
		 FROM measurements WHERE device_id = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, deviceID, limit)
	return out, err
}

// HomeAverages averages temperature and humidity over every measurement of
// every device in the home. AVG ignores NULLs and yields NULL on no rows.
func (r *Repos) HomeAverages(ctx context.Context, homeID int64) (temp, hum sql.NullFloat64, err error) {
	row := r.q.QueryRowxContext(ctx, r.q.Rebind(
		`SELECT AVG(m.temperature), AVG(m.humidity)
		 FROM measurements m
		 JOIN devices d ON d.id = m.device_id
		 JOIN rooms rm ON rm.id = d.room_id
		 WHERE rm.home_id = ?`), homeID)
	err = row.Scan(&temp, &hum)
	return temp, hum, err
}
