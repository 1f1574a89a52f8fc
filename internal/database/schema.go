package database

import (
	"context"
	"fmt"
	"strings"
)

// Column types that differ between the two stores.
type dialect struct {
	pk        string
	timestamp string
}

var dialects = map[string]dialect{
	DriverPostgres: {pk: "BIGSERIAL PRIMARY KEY", timestamp: "TIMESTAMPTZ"},
	DriverSQLite:   {pk: "INTEGER PRIMARY KEY AUTOINCREMENT", timestamp: "TIMESTAMP"},
}

// measurements.device_id is not a foreign key: readings from an
// unregistered device id are still stored.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{pk}},
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
		created_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS homes (
		id {{pk}},
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		owner_id BIGINT REFERENCES users(id),
		created_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id {{pk}},
		name TEXT NOT NULL,
		floor INTEGER NOT NULL DEFAULT 1,
		area_sqm DOUBLE PRECISION,
		home_id BIGINT REFERENCES homes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS devices (
		id {{pk}},
		name TEXT NOT NULL,
		device_type TEXT NOT NULL,
		mac_address TEXT NOT NULL UNIQUE,
		is_online BOOLEAN NOT NULL DEFAULT FALSE,
		last_seen {{ts}} NOT NULL,
		room_id BIGINT REFERENCES rooms(id)
	)`,
	`CREATE TABLE IF NOT EXISTS measurements (
		id {{pk}},
		device_id BIGINT NOT NULL,
		temperature DOUBLE PRECISION,
		humidity DOUBLE PRECISION,
		co2_level DOUBLE PRECISION,
		power_usage DOUBLE PRECISION,
		timestamp {{ts}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_measurements_device_id ON measurements(device_id)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id {{pk}},
		device_id BIGINT REFERENCES devices(id),
		severity TEXT NOT NULL,
		message TEXT NOT NULL,
		is_resolved BOOLEAN NOT NULL DEFAULT FALSE,
		timestamp {{ts}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_device_id ON alerts(device_id)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id {{pk}},
		user_id BIGINT REFERENCES users(id),
		action TEXT NOT NULL,
		details TEXT,
		timestamp {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS system_settings (
		id {{pk}},
		"key" TEXT NOT NULL UNIQUE,
		value TEXT NOT NULL,
		description TEXT
	)`,
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	d, ok := dialects[s.driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", s.driver)
	}
	r := strings.NewReplacer("{{pk}}", d.pk, "{{ts}}", d.timestamp)
	for _, ddl := range tables {
		if _, err := s.DB.ExecContext(ctx, r.Replace(ddl)); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
