package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// UpsertSetting inserts the setting or replaces value and description of the
// row with the same key.
func (r *Repos) UpsertSetting(ctx context.Context, s *domain.SystemSetting) error {
	var id int64
	err := r.q.QueryRowxContext(ctx, r.q.Rebind(
		`INSERT INTO system_settings("key", value, description) VALUES (?,?,?)
		 ON CONFLICT ("key") DO UPDATE SET value = excluded.value, description = excluded.description
		 RETURNING id`), s.Key, s.Value, s.Description).Scan(&id)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *Repos) GetSetting(ctx context.Context, key string) (domain.SystemSetting, error) {
	var s domain.SystemSetting
	err := r.get(ctx, &s, `SELECT id, "key", value, description FROM system_settings WHERE "key" = ?`, key)
	return s, notFound(err, "setting", key)
}

func (r *Repos) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	out := []domain.SystemSetting{}
	err := r.selectAll(ctx, &out, `SELECT id, "key", value, description FROM system_settings ORDER BY "key"`)
	return out, err
}
