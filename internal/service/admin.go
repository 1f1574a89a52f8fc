package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const (
	ActionSettingUpdated = "SETTING_UPDATED"
	ActionLogsExported   = "LOGS_EXPORTED"
)

type AdminService struct {
	base
	archiver AuditArchiver
}

type LogExport struct {
	Key     string `json:"key"`
	URL     string `json:"url"`
	Entries int    `json:"entries"`
}

func (s *AdminService) UpsertSetting(ctx context.Context, actorID int64, in domain.SettingUpsert) (domain.SystemSetting, error) {
	st := domain.SystemSetting{Key: in.Key, Value: in.Value, Description: in.Description}
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		r := s.repos.WithTx(tx)
		if err := r.UpsertSetting(ctx, &st); err != nil {
			return fmt.Errorf("upsert setting: %w", err)
		}
		return s.audit(ctx, r, actorID, ActionSettingUpdated, fmt.Sprintf("%s=%s", st.Key, st.Value))
	})
	if err != nil {
		return domain.SystemSetting{}, err
	}
	return st, nil
}

func (s *AdminService) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	return s.repos.ListSettings(ctx)
}

func (s *AdminService) Logs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.repos.ListAuditLogs(ctx, clampLimit(limit))
}

// ExportLogs archives the most recent audit logs. It fails with
// ErrUnavailable when no archive backend is configured.
func (s *AdminService) ExportLogs(ctx context.Context, actorID int64, limit int) (LogExport, error) {
	if s.archiver == nil {
		return LogExport{}, fmt.Errorf("audit archive: %w", domain.ErrUnavailable)
	}
	logs, err := s.repos.ListAuditLogs(ctx, clampLimit(limit))
	if err != nil {
		return LogExport{}, fmt.Errorf("list audit logs: %w", err)
	}
	key, url, err := s.archiver.ArchiveAuditLogs(ctx, logs)
	if err != nil {
		return LogExport{}, err
	}
	if err := s.audit(ctx, s.repos, actorID, ActionLogsExported, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("export succeeded but audit entry failed")
	}
	return LogExport{Key: key, URL: url, Entries: len(logs)}, nil
}
