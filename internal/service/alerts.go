package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/metrics"
)

type AlertService struct {
	base
	notifier       AlertNotifier
	defaultMaxTemp float64
}

func (s *AlertService) Create(ctx context.Context, in domain.AlertCreate) (domain.Alert, error) {
	a := domain.Alert{
		DeviceID:  in.DeviceID,
		Severity:  in.Severity,
		Message:   in.Message,
		Timestamp: s.now(),
	}
	if err := s.repos.CreateAlert(ctx, &a); err != nil {
		return domain.Alert{}, fmt.Errorf("create alert: %w", err)
	}
	metrics.AlertsGenerated.WithLabelValues("api").Inc()
	s.notify(ctx, a)
	return a, nil
}

func (s *AlertService) Resolve(ctx context.Context, id int64) (domain.Alert, error) {
	if err := s.repos.ResolveAlert(ctx, id); err != nil {
		return domain.Alert{}, err
	}
	return s.repos.GetAlert(ctx, id)
}

// MaxTemp returns the MAX_TEMP setting, falling back to the configured
// default when the row is absent or not a number.
func (s *AlertService) MaxTemp(ctx context.Context) (float64, error) {
	setting, err := s.repos.GetSetting(ctx, domain.SettingMaxTemp)
	if errors.Is(err, domain.ErrNotFound) {
		return s.defaultMaxTemp, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", domain.SettingMaxTemp, err)
	}
	v, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		log.Warn().Str("value", setting.Value).Msg("MAX_TEMP is not a number, using default")
		return s.defaultMaxTemp, nil
	}
	return v, nil
}

// EvaluateThreshold creates a HIGH alert when the reading's temperature is
// above MAX_TEMP. It returns nil when no alert was raised.
func (s *AlertService) EvaluateThreshold(ctx context.Context, m domain.Measurement) (*domain.Alert, error) {
	if m.Temperature == nil {
		return nil, nil
	}
	limit, err := s.MaxTemp(ctx)
	if err != nil {
		return nil, err
	}
	if *m.Temperature <= limit {
		return nil, nil
	}

	a := domain.Alert{
		DeviceID:  m.DeviceID,
		Severity:  domain.SeverityHigh,
		Message:   fmt.Sprintf("High temperature detected: %.2f°C exceeds limit %.2f°C", *m.Temperature, limit),
		Timestamp: s.now(),
	}
	if err := s.repos.CreateAlert(ctx, &a); err != nil {
		return nil, fmt.Errorf("create threshold alert: %w", err)
	}
	metrics.AlertsGenerated.WithLabelValues("threshold").Inc()
	log.Info().Int64("device_id", a.DeviceID).Float64("temperature", *m.Temperature).Float64("limit", limit).Msg("temperature alert raised")

	s.notify(ctx, a)
	return &a, nil
}

func (s *AlertService) notify(ctx context.Context, a domain.Alert) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyAlert(ctx, a); err != nil {
		metrics.NotificationFailures.Inc()
		log.Error().Err(err).Int64("alert_id", a.ID).Msg("alert notification failed")
	}
}
