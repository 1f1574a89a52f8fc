package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/metrics"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/validation"
)

const (
	SourceHTTP = "http"
	SourceMQTT = "mqtt"
)

type MeasurementService struct {
	base
	alerts *AlertService
	mirror MeasurementMirror
}

// Ingest stores a reading, marks its device online and then applies the
// temperature threshold rule. A reading for an unknown device is still
// stored; only the device update and the rule are skipped.
func (s *MeasurementService) Ingest(ctx context.Context, in domain.MeasurementCreate, source string) (domain.Measurement, error) {
	if err := validation.Struct(in); err != nil {
		return domain.Measurement{}, err
	}
	now := s.now()
	m := domain.Measurement{
		DeviceID:    *in.DeviceID,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		CO2Level:    in.CO2Level,
		PowerUsage:  in.PowerUsage,
		Timestamp:   now,
	}

	var deviceFound bool
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		r := s.repos.WithTx(tx)
		if err := r.InsertMeasurement(ctx, &m); err != nil {
			return fmt.Errorf("insert measurement: %w", err)
		}
		found, err := r.MarkDeviceSeen(ctx, m.DeviceID, now)
		if err != nil {
			return fmt.Errorf("mark device seen: %w", err)
		}
		deviceFound = found
		return nil
	})
	if err != nil {
		return domain.Measurement{}, err
	}
	metrics.MeasurementsIngested.WithLabelValues(source).Inc()

	if s.mirror != nil {
		if err := s.mirror.MirrorMeasurement(ctx, m); err != nil {
			log.Error().Err(err).Int64("measurement_id", m.ID).Msg("measurement mirror failed")
		}
	}

	if !deviceFound {
		log.Warn().Int64("device_id", m.DeviceID).Int64("measurement_id", m.ID).Msg("measurement for unknown device")
		return m, nil
	}

	if _, err := s.alerts.EvaluateThreshold(ctx, m); err != nil {
		return m, err
	}
	return m, nil
}

// FromMQTT ingests a payload published on the measurements topic. The body
// has the same shape as POST /measurements/.
func (s *MeasurementService) FromMQTT(ctx context.Context, topic string, payload []byte) error {
	var in domain.MeasurementCreate
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decode %s payload: %w", topic, err)
	}
	if _, err := s.Ingest(ctx, in, SourceMQTT); err != nil {
		return fmt.Errorf("ingest %s payload: %w", topic, err)
	}
	return nil
}
