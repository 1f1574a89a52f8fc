package service

import (
	"context"
	"fmt"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const DefaultListLimit = 100

type DeviceService struct {
	base
}

// Create registers a device as offline until its first measurement arrives.
func (s *DeviceService) Create(ctx context.Context, in domain.DeviceCreate) (domain.Device, error) {
	d := domain.Device{
		Name:       in.Name,
		DeviceType: in.DeviceType,
		MACAddress: in.MACAddress,
		RoomID:     in.RoomID,
		LastSeen:   s.now(),
	}
	if err := s.repos.CreateDevice(ctx, &d); err != nil {
		return domain.Device{}, fmt.Errorf("create device: %w", err)
	}
	return d, nil
}

func (s *DeviceService) Get(ctx context.Context, id int64) (domain.Device, error) {
	return s.repos.GetDevice(ctx, id)
}

func (s *DeviceService) Measurements(ctx context.Context, id int64, limit int) ([]domain.Measurement, error) {
	if _, err := s.repos.GetDevice(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.ListMeasurementsByDevice(ctx, id, clampLimit(limit))
}

func (s *DeviceService) Alerts(ctx context.Context, id int64) ([]domain.Alert, error) {
	if _, err := s.repos.GetDevice(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.ListAlertsByDevice(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return DefaultListLimit
	}
	return limit
}
