package service

import (
	"context"
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

type HomeService struct {
	base
}

func (s *HomeService) Create(ctx context.Context, in domain.HomeCreate) (domain.Home, error) {
	h := domain.Home{
		Name:      in.Name,
		Address:   in.Address,
		OwnerID:   in.OwnerID,
		CreatedAt: s.now(),
		Rooms:     []domain.Room{},
	}
	if err := s.repos.CreateHome(ctx, &h); err != nil {
		return domain.Home{}, fmt.Errorf("create home: %w", err)
	}
	return h, nil
}

func (s *HomeService) Get(ctx context.Context, id int64) (domain.Home, error) {
	h, err := s.repos.GetHome(ctx, id)
	if err != nil {
		return domain.Home{}, err
	}
	if h.Rooms, err = s.repos.ListRoomsByHome(ctx, id); err != nil {
		return domain.Home{}, fmt.Errorf("list rooms: %w", err)
	}
	return h, nil
}

func (s *HomeService) CreateRoom(ctx context.Context, in domain.RoomCreate) (domain.Room, error) {
	rm := domain.Room{Name: in.Name, Floor: 1, AreaSqm: in.AreaSqm, HomeID: in.HomeID}
	if in.Floor != nil {
		rm.Floor = *in.Floor
	}
	if err := s.repos.CreateRoom(ctx, &rm); err != nil {
		return domain.Room{}, fmt.Errorf("create room: %w", err)
	}
	return rm, nil
}

func (s *HomeService) Statistics(ctx context.Context, id int64) (domain.HomeStatistics, error) {
	h, err := s.repos.GetHome(ctx, id)
	if err != nil {
		return domain.HomeStatistics{}, err
	}
	stats := domain.HomeStatistics{HomeName: h.Name}
	if stats.TotalRooms, err = s.repos.CountRoomsByHome(ctx, id); err != nil {
		return domain.HomeStatistics{}, fmt.Errorf("count rooms: %w", err)
	}
	if stats.TotalDevices, err = s.repos.CountDevicesByHome(ctx, id); err != nil {
		return domain.HomeStatistics{}, fmt.Errorf("count devices: %w", err)
	}
	if stats.ActiveAlerts, err = s.repos.CountActiveAlertsByHome(ctx, id); err != nil {
		return domain.HomeStatistics{}, fmt.Errorf("count alerts: %w", err)
	}
	return stats, nil
}

func (s *HomeService) Analytics(ctx context.Context, id int64) (domain.HomeAnalytics, error) {
	if _, err := s.repos.GetHome(ctx, id); err != nil {
		return domain.HomeAnalytics{}, err
	}
	temp, hum, err := s.repos.HomeAverages(ctx, id)
	if err != nil {
		return domain.HomeAnalytics{}, fmt.Errorf("home averages: %w", err)
	}
	out := domain.HomeAnalytics{HomeID: id}
	if temp.Valid {
		v := round1(temp.Float64)
		out.AvgTemperature = &v
	}
	if hum.Valid {
		v := round1(hum.Float64)
		out.AvgHumidity = &v
	}
	return out, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
