package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func (r *Repos) CreateHome(ctx context.Context, h *domain.Home) error {
	id, err := r.insert(ctx, `INSERT INTO homes(name, address, owner_id, created_at) VALUES (?,?,?,?)`,
		h.Name, h.Address, h.OwnerID, h.CreatedAt)
	if err != nil {
		return err
	}
	h.ID = id
	return nil
}

func (r *Repos) GetHome(ctx context.Context, id int64) (domain.Home, error) {
	var h domain.Home
	err := r.get(ctx, &h, `SELECT id, name, address, owner_id, created_at FROM homes WHERE id = ?`, id)
	return h, notFound(err, "home", id)
}

func (r *Repos) ListHomesByOwner(ctx context.Context, ownerID int64) ([]domain.Home, error) {
	out := []domain.Home{}
	err := r.selectAll(ctx, &out, `SELECT id, name, address, owner_id, created_at FROM homes WHERE owner_id = ? ORDER BY id`, ownerID)
	return out, err
}

func (r *Repos) CreateRoom(ctx context.Context, rm *domain.Room) error {
	id, err := r.insert(ctx, `INSERT INTO rooms(name, floor, area_sqm, home_id) VALUES (?,?,?,?)`,
		rm.Name, rm.Floor, rm.AreaSqm, rm.HomeID)
	if err != nil {
		return err
	}
	rm.ID = id
	return nil
}

func (r *Repos) ListRoomsByHome(ctx context.Context, homeID int64) ([]domain.Room, error) {
	out := []domain.Room{}
	err := r.selectAll(ctx, &out, `SELECT id, name, floor, area_sqm, home_id FROM rooms WHERE home_id = ? ORDER BY id`, homeID)
	return out, err
}

func (r *Repos) CountRoomsByHome(ctx context.Context, homeID int64) (int64, error) {
	var n int64
	err := r.get(ctx, &n, `SELECT COUNT(*) FROM rooms WHERE home_id = ?`, homeID)
	return n, err
}
