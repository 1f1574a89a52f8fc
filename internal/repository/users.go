package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const userColumns = `id, username, email, password_hash, role, is_active, is_blocked, created_at`

func (r *Repos) CreateUser(ctx context.Context, u *domain.User) error {
	id, err := r.insert(ctx,
		`INSERT INTO users(username, email, password_hash, role, is_active, is_blocked, created_at) VALUES (?,?,?,?,?,?,?)`,
		u.Username, u.Email, u.PasswordHash, u.Role, u.IsActive, u.IsBlocked, u.CreatedAt)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *Repos) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.get(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return u, notFound(err, "user", id)
}

func (r *Repos) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.get(ctx, &u, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return u, notFound(err, "user", username)
}

// UpdateUserAccess persists the role and blocked flag of u.
func (r *Repos) UpdateUserAccess(ctx context.Context, u domain.User) error {
	res, err := r.exec(ctx, `UPDATE users SET role = ?, is_blocked = ? WHERE id = ?`, u.Role, u.IsBlocked, u.ID)
	return mustAffect(res, err, "user", u.ID)
}
