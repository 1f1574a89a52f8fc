package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func TestCreateUser_HashesPasswordAndAudits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stored, err := f.svcs.Repos.GetUser(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.True(t, stored.IsActive)
	assert.False(t, stored.IsBlocked)

	logs, err := f.svcs.Admin.Logs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ActionUserRegistered, logs[0].Action)
	assert.Equal(t, f.owner.ID, logs[0].UserID)
}

func TestCreateUser_Duplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svcs.Users.Create(context.Background(), domain.UserCreate{Username: "owner", Email: "other@example.com", Password: "secret1"})
	errIs(domain.ErrConflict)(t, err)
}

func TestCreateDevice_DuplicateMAC(t *testing.T) {
	f := newFixture(t)

	_, err := f.svcs.Devices.Create(context.Background(), domain.DeviceCreate{
		Name: "Clone", DeviceType: "climate", MACAddress: f.device.MACAddress, RoomID: f.room.ID,
	})
	errIs(domain.ErrConflict)(t, err)
}

func TestGetUser_WithHomes(t *testing.T) {
	f := newFixture(t)

	u, err := f.svcs.Users.Get(context.Background(), f.owner.ID)
	require.NoError(t, err)
	require.Len(t, u.Homes, 1)
	assert.Equal(t, f.home.ID, u.Homes[0].ID)

	_, err = f.svcs.Users.Get(context.Background(), 999)
	errIs(domain.ErrNotFound)(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.svcs.Users.Login(ctx, domain.LoginRequest{Username: "owner", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, u.ID)

	_, err = f.svcs.Users.Login(ctx, domain.LoginRequest{Username: "owner", Password: "wrong"})
	errIs(domain.ErrInvalidCredentials)(t, err)

	_, err = f.svcs.Users.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "secret1"})
	errIs(domain.ErrInvalidCredentials)(t, err)

	_, err = f.svcs.Users.SetBlocked(ctx, f.owner.ID, f.owner.ID, true)
	require.NoError(t, err)
	_, err = f.svcs.Users.Login(ctx, domain.LoginRequest{Username: "owner", Password: "secret1"})
	errIs(domain.ErrForbidden)(t, err)
}

func TestSetBlockedAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := f.svcs.Users.Create(ctx, domain.UserCreate{Username: "root", Email: "root@example.com", Password: "secret1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	u, err := f.svcs.Users.SetBlocked(ctx, admin.ID, f.owner.ID, true)
	require.NoError(t, err)
	assert.True(t, u.IsBlocked)

	role := domain.RoleAdmin
	unblock := false
	u, err = f.svcs.Users.Update(ctx, admin.ID, f.owner.ID, domain.UserUpdate{IsBlocked: &unblock, Role: &role})
	require.NoError(t, err)
	assert.False(t, u.IsBlocked)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	logs, err := f.svcs.Admin.Logs(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, ActionUserUpdated, logs[0].Action)
	assert.Equal(t, admin.ID, logs[0].UserID)

	_, err = f.svcs.Users.SetBlocked(ctx, admin.ID, 999, true)
	errIs(domain.ErrNotFound)(t, err)
}
