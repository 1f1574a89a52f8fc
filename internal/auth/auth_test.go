package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

type fakeUsers map[int64]domain.User

// brokenID makes the fake store fail the way a lost connection would.
const brokenID = 500

func (f fakeUsers) GetUser(_ context.Context, id int64) (domain.User, error) {
	if id == brokenID {
		return domain.User{}, errors.New("connection reset by peer")
	}
	u, ok := f[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func newApp(users fakeUsers) *fiber.App {
	app := fiber.New()
	app.Get("/admin", RequireRole(NewHeaderVerifier(users), domain.RoleAdmin), func(c *fiber.Ctx) error {
		u, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(u.Username)
	})
	return app
}

func TestRequireRole(t *testing.T) {
	users := fakeUsers{
		1: {ID: 1, Username: "root", Role: domain.RoleAdmin, IsActive: true},
		2: {ID: 2, Username: "alice", Role: domain.RoleUser, IsActive: true},
		3: {ID: 3, Username: "mallory", Role: domain.RoleAdmin, IsActive: true, IsBlocked: true},
	}
	app := newApp(users)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "admin", header: "1", status: fiber.StatusOK},
		{name: "non-admin", header: "2", status: fiber.StatusForbidden},
		{name: "blocked admin", header: "3", status: fiber.StatusForbidden},
		{name: "unknown user", header: "99", status: fiber.StatusForbidden},
		{name: "malformed header", header: "abc", status: fiber.StatusForbidden},
		{name: "missing header", header: "", status: fiber.StatusForbidden},
		{name: "store failure", header: "500", status: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
