// Package auth resolves the caller of a request and guards routes by role.
//
// The shipped HeaderVerifier trusts the X-User-ID header as sent by the
// caller. It asserts identity, it does not authenticate it, and belongs
// behind a gateway that sets the header. Swap in another Verifier to
// authenticate for real.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const (
	HeaderUserID = "X-User-ID"

	localsUser = "auth.user"
)

// Verifier identifies the caller of a request.
type Verifier interface {
	Verify(c *fiber.Ctx) (domain.User, error)
}

// UserLookup is the subset of the repositories the header strategy needs.
type UserLookup interface {
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

type HeaderVerifier struct {
	Users UserLookup
}

func NewHeaderVerifier(users UserLookup) *HeaderVerifier {
	return &HeaderVerifier{Users: users}
}

func (v *HeaderVerifier) Verify(c *fiber.Ctx) (domain.User, error) {
	raw := c.Get(HeaderUserID)
	if raw == "" {
		return domain.User{}, fmt.Errorf("missing %s header: %w", HeaderUserID, domain.ErrForbidden)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.User{}, fmt.Errorf("malformed %s header: %w", HeaderUserID, domain.ErrForbidden)
	}
	return v.Users.GetUser(c.UserContext(), id)
}

// RequireRole admits the request only when the verifier resolves an active,
// unblocked user holding role. Every refusal, including an unknown user, is
// reported as 403. Other verifier errors reach the app's error handler.
func RequireRole(v Verifier, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := v.Verify(c)
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return fiber.NewError(fiber.StatusForbidden, "Not enough privileges")
		}
		if err != nil {
			return fmt.Errorf("verify caller: %w", err)
		}
		if u.Role != role || u.IsBlocked || !u.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Not enough privileges")
		}
		c.Locals(localsUser, u)
		return c.Next()
	}
}

// CurrentUser returns the user admitted by RequireRole.
func CurrentUser(c *fiber.Ctx) (domain.User, bool) {
	u, ok := c.Locals(localsUser).(domain.User)
	return u, ok
}
