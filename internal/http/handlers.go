package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/auth"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/service"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/validation"
)

func Register(app *fiber.App, svcs *service.Services, verifier auth.Verifier) {
	g := app.Group("/")

	g.Post("users", func(c *fiber.Ctx) error {
		var in domain.UserCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		u, err := svcs.Users.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(u)
	})
	g.Get("users/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		u, err := svcs.Users.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(u)
	})
	g.Post("login", func(c *fiber.Ctx) error {
		var in domain.LoginRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		u, err := svcs.Users.Login(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(u)
	})

	g.Post("homes", func(c *fiber.Ctx) error {
		var in domain.HomeCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		h, err := svcs.Homes.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(h)
	})
	g.Get("homes/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		h, err := svcs.Homes.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(h)
	})
	g.Get("homes/:id/statistics", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		stats, err := svcs.Homes.Statistics(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(stats)
	})
	g.Get("homes/:id/analytics", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		out, err := svcs.Homes.Analytics(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(out)
	})

	g.Post("rooms", func(c *fiber.Ctx) error {
		var in domain.RoomCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		rm, err := svcs.Homes.CreateRoom(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(rm)
	})

	g.Post("devices", func(c *fiber.Ctx) error {
		var in domain.DeviceCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		d, err := svcs.Devices.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(d)
	})
	g.Get("devices/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		d, err := svcs.Devices.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(d)
	})
	g.Get("devices/:id/measurements", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		items, err := svcs.Devices.Measurements(c.UserContext(), id, c.QueryInt("limit", service.DefaultListLimit))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Get("devices/:id/alerts", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		items, err := svcs.Devices.Alerts(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(items)
	})

	g.Post("measurements", func(c *fiber.Ctx) error {
		var in domain.MeasurementCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		m, err := svcs.Measurements.Ingest(c.UserContext(), in, service.SourceHTTP)
		if err != nil {
			return err
		}
		return c.JSON(m)
	})

	g.Post("alerts", func(c *fiber.Ctx) error {
		var in domain.AlertCreate
		if err := bind(c, &in); err != nil {
			return err
		}
		a, err := svcs.Alerts.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(a)
	})
	g.Put("alerts/:id/resolve", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		a, err := svcs.Alerts.Resolve(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(a)
	})

	registerAdmin(app.Group("/admin", auth.RequireRole(verifier, domain.RoleAdmin)), svcs)
}

// bind decodes the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return validation.Struct(dst)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be an integer")
	}
	return int64(id), nil
}
