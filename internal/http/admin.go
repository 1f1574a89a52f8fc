package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/auth"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/service"
)

// registerAdmin mounts the routes guarded by the admin role check.
func registerAdmin(g fiber.Router, svcs *service.Services) {
	g.Post("/settings", func(c *fiber.Ctx) error {
		var in domain.SettingUpsert
		if err := bind(c, &in); err != nil {
			return err
		}
		st, err := svcs.Admin.UpsertSetting(c.UserContext(), actorID(c), in)
		if err != nil {
			return err
		}
		return c.JSON(st)
	})
	g.Get("/settings", func(c *fiber.Ctx) error {
		items, err := svcs.Admin.ListSettings(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	})

	g.Put("/users/:id/block", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		body := struct {
			IsBlocked *bool `json:"is_blocked"`
		}{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
			}
		}
		blocked := true
		if body.IsBlocked != nil {
			blocked = *body.IsBlocked
		}
		u, err := svcs.Users.SetBlocked(c.UserContext(), actorID(c), id, blocked)
		if err != nil {
			return err
		}
		return c.JSON(u)
	})
	g.Patch("/users/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		var in domain.UserUpdate
		if err := bind(c, &in); err != nil {
			return err
		}
		u, err := svcs.Users.Update(c.UserContext(), actorID(c), id, in)
		if err != nil {
			return err
		}
		return c.JSON(u)
	})

	g.Get("/logs", func(c *fiber.Ctx) error {
		items, err := svcs.Admin.Logs(c.UserContext(), c.QueryInt("limit", service.DefaultListLimit))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Post("/logs/export", func(c *fiber.Ctx) error {
		out, err := svcs.Admin.ExportLogs(c.UserContext(), actorID(c), c.QueryInt("limit", service.DefaultListLimit))
		if err != nil {
			return err
		}
		return c.JSON(out)
	})
}

func actorID(c *fiber.Ctx) int64 {
	u, _ := auth.CurrentUser(c)
	return u.ID
}
