package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/auth"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/metrics"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/service"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/validation"
)

// NewApp builds the fiber application with middleware and all routes.
func NewApp(svcs *service.Services, verifier auth.Verifier) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "smart-climate-api",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(requestLogger())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	Register(app, svcs, verifier)
	return app
}

// ErrorHandler maps domain errors onto HTTP statuses. The body mirrors
// {"detail": "..."} for every failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	var ve *validation.Error
	switch {
	case errors.As(err, &fe):
		status, msg = fe.Code, fe.Message
	case errors.As(err, &ve):
		status, msg = fiber.StatusBadRequest, ve.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, msg = fiber.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrConflict):
		status, msg = fiber.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, msg = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrUnavailable):
		status, msg = fiber.StatusServiceUnavailable, err.Error()
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(elapsed.Seconds())

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return nil
	}
}
