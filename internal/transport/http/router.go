// internal/transport/http/router.go
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"order-notify-service/internal/config"
)

// NewApp wires middleware and routes around h.
func NewApp(cfg *config.Config, h *Handler, lg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "order-notify-service",
		ErrorHandler: errorHandler(lg),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS,HEAD",
		AllowHeaders: "Origin,Content-Type,Accept,X-Requested-With,X-Request-ID",
		MaxAge:       86400,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))

	app.Get("/", h.Index)
	app.Get("/status", h.Status)
	app.Get("/health", h.Health)
	app.Post("/send-order-email", h.SendOrderEmail)
	app.Post("/test-email", h.TestEmail)
	app.Post("/preview-email", h.PreviewEmail)

	app.Static("/", cfg.StaticDir)
	app.Use(h.NotFound)

	return app
}

func errorHandler(lg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code != fiber.StatusInternalServerError {
				msg = e.Message
			}
		}
		lg.Error("Request failed",
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err),
		)
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   msg,
		})
	}
}
