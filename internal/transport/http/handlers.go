// internal/transport/http/handlers.go
package http

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"order-notify-service/internal/order"
	"order-notify-service/pkg/models"
)

const (
	serviceName    = "Chayannito 26 Email Notification Service"
	serviceVersion = "1.0.0"
	defaultTestTo  = "test@example.com"
)

var availableEndpoints = []string{
	"GET /",
	"GET /status",
	"GET /health",
	"POST /send-order-email",
	"POST /test-email",
	"POST /preview-email",
}

// Notifier is the order email pipeline behind the handlers.
type Notifier interface {
	SendOrderEmail(ctx context.Context, raw order.Record) *models.EmailResult
	Preview(raw order.Record) string
}

type Handler struct {
	notifier  Notifier
	staticDir string
	provider  string
	startTime time.Time
	now       func() time.Time
	lg        *zap.Logger
}

func NewHandler(notifier Notifier, staticDir, provider string, lg *zap.Logger) *Handler {
	return &Handler{
		notifier:  notifier,
		staticDir: staticDir,
		provider:  provider,
		startTime: time.Now(),
		now:       time.Now,
		lg:        lg,
	}
}

// Index serves the order dashboard.
func (h *Handler) Index(c *fiber.Ctx) error {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "index.html"))
	if err != nil {
		h.lg.Error("Error serving index.html", zap.Error(err))
		c.Type("html", "utf-8")
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("<h1>Error loading dashboard</h1><p>%s</p>", html.EscapeString(err.Error())))
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": h.now().Format(time.RFC3339),
		"version":   serviceVersion,
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	uptime := time.Since(h.startTime).Round(time.Second)
	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   "order-notify-service",
		"uptime":    uptime.String(),
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"provider":  h.provider,
	})
}

func (h *Handler) SendOrderEmail(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Request must be JSON",
		})
	}

	var raw order.Record
	if err := c.BodyParser(&raw); err != nil {
		h.lg.Warn("Invalid order payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Request body must be a JSON object",
		})
	}
	if len(raw) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No order data provided",
		})
	}

	return h.respond(c, h.notifier.SendOrderEmail(c.UserContext(), raw))
}

// TestEmail sends a built-in sample order to test_email.
func (h *Handler) TestEmail(c *fiber.Ctx) error {
	var req models.TestEmailRequest
	if c.Is("json") && len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	to := req.TestEmail
	if to == "" {
		to = defaultTestTo
	}

	return h.respond(c, h.notifier.SendOrderEmail(c.UserContext(), testOrder(h.now(), to)))
}

// PreviewEmail renders the posted order, or a sample one, as HTML.
func (h *Handler) PreviewEmail(c *fiber.Ctx) error {
	var raw order.Record
	if c.Is("json") && len(c.Body()) > 0 {
		if err := c.BodyParser(&raw); err != nil {
			h.lg.Warn("Invalid preview payload, using sample order", zap.Error(err))
			raw = nil
		}
	}
	if len(raw) == 0 {
		raw = previewOrder(h.now())
	}

	c.Type("html", "utf-8")
	return c.SendString(h.notifier.Preview(raw))
}

func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success":             false,
		"error":               "Endpoint not found",
		"available_endpoints": availableEndpoints,
	})
}

func (h *Handler) respond(c *fiber.Ctx, res *models.EmailResult) error {
	status := fiber.StatusOK
	if !res.Success {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(res)
}
