package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"order-notify-service/internal/config"
	"order-notify-service/internal/email"
	"order-notify-service/internal/order"
	"order-notify-service/pkg/models"
)

// Renderer produces email HTML for a normalized order. Implementations must
// not fail; they fall back to minimal markup instead.
type Renderer interface {
	Render(o *order.Order) string
}

// NotifyService relays order confirmations: normalize, render, dispatch once.
type NotifyService struct {
	renderer    Renderer
	dispatcher  email.Dispatcher
	fromAddress string
	fromName    string
	timeout     time.Duration
	lg          *zap.Logger
}

func NewNotifyService(cfg *config.Config, renderer Renderer, dispatcher email.Dispatcher, lg *zap.Logger) *NotifyService {
	return &NotifyService{
		renderer:    renderer,
		dispatcher:  dispatcher,
		fromAddress: cfg.FromEmail,
		fromName:    cfg.FromName,
		timeout:     cfg.SendTimeout,
		lg:          lg,
	}
}

// Subject is the confirmation subject line for an order.
func Subject(orderID string) string {
	return "Order Confirmation - " + orderID
}

// SendOrderEmail sends the confirmation for raw. A payload without a
// customer email fails before anything is rendered or sent.
func (s *NotifyService) SendOrderEmail(ctx context.Context, raw order.Record) *models.EmailResult {
	orderID := order.OrderID(raw)
	to, toName := order.Recipient(raw)
	lg := s.lg.With(zap.String("order_id", orderID))

	if to == "" {
		lg.Warn("Customer email not provided")
		return &models.EmailResult{Success: false, Error: "Customer email not provided", OrderID: orderID}
	}

	o := order.Normalize(raw)
	lg.Info("Rendering order email", zap.Int("items", len(o.Items)), zap.Float64("final_total", o.FinalTotal))
	body := s.renderer.Render(o)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	receipt, err := s.dispatcher.Dispatch(ctx, email.Message{
		FromAddress: s.fromAddress,
		FromName:    s.fromName,
		ToAddress:   to,
		ToName:      toName,
		Subject:     Subject(orderID),
		HTMLBody:    body,
	})
	if err != nil {
		lg.Error("Network error sending email", zap.String("to", to), zap.Error(err))
		return &models.EmailResult{Success: false, Error: fmt.Sprintf("Network error: %v", err), OrderID: orderID}
	}

	if !receipt.Success {
		lg.Error("Failed to send email",
			zap.Int("status", receipt.ProviderStatus),
			zap.String("response", receipt.RawResponse),
		)
		return &models.EmailResult{
			Success: false,
			Error:   fmt.Sprintf("Email service returned status %d", receipt.ProviderStatus),
			OrderID: orderID,
			Details: receipt.RawResponse,
		}
	}

	lg.Info("Email sent successfully", zap.String("to", to))
	return &models.EmailResult{
		Success: true,
		Message: "Email sent successfully",
		OrderID: orderID,
		Email:   to,
	}
}

// Preview renders the email for raw without sending it.
func (s *NotifyService) Preview(raw order.Record) string {
	return s.renderer.Render(order.Normalize(raw))
}
