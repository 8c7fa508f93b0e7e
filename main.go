package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"order-notify-service/internal/config"
	"order-notify-service/internal/email"
	"order-notify-service/internal/logging"
	"order-notify-service/internal/service"
	"order-notify-service/internal/transport/http"
)

func main() {
	cfg := config.Load()

	lg, closeLog, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("❌ [STARTUP] Logger init failed: %v", err)
	}
	defer closeLog()

	if cfg.EmailProvider == "zeptomail" && cfg.ZeptoMailAPIKey == "" {
		lg.Warn("ZEPTOMAIL_API_KEY is empty, provider calls will be rejected")
	}

	dispatcher, err := email.NewDispatcher(cfg, lg)
	if err != nil {
		lg.Fatal("Email provider init failed", zap.Error(err))
	}
	renderer := email.NewRenderer(cfg.TemplatePath, lg)

	notifyService := service.NewNotifyService(cfg, renderer, dispatcher, lg)
	handler := http.NewHandler(notifyService, cfg.StaticDir, cfg.EmailProvider, lg)
	app := http.NewApp(cfg, handler, lg)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		lg.Info("Graceful shutdown initiated")
		if err := app.Shutdown(); err != nil {
			lg.Error("Shutdown failed", zap.Error(err))
		}
	}()

	lg.Info("Starting Order Email Notification Service",
		zap.String("port", cfg.ServerPort),
		zap.String("provider", cfg.EmailProvider),
		zap.String("from", cfg.FromEmail),
		zap.String("template", cfg.TemplatePath),
		zap.String("static_dir", cfg.StaticDir),
		zap.Strings("endpoints", []string{
			"GET  /                 - Order dashboard",
			"GET  /status           - Health check",
			"POST /send-order-email - Send order confirmation email",
			"POST /test-email       - Test email functionality",
			"POST /preview-email    - Preview email template",
		}),
	)

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		lg.Fatal("Server failed to start", zap.Error(err))
	}
}
