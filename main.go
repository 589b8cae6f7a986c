package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swag "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "verification-mailer/docs" // <-- required to register swagger spec

	"verification-mailer/controller"
	"verification-mailer/middleware"
	"verification-mailer/service"
	"verification-mailer/util"
)

// @title           Verification Mailer API
// @version         1.0
// @description     Webhook that emails verification codes.

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host            localhost:8080
// @BasePath        /
func main() {
	// Load .env file with proper error handling
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	cfg := util.LoadConfig()

	logger, err := util.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dialer := service.NewSMTPDialer(cfg.SMTP)
	emailService := service.NewEmailService(dialer, service.FormatSender(cfg.SMTP.SenderName, cfg.SMTP.From), logger)

	app := newApp(logger)
	setupRoutes(app, logger, emailService)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", string(cfg.Env)))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "verification-mailer",
		DisableStartupMessage: true,
		ErrorHandler:          util.NewErrorHandler(logger),
	})
}

func setupRoutes(app *fiber.App, logger *zap.Logger, mailer controller.VerificationMailer) {
	app.Use(recover.New())
	app.Use(middleware.RequestID)
	app.Use(middleware.TimerMetrics(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/swagger/*", swag.HandlerDefault)

	webhookController := controller.NewWebhookController(mailer, logger)

	// "/exec" mirrors the hosted deployment URL so existing callers only swap the host
	app.Post("/", webhookController.SendVerificationEmail)
	app.Post("/exec", webhookController.SendVerificationEmail)
}
