package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/peptica/internal/api"
	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/db"
	"github.com/terraincognita07/peptica/internal/i18n"
	"github.com/terraincognita07/peptica/internal/metrics"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateSecretKey(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	location := cfg.Location()
	time.Local = location

	library, err := content.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("content init failed: %w", err)
	}
	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(api.Options{
		Database:      database,
		Library:       library,
		I18n:          i18nManager,
		Metrics:       metrics.NewRecorder(),
		Logger:        logger,
		SecretKey:     cfg.SecretKey,
		CookieSecure:  cfg.CookieSecure,
		AdminTokenTTL: cfg.AdminTokenTTL,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, cfg.CookieSecure)

	sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("peptica listening",
		zap.Int("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()),
		zap.Int("substances", len(library.List())),
	)
	if err := app.Listen(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, cookieSecure bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Peptica " + version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "peptica_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}
