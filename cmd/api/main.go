package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/shipment-intake-api/docs"
	"github.com/jhoicas/shipment-intake-api/internal/application/auth"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
	"github.com/jhoicas/shipment-intake-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/shipment-intake-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/shipment-intake-api/internal/interfaces/http"
	"github.com/jhoicas/shipment-intake-api/pkg/config"
	"github.com/jhoicas/shipment-intake-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	// Colecciones en memoria sembradas con el fixture de demostración.
	companyRepo := memory.NewCompanyRepository(memory.FixtureCompanies())
	shipmentRepo := memory.NewShipmentRepository(memory.FixtureShipments())
	sessions := memory.NewSessionStore()

	verifier, err := memory.NewCredentialVerifier(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("construir verificador de credenciales")
	}

	authUC := auth.NewAuthUseCase(verifier, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Auth.SimulatedDelayMs)*time.Millisecond)

	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	calendarUC := usecase.NewCalendarUseCase()
	reportUC := usecase.NewReportUseCase(shipmentUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shipment Intake API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ShipmentUC: shipmentUC,
		CompanyUC:  companyUC,
		CalendarUC: calendarUC,
		ReportUC:   reportUC,
		Sessions:   sessions,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
