package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shipment-intake-api/internal/application/auth"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ShipmentUC *usecase.ShipmentUseCase
	CompanyUC  *usecase.CompanyUseCase
	CalendarUC *usecase.CalendarUseCase
	ReportUC   *usecase.ReportUseCase
	Sessions   repository.SessionStore
	JWTSecret  string
}

// Router registra las rutas de la API. Solo el login es público: el resto
// del dashboard exige Bearer Token con sesión abierta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token + sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Get("/session", authHandler.Session)
	protectedAuth.Post("/logout", authHandler.Logout)
	protectedAuth.Post("/change-password", authHandler.ChangePassword)

	// Shipments (protegido)
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	protected.Get("/shipments", shipmentHandler.List)

	// Statistics (protegido)
	statsHandler := NewStatisticsHandler(deps.ShipmentUC, deps.ReportUC)
	stats := protected.Group("/statistics")
	stats.Get("/daily", statsHandler.GetDaily)
	stats.Get("/daily/report", statsHandler.GetDailyReport)

	// Companies (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := protected.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Patch("/:id/toggle-status", companyHandler.ToggleStatus)

	// Calendar (protegido)
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	protected.Get("/calendar", calendarHandler.GetMonth)
}
