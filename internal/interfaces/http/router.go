// Package http registra las rutas de la API y la traducción de errores de
// dominio a respuestas HTTP.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/analytics"
	"github.com/tu-usuario/quotation-pro/internal/application/auth"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CustomerUC  *usecase.CustomerUseCase
	ProjectUC   *usecase.ProjectUseCase
	ItemUC      *usecase.ServiceItemUseCase
	SettingsUC  *usecase.SettingsUseCase
	QuotationUC *quotes.QuotationUseCase
	PDFUC       *quotes.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ProjectUC, deps.QuotationUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/projects", customerHandler.ListProjects)
	customers.Get("/:id/quotations", customerHandler.ListQuotations)

	// Projects (protegido)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ItemUC, deps.QuotationUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Get("/:id/items", projectHandler.ListItems)
	projects.Get("/:id/quotation", projectHandler.GetQuotation)

	// Service items (protegido)
	items := protected.Group("/items")
	itemHandler := NewServiceItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Quotations (protegido)
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.PDFUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Patch("/:id/status", quotationHandler.UpdateStatus)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Company settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)
	settings.Post("/logo", settingsHandler.UploadLogo)
}
