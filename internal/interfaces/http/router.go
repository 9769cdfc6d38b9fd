package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/auth"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/catalog"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccessUC    *access.AccessUseCase
	CatalogUC   *catalog.CatalogUseCase
	QuotationUC *appquote.QuotationUseCase
	Evaluator   *domainaccess.Evaluator
	JWTSecret   string
	AppName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.AppName))

	api := app.Group("/api")

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", AuthMiddleware(deps.JWTSecret), RequireAdmin(), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	accessHandler := NewAccessHandler(deps.AccessUC)
	accessGroup := protected.Group("/access")
	accessGroup.Get("/check", accessHandler.Check)
	accessGroup.Get("/default-path", accessHandler.DefaultPath)
	accessGroup.Get("/pages", accessHandler.Pages)

	users := protected.Group("/users", RequireAdmin())
	users.Put("/:id/access", accessHandler.UpdateUserAccess)

	// Catálogo y cotizaciones: misma regla que la página de cotizaciones del cliente
	quotationPage := RequirePage(domainaccess.QuotationPage, deps.Evaluator)

	products := protected.Group("/products", quotationPage)
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)

	quotations := protected.Group("/quotations", quotationPage)
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/preview", quotationHandler.Preview)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id/items/:position", quotationHandler.RemoveItem)
	quotations.Post("/:id/pdf", quotationHandler.GeneratePDF)
	quotations.Post("/:id/save", quotationHandler.Save)
	quotations.Get("/:id/xlsx", quotationHandler.ExportXLSX)
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: appName})
	}
}
