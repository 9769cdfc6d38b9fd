// @title        O2D Pipeline API
// @version      1.0
// @description  Control de acceso del dashboard y cotizaciones lead-to-order con GST.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
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

	"github.com/jhoicas/o2d-pipeline-api/docs"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/auth"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/catalog"
	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	infrapdf "github.com/jhoicas/o2d-pipeline-api/internal/infrastructure/pdf"
	"github.com/jhoicas/o2d-pipeline-api/internal/infrastructure/postgres"
	"github.com/jhoicas/o2d-pipeline-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/o2d-pipeline-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/o2d-pipeline-api/internal/interfaces/http"
	"github.com/jhoicas/o2d-pipeline-api/pkg/config"
	"github.com/jhoicas/o2d-pipeline-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sin STORAGE_SCRIPT_URL el guardado responde 503; el resto de la API funciona.
	var store appquote.DocumentStore
	if s := storage.NewAppsScriptStore(cfg.Storage); s != nil {
		store = s
	} else {
		log.Warn().Msg("STORAGE_SCRIPT_URL vacío: guardado de PDFs deshabilitado")
	}

	quotationUC := appquote.NewQuotationUseCase(
		txRunner, quotationRepo, productRepo,
		infrapdf.NewMarotoPDFGenerator(), infraxlsx.NewExporter(), store,
		appquote.Config{
			Prefix: cfg.Quotation.Prefix,
			Rates: domainquote.Rates{
				CGST: cfg.Quotation.CGSTRate,
				SGST: cfg.Quotation.SGSTRate,
				IGST: cfg.Quotation.IGSTRate,
			},
			Issuer: appquote.Issuer{
				Name:    cfg.Quotation.CompanyName,
				GSTIN:   cfg.Quotation.CompanyGSTIN,
				Address: cfg.Quotation.CompanyAddress,
				Phone:   cfg.Quotation.CompanyPhone,
				Email:   cfg.Quotation.CompanyEmail,
			},
			Terms: cfg.Quotation.Terms,
		},
		log,
	)

	evaluator := domainaccess.Default()
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init`)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccessUC:    access.NewAccessUseCase(userRepo, evaluator),
		CatalogUC:   catalog.NewCatalogUseCase(productRepo),
		QuotationUC: quotationUC,
		Evaluator:   evaluator,
		JWTSecret:   cfg.JWT.Secret,
		AppName:     cfg.App.Name,
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
