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

	"github.com/tu-usuario/quotation-pro/internal/application/analytics"
	"github.com/tu-usuario/quotation-pro/internal/application/auth"
	"github.com/tu-usuario/quotation-pro/internal/application/quotes"
	"github.com/tu-usuario/quotation-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/quotation-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/quotation-pro/internal/infrastructure/postgres"
	infrastorage "github.com/tu-usuario/quotation-pro/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/quotation-pro/internal/interfaces/http"
	"github.com/tu-usuario/quotation-pro/pkg/config"
	"github.com/tu-usuario/quotation-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	customerRepo := postgres.NewCustomerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	itemRepo := postgres.NewServiceItemRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bucket de logos: opcional, sin GCS_BUCKET la subida queda deshabilitada.
	var logoStorage usecase.LogoStorage
	if cfg.Storage.Bucket != "" {
		gcsStorage, err := infrastorage.NewGCSLogoStorage(ctx, cfg.Storage.Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar bucket de logos")
		}
		defer gcsStorage.Close()
		logoStorage = gcsStorage
	} else {
		log.Warn().Msg("GCS_BUCKET no definido: subida de logo deshabilitada")
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	projectUC := usecase.NewProjectUseCase(projectRepo, customerRepo, txRunner)
	itemUC := usecase.NewServiceItemUseCase(itemRepo, projectRepo, txRunner, log)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, logoStorage)
	quotationUC := quotes.NewQuotationUseCase(quotationRepo, projectRepo, itemRepo, txRunner, log)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := quotes.NewPDFUseCase(quotationRepo, projectRepo, customerRepo, settingsRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Quotation Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ProjectUC:   projectUC,
		ItemUC:      itemUC,
		SettingsUC:  settingsUC,
		QuotationUC: quotationUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
