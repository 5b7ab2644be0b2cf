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

	"github.com/jhoicas/Almacen-api/internal/application/audit"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/internal/interfaces/ws"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
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

	// Adaptadores de persistencia
	productRepo := postgres.NewProductRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	platformRepo := postgres.NewPlatformRepository(pool)
	reasonRepo := postgres.NewReasonCategoryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Colaboradores laterales: bitácora y eventos websocket
	auditor := audit.New(auditRepo, log)
	hub := ws.NewHub(log)
	go hub.Run()

	// Casos de uso
	registerUC := inventory.NewRegisterTransactionUseCase(
		txRunner, skuRepo, productRepo, reasonRepo, platformRepo, supplierRepo,
		settingsRepo, auditor, hub,
	)
	ledgerUC := inventory.NewLedgerQueryUseCase(txnRepo)
	productUC := catalog.NewProductUseCase(productRepo, skuRepo, hub)
	skuUC := catalog.NewSKUUseCase(skuRepo, productRepo, hub)
	dashboardUC := reports.NewDashboardUseCase(productRepo, skuRepo, txnRepo, settingsRepo)
	breakdownUC := reports.NewBreakdownUseCase(
		skuRepo, productRepo, categoryRepo, sizeRepo, colorRepo, platformRepo, txnRepo,
	)
	referenceUC := usecase.NewReferenceUseCase(
		categoryRepo, colorRepo, sizeRepo, supplierRepo, platformRepo, reasonRepo, hub,
	)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, hub)
	userUC := usecase.NewUserUseCase(userRepo)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	authHandler := httpRouter.NewAuthHandler(userUC, cfg.JWT)
	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterTransaction: registerUC,
		LedgerQuery:         ledgerUC,
		ProductUC:           productUC,
		SKUUC:               skuUC,
		DashboardUC:         dashboardUC,
		BreakdownUC:         breakdownUC,
		ReferenceUC:         referenceUC,
		SettingsUC:          settingsUC,
		UserUC:              userUC,
		Auditor:             auditor,
		Hub:                 hub,
		JWTSecret:           cfg.JWT.Secret,
	}, authHandler)

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
