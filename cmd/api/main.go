package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
	"github.com/jhoicas/Sincronizador-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Sincronizador-api/internal/interfaces/http"
	"github.com/jhoicas/Sincronizador-api/pkg/config"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	combinationRepo := postgres.NewCombinationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	stockRepo := postgres.NewStockRepository(txRunner)

	// La bodega configurada debe existir antes de aceptar escrituras de stock
	if cfg.Sync.DefaultWarehouseID != "" {
		wh, err := warehouseRepo.GetByID(ctx, cfg.Sync.DefaultWarehouseID)
		if err != nil {
			log.Fatal().Err(err).Msg("verificación de bodega por defecto")
		}
		if wh == nil {
			log.Fatal().Str("warehouse_id", cfg.Sync.DefaultWarehouseID).Msg("la bodega configurada no existe")
		}
	} else {
		log.Warn().Msg("SYNC_WAREHOUSE_ID sin configurar: las escrituras de stock fallarán")
	}

	gate := sync.NewTenantGate()
	detector := sync.NewCustomerDetector(customerRepo)
	variants := sync.NewVariantPropagator(productRepo, combinationRepo, log)
	ledger := sync.NewStockLedger(cfg.Sync.DefaultWarehouseID, cfg.Sync.StockNote, stockRepo, log)

	pipelines := sync.Chain{
		sync.NewMainFields(variants),
		sync.NewStockFields(ledger),
	}

	productLifecycle := sync.NewProductLifecycle(productRepo, gate, log)
	orderLifecycle := sync.NewOrderLifecycle(orderRepo, detector, gate, log)

	productSync := sync.NewProductSyncUseCase(productLifecycle, pipelines, log)
	orderSync := sync.NewOrderSyncUseCase(orderLifecycle, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductSync: productSync,
		OrderSync:   orderSync,
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
