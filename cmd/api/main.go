package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/manufacturing-pro/internal/application/auth"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/manufacturing-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/realtime"
	httpRouter "github.com/tu-usuario/manufacturing-pro/internal/interfaces/http"
	"github.com/tu-usuario/manufacturing-pro/pkg/config"
	"github.com/tu-usuario/manufacturing-pro/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	moRepo := postgres.NewManufacturingOrderRepository(pool)
	woRepo := postgres.NewWorkOrderRepository(pool)
	wcRepo := postgres.NewWorkCenterRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Canal realtime: opcional. Sin hub, los casos de uso reciben un
	// notificador nulo y el servidor no expone /ws.
	var hub *realtime.Hub
	var notifier manufacturing.Notifier = manufacturing.NopNotifier{}
	if cfg.Realtime.Enabled {
		hub = realtime.NewHub(cfg.Realtime.BufferSize, log)
		notifier = hub
	}

	adjustUC := inventory.NewAdjustStockUseCase(txRunner)
	productUC := inventory.NewProductUseCase(txRunner, productRepo, entryRepo)
	bomUC := manufacturing.NewBOMUseCase(bomRepo, productRepo)
	pdfGenerator := infrapdf.NewMarotoTravelerGenerator()
	workOrderUC := manufacturing.NewWorkOrderUseCase(txRunner, productRepo, moRepo, woRepo, pdfGenerator, notifier)
	completeUC := manufacturing.NewCompleteWorkOrderUseCase(txRunner, notifier, log)
	workCenterUC := usecase.NewWorkCenterUseCase(wcRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		AdjustUC:    adjustUC,
		BOMUC:       bomUC,
		WorkOrderUC: workOrderUC,
		CompleteUC:  completeUC,
		WorkCenter:  workCenterUC,
		UserUC:      userUC,
		AnalyticsUC: analyticsUC,
		Hub:         hub,
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
