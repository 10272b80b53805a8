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

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/auth"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/ports"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/infrastructure/assets"
	infrapdf "github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/infrastructure/pdf"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/infrastructure/postgres"
	httpRouter "github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/interfaces/http"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/pkg/config"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	designRepo := postgres.NewDesignRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	loginRepo := postgres.NewLoginHistoryRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	// Almacén de screenshots: disco local por defecto, GCS si se configura.
	var assetStore ports.AssetStore
	switch cfg.Assets.Backend {
	case "gcs":
		gcsStore, err := assets.NewGCSStore(ctx, cfg.Assets.GCSBucket, cfg.Assets.GCSCredentials)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar Google Cloud Storage")
		}
		defer gcsStore.Close()
		assetStore = gcsStore
	default:
		localStore, err := assets.NewLocalStore(cfg.Assets.UploadDir, log)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar directorio de uploads")
		}
		assetStore = localStore
	}

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator()

	ingestUC := scene.NewIngestUseCase(designRepo, assetStore, cfg.Design.DefaultOwnerID)
	designUC := usecase.NewDesignUseCase(designRepo, cfg.Design.DefaultOwnerID)
	itemUC := usecase.NewItemUseCase(itemRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, pdfGenerator)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	syncUC := usecase.NewSyncUseCase(roomRepo, itemRepo)
	kioskUC := usecase.NewKioskUseCase(designRepo, quoteRepo, pool)
	authUC := auth.NewAuthUseCase(userRepo, loginRepo, auth.JWTConfig{
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
		Title:    "DreamSpace API",
	}))

	// Screenshots guardados por el backend local
	if cfg.Assets.Backend != "gcs" {
		app.Static("/uploads", cfg.Assets.UploadDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DesignUC:      designUC,
		IngestUC:      ingestUC,
		ItemUC:        itemUC,
		QuoteUC:       quoteUC,
		DashboardUC:   dashboardUC,
		SyncUC:        syncUC,
		KioskUC:       kioskUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		PublicBaseURL: cfg.HTTP.PublicBaseURL,
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
