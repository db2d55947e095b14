package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appfolio "github.com/jhoicas/Resguardos-api/internal/application/folio"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
	"github.com/jhoicas/Resguardos-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Resguardos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Resguardos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Resguardos-api/internal/interfaces/http"
	"github.com/jhoicas/Resguardos-api/pkg/config"
	"github.com/jhoicas/Resguardos-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	muebleRepo := postgres.NewMuebleRepository(pool)
	directoryRepo := postgres.NewDirectoryRepository(pool)
	folioRepo := postgres.NewFolioCounterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	resguardoRepo := postgres.NewResguardoRepository(pool, txRunner)

	m := metrics.New("resguardos")

	catalogUC := usecase.NewCatalogUseCase(muebleRepo, directoryRepo, cfg.Catalog.BatchSize, cfg.Catalog.RefreshDelay, log).
		OnLoad(func(records int, err error) {
			if err != nil {
				m.CatalogLoadFailed()
				return
			}
			m.CatalogLoaded(records)
		})
	defer catalogUC.Close()

	// Sin instantánea el omnibox no tiene sobre qué buscar; un fallo aquí no es recuperable.
	loadCtx, cancelLoad := context.WithTimeout(ctx, 60*time.Second)
	if err := catalogUC.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal().Err(err).Msg("carga inicial del catálogo")
	}
	cancelLoad()

	folioFormat := appfolio.Format{Prefix: cfg.Folio.Prefix, Width: cfg.Folio.Width}
	folios := appfolio.NewAllocator(folioRepo, folioFormat, log.Component("folios")).
		WithFormat(cfg.Folio.CounterKey, folioFormat).
		OnAllocate(m.FolioAllocated)

	sessionLimits := usecase.SessionLimits{TTL: cfg.Session.TTL, Max: cfg.Session.Max}
	searchUC := usecase.NewSearchUseCase(catalogUC, usecase.SearchConfig{
		SuggestionLimit: cfg.Search.SuggestionLimit,
		SettleDelay:     cfg.Search.SettleDelay,
		PageSize:        cfg.Search.PageSize,
		Sessions:        sessionLimits,
	}, m)

	resguardoUC := usecase.NewResguardoUseCase(
		catalogUC, searchUC, folios, cfg.Folio.CounterKey,
		muebleRepo, resguardoRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Institution),
		m, log,
	).WithSessionLimits(sessionLimits)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resguardos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		snap := catalogUC.Snapshot()
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         cfg.App.Name,
			"catalog_version": snap.Version,
			"muebles":         len(snap.Records),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		SearchUC:    searchUC,
		ResguardoUC: resguardoUC,
		Folios:      folios,
		JWTSecret:   cfg.JWT.Secret,
		AdminRoles:  cfg.JWT.AdminRoles,
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
