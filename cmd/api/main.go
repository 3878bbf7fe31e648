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
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
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

	itemRepo := postgres.NewItemRepository(pool)
	typeRepo := postgres.NewMaterialTypeRepository(pool)
	policyRepo := postgres.NewThresholdPolicyRepository(pool)
	dictRepo := postgres.NewDictionaryRepository(pool)
	rosterRepo := postgres.NewRosterRepository(pool)

	codes := codegen.New(cfg.Import.CodePrefix)

	itemUC := usecase.NewItemUseCase(itemRepo, policyRepo, codes)
	materialTypeUC := usecase.NewMaterialTypeUseCase(typeRepo)
	thresholdUC := usecase.NewThresholdPolicyUseCase(policyRepo)
	dictionaryUC := usecase.NewDictionaryUseCase(dictRepo)
	rosterUC := usecase.NewRosterUseCase(rosterRepo)

	itemImporter := importer.NewItemImporter(
		itemRepo, typeRepo, policyRepo, codes,
		excel.OpenGrid, log, cfg.Import.HeaderRows,
	)
	rosterImporter := importer.NewRosterImporter(
		rosterRepo, dictRepo,
		excel.OpenGrid, log, cfg.Import.HeaderRows,
	)

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

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:         itemUC,
		MaterialTypeUC: materialTypeUC,
		ThresholdUC:    thresholdUC,
		DictionaryUC:   dictionaryUC,
		RosterUC:       rosterUC,
		ItemImporter:   itemImporter,
		RosterImporter: rosterImporter,
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
