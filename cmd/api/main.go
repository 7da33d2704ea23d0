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
	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/logo"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/memory"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/render"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/xlsx"
	httpRouter "github.com/ranjan0044/invoice-builder/internal/interfaces/http"
	"github.com/ranjan0044/invoice-builder/pkg/config"
	"github.com/ranjan0044/invoice-builder/pkg/logger"
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

	// Sesiones en memoria: expiran por inactividad y se expulsan por LRU al llegar al tope.
	store := memory.NewSessionStore(cfg.Drafts.MaxSessions, cfg.Drafts.SessionTTL, func(id string, s entity.Session) {
		log.Session(id).Info().
			Str("kind", string(s.Draft.Kind)).
			Int("items", len(s.Draft.Items)).
			Msg("sesión liberada del almacén")
	})

	editor := draft.NewEditor(draft.Rules{
		DueDays: cfg.Drafts.DueDays,
		GSTRate: cfg.Drafts.GSTRate,
	})
	numbers := invoice.NewNumberGenerator()

	sessionUC := drafting.NewSessionUseCase(
		store,
		editor,
		numbers,
		logo.NewProcessor(cfg.Logo.MaxWidth, cfg.Logo.MaxHeight, cfg.Logo.MaxBytes),
		xlsx.NewExporter(),
		render.NewHTMLRenderer(),
		drafting.SessionConfig{NumberPrefix: cfg.Drafts.NumberPrefix},
		log,
	)
	toolsUC := drafting.NewToolsUseCase(numbers, cfg.Drafts.NumberPrefix)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Logo.MaxBytes + 64<<10,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Builder API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": store.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC: sessionUC,
		ToolsUC:   toolsUC,
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
