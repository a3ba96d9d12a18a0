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

	"github.com/robobooks/robobooks-api/internal/application/auth"
	"github.com/robobooks/robobooks-api/internal/application/billing"
	"github.com/robobooks/robobooks-api/internal/application/usecase"
	infrapdf "github.com/robobooks/robobooks-api/internal/infrastructure/pdf"
	"github.com/robobooks/robobooks-api/internal/infrastructure/postgres"
	httpRouter "github.com/robobooks/robobooks-api/internal/interfaces/http"
	"github.com/robobooks/robobooks-api/pkg/config"
	"github.com/robobooks/robobooks-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, orgRepo, cfg.JWT)
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	moduleSvc := usecase.NewModuleService(orgRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	documentUC := billing.NewDocumentUseCase(documentRepo, customerRepo, txRunner)
	statusUC := billing.NewStatusUseCase(documentRepo)

	pdfGenerator := infrapdf.NewGenerator()
	pdfUC := billing.NewPDFUseCase(documentRepo, orgRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RoboBooks API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		OrgUC:      orgUC,
		Modules:    moduleSvc,
		CustomerUC: customerUC,
		DocumentUC: documentUC,
		StatusUC:   statusUC,
		PDFUC:      pdfUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
