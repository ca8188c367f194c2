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
	"github.com/shopspring/decimal"

	"github.com/refaccionaria/autopartes-api/internal/application/auth"
	"github.com/refaccionaria/autopartes-api/internal/application/usecase"
	"github.com/refaccionaria/autopartes-api/internal/infrastructure/partes"
	infrapdf "github.com/refaccionaria/autopartes-api/internal/infrastructure/pdf"
	"github.com/refaccionaria/autopartes-api/internal/infrastructure/postgres"
	httpRouter "github.com/refaccionaria/autopartes-api/internal/interfaces/http"
	"github.com/refaccionaria/autopartes-api/pkg/config"
	"github.com/refaccionaria/autopartes-api/pkg/logger"
)

func main() {
	// precio viaja como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true

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

	// Arranque idempotente: tablas si no existen + cuenta admin operable.
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)

	if err := auth.SeedDefaultAdmin(userRepo, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}

	partValidator := partes.NewHTTPValidator(cfg.Parts.BaseURL)
	reportGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	saleUC := usecase.NewSaleUseCase(saleRepo, partValidator, reportGenerator)
	claimUC := usecase.NewClaimUseCase(claimRepo, saleRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Autopartes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		SaleUC:    saleUC,
		ClaimUC:   claimUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
	})

	// Cliente SPA: tablas y formularios; sin lógica de negocio.
	app.Static("/", "./public")

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
