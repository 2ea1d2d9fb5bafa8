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

	"github.com/agristock/depot-api/internal/application/auth"
	appclient "github.com/agristock/depot-api/internal/application/client"
	"github.com/agristock/depot-api/internal/application/dashboard"
	"github.com/agristock/depot-api/internal/application/movement"
	appuser "github.com/agristock/depot-api/internal/application/user"
	"github.com/agristock/depot-api/internal/infrastructure/postgres"
	httpRouter "github.com/agristock/depot-api/internal/interfaces/http"
	"github.com/agristock/depot-api/pkg/config"
	"github.com/agristock/depot-api/pkg/logger"
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

	// Gateway de datos: repositorios inyectados por constructor; nada de
	// cliente global implícito.
	clientRepo := postgres.NewClientRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, clientRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	// El registro es solo-Admin: la primera cuenta se siembra desde config.
	if err := authUC.EnsureBootstrapAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("siembra del Admin inicial")
	}

	dashboardUC := dashboard.NewUseCase(clientRepo, movementRepo)
	clientUC := appclient.NewUseCase(clientRepo)
	movementUC := movement.NewUseCase(movementRepo, userRepo, clientRepo)
	userUC := appuser.NewUseCase(userRepo)

	// Consumidor único de las transiciones de sesión.
	go func() {
		for ev := range authUC.Events() {
			log.Info().
				Str("event", ev.Type).
				Str("user_id", ev.UserID).
				Time("at", ev.At).
				Msg("transición de sesión")
		}
	}()

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
		Title:    "AgriStock Depot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		ClientUC:    clientUC,
		MovementUC:  movementUC,
		UserUC:      userUC,
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
