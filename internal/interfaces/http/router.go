package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agristock/depot-api/internal/application/auth"
	appclient "github.com/agristock/depot-api/internal/application/client"
	"github.com/agristock/depot-api/internal/application/dashboard"
	"github.com/agristock/depot-api/internal/application/movement"
	appuser "github.com/agristock/depot-api/internal/application/user"
	"github.com/agristock/depot-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *dashboard.UseCase
	ClientUC    *appclient.UseCase
	MovementUC  *movement.UseCase
	UserUC      *appuser.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el registro lo hace un Admin autenticado (la
	// cuenta Admin inicial se siembra desde configuración en el arranque).
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Clients: listado y detalle bajo alcance; creación solo Admin
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := protected.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", RequireRole(entity.RoleAdmin), clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)

	// Movements: lectura bajo alcance; escritura validada en el use case
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Record)
	movements.Patch("/:id/comment-read", RequireRole(entity.RoleAdmin), movementHandler.MarkCommentRead)

	// Users (solo Admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Patch("/:id/status", userHandler.UpdateStatus)
}
