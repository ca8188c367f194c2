package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/refaccionaria/autopartes-api/internal/application/auth"
	"github.com/refaccionaria/autopartes-api/internal/application/usecase"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SaleUC    *usecase.SaleUseCase
	ClaimUC   *usecase.ClaimUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Cada ruta protegida compone el
// verificador de identidad (cookie JWT) y, donde aplica, la allow-list de
// roles del recurso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	verified := AuthMiddleware(deps.JWTSecret)

	// Sales (protegido; crear solo vendedor/admin, estatus solo dueno/admin, resto admin)
	sales := api.Group("/sales", verified)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/reporte", RequireRole(entity.RoleDueno, entity.RoleAdmin), saleHandler.Report)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/", RequireRole(entity.RoleVendedor, entity.RoleAdmin), saleHandler.Create)
	sales.Patch("/:id/status", RequireRole(entity.RoleDueno, entity.RoleAdmin), saleHandler.UpdateStatus)
	sales.Put("/:id", RequireRole(entity.RoleAdmin), saleHandler.Update)
	sales.Delete("/:id", RequireRole(entity.RoleAdmin), saleHandler.Delete)

	// Claims (protegido; crear cualquier autenticado)
	claims := api.Group("/claims", verified)
	claimHandler := NewClaimHandler(deps.ClaimUC)
	claims.Get("/", claimHandler.List)
	claims.Get("/:id", claimHandler.GetByID)
	claims.Post("/", claimHandler.Create)
	claims.Patch("/:id/status", RequireRole(entity.RoleDueno, entity.RoleAdmin), claimHandler.UpdateStatus)
	claims.Delete("/:id", RequireRole(entity.RoleAdmin), claimHandler.Delete)

	// Users (toda la superficie solo admin)
	users := api.Group("/users", verified, RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
