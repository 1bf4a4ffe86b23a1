package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/creators-api/internal/application/auth"
	"github.com/tu-usuario/creators-api/internal/application/usecase"
	"github.com/tu-usuario/creators-api/internal/domain/entity"
	"github.com/tu-usuario/creators-api/pkg/jwt"
	"github.com/tu-usuario/creators-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.AuthUseCase
	UserUC *usecase.UserUseCase
	Issuer *jwt.Issuer
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users (protegido, requiere Bearer Token)
	users := api.Group("/users", AuthMiddleware(deps.Issuer))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", RequireRole(entity.RoleAdmin), userHandler.GetByID)
}
