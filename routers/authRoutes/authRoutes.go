package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/users", authValidator.Register(), authController.Register)
	api.Post("/login", authValidator.Login(), authController.Login)
	api.Patch("/users/password", middleware.JWTMiddleware, authValidator.ChangePassword(), authController.ChangePassword)
}
