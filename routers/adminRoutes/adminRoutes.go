package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor))

	api.Post("/admit-student", adminValidator.AdmitStudent(), adminController.AdmitStudent)
	api.Post("/bulk-admit", adminValidator.BulkAdmit(), adminController.BulkAdmit)
}
