package codetestRoutes

import (
	codetestController "lms/controllers/codetest"
	"lms/middleware"
	"lms/models"
	codetestValidator "lms/validators/codetest"

	"github.com/gofiber/fiber/v2"
)

func SetupCodeTestRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.JWTMiddleware)

	api.Post("/code-tests", middleware.RequireRole(models.RoleInstructor), codetestValidator.CreateTest(), codetestController.CreateTest)
	api.Get("/code-tests", codetestController.ListTests)
	api.Post("/code-tests/submit", middleware.RequireRole(models.RoleStudent), codetestValidator.SubmitResult(), codetestController.SubmitResult)
	// The pass key is the gate here; any authenticated caller may start
	api.Post("/code-tests/:id/start", codetestValidator.StartTest(), codetestController.StartTest)
	api.Get("/code-tests/:id/results", middleware.RequireRole(models.RoleInstructor), codetestValidator.TestID(), codetestController.GetResults)

	// The editor calls this before login, so it stays outside the bearer gate
	app.Post("/api/v1/execute", codetestValidator.Execute(), codetestController.Execute)
}
