package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.JWTMiddleware)

	// Catalog and structure
	api.Post("/courses", middleware.RequireRole(models.RoleInstructor), courseValidator.CreateCourse(), courseController.CreateCourse)
	api.Get("/courses", courseController.ListCourses)
	api.Post("/courses/:id/modules", middleware.RequireRole(models.RoleInstructor), courseValidator.CreateModule(), courseController.CreateModule)
	api.Get("/courses/:id/modules", courseValidator.CourseID(), courseController.ListModules)
	api.Patch("/courses/:id/publish", middleware.RequireRole(models.RoleInstructor), courseValidator.CourseID(), courseController.PublishCourse)

	// Content
	api.Post("/content", middleware.RequireRole(models.RoleInstructor), courseValidator.AddContent(), courseController.AddContent)
	api.Patch("/content/:id", middleware.RequireRole(models.RoleInstructor), courseValidator.UpdateContent(), courseController.UpdateContent)
	api.Delete("/content/:id", middleware.RequireRole(models.RoleInstructor), courseValidator.ContentID(), courseController.DeleteContent)

	// Playback and enrollment
	api.Get("/courses/:id/player", courseValidator.CourseID(), courseController.CoursePlayer)
	api.Get("/my-courses", middleware.RequireRole(models.RoleStudent), courseController.MyCourses)
	api.Post("/enroll/:id", middleware.RequireRole(models.RoleStudent), courseValidator.Enroll(), courseController.Enroll)

	// Assignments
	api.Post("/submissions", middleware.RequireRole(models.RoleStudent), courseValidator.SubmitAssignment(), courseController.SubmitAssignment)
	api.Get("/content/:id/submissions", middleware.RequireRole(models.RoleInstructor), courseValidator.ContentID(), courseController.ListSubmissions)
	api.Patch("/assignments/:id/status", middleware.RequireRole(models.RoleInstructor), courseValidator.UpdateSubmissionStatus(), courseController.UpdateSubmissionStatus)

	// Certificates
	api.Get("/courses/:id/certification-status", courseValidator.CourseID(), courseController.CertificationStatus)
	api.Get("/generate-pdf/:id", courseValidator.CourseID(), courseController.GenerateCertificate)
}
