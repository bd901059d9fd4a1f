package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateModule adds a module to a course owned by the calling instructor
func CreateModule(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	courseID := c.Locals("courseID").(int)

	reqData := c.Locals("validatedModule").(*struct {
		Title string `json:"title"`
		Order int    `json:"order"`
	})

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", courseID, instructor.ID).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	newModule := courseModels.Module{
		CourseID: course.ID,
		Title:    reqData.Title,
		Order:    reqData.Order,
	}

	if err := database.Database.Db.Create(&newModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", newModule)
}

// ListModules returns a course's modules in display order
func ListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	err := database.Database.Db.
		Where("course_id = ?", course.ID).
		Order("order_index asc, id asc").
		Find(&modules).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}
