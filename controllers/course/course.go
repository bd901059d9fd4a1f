package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course owned by the calling instructor
func CreateCourse(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)

	reqData := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		ImageURL    string `json:"image_url"`
	})

	newCourse := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Price:        reqData.Price,
		ImageURL:     reqData.ImageURL,
		InstructorID: instructor.ID,
	}

	if err := database.Database.Db.Create(&newCourse).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", newCourse)
}

// ListCourses returns courses visible to the caller. Instructors see their
// own catalog including drafts; everyone else sees published courses only.
func ListCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var courses []courseModels.Course
	query := database.Database.Db.Order("id asc")

	if user.Role == models.RoleInstructor {
		query = query.Where("instructor_id = ?", user.ID)
	} else {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// PublishCourse flips a course to published. Publishing is one-way and
// idempotent; republishing an already published course is not an error.
func PublishCourse(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", courseID, instructor.ID).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsPublished {
		if err := database.Database.Db.Model(&course).Update("is_published", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}
