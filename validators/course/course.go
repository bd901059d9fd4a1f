package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseCourseID reads and validates the :id route parameter
func parseCourseID(c *fiber.Ctx) (int, bool) {
	courseIDStr := strings.TrimSpace(c.Params("id"))
	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil || courseID <= 0 {
		return 0, false
	}
	return courseID, true
}

// CreateCourse validates course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Price       int64  `json:"price"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates routes that only take a course ID parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateModule validates module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title string `json:"title"`
			Order int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// Enroll validates the enrollment request
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Type string `json:"type"`
		})

		// Body is optional; enrollment defaults to paid
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		reqData.Type = strings.TrimSpace(reqData.Type)
		if reqData.Type == "" {
			reqData.Type = courseModels.EnrollmentPaid
		}

		if reqData.Type != courseModels.EnrollmentTrial && reqData.Type != courseModels.EnrollmentPaid {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"type": "Enrollment type must be trial or paid!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("enrollmentType", reqData.Type)
		return c.Next()
	}
}
