package adminValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AdmitStudent validates a single-student admission request
func AdmitStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName  string `json:"full_name"`
			Email     string `json:"email"`
			CourseIDs []uint `json:"course_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.FullName = strings.TrimSpace(reqData.FullName)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.FullName == "" {
			errors["full_name"] = "Full name is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Invalid email format!"
		}
		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdmit", reqData)
		return c.Next()
	}
}

// BulkAdmit validates a bulk admission upload (multipart sheet + course id)
func BulkAdmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "A CSV or XLSX file is required!",
			})
		}

		name := strings.ToLower(file.Filename)
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".xlsx") {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"file": "Only .csv and .xlsx files are supported!",
			})
		}

		courseIDStr := strings.TrimSpace(c.FormValue("course_id"))
		courseID, convErr := strconv.Atoi(courseIDStr)
		if convErr != nil || courseID <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "A valid course ID is required!",
			})
		}

		c.Locals("admitFile", file)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}
