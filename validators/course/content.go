package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AddContent validates content creation request
func AddContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string         `json:"title"`
			Type         string         `json:"type"`
			DataURL      string         `json:"data_url"`
			Duration     int            `json:"duration"`
			IsMandatory  bool           `json:"is_mandatory"`
			Instructions string         `json:"instructions"`
			TestConfig   datatypes.JSON `json:"test_config"`
			Order        int            `json:"order"`
			ModuleID     uint           `json:"module_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.TrimSpace(reqData.Type)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Type == "" {
			errors["type"] = "Type is required!"
		}
		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UpdateContent validates partial content update request. Pointer fields keep
// absent-vs-zero apart so untouched columns stay as stored.
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentIDStr := strings.TrimSpace(c.Params("id"))
		contentID, err := strconv.Atoi(contentIDStr)
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(struct {
			Title        *string         `json:"title"`
			Type         *string         `json:"type"`
			DataURL      *string         `json:"data_url"`
			Duration     *int            `json:"duration"`
			IsMandatory  *bool           `json:"is_mandatory"`
			Instructions *string         `json:"instructions"`
			TestConfig   *datatypes.JSON `json:"test_config"`
			Order        *int            `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Type != nil && strings.TrimSpace(*reqData.Type) == "" {
			errors["type"] = "Type cannot be empty!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}

// ContentID validates routes that only take a content ID parameter
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentIDStr := strings.TrimSpace(c.Params("id"))
		contentID, err := strconv.Atoi(contentIDStr)
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}
