package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssignment validates an assignment submission request
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ContentItemID uint   `json:"content_item_id"`
			DriveLink     string `json:"drive_link"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.DriveLink = strings.TrimSpace(reqData.DriveLink)

		if reqData.ContentItemID == 0 {
			errors["content_item_id"] = "Content item ID is required!"
		}
		if reqData.DriveLink == "" {
			errors["drive_link"] = "Submission link is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// UpdateSubmissionStatus validates a grading request. Status is a closed enum.
func UpdateSubmissionStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subIDStr := strings.TrimSpace(c.Params("id"))
		subID, err := strconv.Atoi(subIDStr)
		if err != nil || subID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(reqData.Status)

		switch reqData.Status {
		case courseModels.SubmissionPending, courseModels.SubmissionAccepted, courseModels.SubmissionRejected:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be Pending, Accepted or Rejected!",
			})
		}

		c.Locals("submissionID", subID)
		c.Locals("submissionStatus", reqData.Status)
		return c.Next()
	}
}
