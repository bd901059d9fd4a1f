package courseController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitAssignment records a student's submission for an assignment item.
// The student must be enrolled in the course the item belongs to.
func SubmitAssignment(c *fiber.Ctx) error {
	student := c.Locals("user").(models.User)

	reqData := c.Locals("validatedSubmission").(*struct {
		ContentItemID uint   `json:"content_item_id"`
		DriveLink     string `json:"drive_link"`
	})

	var content courseModels.ContentItem
	if err := database.Database.Db.First(&content, reqData.ContentItemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if content.Type != courseModels.TypeAssignment {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This content item does not accept submissions!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.First(&module, content.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, module.CourseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}

	newSubmission := courseModels.Submission{
		UserID:        student.ID,
		ContentItemID: content.ID,
		DriveLink:     reqData.DriveLink,
		Status:        courseModels.SubmissionPending,
		SubmittedAt:   time.Now(),
	}

	if err := database.Database.Db.Create(&newSubmission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", newSubmission)
}

// ListSubmissions returns all submissions on a content item the calling
// instructor owns, with submitting student details.
func ListSubmissions(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	contentID := c.Locals("contentID").(int)

	content, err := contentOwnedBy(contentID, instructor.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	var submissions []courseModels.Submission
	err = database.Database.Db.
		Where("content_item_id = ?", content.ID).
		Order("id asc").
		Find(&submissions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	result := make([]fiber.Map, 0, len(submissions))
	for _, submission := range submissions {
		var student models.User
		if err := database.Database.Db.First(&student, submission.UserID).Error; err != nil {
			continue
		}

		result = append(result, fiber.Map{
			"id":            submission.ID,
			"student_name":  student.Name,
			"student_email": student.Email,
			"drive_link":    submission.DriveLink,
			"status":        submission.Status,
			"submitted_at":  submission.SubmittedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", result)
}

// UpdateSubmissionStatus grades a submission. Only the instructor who owns
// the course the submission belongs to may change its status.
func UpdateSubmissionStatus(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	submissionID := c.Locals("submissionID").(int)
	status := c.Locals("submissionStatus").(string)

	var submission courseModels.Submission
	if err := database.Database.Db.First(&submission, submissionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	if _, err := contentOwnedBy(int(submission.ContentItemID), instructor.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	if err := database.Database.Db.Model(&submission).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission status updated successfully!", submission)
}
