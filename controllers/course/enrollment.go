package courseController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Enroll enrolls the calling student into a published course. Trial to paid
// is an upgrade that clears the expiry; any other existing enrollment is an
// already-enrolled no-op.
func Enroll(c *fiber.Ctx) error {
	student := c.Locals("user").(models.User)
	courseID := c.Locals("courseID").(int)
	enrollType := c.Locals("enrollmentType").(string)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_published = ?", courseID, true).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing courseModels.Enrollment
	err = database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&existing).Error

	if err == nil {
		if existing.Type == enrollType {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course!", existing)
		}

		if existing.Type == courseModels.EnrollmentTrial && enrollType == courseModels.EnrollmentPaid {
			updates := map[string]interface{}{
				"type":        courseModels.EnrollmentPaid,
				"expiry_date": nil,
			}
			if err := database.Database.Db.Model(&existing).Updates(updates).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upgrade enrollment!", nil)
			}
			existing.Type = courseModels.EnrollmentPaid
			existing.ExpiryDate = nil
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment upgraded to paid!", existing)
		}

		// Trial request over a paid record changes nothing
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course!", existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}

	newEnrollment := courseModels.Enrollment{
		UserID:     student.ID,
		CourseID:   course.ID,
		Type:       enrollType,
		EnrolledAt: time.Now(),
	}
	if enrollType == courseModels.EnrollmentTrial {
		expiry := time.Now().AddDate(0, 0, config.AppConfig.TrialPeriodDays)
		newEnrollment.ExpiryDate = &expiry
	}

	if err := database.Database.Db.Create(&newEnrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	utils.SendEnrollmentEmail(student.Email, student.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", newEnrollment)
}

// MyCourses lists the calling student's enrollments with course details
func MyCourses(c *fiber.Ctx) error {
	student := c.Locals("user").(models.User)

	var enrollments []courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ?", student.ID).
		Order("id asc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}

		result = append(result, fiber.Map{
			"course":      course,
			"type":        enrollment.Type,
			"expiry_date": enrollment.ExpiryDate,
			"enrolled_at": enrollment.EnrolledAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", result)
}
