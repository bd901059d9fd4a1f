package courseController

import (
	"errors"
	"fmt"
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

// certificateEligible applies the completion certificate policy for a user
// and course. Owning instructors are always eligible for their own courses.
func certificateEligible(user models.User, course courseModels.Course) (bool, string) {
	if course.InstructorID == user.ID {
		return true, "Eligible"
	}

	if !config.AppConfig.CertRequireEnrollment {
		return true, "Eligible"
	}

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "Not enrolled in this course"
		}
		return false, "Could not verify enrollment"
	}

	if enrollment.Type == courseModels.EnrollmentTrial &&
		enrollment.ExpiryDate != nil && enrollment.ExpiryDate.Before(time.Now()) {
		return false, "Trial access has expired"
	}

	return true, "Eligible"
}

// CertificationStatus reports whether the caller can receive a certificate
func CertificationStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(int)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	eligible, reason := certificateEligible(user, course)

	var certificateURL string
	if eligible {
		certificateURL = fmt.Sprintf("/api/v1/generate-pdf/%d", course.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certification status fetched successfully!", fiber.Map{
		"course_id":       course.ID,
		"eligible":        eligible,
		"reason":          reason,
		"certificate_url": certificateURL,
	})
}

// GenerateCertificate renders and streams the completion certificate PDF
func GenerateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(int)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	eligible, reason := certificateEligible(user, course)
	if !eligible {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, reason, nil)
	}

	serial := utils.GenerateCertificateSerial()
	dateStr := time.Now().Format("January 2, 2006")

	pdfBytes, err := utils.RenderCertificate(user.Name, course.Title, dateStr, serial)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="certificate.pdf"`)
	return c.Send(pdfBytes)
}
