package adminController

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// findOrCreateStudent returns the user for an email, creating a student
// account with a temporary password when none exists. The second return
// reports whether a new account was created.
func findOrCreateStudent(email, name string) (*models.User, bool, error) {
	var user models.User
	err := database.Database.Db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	tempPassword := utils.GenerateTempPassword()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), config.AppConfig.SaltRound)
	if err != nil {
		return nil, false, err
	}

	user = models.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		return nil, false, err
	}

	utils.SendWelcomeEmail(email, name, tempPassword)
	return &user, true, nil
}

// enrollPaid creates a paid enrollment unless one already exists
func enrollPaid(userID, courseID uint) error {
	var existing courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Type:       courseModels.EnrollmentPaid,
		EnrolledAt: time.Now(),
	}
	return database.Database.Db.Create(&enrollment).Error
}

// AdmitStudent admits one student into one or more courses. Unknown emails
// get a fresh student account with a temporary password.
func AdmitStudent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAdmit").(*struct {
		FullName  string `json:"full_name"`
		Email     string `json:"email"`
		CourseIDs []uint `json:"course_ids"`
	})

	student, created, err := findOrCreateStudent(reqData.Email, reqData.FullName)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to admit student!", nil)
	}

	enrolled := make([]uint, 0, len(reqData.CourseIDs))
	failed := make([]fiber.Map, 0)

	for _, courseID := range reqData.CourseIDs {
		var course courseModels.Course
		if err := database.Database.Db.First(&course, courseID).Error; err != nil {
			failed = append(failed, fiber.Map{"course_id": courseID, "reason": "Course not found"})
			continue
		}

		if err := enrollPaid(student.ID, course.ID); err != nil {
			failed = append(failed, fiber.Map{"course_id": courseID, "reason": "Enrollment failed"})
			continue
		}

		enrolled = append(enrolled, course.ID)
		utils.SendEnrollmentEmail(student.Email, student.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student admitted successfully!", fiber.Map{
		"student_id":       student.ID,
		"email":            student.Email,
		"account_created":  created,
		"enrolled_courses": enrolled,
		"failed_courses":   failed,
	})
}

// BulkAdmit admits every valid row from an uploaded sheet into one course.
// Bad rows are reported back; they never abort the rest of the batch.
func BulkAdmit(c *fiber.Ctx) error {
	file := c.Locals("admitFile").(*multipart.FileHeader)
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	rows, rowErrors, err := utils.ParseAdmitSheet(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	admitted := 0
	report := make([]fiber.Map, 0, len(rowErrors))
	for _, rowErr := range rowErrors {
		report = append(report, fiber.Map{"line": rowErr.Line, "reason": rowErr.Reason})
	}

	for _, row := range rows {
		student, _, err := findOrCreateStudent(row.Email, row.Name)
		if err != nil {
			report = append(report, fiber.Map{"line": row.Line, "reason": "Failed to create account"})
			continue
		}

		if err := enrollPaid(student.ID, course.ID); err != nil {
			report = append(report, fiber.Map{"line": row.Line, "reason": "Enrollment failed"})
			continue
		}

		admitted++
		utils.SendEnrollmentEmail(student.Email, student.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk admission processed!", fiber.Map{
		"course_id": course.ID,
		"admitted":  admitted,
		"errors":    report,
	})
}
