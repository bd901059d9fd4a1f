package courseController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// playbackPriority pins live sessions to the top of each module
func playbackPriority(contentType string) int {
	switch contentType {
	case courseModels.TypeLiveClass:
		return 0
	case courseModels.TypeLiveTest:
		return 1
	default:
		return 2
	}
}

// CoursePlayer returns the full course tree for playback. The caller must be
// the owning instructor or an enrolled student with unexpired access.
func CoursePlayer(c *fiber.Ctx) error {
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

	if course.InstructorID != user.ID {
		var enrollment courseModels.Enrollment
		err := database.Database.Db.
			Where("user_id = ? AND course_id = ?", user.ID, course.ID).
			First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
		}

		if enrollment.Type == courseModels.EnrollmentTrial &&
			enrollment.ExpiryDate != nil && enrollment.ExpiryDate.Before(time.Now()) {
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Your trial has expired. Please upgrade to continue!", nil)
		}
	}

	var modules []courseModels.Module
	err := database.Database.Db.
		Where("course_id = ?", course.ID).
		Order("order_index asc, id asc").
		Find(&modules).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	playerModules := make([]fiber.Map, 0, len(modules))
	for _, module := range modules {
		var contents []courseModels.ContentItem
		err := database.Database.Db.
			Where("module_id = ?", module.ID).
			Order("order_index asc, id asc").
			Find(&contents).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
		}

		// Stable sort keeps authored ordering inside each priority band
		sort.SliceStable(contents, func(i, j int) bool {
			return playbackPriority(contents[i].Type) < playbackPriority(contents[j].Type)
		})

		playerModules = append(playerModules, fiber.Map{
			"id":       module.ID,
			"title":    module.Title,
			"order":    module.Order,
			"contents": contents,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course player fetched successfully!", fiber.Map{
		"course":  course,
		"modules": playerModules,
	})
}
