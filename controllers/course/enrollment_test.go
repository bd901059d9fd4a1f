package courseController_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_TrialSetsExpiry(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "trial"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment courseModels.Enrollment
	err = database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error
	require.NoError(t, err)

	assert.Equal(t, courseModels.EnrollmentTrial, enrollment.Type)
	require.NotNil(t, enrollment.ExpiryDate)

	daysLeft := time.Until(*enrollment.ExpiryDate)
	assert.Greater(t, daysLeft, 6*24*time.Hour)
	assert.Less(t, daysLeft, 8*24*time.Hour)
}

func TestEnroll_PaidHasNoExpiry(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "paid"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentPaid, enrollment.Type)
	assert.Nil(t, enrollment.ExpiryDate)
}

func TestEnroll_DefaultsToPaid(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentPaid, enrollment.Type)
}

func TestEnroll_UnpublishedCourseNotFound(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	_, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", false)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "paid"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnroll_SameTypeIsNoOp(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentPaid, nil)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "paid"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnroll_TrialUpgradesToPaid(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	expiry := time.Now().AddDate(0, 0, 3)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentTrial, &expiry)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "paid"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentPaid, enrollment.Type)
	assert.Nil(t, enrollment.ExpiryDate)
}

func TestEnroll_TrialRequestOverPaidIsNoOp(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentPaid, nil)

	path := fmt.Sprintf("/api/v1/enroll/%d", course.ID)
	resp, err := app.Test(authRequest("POST", path, studentToken, fiber.Map{"type": "trial"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The paid record is left untouched
	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentPaid, enrollment.Type)
	assert.Nil(t, enrollment.ExpiryDate)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMyCourses_ListsEnrollments(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)

	first := createCourse(t, instructor.ID, "Go Basics", true)
	second := createCourse(t, instructor.ID, "Go Advanced", true)
	enrollUser(t, student.ID, first.ID, courseModels.EnrollmentPaid, nil)
	expiry := time.Now().AddDate(0, 0, 5)
	enrollUser(t, student.ID, second.ID, courseModels.EnrollmentTrial, &expiry)

	resp, err := app.Test(authRequest("GET", "/api/v1/my-courses", studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["data"], 2)
}
