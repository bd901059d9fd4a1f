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

func TestAddContent_CreatesInOwnedModule(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	module := createModuleRow(t, course.ID, "Week 1", 1)

	resp, err := app.Test(authRequest("POST", "/api/v1/content", token, fiber.Map{
		"title":     "Intro Video",
		"type":      "video",
		"data_url":  "https://cdn.example.com/intro.mp4",
		"duration":  12,
		"module_id": module.ID,
		"order":     1,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var content courseModels.ContentItem
	require.NoError(t, database.Database.Db.Where("module_id = ?", module.ID).First(&content).Error)
	assert.Equal(t, "Intro Video", content.Title)
	assert.Equal(t, 12, content.Duration)
}

func TestAddContent_ForeignModuleNotFound(t *testing.T) {
	app := setupApp(t)
	owner, _ := createUser(t, "owner@example.com", "Owner", models.RoleInstructor)
	_, intruderToken := createUser(t, "intruder@example.com", "Intruder", models.RoleInstructor)
	course := createCourse(t, owner.ID, "Go Basics", true)
	module := createModuleRow(t, course.ID, "Week 1", 1)

	resp, err := app.Test(authRequest("POST", "/api/v1/content", intruderToken, fiber.Map{
		"title":     "Sneaky",
		"type":      "video",
		"module_id": module.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateContent_PartialUpdateKeepsOtherFields(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	module := createModuleRow(t, course.ID, "Week 1", 1)
	content := createContentRow(t, module.ID, "Intro Video", "video", 1)

	path := fmt.Sprintf("/api/v1/content/%d", content.ID)
	resp, err := app.Test(authRequest("PATCH", path, token, fiber.Map{
		"title": "Intro Video (Updated)",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded courseModels.ContentItem
	require.NoError(t, database.Database.Db.First(&reloaded, content.ID).Error)
	assert.Equal(t, "Intro Video (Updated)", reloaded.Title)
	assert.Equal(t, "video", reloaded.Type)
	assert.Equal(t, 1, reloaded.Order)
}

func TestDeleteContent_RemovesSubmissionsToo(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, _ := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	module := createModuleRow(t, course.ID, "Week 1", 1)
	content := createContentRow(t, module.ID, "Homework", courseModels.TypeAssignment, 1)

	submission := courseModels.Submission{
		UserID:        student.ID,
		ContentItemID: content.ID,
		DriveLink:     "https://drive.example.com/abc",
		Status:        courseModels.SubmissionPending,
		SubmittedAt:   time.Now(),
	}
	require.NoError(t, database.Database.Db.Create(&submission).Error)

	path := fmt.Sprintf("/api/v1/content/%d", content.ID)
	resp, err := app.Test(authRequest("DELETE", path, token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var contentCount, submissionCount int64
	database.Database.Db.Model(&courseModels.ContentItem{}).Where("id = ?", content.ID).Count(&contentCount)
	database.Database.Db.Model(&courseModels.Submission{}).Where("content_item_id = ?", content.ID).Count(&submissionCount)
	assert.Equal(t, int64(0), contentCount)
	assert.Equal(t, int64(0), submissionCount)
}

func TestDeleteContent_NotOwnedNotFound(t *testing.T) {
	app := setupApp(t)
	owner, _ := createUser(t, "owner@example.com", "Owner", models.RoleInstructor)
	_, intruderToken := createUser(t, "intruder@example.com", "Intruder", models.RoleInstructor)
	course := createCourse(t, owner.ID, "Go Basics", true)
	module := createModuleRow(t, course.ID, "Week 1", 1)
	content := createContentRow(t, module.ID, "Homework", courseModels.TypeAssignment, 1)

	path := fmt.Sprintf("/api/v1/content/%d", content.ID)
	resp, err := app.Test(authRequest("DELETE", path, intruderToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
