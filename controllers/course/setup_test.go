package courseController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		JWTKey:                "test-secret",
		SaltRound:             4,
		TokenExpiryMinutes:    60,
		TrialPeriodDays:       7,
		CertRequireEnrollment: true,
	}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T, email, name, role string) (models.User, string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	require.NoError(t, err)

	user := models.User{Email: email, Name: name, Password: string(hashed), Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createCourse(t *testing.T, instructorID uint, title string, published bool) courseModels.Course {
	course := courseModels.Course{
		Title:        title,
		Description:  "A test of skill",
		Price:        4999,
		InstructorID: instructorID,
		IsPublished:  published,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func createModuleRow(t *testing.T, courseID uint, title string, order int) courseModels.Module {
	module := courseModels.Module{CourseID: courseID, Title: title, Order: order}
	require.NoError(t, database.Database.Db.Create(&module).Error)
	return module
}

func createContentRow(t *testing.T, moduleID uint, title, contentType string, order int) courseModels.ContentItem {
	content := courseModels.ContentItem{ModuleID: moduleID, Title: title, Type: contentType, Order: order}
	require.NoError(t, database.Database.Db.Create(&content).Error)
	return content
}

func enrollUser(t *testing.T, userID, courseID uint, enrollType string, expiry *time.Time) courseModels.Enrollment {
	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Type:       enrollType,
		ExpiryDate: expiry,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
	return enrollment
}

func authRequest(method, path, token string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}
