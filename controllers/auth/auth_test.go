package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	authRoutes "lms/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
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
		JWTKey:             "test-secret",
		SaltRound:          4,
		TokenExpiryMinutes: 60,
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func TestRegister_CreatesStudent(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/users", fiber.Map{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
		"role":     "student",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	err = database.Database.Db.Where("email = ?", "alice@example.com").First(&user).Error
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "password123", user.Password)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	app := setupApp(t)

	payload := fiber.Map{
		"email":    "bob@example.com",
		"password": "password123",
		"name":     "Bob",
		"role":     "instructor",
	}

	resp, err := app.Test(jsonRequest("POST", "/api/v1/users", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/v1/users", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_RejectsInvalidRole(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/users", fiber.Map{
		"email":    "eve@example.com",
		"password": "password123",
		"name":     "Eve",
		"role":     "admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin_ReturnsToken(t *testing.T) {
	app := setupApp(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	user := models.User{Email: "carol@example.com", Name: "Carol", Password: string(hashed), Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/login", fiber.Map{
		"email":    "carol@example.com",
		"password": "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	app := setupApp(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	user := models.User{Email: "dave@example.com", Password: string(hashed), Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/login", fiber.Map{
		"email":    "dave@example.com",
		"password": "wrong-password",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePassword_UpdatesHash(t *testing.T) {
	app := setupApp(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), 4)
	user := models.User{Email: "frank@example.com", Name: "Frank", Password: string(hashed), Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	req := jsonRequest("PATCH", "/api/v1/users/password", fiber.Map{
		"new_password": "newpassword1",
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword1")))
}

func TestChangePassword_RequiresToken(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/users/password", fiber.Map{
		"new_password": "newpassword1",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
