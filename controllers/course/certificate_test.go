package courseController_test

import (
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationStatus_EnrolledStudentEligible(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentPaid, nil)

	path := fmt.Sprintf("/api/v1/courses/%d/certification-status", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["eligible"])
}

func TestCertificationStatus_NotEnrolledIneligible(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	_, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	path := fmt.Sprintf("/api/v1/courses/%d/certification-status", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["eligible"])
}

func TestCertificationStatus_ExpiredTrialIneligible(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	expired := time.Now().AddDate(0, 0, -2)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentTrial, &expired)

	path := fmt.Sprintf("/api/v1/courses/%d/certification-status", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["eligible"])
}

func TestCertificationStatus_PolicyDisabledAllowsAnyone(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	_, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	config.AppConfig.CertRequireEnrollment = false

	path := fmt.Sprintf("/api/v1/courses/%d/certification-status", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["eligible"])
}

func TestGenerateCertificate_StreamsPDF(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	student, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)
	enrollUser(t, student.ID, course.ID, courseModels.EnrollmentPaid, nil)

	path := fmt.Sprintf("/api/v1/generate-pdf/%d", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestGenerateCertificate_IneligibleForbidden(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "teach@example.com", "Teach", models.RoleInstructor)
	_, studentToken := createUser(t, "learn@example.com", "Learn", models.RoleStudent)
	course := createCourse(t, instructor.ID, "Go Basics", true)

	path := fmt.Sprintf("/api/v1/generate-pdf/%d", course.ID)
	resp, err := app.Test(authRequest("GET", path, studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
