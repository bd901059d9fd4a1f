package codetestController

import (
	"bytes"
	"encoding/csv"
	"lms/database"
	"lms/middleware"
	"lms/models"
	codetestModels "lms/models/codetest"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTest creates a code test and its problems in one transaction
func CreateTest(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)

	reqData := c.Locals("validatedTest").(*struct {
		Title     string `json:"title"`
		PassKey   string `json:"pass_key"`
		TimeLimit int    `json:"time_limit"`
		Problems  []struct {
			Title       string         `json:"title"`
			Description string         `json:"description"`
			Difficulty  string         `json:"difficulty"`
			TestCases   datatypes.JSON `json:"test_cases"`
		} `json:"problems"`
	})

	newTest := codetestModels.CodeTest{
		Title:        reqData.Title,
		PassKey:      reqData.PassKey,
		TimeLimit:    reqData.TimeLimit,
		InstructorID: instructor.ID,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTest).Error; err != nil {
			return err
		}

		for _, p := range reqData.Problems {
			difficulty := p.Difficulty
			if difficulty == "" {
				difficulty = "Easy"
			}

			problem := codetestModels.Problem{
				CodeTestID:  newTest.ID,
				Title:       p.Title,
				Description: p.Description,
				Difficulty:  difficulty,
				TestCases:   p.TestCases,
			}
			if err := tx.Create(&problem).Error; err != nil {
				return err
			}
			newTest.Problems = append(newTest.Problems, problem)
		}

		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test created successfully!", newTest)
}

// ListTests returns code tests visible to the caller. Instructors see their
// own tests with pass keys; students see every test with the key blanked.
func ListTests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var tests []codetestModels.CodeTest
	query := database.Database.Db.Order("id asc")

	if user.Role == models.RoleInstructor {
		query = query.Where("instructor_id = ?", user.ID)
	}

	if err := query.Find(&tests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tests!", nil)
	}

	if user.Role != models.RoleInstructor {
		for i := range tests {
			tests[i].PassKey = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tests fetched successfully!", tests)
}

// StartTest begins an attempt. The supplied pass key must match exactly.
func StartTest(c *fiber.Ctx) error {
	testID := c.Locals("testID").(int)
	passKey := c.Locals("passKey").(string)

	var test codetestModels.CodeTest
	err := database.Database.Db.Preload("Problems").First(&test, testID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
	}

	if test.PassKey != passKey {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid pass key!", nil)
	}

	test.PassKey = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test started successfully!", test)
}

// SubmitResult records a finished attempt for the calling student
func SubmitResult(c *fiber.Ctx) error {
	student := c.Locals("user").(models.User)

	reqData := c.Locals("validatedResult").(*struct {
		TestID         uint `json:"test_id"`
		Score          int  `json:"score"`
		ProblemsSolved int  `json:"problems_solved"`
		TimeTaken      int  `json:"time_taken"`
	})

	var test codetestModels.CodeTest
	if err := database.Database.Db.First(&test, reqData.TestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
	}

	newResult := codetestModels.TestResult{
		CodeTestID:     test.ID,
		UserID:         student.ID,
		Score:          reqData.Score,
		ProblemsSolved: reqData.ProblemsSolved,
		TimeTaken:      reqData.TimeTaken,
		SubmittedAt:    time.Now(),
	}

	if err := database.Database.Db.Create(&newResult).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Result submitted successfully!", newResult)
}

// GetResults lists a test's results for the owning instructor. Pass
// format=csv to download the scoreboard as a spreadsheet.
func GetResults(c *fiber.Ctx) error {
	instructor := c.Locals("user").(models.User)
	testID := c.Locals("testID").(int)

	var test codetestModels.CodeTest
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", testID, instructor.ID).
		First(&test).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test not found!", nil)
	}

	var results []codetestModels.TestResult
	err = database.Database.Db.
		Where("code_test_id = ?", test.ID).
		Order("score desc, time_taken asc").
		Find(&results).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	rows := make([]fiber.Map, 0, len(results))
	for _, result := range results {
		var student models.User
		if err := database.Database.Db.First(&student, result.UserID).Error; err != nil {
			continue
		}

		rows = append(rows, fiber.Map{
			"student_name":    student.Name,
			"email":           student.Email,
			"score":           result.Score,
			"problems_solved": result.ProblemsSolved,
			"time_taken":      result.TimeTaken,
			"submitted_at":    result.SubmittedAt,
		})
	}

	if c.Query("format") == "csv" {
		return sendResultsCSV(c, rows)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", rows)
}

func sendResultsCSV(c *fiber.Ctx, rows []fiber.Map) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"student_name", "email", "score", "problems_solved", "time_taken", "submitted_at"})
	for _, row := range rows {
		writer.Write([]string{
			row["student_name"].(string),
			row["email"].(string),
			strconv.Itoa(row["score"].(int)),
			strconv.Itoa(row["problems_solved"].(int)),
			strconv.Itoa(row["time_taken"].(int)),
			row["submitted_at"].(time.Time).Format(time.RFC3339),
		})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export results!", nil)
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="results.csv"`)
	return c.Send(buf.Bytes())
}
