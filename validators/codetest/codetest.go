package codetestValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// parseTestID reads and validates the :id route parameter
func parseTestID(c *fiber.Ctx) (int, bool) {
	testIDStr := strings.TrimSpace(c.Params("id"))
	testID, err := strconv.Atoi(testIDStr)
	if err != nil || testID <= 0 {
		return 0, false
	}
	return testID, true
}

// CreateTest validates a code test creation request with its problems
func CreateTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.PassKey = strings.TrimSpace(reqData.PassKey)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.PassKey == "" {
			errors["pass_key"] = "Pass key is required!"
		}
		if reqData.TimeLimit <= 0 {
			errors["time_limit"] = "Time limit must be a positive number!"
		}
		for i, p := range reqData.Problems {
			if strings.TrimSpace(p.Title) == "" {
				errors["problems"] = "Problem " + strconv.Itoa(i+1) + " is missing a title!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTest", reqData)
		return c.Next()
	}
}

// StartTest validates a test start request carrying the pass key
func StartTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		testID, ok := parseTestID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test ID!", nil)
		}

		reqData := new(struct {
			PassKey string `json:"pass_key"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.PassKey) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"pass_key": "Pass key is required!",
			})
		}

		c.Locals("testID", testID)
		c.Locals("passKey", strings.TrimSpace(reqData.PassKey))
		return c.Next()
	}
}

// SubmitResult validates a test result submission
func SubmitResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TestID         uint `json:"test_id"`
			Score          int  `json:"score"`
			ProblemsSolved int  `json:"problems_solved"`
			TimeTaken      int  `json:"time_taken"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TestID == 0 {
			errors["test_id"] = "Test ID is required!"
		}
		if reqData.Score < 0 {
			errors["score"] = "Score cannot be negative!"
		}
		if reqData.ProblemsSolved < 0 {
			errors["problems_solved"] = "Problems solved cannot be negative!"
		}
		if reqData.TimeTaken < 0 {
			errors["time_taken"] = "Time taken cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResult", reqData)
		return c.Next()
	}
}

// TestID validates routes that only take a test ID parameter
func TestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		testID, ok := parseTestID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test ID!", nil)
		}

		c.Locals("testID", testID)
		return c.Next()
	}
}

// Execute validates a code execution proxy request
func Execute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SourceCode string `json:"source_code"`
			Stdin      string `json:"stdin"`
			Language   string `json:"language"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.SourceCode) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"source_code": "Source code is required!",
			})
		}

		c.Locals("validatedExecute", reqData)
		return c.Next()
	}
}
