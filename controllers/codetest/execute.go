package codetestController

import (
	"lms/middleware"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Runner proxies code execution to the external sandbox. Tests swap it for
// a fake; main wires the real client at startup.
var Runner utils.CodeRunner

// Execute forwards a code execution request to the sandbox runner
func Execute(c *fiber.Ctx) error {
	reqData := c.Locals("validatedExecute").(*struct {
		SourceCode string `json:"source_code"`
		Stdin      string `json:"stdin"`
		Language   string `json:"language"`
	})

	if Runner == nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Code runner is not configured!", nil)
	}

	result, err := Runner.Execute(utils.RunRequest{
		SourceCode: reqData.SourceCode,
		Stdin:      reqData.Stdin,
		Language:   reqData.Language,
	})
	if err != nil {
		log.Println("[CODE-RUNNER] execution failed:", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Code execution service is unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code executed successfully!", result)
}
