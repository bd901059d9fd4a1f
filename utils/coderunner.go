package utils

import (
	"fmt"
	"lms/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// RunRequest is the payload forwarded to the sandboxed code runner
type RunRequest struct {
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
	Language   string `json:"language"`
}

// RunResult is the runner's response for an execution
type RunResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
	TimeMs   int    `json:"time_ms"`
}

// CodeRunner executes untrusted submitted source code against supplied input
type CodeRunner interface {
	Execute(req RunRequest) (*RunResult, error)
}

type sandboxRunner struct {
	client *resty.Client
	url    string
}

// NewCodeRunner builds a runner client with a bounded timeout and retry policy
func NewCodeRunner(cfg *config.Config) CodeRunner {
	client := resty.New().
		SetTimeout(time.Duration(cfg.RunnerTimeoutSeconds) * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")

	if cfg.RunnerApiKey != "" {
		client.SetHeader("X-Api-Key", cfg.RunnerApiKey)
	}

	return &sandboxRunner{client: client, url: cfg.RunnerApiURL}
}

func (r *sandboxRunner) Execute(req RunRequest) (*RunResult, error) {
	if r.url == "" {
		return nil, fmt.Errorf("code runner is not configured")
	}

	resp, err := r.client.R().
		SetBody(req).
		SetResult(&RunResult{}).
		Post(r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to reach code runner: %v", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("code runner returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return resp.Result().(*RunResult), nil
}
