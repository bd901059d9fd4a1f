package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	TokenExpiryMinutes int // bearer token validity window
	TrialPeriodDays    int // trial enrollment access window

	CertRequireEnrollment bool // certificate eligibility policy

	RunnerApiURL         string // code execution sandbox URL
	RunnerApiKey         string // code execution sandbox API key
	RunnerTimeoutSeconds int

	SendgridApiKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "8000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		TokenExpiryMinutes: getEnvInt("TOKEN_EXPIRY_MINUTES", 60),
		TrialPeriodDays:    getEnvInt("TRIAL_PERIOD_DAYS", 7),

		CertRequireEnrollment: getEnvBool("CERT_REQUIRE_ENROLLMENT", true),

		RunnerApiURL:         getEnv("RUNNER_API_URL", ""),
		RunnerApiKey:         getEnv("RUNNER_API_KEY", ""),
		RunnerTimeoutSeconds: getEnvInt("RUNNER_TIMEOUT_SECONDS", 10),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@localhost"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RunnerApiURL == "" {
		log.Println("Warning: RUNNER_API_URL not set. Code execution will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default boolean value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
