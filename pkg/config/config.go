package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// Only this package reads environment variables.
type Config struct {
	Env string // development, staging, production

	// Curriculum source
	Curriculum CurriculumConfig

	// Outbound HTTP
	HTTP HTTPConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// CurriculumConfig holds the faculty site configuration.
type CurriculumConfig struct {
	BaseURL      string
	IndexPath    string // page listing the published curriculum plans
	AcademicYear string // e.g. "2024-2025"
}

// HTTPConfig holds the outbound HTTP client configuration.
type HTTPConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64 // requests per second against the faculty site
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Curriculum: CurriculumConfig{
			BaseURL:      getEnv("CURRICULUM_BASE_URL", "https://ac.utcluj.ro"),
			IndexPath:    getEnv("CURRICULUM_INDEX_PATH", "/planuri-de-invatamant.html"),
			AcademicYear: getEnv("CURRICULUM_ACADEMIC_YEAR", "2024-2025"),
		},

		HTTP: HTTPConfig{
			Timeout:    getEnvAsDuration("HTTP_TIMEOUT", "30s"),
			MaxRetries: getEnvAsInt("HTTP_MAX_RETRIES", 3),
			RateLimit:  getEnvAsFloat("HTTP_RATE_LIMIT", 2),
		},

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Curriculum.BaseURL == "" {
		return fmt.Errorf("CURRICULUM_BASE_URL is required")
	}

	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if !validAcademicYear(c.Curriculum.AcademicYear) {
		return fmt.Errorf("CURRICULUM_ACADEMIC_YEAR must look like 2024-2025")
	}

	return nil
}

// validAcademicYear accepts "YYYY-YYYY" with consecutive years.
func validAcademicYear(s string) bool {
	if len(s) != 9 || s[4] != '-' {
		return false
	}

	first, err := strconv.Atoi(s[:4])
	if err != nil {
		return false
	}

	second, err := strconv.Atoi(s[5:])
	if err != nil {
		return false
	}

	return second == first+1
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
