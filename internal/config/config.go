package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// Mistral (text completion)
	MistralAPIKey  string
	MistralModel   string
	MistralBaseURL string

	// Image generation
	StabilityAPIKey string
	SegmindAPIKey   string

	// Session state
	SessionDBFile string

	// Staged uploads and generated files
	StagingDir string

	// Optional S3-compatible artifact store
	S3Enabled         bool
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Upload limits
	MaxFileSize int64
}

// Load reads configuration from the environment, with an optional .env
// file. Provider keys may be empty at load time; the owning client fails
// the first call with a configuration error instead.
func Load() (*Config, error) {
	// Missing .env is fine; the process environment takes over.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MistralAPIKey:     getEnv("MISTRAL_API_KEY", ""),
		MistralModel:      getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralBaseURL:    getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		StabilityAPIKey:   getEnv("STABILITY_API_KEY", ""),
		SegmindAPIKey:     getEnv("SEGMIND_API_KEY", ""),
		SessionDBFile:     getEnv("SESSION_DB_FILE", "data/sessions.db"),
		StagingDir:        getEnv("STAGING_DIR", "data/staging"),
		S3Enabled:         getEnv("S3_ENABLED", "false") == "true",
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "artifacts"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		MaxFileSize:       getEnvInt64("MAX_FILE_SIZE", 20*1024*1024),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
