package api

import (
	"os"
	"strings"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port           string
	PostgresDSN    string
	JWTSecret      string
	AllowedOrigins []string

	// Blob storage. S3 engages when a bucket is configured; otherwise
	// uploads land in the in-memory store.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PathStyle bool
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() Config {
	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		S3Bucket:    strings.TrimSpace(os.Getenv("BLOB_S3_BUCKET")),
		S3Region:    strings.TrimSpace(os.Getenv("BLOB_S3_REGION")),
		S3Endpoint:  strings.TrimSpace(os.Getenv("BLOB_S3_ENDPOINT")),
		S3AccessKey: strings.TrimSpace(os.Getenv("BLOB_S3_ACCESS_KEY")),
		S3SecretKey: strings.TrimSpace(os.Getenv("BLOB_S3_SECRET_KEY")),
		S3PathStyle: isTruthy(os.Getenv("BLOB_S3_PATH_STYLE")),
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
