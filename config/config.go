// config.go - Environment-driven configuration for the shop backend

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// with an optional .env file for local development.
type Config struct {
	Port      string // HTTP listen port
	DBPath    string // Path to the SQLite database file
	JWTSecret string // Secret key for signing bearer tokens
	UploadDir string // Root directory for uploaded product images

	// Default admin seeding (disabled unless CREATE_ADMIN=true)
	CreateAdmin   bool
	AdminEmail    string
	AdminPassword string

	// OpenTelemetry metrics export
	MetricsEnabled bool
	OTLPEndpoint   string // host:port of the OTLP/HTTP collector
	OTLPInsecure   bool
	ServiceName    string
}

var dotenvLoaded bool

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	if !dotenvLoaded {
		if err := godotenv.Load(); err != nil {
			if _, ok := err.(*os.PathError); !ok {
				log.Printf("warning: could not load .env file: %v", err)
			}
		}
		dotenvLoaded = true
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "shop.db"),
		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		CreateAdmin:   getEnvBool("CREATE_ADMIN", false),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "go-shop-backend"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return fallback
}
