package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// JWTSecret signs admin session tokens. Login fails closed without it.
	JWTSecret string
	// JWTTTL bounds how long an issued admin token stays valid.
	JWTTTL time.Duration
	// AdminEmails is the login allow-list. Empty means nobody can log in.
	AdminEmails []string

	// MediaDir is the root directory for uploaded item images and banners.
	MediaDir string
	// PublicBaseURL prefixes stored media paths into browser-reachable URLs.
	PublicBaseURL string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are honored.
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "reverse-ludo-admin"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "reverseludo"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTL:      getEnvAsDuration("JWT_TTL", 24*time.Hour),
		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "")),

		MediaDir:      getEnv("MEDIA_DIR", "media"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate JWT secret is set; without it every issued token is forgeable
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as time.Duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// splitList parses a comma-separated env value, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsAdminEmail reports whether email is on the allow-list. Comparison is
// case-insensitive.
func (c *Config) IsAdminEmail(email string) bool {
	for _, allowed := range c.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
