package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-only-session-secret-change-me"

var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required in release mode")

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Inquiry form behaviour
	SubmitDelay   time.Duration
	LocateDelay   time.Duration
	ResolvedPlace string
	// Inquiry sessions
	SessionSecret string
	SessionTTL    time.Duration
	SessionMax    int
	CookieSecure  bool
	// CORS allow-list for the JSON API
	AllowedOrigins []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitSubmitThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development only)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Inquiry form behaviour
		SubmitDelay:   time.Duration(getEnvInt("SUBMIT_DELAY_MS", 1500)) * time.Millisecond,
		LocateDelay:   time.Duration(getEnvInt("LOCATE_DELAY_MS", 1000)) * time.Millisecond,
		ResolvedPlace: getEnv("RESOLVED_PLACE", "Hyderabad, Telangana"),
		// Inquiry sessions
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		SessionMax:    getEnvInt("SESSION_MAX", 10000),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		// CORS
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 120), // requests per window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 5),   // submits per window
	}

	// The dev secret is public; release builds must bring their own.
	if cfg.SessionSecret == "" {
		if cfg.GinMode == "release" {
			return nil, ErrMissingSessionSecret
		}
		log.Println("WARNING: SESSION_SECRET not configured. Using the development session secret.")
		cfg.SessionSecret = devSessionSecret
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow is the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key, fallback string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, fallback), ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
