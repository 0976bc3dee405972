package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSubmitTimeout bounds each forward. SUBMIT_TIMEOUT=0s removes the bound.
const DefaultSubmitTimeout = 10 * time.Second

type Config struct {
	Port           string
	Environment    string   // ENV: production, development, etc.
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)

	// Where activations forward profiles to. Defaults to this server.
	SubmitBaseURL string
	SubmitTimeout time.Duration // 0 means no timeout

	// Per-IP rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool // read client IP from X-Forwarded-For / X-Real-IP

	EnableSubmitEcho bool // mount the development /submit acceptor
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	port := getEnv("PORT", "8080")

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", ""), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		// The platform's web clients
		allowedOrigins = []string{"https://web.telegram.org"}
	}

	return &Config{
		Port:             port,
		Environment:      env,
		AllowedOrigins:   allowedOrigins,
		SubmitBaseURL:    strings.TrimRight(getEnv("SUBMIT_BASE_URL", "http://localhost:"+port), "/"),
		SubmitTimeout:    getDuration("SUBMIT_TIMEOUT", DefaultSubmitTimeout),
		RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 10),
		TrustProxy:       getBool("TRUST_PROXY", false),
		EnableSubmitEcho: getBool("ENABLE_SUBMIT_ECHO", env != "production"),
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
