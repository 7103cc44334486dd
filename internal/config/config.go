package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	LogLevel   string

	// Optional redis-backed rate limit on the public booking endpoint.
	// Disabled when RedisAddr is empty.
	RedisAddr          string
	RateLimitPerMinute int

	SeedDemoData bool

	// Comma-separated YYYY-MM-DD dates with no pickup availability.
	BlackoutDates []string

	StaffEmail    string
	StaffName     string
	StaffPassword string
}

func Load() *Config {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		SeedDemoData:       getEnvBool("SEED_DEMO_DATA", true),
		BlackoutDates:      getEnvList("BLACKOUT_DATES"),
		StaffEmail:         getEnv("STAFF_EMAIL", "staff@ridgelinesupply.com"),
		StaffName:          getEnv("STAFF_NAME", "Warehouse Staff"),
		StaffPassword:      getEnv("STAFF_PASSWORD", "pickup-staff"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
