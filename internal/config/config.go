package config

import (
	"os"
	"strconv"
	"time"
)

// Config is assembled from environment variables (godotenv loads .env in
// main). Every timeout the runtime previously left implicit is explicit here.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "3000"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "test"),

		ReadTimeout:  getenvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getenvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getenvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),

		RateLimitPerSecond: getenvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:     getenvInt("RATE_LIMIT_BURST", 100),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
