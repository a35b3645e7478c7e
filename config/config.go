package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every environment-sourced setting. It is loaded once in main
// and passed down explicitly; nothing else reads os.Getenv.
type Config struct {
	Port string

	// DATABASE_URL wins over the discrete DB_* parts when set.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	CORSOrigin string
	RedisAddr  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "ecommerce"),

		AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", "access-secret"),
		RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", "refresh-secret"),
		AccessTokenTTL:     getDuration("ACCESS_TOKEN_EXPIRY", time.Hour),
		RefreshTokenTTL:    getDuration("REFRESH_TOKEN_EXPIRY", 10*24*time.Hour),

		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		LoginRateLimit:  getInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow: getDuration("LOGIN_RATE_WINDOW", 15*time.Minute),
	}
}

// DSN builds the postgres connection string from the discrete parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
