package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RabbitURL string

	// Email delivery (Resend)
	ResendAPIKey string
	EmailFrom    string
	AgencyInbox  string

	// External auth collaborator
	AuthURL    string
	AuthAPIKey string

	// Object storage collaborator
	StorageURL    string
	StorageBucket string
	StorageAPIKey string
}

func Load() *Config {
	// Missing .env is fine in containers; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "travel_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RabbitURL: getEnv("RABBITMQ_URL", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "Strakotou Travel <onboarding@resend.dev>"),
		AgencyInbox:  getEnv("AGENCY_INBOX", "estravel@cytanet.com.cy"),

		AuthURL:    getEnv("AUTH_URL", ""),
		AuthAPIKey: getEnv("AUTH_API_KEY", ""),

		StorageURL:    getEnv("STORAGE_URL", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", "travel-media"),
		StorageAPIKey: getEnv("STORAGE_API_KEY", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
