package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT verification (tokens are issued by the main marketplace backend)
	JWTSecret string

	// Ops bypass for the capability middleware; bcrypt hash of the token
	OpsTokenHash string

	// Bootstrap admin seeded when the moderator registry is empty
	BootstrapAdminID string

	// Report escalation
	ReportEscalationAfter time.Duration

	// Notifications
	WebhookURL     string
	SendgridKey    string
	NotifyFrom     string
	NotifyFromName string
	OpsEmail       string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "naxtap_moderation"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		OpsTokenHash: getEnv("OPS_TOKEN_HASH", ""),

		BootstrapAdminID: getEnv("BOOTSTRAP_ADMIN_ID", ""),

		ReportEscalationAfter: parseDuration(getEnv("REPORT_ESCALATION_AFTER", "48h")),

		WebhookURL:     getEnv("NOTIFY_WEBHOOK_URL", ""),
		SendgridKey:    getEnv("SENDGRID_API_KEY", ""),
		NotifyFrom:     getEnv("NOTIFY_FROM_EMAIL", "support@naxtap.com"),
		NotifyFromName: getEnv("NOTIFY_FROM_NAME", "Naxtap Support"),
		OpsEmail:       getEnv("NOTIFY_OPS_EMAIL", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 48 * time.Hour
	}
	return d
}
