// Package config reads the environment-driven settings. A .env file is loaded
// when present; real deployments set the variables directly.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	AllowedOrigins []string
	BaseURL        string

	EmailProvider  string // "smtp" or "sendgrid"
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	SendGridAPIKey string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the .env file if one exists and assembles the configuration.
func Load() *Config {
	_ = godotenv.Load()

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGODB_DB", "blackcoffee"),
		JWTSecret:      getenv("JWT_SECRET", "fallback_secret_change_in_production"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		BaseURL:        getenv("BASE_URL", "http://localhost:3000"),

		EmailProvider:  getenv("EMAIL_PROVIDER", "smtp"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       getenv("SMTP_FROM", `"CoffeeStore" <no-reply@coffeestore.com>`),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}
