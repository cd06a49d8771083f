package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DBUrl              string
	JWTSecret          string
	AppEnv             string
	ResendAPIKey       string
	MailFromAddress    string
	ContactInboxEmail  string
	WhatsAppPhone      string
	CommunityLink      string
	OTPCountryCode     string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	ConsultationFee    float64
	EnableDocs         bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBUrl:              getEnv("DB_URL", ""),
		JWTSecret:          jwtSecret,
		AppEnv:             normalizeEnv(getEnv("APP_ENV", "production")),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		MailFromAddress:    getEnv("MAIL_FROM_ADDRESS", "Nutrition hai Zaruri <onboarding@resend.dev>"),
		ContactInboxEmail:  getEnv("CONTACT_INBOX_EMAIL", "info@nutritionhaizaruri.com"),
		WhatsAppPhone:      getEnv("WHATSAPP_PHONE", "919884315705"),
		CommunityLink:      getEnv("COMMUNITY_LINK", "https://chat.whatsapp.com/DZf2YjUlHn36DzJA5ZePtL"),
		OTPCountryCode:     getEnv("OTP_COUNTRY_CODE", "+91"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		ConsultationFee:    getEnvFloat("CONSULTATION_FEE", 999),
		EnableDocs:         getEnv("ENABLE_DOCS", "") == "true",
	}, nil
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	var parsed float64
	if _, err := fmt.Sscanf(strings.TrimSpace(value), "%f", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
