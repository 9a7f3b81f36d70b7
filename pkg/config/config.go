package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogMode     string

	// Derives caller fingerprints for rate limiting.
	IPSalt string

	// Public site URL, used to build verification links.
	AppURL string

	ResendAPIKey string
	DeckFrom     string
	InvestFrom   string
	DeckCC       string

	AdminPasswordHash string
	JWTSecret         string
	JWTIssuer         string
	JWTTTLMinutes     int

	OGFontPath string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogMode:     getEnv("LOG_MODE", "dev"),

		IPSalt: getEnv("IP_SALT", "headless-markets"),
		AppURL: getEnv("APP_URL", "https://headlessmarket.xyz"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		DeckFrom:     getEnv("RESEND_FROM_EMAIL", "Headless Markets <noreply@headlessmarket.xyz>"),
		InvestFrom:   getEnv("INVEST_FROM_EMAIL", "Headless Markets <invest@headlessmarkets.xyz>"),
		DeckCC:       os.Getenv("RESEND_CC_EMAIL"),

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "site-backend"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60),

		OGFontPath: os.Getenv("OG_FONT_PATH"),
	}
	return cfg
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
