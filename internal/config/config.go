package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBUrl     string
	JWTSecret string
	AppEnv    string

	DBMaxConns int
	DBMinConns int

	// Matching weights. Defaults reproduce the platform scoring model:
	// expertise 0.5, experience 0.3, rating 0.2.
	ExpertiseWeight  float64
	ExperienceWeight float64
	RatingWeight     float64

	// Platform pricing defaults applied when a company has no rate card.
	ServiceChargePercent float64
	CommissionPercent    float64

	// Pending matches older than this many hours are expired by the
	// background job.
	MatchExpiryHours int
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
		Port:                 getEnv("PORT", "8080"),
		DBUrl:                getEnv("DB_URL", ""),
		JWTSecret:            jwtSecret,
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		DBMaxConns:           getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:           getEnvInt("DB_MIN_CONNS", 2),
		ExpertiseWeight:      getEnvFloat("EXPERTISE_WEIGHT", 0.5),
		ExperienceWeight:     getEnvFloat("EXPERIENCE_WEIGHT", 0.3),
		RatingWeight:         getEnvFloat("RATING_WEIGHT", 0.2),
		ServiceChargePercent: getEnvFloat("SERVICE_CHARGE_PERCENT", 10),
		CommissionPercent:    getEnvFloat("COMMISSION_PERCENT", 5),
		MatchExpiryHours:     getEnvInt("MATCH_EXPIRY_HOURS", 168),
	}, nil
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
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
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
