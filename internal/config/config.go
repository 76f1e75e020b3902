package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	AppEnv            string
	MongoURI          string
	MongoDB           string
	JWTSecret         string
	JWTExpireHours    int
	FrontendURL       string
	GeminiAPIKey      string
	GeminiModel       string
	ModerationTimeout time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "development"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "saferoute"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpireHours:    getEnvInt("JWT_EXPIRE_HOURS", 24),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ModerationTimeout: time.Duration(getEnvInt("MODERATION_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
