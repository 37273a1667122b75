package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	DBPath         string
	GoogleClientID string
	ReminderDays   int
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		DBPath:         GetEnv("DB_PATH", "./data/property-manager.db"),
		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID", ""),
		ReminderDays:   GetEnvInt("REMINDER_DAYS", 7),
	}

	if AppConfig.GoogleClientID == "" {
		log.Fatal("GOOGLE_CLIENT_ID is required")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
