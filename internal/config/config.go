package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr   string
	GeminiKey    string
	SeedFile     string
	ReminderCron string
}

func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		GeminiKey:    getEnv("GEMINI_API_KEY", ""),
		SeedFile:     getEnv("SEED_FILE", ""),
		ReminderCron: getEnv("REMINDER_CRON", "*/30 * * * *"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
