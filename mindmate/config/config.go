package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	DBPath            string
	JWTSecret         string
	GeminiAPIKey      string
	GeminiModel       string
	SeverityModelPath string
	LLMTimeoutSecs    int
}

func LoadConfig() Config {
	// .env is optional; system environment wins either way
	_ = godotenv.Load()

	return Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8000"),
		DBPath:            getEnv("DB_PATH", "mindmate.db"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		SeverityModelPath: getEnv("PHQ9_MODEL_PATH", "phq9_model.json"),
		LLMTimeoutSecs:    getEnvInt("LLM_TIMEOUT_SECS", 30),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
