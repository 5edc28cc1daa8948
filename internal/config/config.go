package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config хранит параметры запуска приложения.
type Config struct {
	Env         string
	LogLevel    string
	Currency    string
	CompanyName string
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	logLevel := getEnv("LOG_LEVEL", "")
	if logLevel == "" {
		if env == "development" {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	cfg := &Config{
		Env:         env,
		LogLevel:    logLevel,
		Currency:    getEnv("CURRENCY", "$"),
		CompanyName: getEnv("COMPANY_NAME", "Proposal Studio"),
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
