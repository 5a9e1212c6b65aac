package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	API  APIConfig
	Mock MockConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
}

// APIConfig points the data layer at the remote storefront API.
type APIConfig struct {
	BaseURL string
	// Token is a development convenience; production callers supply an
	// auth.TokenSource backed by the auth provider session.
	Token        string
	CatalogTTL   time.Duration
	AnalyticsTTL time.Duration
}

type MockConfig struct {
	Port      string
	JWTSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "storefront.log"),
		},
		API: APIConfig{
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:8000"),
			Token:        getEnv("API_TOKEN", ""),
			CatalogTTL:   time.Duration(getEnvAsInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
			AnalyticsTTL: time.Duration(getEnvAsInt("ANALYTICS_CACHE_TTL_SECONDS", 120)) * time.Second,
		},
		Mock: MockConfig{
			Port:      getEnv("MOCK_API_PORT", "8000"),
			JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
