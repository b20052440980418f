package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	Provider    string // "openrouter"
	BaseURL     string
	APIKey      string
	Referer     string // HTTP-Referer header sent to the gateway
	AppTitle    string // X-Title header sent to the gateway
	DefaultChat string // default chat model
	KitModel    string // larger model for startup kit generation
	PublicModel string // cheaper model for the public endpoints
}

type StorageConfig struct {
	RootDir string // root directory for all document buckets
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Startup Companion"),
		},
		Ai: AIConfig{
			Provider:    getEnv("LLM_PROVIDER", "openrouter"),
			BaseURL:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:      getEnv("OPENROUTER_API_KEY", ""),
			Referer:     getEnv("OPENROUTER_REFERER", "https://startup-companion.com"),
			AppTitle:    getEnv("OPENROUTER_APP_TITLE", "Startup Companion"),
			DefaultChat: getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			KitModel:    getEnv("LLM_KIT_MODEL", "openai/gpt-4o"),
			PublicModel: getEnv("LLM_PUBLIC_MODEL", "openai/gpt-3.5-turbo"),
		},
		Storage: StorageConfig{
			RootDir: getEnv("STORAGE_ROOT_DIR", "./uploads"),
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
