package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Payment PaymentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	EventsTopic        string
}

type StoreConfig struct {
	LayoutPath  string
	CatalogPath string
}

type PaymentConfig struct {
	Gateway           string // "simulated" or "midtrans"
	MidtransServerKey string
	MidtransEnv       string // "sandbox" or "production"
	ProcessingDelayMs int
	TaxRate           float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
			EventsTopic:        getEnv("TROLLEY_EVENTS_TOPIC_NAME", "TROLLEY_EVENTS"),
		},
		Store: StoreConfig{
			LayoutPath:  getEnv("STORE_LAYOUT_PATH", ""),
			CatalogPath: getEnv("STORE_CATALOG_PATH", ""),
		},
		Payment: PaymentConfig{
			Gateway:           getEnv("PAYMENT_GATEWAY", "simulated"),
			MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransEnv:       getEnv("MIDTRANS_ENV", "sandbox"),
			ProcessingDelayMs: getEnvAsInt("PAYMENT_PROCESSING_DELAY_MS", 2000),
			TaxRate:           getEnvAsFloat("TAX_RATE", 0.08),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
