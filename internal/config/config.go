package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	RedisURL    string
	Environment string
	Events      EventConfig
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; env vars alone configure production.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Events: EventConfig{
			Enabled:       getEnv("EVENTS_ENABLED", "false") == "true",
			Publisher:     getEnv("EVENTS_PUBLISHER", "kafka"),
			KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
			AnalysisTopic: getEnv("ANALYSIS_EVENTS_TOPIC", "analysis-events"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
