package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string
	SecureCookie  bool
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	OriginURL     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}

	appEnv := getEnv("APP_ENV", "development")

	return &Config{
		AppEnv:        appEnv,
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),
		SessionTTL:    ttl,
		SessionCookie: getEnv("SESSION_COOKIE", "fashionhub_session"),
		SecureCookie:  appEnv == "production",
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		OriginURL:     os.Getenv("ORIGIN_URL"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
