package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is read once at startup and never mutated afterwards; every
// component receives the values it needs at construction.
type Config struct {
	Env           string
	SearchAPIKey  string
	SearchAPIHost string
	AffiliateTag  string
	DatabaseURL   string
	RedisURL      string
	ResendKey     string
	ContactTo     string
	Port          string
	MetricsPort   string
}

func Load() *Config {
	// Tenta o .env da raiz do projeto, depois o diretório atual
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		SearchAPIKey:  os.Getenv("SEARCH_API_KEY"),
		SearchAPIHost: getEnv("SEARCH_API_HOST", "real-time-amazon-data.p.rapidapi.com"),
		AffiliateTag:  getEnv("AFFILIATE_TAG", "dealpulse0a-20"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		ResendKey:     os.Getenv("RESEND_API_KEY"),
		ContactTo:     getEnv("CONTACT_TO", "deals@dealpulse.example"),
		Port:          getEnv("PORT", "8080"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
