package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string
	GinMode  string

	TaxRate       decimal.Decimal
	MaxPrice      decimal.Decimal
	DefaultLocale models.Locale

	CacheTTL     time.Duration
	CartTTL      time.Duration
	FetchTimeout time.Duration

	LogMode string
	LogFile string

	PaymentPublishableKey string
	MediaBucket           string
}

// HasBackend reports whether a hosted database is configured.
func (c *Config) HasBackend() bool {
	return c.MongoURI != ""
}

func LoadConfig() *Config {
	// .env is only present in local development
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		} else {
			log.Println(".env file loaded")
		}
	}

	return &Config{
		MongoURI:              getEnv("MONGO_URI", ""),
		MongoDB:               getEnv("MONGO_DB", "rahalStore"),
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "release"),
		TaxRate:               getDecimal("TAX_RATE", "0.10"),
		MaxPrice:              getDecimal("MAX_PRICE", "500"),
		DefaultLocale:         getLocale("DEFAULT_LOCALE", models.DefaultLocale),
		CacheTTL:              getDuration("CACHE_TTL", 5*time.Minute),
		CartTTL:               getDuration("CART_TTL", 24*time.Hour),
		FetchTimeout:          getDuration("FETCH_TIMEOUT", 10*time.Second),
		LogMode:               getEnv("LOG_MODE", "development"),
		LogFile:               getEnv("LOG_FILE", ""),
		PaymentPublishableKey: getEnv("PAYMENT_PUBLISHABLE_KEY", ""),
		MediaBucket:           getEnv("MEDIA_BUCKET", "products"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	def := decimal.RequireFromString(fallback)
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return def
	}
	return d
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getLocale(key string, fallback models.Locale) models.Locale {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	l, ok := models.ParseLocale(value)
	if !ok {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return l
}
