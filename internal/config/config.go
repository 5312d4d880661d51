package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Ephemeris struct {
		DataDir string
	}
	Cache struct {
		PanchangTTL time.Duration
		ChartTTL    time.Duration
		MuhuratTTL  time.Duration
	}
	Geocode struct {
		BaseURL string
	}
	Muhurat struct {
		RulesPath string
	}
	Workers struct {
		WarmEnabled   bool
		WarmInterval  time.Duration
		WarmLocations string
		PruneEnabled  bool
		PruneInterval time.Duration
		RetentionDays int
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
	Export struct {
		OutputDir string
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.DBName = getEnv("DB_NAME", "jyotish")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// Ephemeris
	cfg.Ephemeris.DataDir = getEnv("EPHEMERIS_DATA_DIR", "./data/vsop87")

	// Cache
	cfg.Cache.PanchangTTL = getEnvAsDuration("CACHE_PANCHANG_TTL", 6*time.Hour)
	cfg.Cache.ChartTTL = getEnvAsDuration("CACHE_CHART_TTL", 24*time.Hour)
	cfg.Cache.MuhuratTTL = getEnvAsDuration("CACHE_MUHURAT_TTL", 6*time.Hour)

	// Geocode
	cfg.Geocode.BaseURL = getEnv("GEOCODE_BASE_URL", "https://geocoding-api.open-meteo.com")

	// Muhurat
	cfg.Muhurat.RulesPath = getEnv("MUHURAT_RULES_PATH", "")

	// Workers
	cfg.Workers.WarmEnabled = getEnvAsBool("WARM_ENABLED", true)
	cfg.Workers.WarmInterval = getEnvAsDuration("WORKER_WARM_INTERVAL", 3*time.Hour)
	cfg.Workers.WarmLocations = getEnv("WARM_LOCATIONS", "28.6139,77.2090,330")
	cfg.Workers.PruneEnabled = getEnvAsBool("PRUNE_ENABLED", true)
	cfg.Workers.PruneInterval = getEnvAsDuration("WORKER_PRUNE_INTERVAL", 24*time.Hour)
	cfg.Workers.RetentionDays = getEnvAsInt("ARCHIVE_RETENTION_DAYS", 365)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	// Export
	cfg.Export.OutputDir = getEnv("EXPORT_OUTPUT_DIR", "./exports")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
