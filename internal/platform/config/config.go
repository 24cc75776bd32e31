package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// LockTimeoutMS bounds how long a posting transaction waits on row locks
	// before giving up with a 503.
	LockTimeoutMS int

	// AllowGroupPosting permits journal lines against group (summary)
	// accounts. Off by default; most charts of accounts forbid it.
	AllowGroupPosting bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOCK_TIMEOUT_MS", 3000)
	viper.SetDefault("ALLOW_GROUP_POSTING", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.LockTimeoutMS = viper.GetInt("LOCK_TIMEOUT_MS")
	if cfg.LockTimeoutMS <= 0 {
		cfg.LockTimeoutMS = 3000
		log.Printf("Warning: Invalid LOCK_TIMEOUT_MS. Defaulting to %d.\n", cfg.LockTimeoutMS)
	}

	cfg.AllowGroupPosting = viper.GetBool("ALLOW_GROUP_POSTING")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
	}

	return cfg, nil
}
