package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	TokenTTL           time.Duration
	FallbackAdminEmail string
}

// Load reads configuration from the environment. JWT_SECRET and
// FALLBACK_ADMIN_EMAIL have no safe defaults and must be set.
func Load() (Config, error) {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DATABASE_URL", "tracker.db")
	viper.SetDefault("TOKEN_TTL_HOURS", 168)
	viper.AutomaticEnv()

	cfg := Config{
		Port:               viper.GetString("PORT"),
		DatabaseURL:        viper.GetString("DATABASE_URL"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		TokenTTL:           time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		FallbackAdminEmail: viper.GetString("FALLBACK_ADMIN_EMAIL"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if cfg.FallbackAdminEmail == "" {
		return Config{}, fmt.Errorf("FALLBACK_ADMIN_EMAIL environment variable is not set")
	}

	return cfg, nil
}
