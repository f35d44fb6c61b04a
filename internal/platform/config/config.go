package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret verifies bearer tokens issued by the identity provider.
	JWTSecret string
	JWTIssuer string

	// ReportsBucket is the object storage bucket for generated report PDFs.
	ReportsBucket string

	// CORSAllowOrigins is the allow-list for browser clients; empty = any.
	CORSAllowOrigins []string

	// GenerateRateLimit is the limiter rate for report generation, in
	// ulule/limiter notation, e.g. "10-M" for ten per minute per IP.
	GenerateRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "branch-transfer-app")
	viper.SetDefault("REPORTS_BUCKET", "")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")
	viper.SetDefault("GENERATE_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ReportsBucket = viper.GetString("REPORTS_BUCKET")
	if cfg.ReportsBucket == "" {
		log.Println("Warning: REPORTS_BUCKET environment variable not set. Report generation will fail.")
	}

	if origins := viper.GetString("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, trimmed)
			}
		}
	}

	cfg.GenerateRateLimit = viper.GetString("GENERATE_RATE_LIMIT")

	return cfg, nil
}
