package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Billing struct {
		InvoicePrefix         string  `mapstructure:"invoice_prefix"`
		DefaultTaxRatePercent float64 `mapstructure:"default_tax_rate_percent"`
		CurrencySymbol        string  `mapstructure:"currency_symbol"`
		ShopName              string  `mapstructure:"shop_name"`
	} `mapstructure:"billing"`

	Reminders struct {
		SoonWindowDays  int `mapstructure:"soon_window_days"`
		LaterWindowDays int `mapstructure:"later_window_days"`
	} `mapstructure:"reminders"`

	Monitoring struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"monitoring"`

	SeedDemoData bool `mapstructure:"seed_demo_data"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type"})
	v.SetDefault("billing.invoice_prefix", "INV")
	v.SetDefault("billing.default_tax_rate_percent", 18.0)
	v.SetDefault("billing.currency_symbol", "Rs.")
	v.SetDefault("billing.shop_name", "Garage Admin")
	v.SetDefault("reminders.soon_window_days", 15)
	v.SetDefault("reminders.later_window_days", 60)
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.port", 9091)
	v.SetDefault("seed_demo_data", true)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override from plain environment variables for container deployments
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if prefix := os.Getenv("INVOICE_PREFIX"); prefix != "" {
		cfg.Billing.InvoicePrefix = prefix
	}
	if seed := os.Getenv("SEED_DEMO_DATA"); seed != "" {
		cfg.SeedDemoData = seed == "true" || seed == "1"
	}

	return &cfg
}
