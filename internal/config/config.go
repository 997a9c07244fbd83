package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Midtrans MidtransConfig
	Payment  PaymentConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Port int
}

// DatabaseConfig describes connectivity to Postgres.
type DatabaseConfig struct {
	URL string
}

// MidtransConfig holds gateway credentials and the environment toggle.
type MidtransConfig struct {
	ServerKey  string
	ClientKey  string
	Production bool
}

// PaymentConfig carries the redirect URLs handed to the hosted checkout.
type PaymentConfig struct {
	FinishURL  string
	ErrorURL   string
	PendingURL string
}

const (
	defaultPort       = 8080
	defaultFinishURL  = "https://juara-cpns.web.app/payment/finish"
	defaultErrorURL   = "https://juara-cpns.web.app/payment/error"
	defaultPendingURL = "https://juara-cpns.web.app/payment/pending"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Port: intFromEnv("PORT", defaultPort),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Midtrans: MidtransConfig{
			ServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
			ClientKey:  os.Getenv("MIDTRANS_CLIENT_KEY"),
			Production: boolFromEnv("MIDTRANS_PRODUCTION", false),
		},
		Payment: PaymentConfig{
			FinishURL:  stringFromEnv("PAYMENT_FINISH_URL", defaultFinishURL),
			ErrorURL:   stringFromEnv("PAYMENT_ERROR_URL", defaultErrorURL),
			PendingURL: stringFromEnv("PAYMENT_PENDING_URL", defaultPendingURL),
		},
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("POSTGRES_URL is required")
	}
	if cfg.Midtrans.ServerKey == "" {
		return Config{}, fmt.Errorf("MIDTRANS_SERVER_KEY is required")
	}

	return cfg, nil
}

func stringFromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolFromEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
