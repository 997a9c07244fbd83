package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_URL", "postgres://localhost:5432/juarapay")
	t.Setenv("MIDTRANS_SERVER_KEY", "SB-Mid-server-test")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("PAYMENT_FINISH_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Payment.FinishURL != "https://juara-cpns.web.app/payment/finish" {
		t.Errorf("unexpected finish url default: %s", cfg.Payment.FinishURL)
	}
	if cfg.Payment.PendingURL != "https://juara-cpns.web.app/payment/pending" {
		t.Errorf("unexpected pending url default: %s", cfg.Payment.PendingURL)
	}
	if cfg.Midtrans.Production {
		t.Errorf("expected sandbox mode by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MIDTRANS_PRODUCTION", "true")
	t.Setenv("PAYMENT_ERROR_URL", "https://example.com/err")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if !cfg.Midtrans.Production {
		t.Errorf("expected production mode")
	}
	if cfg.Payment.ErrorURL != "https://example.com/err" {
		t.Errorf("unexpected error url: %s", cfg.Payment.ErrorURL)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when POSTGRES_URL is unset")
	}
}

func TestLoadRequiresServerKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MIDTRANS_SERVER_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when MIDTRANS_SERVER_KEY is unset")
	}
}
