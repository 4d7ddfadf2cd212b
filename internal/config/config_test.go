package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
	if cfg.Email.Provider != "gmail" {
		t.Errorf("provider = %q, want gmail", cfg.Email.Provider)
	}
	if cfg.Email.SenderName != "BloomBasket" {
		t.Errorf("sender name = %q", cfg.Email.SenderName)
	}
	if cfg.Notifications.Cooldown != 5*time.Minute {
		t.Errorf("cooldown = %v, want 5m", cfg.Notifications.Cooldown)
	}
	if cfg.Database.Enabled || cfg.Redis.Enabled {
		t.Error("database and redis should default to disabled")
	}
	if len(cfg.Notifications.AdminEmails) != 0 {
		t.Errorf("admin emails = %v, want empty", cfg.Notifications.AdminEmails)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLOOMBASKET_EMAIL_PROVIDER", "memory")
	t.Setenv("BLOOMBASKET_EMAIL_SENDER_ADDRESS", "orders@bloombasket.example")
	t.Setenv("BLOOMBASKET_NOTIFICATIONS_ADMIN_EMAILS", "admin1@x.com, admin2@x.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Email.Provider != "memory" {
		t.Errorf("provider = %q, want memory", cfg.Email.Provider)
	}
	if cfg.Email.SenderAddress != "orders@bloombasket.example" {
		t.Errorf("sender address = %q", cfg.Email.SenderAddress)
	}
	admins := cfg.Notifications.AdminEmails
	if len(admins) != 2 || admins[0] != "admin1@x.com" || admins[1] != "admin2@x.com" {
		t.Errorf("admin emails = %v", admins)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Email: EmailConfig{Provider: "memory", SenderAddress: "orders@x.com"},
		}
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Email.SenderAddress = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing sender address must fail validation")
	}

	cfg = base()
	cfg.Email.Provider = "gmail"
	if err := cfg.Validate(); err == nil {
		t.Error("gmail without credentials must fail validation")
	}

	cfg = base()
	cfg.Email.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider must fail validation")
	}

	cfg = base()
	cfg.Notifications.DeliveryLog = true
	if err := cfg.Validate(); err == nil {
		t.Error("delivery log without database must fail validation")
	}

	cfg = base()
	cfg.Notifications.CooldownEnabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("cooldown without redis must fail validation")
	}
}
