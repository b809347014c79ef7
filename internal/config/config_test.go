package config

import (
	"testing"
	"time"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaultsInDevMode(t *testing.T) {
	t.Setenv(envDevMode, "true")
	t.Setenv(envJWTSecret, validSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != defaultServerPort {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Errorf("session ttl = %v", cfg.Session.TTL)
	}
	if cfg.Session.ValidatePersistedToken {
		t.Error("persisted-token validation should default off")
	}
	if !cfg.App.DevMode {
		t.Error("dev mode not picked up")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv(envDevMode, "true")
	t.Setenv(envJWTSecret, "")

	if _, err := Load(); err == nil {
		t.Fatal("missing JWT secret accepted")
	}

	t.Setenv(envJWTSecret, "short")
	if _, err := Load(); err == nil {
		t.Fatal("short JWT secret accepted")
	}
}

func TestLoadRequiresDBPasswordOutsideDevMode(t *testing.T) {
	t.Setenv(envDevMode, "false")
	t.Setenv(envJWTSecret, validSecret)
	t.Setenv(envDBPassword, "")

	if _, err := Load(); err == nil {
		t.Fatal("missing DB password accepted outside dev mode")
	}
}

func TestDurationEnvAcceptsMinutes(t *testing.T) {
	t.Setenv(envDevMode, "true")
	t.Setenv(envJWTSecret, validSecret)
	t.Setenv(envJWTExpiry, "90")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWT.ExpiryDuration != 90*time.Minute {
		t.Errorf("expiry = %v", cfg.JWT.ExpiryDuration)
	}

	t.Setenv(envJWTExpiry, "2h")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWT.ExpiryDuration != 2*time.Hour {
		t.Errorf("expiry = %v", cfg.JWT.ExpiryDuration)
	}
}

func TestDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "pw",
		Database: "taskservice", SSLMode: "disable",
	}
	expected := "host=db port=5432 user=app password=pw dbname=taskservice sslmode=disable"
	if got := dbCfg.DSN(); got != expected {
		t.Errorf("DSN() = %q", got)
	}
}
