package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/logitrack/logitrack/pkg/apperr"
)

func validConfig() *Config {
	return &Config{
		JWTKey:             strings.Repeat("k", 32),
		TokenLifetime:      time.Hour,
		Environment:        EnvDevelopment,
		LogLevel:           "info",
		CORSAllowedOrigins: "*",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := Validate(validConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing JWT key is a configuration error", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTKey = "  "
		err := Validate(cfg)
		if !errors.Is(err, apperr.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenLifetime = 0
		if err := Validate(cfg); !errors.Is(err, apperr.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production skips checks", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTKey = "short"
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("production rejects weak settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = EnvProduction
		cfg.JWTKey = "short"
		cfg.LogLevel = "debug"
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error")
		}
		for _, want := range []string{"JWT_KEY", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("expected %s in %q", want, err.Error())
			}
		}
	})

	t.Run("production accepts hardened settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = EnvProduction
		cfg.CORSAllowedOrigins = "https://app.logitrack.example"
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
