package config

import (
	"errors"
	"testing"
)

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("AUTH_EXEMPT_PATH_PREFIXES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Fatalf("secret not read: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 60 {
		t.Fatalf("unexpected token TTL default: %d", cfg.Auth.AccessTokenTTLMinutes)
	}
	want := []string{"/api/auth", "/api/hello"}
	if len(cfg.Auth.ExemptPathPrefixes) != len(want) {
		t.Fatalf("unexpected exempt prefixes: %v", cfg.Auth.ExemptPathPrefixes)
	}
	for i, prefix := range want {
		if cfg.Auth.ExemptPathPrefixes[i] != prefix {
			t.Fatalf("unexpected exempt prefixes: %v", cfg.Auth.ExemptPathPrefixes)
		}
	}
	if cfg.App.Addr() == "" {
		t.Fatal("empty bind address")
	}
}

func TestLoadExemptPrefixOverride(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_EXEMPT_PATH_PREFIXES", "/api/public, /healthz ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := cfg.Auth.ExemptPathPrefixes
	if len(got) != 2 || got[0] != "/api/public" || got[1] != "/healthz" {
		t.Fatalf("list env not parsed: %v", got)
	}
}
