package main

import "testing"

func TestLoadConfigUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
}

func TestLoadConfigHonorsPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg := loadConfig()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	if got := getEnv("SOME_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
	if got := getEnv("MISSING_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
